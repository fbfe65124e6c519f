package game

import (
	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/scoring"
)

// HandCount is one hand scored in the show
type HandCount struct {
	Player string            `json:"player"`
	Hand   []deck.Card       `json:"hand"`
	Kitty  bool              `json:"kitty"`
	Score  scoring.Breakdown `json:"score"`
}

// countHands scores every hand against the cut, starting left of the
// dealer. The dealer counts their hand and then the kitty.
// It stops as soon as a team wins.
func (g *Game) countHands() ([]HandCount, bool) {
	counts := []HandCount{}
	cut := *g.round.cut

	for _, p := range g.players {
		p.returnPlayedCards()
	}

	idx := g.round.dealer
	for range g.players {
		idx = g.nextInOrder(idx)
		p := g.players[idx]

		// the dealer's partner in a six player game has no hand
		if len(p.Hand) > 0 {
			hc := HandCount{
				Player: p.Name,
				Hand:   deck.Sorted(p.Hand),
				Score:  scoring.ScoreHand(p.Hand, cut, false),
			}
			counts = append(counts, hc)
			if g.award(idx, hc.Score.Total) {
				return counts, true
			}
		}

		if idx == g.round.dealer {
			hc := HandCount{
				Player: p.Name,
				Hand:   deck.Sorted(g.round.kitty),
				Kitty:  true,
				Score:  scoring.ScoreHand(g.round.kitty, cut, true),
			}
			counts = append(counts, hc)
			g.round.kitty = []deck.Card{}
			if g.award(idx, hc.Score.Total) {
				return counts, true
			}
		}
	}

	return counts, false
}
