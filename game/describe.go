package game

import "github.com/minaorangina/cribbage/deck"

// TeamScore is a team's standing
type TeamScore struct {
	ID      int      `json:"id"`
	Players []string `json:"players"`
	Points  int      `json:"points"`
}

// Description is a snapshot of the table for rendering
type Description struct {
	Stage      string      `json:"stage"`
	Dealer     string      `json:"dealer,omitempty"`
	NextPlayer string      `json:"nextPlayer,omitempty"`
	Cut        *deck.Card  `json:"cut,omitempty"`
	Count      int         `json:"count"`
	Sequence   []deck.Card `json:"sequence"`
	Scores     []TeamScore `json:"scores"`
	Players    []string    `json:"players"`
	Winner     []string    `json:"winner,omitempty"`
}

// Describe snapshots the game. Nothing in it aliases game state.
func (g *Game) Describe() Description {
	d := Description{
		Stage:    g.stage.String(),
		Sequence: g.round.leg.sequence.Cards(),
		Count:    g.round.leg.count,
		Scores:   []TeamScore{},
		Players:  []string{},
	}

	for _, p := range g.players {
		d.Players = append(d.Players, p.Name)
	}
	for _, t := range g.teams {
		d.Scores = append(d.Scores, TeamScore{ID: t.ID, Players: t.Names(), Points: t.Points()})
	}
	if g.winner != nil {
		d.Winner = g.winner.Names()
	}
	if g.stage == NotStarted {
		return d
	}

	d.Dealer = g.players[g.round.dealer].Name
	// while discarding this is whoever leads the first leg
	if g.stage == Discarding || g.stage == Playing {
		d.NextPlayer = g.players[g.round.leg.next].Name
	}
	if g.round.cut != nil {
		cut := *g.round.cut
		d.Cut = &cut
	}

	return d
}

// PlayerHand returns a sorted copy of the named player's hand
func (g *Game) PlayerHand(name string) ([]deck.Card, error) {
	idx, ok := g.findPlayer(name)
	if !ok {
		return nil, ErrUnknownPlayer
	}
	return deck.Sorted(g.players[idx].Hand), nil
}
