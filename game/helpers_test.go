package game

import (
	"math/rand"
	"testing"

	"github.com/minaorangina/cribbage/deck"
	"github.com/stretchr/testify/require"
)

func mustCards(t *testing.T, short ...string) []deck.Card {
	t.Helper()
	cards, err := deck.ParseCards(short)
	require.NoError(t, err)
	return cards
}

func mustCard(t *testing.T, short string) deck.Card {
	t.Helper()
	return mustCards(t, short)[0]
}

func newTestGame(t *testing.T, names ...string) *Game {
	t.Helper()
	g, err := NewGame(GameOpts{Players: names, Rand: rand.New(rand.NewSource(1))})
	require.NoError(t, err)
	return g
}

// fixedGame begins a game and replaces the deal with known hands.
// cut is left as the only card in the deck so it is turned once the
// kitty fills.
func fixedGame(t *testing.T, names []string, dealer int, hands [][]deck.Card, cut deck.Card) *Game {
	t.Helper()
	g := newTestGame(t, names...)
	require.NoError(t, g.Begin())

	g.round.dealer = dealer
	g.round.kitty = []deck.Card{}
	for i, h := range hands {
		g.players[i].Hand = append([]deck.Card{}, h...)
	}
	g.resetLeg(dealer)
	g.deck = deck.Deck{cut}

	return g
}

func playerPoints(g *Game, name string) int {
	idx, _ := g.findPlayer(name)
	return g.players[idx].Points
}

func nextPlayer(g *Game) string {
	return g.players[g.round.leg.next].Name
}
