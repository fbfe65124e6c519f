package game

import (
	"testing"

	"github.com/minaorangina/cribbage/scoring"
	"github.com/stretchr/testify/require"
)

func TestJoinLines(t *testing.T) {
	require.Equal(t, "a\nb", joinLines("", "a", "", "b"))
	require.Equal(t, "", joinLines("", ""))
}

func TestBuildShowMessage(t *testing.T) {
	counts := []HandCount{
		{Player: "Bob", Hand: mustCards(t, "9H", "10D", "JS", "QH"), Score: scoring.Breakdown{Total: 6}},
		{Player: "Alice", Hand: mustCards(t, "7D", "8H", "KC", "KH"), Kitty: true, Score: scoring.Breakdown{Total: 8}},
	}

	require.Equal(t, "Bob: 9H 10D JS QH = 6\nAlice's kitty: 7D 8H KC KH = 8", buildShowMessage(counts))
}

func TestBuildGameOverMessage(t *testing.T) {
	alice := newPlayer("Alice")
	carol := newPlayer("Carol")
	alice.Points, carol.Points = 100, 21
	team := &Team{ID: 1, Members: []*Player{alice, carol}}

	require.Equal(t, "Game over! Alice, Carol won with 121 points.", buildGameOverMessage(team))
	require.Equal(t, "Game over!", buildGameOverMessage(nil))
}

func TestPlayMessages(t *testing.T) {
	g := readyGame(t,
		[]string{"7S", "7D", "8H", "8S", "9D", "10C"},
		[]string{"9H", "10D", "JS", "QH", "KC", "KH"},
		[]string{"7D", "8H"}, []string{"KC", "KH"}, "KS")

	res := mustPlay(t, g, "Bob", "9H")
	require.Equal(t, "Bob played the Nine of Hearts.\nThe count is 9. You're up Alice.", res.Message)

	res = mustPlay(t, g, "Alice", "9D")
	require.Equal(t, "Alice played the Nine of Diamonds for 2 (Alice: 2)\nThe count is 18. You're up Bob.", res.Message)
}
