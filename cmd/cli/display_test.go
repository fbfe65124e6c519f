package main

import (
	"testing"

	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/game"
	utils "github.com/minaorangina/cribbage/internal"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func TestParseThrow(t *testing.T) {
	cards, err := parseThrow(" 5h  10C ")
	utils.AssertNoError(t, err)
	utils.AssertDeepEqual(t, cards, []deck.Card{
		deck.NewCard(deck.Five, deck.Hearts),
		deck.NewCard(deck.Ten, deck.Clubs),
	})

	_, err = parseThrow("5X")
	utils.AssertErrorIs(t, err, deck.ErrInvalidCardSyntax)
}

func TestPlayOptions(t *testing.T) {
	hand := []deck.Card{deck.NewCard(deck.Queen, deck.Spades), deck.NewCard(deck.Ace, deck.Hearts)}
	options := playOptions(hand)

	utils.AssertEqual(t, len(options), 3)
	utils.AssertEqual(t, options[2], goOption)

	for i, option := range options[:2] {
		c, err := optionCard(option)
		utils.AssertNoError(t, err)
		utils.AssertEqual(t, c, hand[i])
	}
}

func TestThrowPrompt(t *testing.T) {
	assert.Contains(t, throwPrompt("Alice", 2), "two cards")
	assert.Contains(t, throwPrompt("Alice", 4), "one card")
}

func TestScoreTableData(t *testing.T) {
	d := game.Description{Scores: []game.TeamScore{
		{ID: 1, Players: []string{"A", "C"}, Points: 12},
		{ID: 2, Players: []string{"B", "D"}, Points: 7},
	}}

	utils.AssertDeepEqual(t, scoreTableData(d), pterm.TableData{
		{"Team", "Players", "Points"},
		{"1", "A, C", "12"},
		{"2", "B, D", "7"},
	})
}

func TestTableSummary(t *testing.T) {
	cut := deck.NewCard(deck.Jack, deck.Diamonds)
	d := game.Description{
		Dealer:   "Alice",
		Cut:      &cut,
		Count:    15,
		Sequence: []deck.Card{deck.NewCard(deck.Five, deck.Hearts), deck.NewCard(deck.King, deck.Clubs)},
	}

	utils.AssertEqual(t, tableSummary(d), "Dealer: Alice\nCut: Jack of Diamonds\nCount: 15\nSequence: 5H KC")
}
