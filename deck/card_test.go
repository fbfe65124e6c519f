package deck

import (
	"encoding/json"
	"testing"

	utils "github.com/minaorangina/cribbage/internal"
	"github.com/stretchr/testify/assert"
)

func TestCard(t *testing.T) {
	cases := []struct {
		name     string
		card     Card
		expected string
	}{
		{"Lowest value card", NewCard(Ace, Hearts), "Ace of Hearts"},
		{"Specific card", NewCard(Queen, Diamonds), "Queen of Diamonds"},
		{"Highest value card", NewCard(King, Clubs), "King of Clubs"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			utils.AssertEqual(t, c.card.String(), c.expected)
		})
	}

	t.Run("out of range", func(t *testing.T) {
		_, err := NewCardChecked(King+1, Hearts)
		utils.AssertErrorIs(t, err, ErrOutOfRange)

		_, err = NewCardChecked(Four, Clubs+1)
		utils.AssertErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("face cards count as ten", func(t *testing.T) {
		assert.Equal(t, 1, NewCard(Ace, Spades).Value())
		assert.Equal(t, 9, NewCard(Nine, Spades).Value())
		assert.Equal(t, 10, NewCard(Ten, Spades).Value())
		assert.Equal(t, 10, NewCard(Jack, Spades).Value())
		assert.Equal(t, 10, NewCard(King, Spades).Value())
	})

	t.Run("equality is by value", func(t *testing.T) {
		a, b := NewCard(Five, Hearts), NewCard(Five, Hearts)
		utils.AssertTrue(t, a == b)
		utils.AssertFalse(t, a == NewCard(Five, Clubs))
	})
}

func TestParseCard(t *testing.T) {
	valid := []struct {
		in   string
		want Card
	}{
		{"5H", NewCard(Five, Hearts)},
		{"10d", NewCard(Ten, Diamonds)},
		{" qs ", NewCard(Queen, Spades)},
		{"AC", NewCard(Ace, Clubs)},
		{"1C", NewCard(Ace, Clubs)},
		{"JH", NewCard(Jack, Hearts)},
		{"KD", NewCard(King, Diamonds)},
	}
	for _, c := range valid {
		t.Run(c.in, func(t *testing.T) {
			got, err := ParseCard(c.in)
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, c.want)
		})
	}

	for _, in := range []string{"", "H", "5X", "11H", "ZZ", "100H"} {
		t.Run("rejects "+in, func(t *testing.T) {
			_, err := ParseCard(in)
			utils.AssertErrorIs(t, err, ErrInvalidCardSyntax)
		})
	}

	t.Run("short string round trips", func(t *testing.T) {
		for _, c := range New() {
			got, err := ParseCard(c.ShortString())
			utils.AssertNoError(t, err)
			utils.AssertEqual(t, got, c)
		}
	})
}

func TestCardJSON(t *testing.T) {
	data, err := json.Marshal([]Card{NewCard(Ten, Clubs), NewCard(Ace, Spades)})
	utils.AssertNoError(t, err)
	assert.JSONEq(t, `["10C","AS"]`, string(data))

	var cards []Card
	utils.AssertNoError(t, json.Unmarshal([]byte(`["QH","3d"]`), &cards))
	assert.Equal(t, []Card{NewCard(Queen, Hearts), NewCard(Three, Diamonds)}, cards)

	err = json.Unmarshal([]byte(`["QX"]`), &cards)
	utils.AssertErrored(t, err)
}
