package deck

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidCardSyntax = errors.New("invalid card syntax, enter a card as (value)(suit), e.g. 5H for the five of hearts")
	ErrOutOfRange        = errors.New("arguments out of range")
)

// Rank represents a rank in a deck of cards.
// Ranks are 1-based so that Ace counts as one.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = []string{"", "Ace", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine", "Ten", "Jack", "Queen", "King"}

var rankSymbols = []string{"", "A", "2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K"}

func (r Rank) String() string {
	if r < Ace || r > King {
		return fmt.Sprintf("Rank(%d)", int(r))
	}
	return rankNames[r]
}

// Suit represents a suit in a deck of cards
type Suit int

const (
	Hearts Suit = iota
	Spades
	Diamonds
	Clubs
)

var suitNames = []string{"Hearts", "Spades", "Diamonds", "Clubs"}

func (s Suit) String() string {
	if s < Hearts || s > Clubs {
		return fmt.Sprintf("Suit(%d)", int(s))
	}
	return suitNames[s]
}

// Card is an immutable playing card. Two cards are equal when
// their rank and suit match, so Card can be compared with == and
// used as a map key.
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard constructs a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// NewCardChecked constructs a card, rejecting ranks and suits that don't exist
func NewCardChecked(rank Rank, suit Suit) (Card, error) {
	if rank < Ace || rank > King || suit < Hearts || suit > Clubs {
		return Card{}, ErrOutOfRange
	}
	return Card{Rank: rank, Suit: suit}, nil
}

// Value is the card's worth towards fifteen and thirty-one.
// Face cards count as ten.
func (c Card) Value() int {
	if c.Rank > Ten {
		return 10
	}
	return int(c.Rank)
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// ShortString returns the card in the syntax accepted by ParseCard
func (c Card) ShortString() string {
	if c.Rank < Ace || c.Rank > King || c.Suit < Hearts || c.Suit > Clubs {
		return "??"
	}
	return rankSymbols[c.Rank] + suitNames[c.Suit][:1]
}

// MarshalText encodes a card in its short form, so cards travel as "5H" in JSON
func (c Card) MarshalText() ([]byte, error) {
	if _, err := NewCardChecked(c.Rank, c.Suit); err != nil {
		return nil, err
	}
	return []byte(c.ShortString()), nil
}

// UnmarshalText decodes a card from its short form
func (c *Card) UnmarshalText(text []byte) error {
	parsed, err := ParseCard(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseCard parses a card such as "5H", "10c" or "QS".
// The suit is the last character and the rank is everything before it.
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardSyntax, s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'H':
		suit = Hearts
	case 'S':
		suit = Spades
	case 'D':
		suit = Diamonds
	case 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardSyntax, s)
	}

	rankStr := s[:len(s)-1]
	for r := Ace; r <= King; r++ {
		if rankSymbols[r] == rankStr {
			return NewCard(r, suit), nil
		}
	}
	if rankStr == "1" {
		return NewCard(Ace, suit), nil
	}

	return Card{}, fmt.Errorf("%w: %q", ErrInvalidCardSyntax, s)
}

// ParseCards parses a list of cards, failing on the first bad one
func ParseCards(ss []string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}
