package deck

import (
	"math/rand"
	"sort"
)

// Deck represents a deck of cards
type Deck []Card

// New creates a 52-card deck
func New() Deck {
	cards := make(Deck, 0, len(suitNames)*(len(rankNames)-1))
	for suit := Hearts; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(rank, suit))
		}
	}
	return cards
}

// Shuffle shuffles the deck of cards using the given source
func (d *Deck) Shuffle(r *rand.Rand) {
	actualDeck := *d
	r.Shuffle(len(actualDeck), func(i, j int) {
		actualDeck[i], actualDeck[j] = actualDeck[j], actualDeck[i]
	})
}

// Deal deals n number of cards from the deck, until it is empty
func (d *Deck) Deal(n int) []Card {
	numCardsInDeck := len(*d)
	if n < 0 || n > numCardsInDeck {
		return []Card{}
	}
	startingIndex := numCardsInDeck - n
	subSlice := make([]Card, n)
	copy(subSlice, (*d)[startingIndex:numCardsInDeck])
	*d = (*d)[:startingIndex]
	return subSlice
}

// Draw takes the top card. ok is false when the deck is empty.
func (d *Deck) Draw() (Card, bool) {
	cards := d.Deal(1)
	if len(cards) == 0 {
		return Card{}, false
	}
	return cards[0], true
}

// Contains reports whether c is among cards
func Contains(cards []Card, c Card) bool {
	return IndexOf(cards, c) != -1
}

// IndexOf finds a card by value, returning -1 if it is absent
func IndexOf(cards []Card, c Card) int {
	for i, card := range cards {
		if card == c {
			return i
		}
	}
	return -1
}

// Remove returns cards without the first card equal to c
func Remove(cards []Card, c Card) ([]Card, bool) {
	idx := IndexOf(cards, c)
	if idx == -1 {
		return cards, false
	}
	out := make([]Card, 0, len(cards)-1)
	out = append(out, cards[:idx]...)
	return append(out, cards[idx+1:]...), true
}

// Sorted returns a copy of cards ordered by rank, then suit
func Sorted(cards []Card) []Card {
	out := make([]Card, len(cards))
	copy(out, cards)
	sort.Slice(out, func(i, j int) bool {
		if out[i].Rank != out[j].Rank {
			return out[i].Rank < out[j].Rank
		}
		return out[i].Suit < out[j].Suit
	})
	return out
}
