package scoring

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/minaorangina/cribbage/deck"
)

var ErrDuplicateCard = errors.New("card is already in the sequence")

// Sequence is the run of cards played since the count was last reset
type Sequence struct {
	cards []deck.Card
}

// NewSequence constructs an empty sequence
func NewSequence() *Sequence {
	return &Sequence{cards: []deck.Card{}}
}

// Add lays a card on the sequence and returns the points it earns from
// runs and multiples ending with it.
// Adding a card that is already in the sequence is an error and leaves
// the sequence unchanged.
func (s *Sequence) Add(c deck.Card) (int, error) {
	if deck.Contains(s.cards, c) {
		return 0, fmt.Errorf("%w: %s", ErrDuplicateCard, c)
	}
	s.cards = append(s.cards, c)

	return s.points(), nil
}

// Reset empties the sequence
func (s *Sequence) Reset() {
	s.cards = []deck.Card{}
}

// Len is the number of cards in the sequence
func (s *Sequence) Len() int {
	return len(s.cards)
}

// Cards returns a copy of the cards in play order
func (s *Sequence) Cards() []deck.Card {
	out := make([]deck.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

func (s *Sequence) String() string {
	names := make([]string, 0, len(s.cards))
	for _, c := range s.cards {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}

func (s *Sequence) points() int {
	return s.longestRunFromEnd() + s.multiplesFromEnd()
}

// longestRunFromEnd grows a window backwards from the newest card and keeps
// the longest window whose ranks form a run. A broken window doesn't stop
// the search, since adding more cards can complete it.
func (s *Sequence) longestRunFromEnd() int {
	if len(s.cards) < minRun {
		return 0
	}

	longest := 0
	values := make([]int, 0, len(s.cards))
	for i := len(s.cards) - 1; i >= 0; i-- {
		values = append(values, int(s.cards[i].Rank))
		if len(values) >= minRun && isSequentialAscending(values) {
			longest = len(values)
		}
	}

	return longest
}

// isSequentialAscending reports whether values, once sorted, go up by exactly one.
// A repeated value fails.
func isSequentialAscending(values []int) bool {
	sorted := make([]int, len(values))
	copy(sorted, values)
	sort.Ints(sorted)

	for i := 1; i < len(sorted); i++ {
		if sorted[i] != sorted[i-1]+1 {
			return false
		}
	}
	return true
}

func (s *Sequence) multiplesFromEnd() int {
	if len(s.cards) == 0 {
		return 0
	}

	last := s.cards[len(s.cards)-1]
	n := 1
	for i := len(s.cards) - 2; i >= 0 && s.cards[i].Rank == last.Rank; i-- {
		n++
	}

	return multiplePoints(n)
}
