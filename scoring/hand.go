// Package scoring counts cribbage points for a hand at the show and for
// cards laid down one at a time during play.
package scoring

import (
	"sort"

	"github.com/minaorangina/cribbage/deck"
)

const (
	fifteen     = 15
	pointsPer15 = 2
	minRun      = 3
	minFlush    = 4
	nobsPoints  = 1
)

// Breakdown is the points a hand scores, by category
type Breakdown struct {
	Fifteens int `json:"fifteens"`
	Pairs    int `json:"pairs"`
	Runs     int `json:"runs"`
	Flush    int `json:"flush"`
	Nobs     int `json:"nobs"`
	Total    int `json:"total"`
}

// ScoreHand counts a hand together with the cut card.
// When crib is true a flush only counts if the cut card matches too.
// The hand is not modified.
func ScoreHand(hand []deck.Card, cut deck.Card, crib bool) Breakdown {
	all := make([]deck.Card, 0, len(hand)+1)
	all = append(all, hand...)
	all = append(all, cut)

	b := Breakdown{
		Fifteens: countFifteens(all, 0, 0),
		Pairs:    countPairs(all),
		Runs:     countRuns(all),
		Flush:    countFlush(hand, cut, crib),
		Nobs:     countNobs(hand, cut),
	}
	b.Total = b.Fifteens + b.Pairs + b.Runs + b.Flush + b.Nobs

	return b
}

// countFifteens adds two points for every distinct subset of cards[start:]
// which, together with total, sums to fifteen.
func countFifteens(cards []deck.Card, start, total int) int {
	points := 0
	for i := start; i < len(cards); i++ {
		subtotal := total + cards[i].Value()
		switch {
		case subtotal == fifteen:
			points += pointsPer15
		case subtotal < fifteen:
			points += countFifteens(cards, i+1, subtotal)
		}
	}
	return points
}

// multiplePoints is two points for every pair that can be made from n cards of a kind
func multiplePoints(n int) int {
	return n * (n - 1)
}

func rankCounts(cards []deck.Card) map[deck.Rank]int {
	counts := map[deck.Rank]int{}
	for _, c := range cards {
		counts[c.Rank]++
	}
	return counts
}

func countPairs(cards []deck.Card) int {
	points := 0
	for _, n := range rankCounts(cards) {
		points += multiplePoints(n)
	}
	return points
}

// countRuns finds the longest run among the distinct ranks, then scores one
// run for every way the duplicated ranks can stand in for each other.
func countRuns(cards []deck.Card) int {
	counts := rankCounts(cards)

	ranks := make([]int, 0, len(counts))
	for r := range counts {
		ranks = append(ranks, int(r))
	}
	sort.Ints(ranks)

	start, length := longestRun(ranks)
	if length < minRun {
		return 0
	}

	numRuns := 1
	for _, r := range ranks[start : start+length] {
		numRuns *= counts[deck.Rank(r)]
	}

	return length * numRuns
}

// longestRun scans every window of sorted, distinct values and returns
// the start index and length of the longest one that increases by one.
func longestRun(values []int) (start, length int) {
	for i := range values {
		j := i + 1
		for j < len(values) && values[j] == values[j-1]+1 {
			j++
		}
		if j-i > length {
			start, length = i, j-i
		}
	}
	return start, length
}

func maxSuitCount(cards []deck.Card) int {
	counts := map[deck.Suit]int{}
	most := 0
	for _, c := range cards {
		counts[c.Suit]++
		if counts[c.Suit] > most {
			most = counts[c.Suit]
		}
	}
	return most
}

func countFlush(hand []deck.Card, cut deck.Card, crib bool) int {
	if len(hand) < minFlush {
		return 0
	}
	all := append(append([]deck.Card{}, hand...), cut)
	if n := maxSuitCount(all); n == len(all) {
		return n
	}
	if crib {
		return 0
	}
	if n := maxSuitCount(hand); n >= minFlush {
		return n
	}
	return 0
}

// countNobs scores the jack of the cut card's suit. A jack cut is scored
// by the dealer at the cut instead.
func countNobs(hand []deck.Card, cut deck.Card) int {
	if cut.Rank == deck.Jack {
		return 0
	}
	if deck.Contains(hand, deck.NewCard(deck.Jack, cut.Suit)) {
		return nobsPoints
	}
	return 0
}
