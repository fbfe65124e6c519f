package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/game"
	"github.com/pterm/pterm"
)

const (
	goOption      = "Go"
	addPlayerText = "Enter a player's name. When everyone is seated, type done"
	throwText     = "%s, choose %s for the kitty (e.g. 5H 10C)"
)

func parseThrow(input string) ([]deck.Card, error) {
	return deck.ParseCards(strings.Fields(input))
}

// playOptions lists a hand as select options, then go
func playOptions(hand []deck.Card) []string {
	options := make([]string, 0, len(hand)+1)
	for _, c := range hand {
		options = append(options, fmt.Sprintf("%s (%s)", c.ShortString(), c))
	}
	return append(options, goOption)
}

// optionCard recovers the card from a play option
func optionCard(option string) (deck.Card, error) {
	short, _, _ := strings.Cut(option, " ")
	return deck.ParseCard(short)
}

func throwPrompt(name string, numPlayers int) string {
	cards := "one card"
	if numPlayers == 2 {
		cards = "two cards"
	}
	return fmt.Sprintf(throwText, name, cards)
}

func scoreTableData(d game.Description) pterm.TableData {
	data := pterm.TableData{{"Team", "Players", "Points"}}
	for _, s := range d.Scores {
		data = append(data, []string{strconv.Itoa(s.ID), strings.Join(s.Players, ", "), strconv.Itoa(s.Points)})
	}
	return data
}

func tableSummary(d game.Description) string {
	cut := "not turned"
	if d.Cut != nil {
		cut = d.Cut.String()
	}

	sequence := make([]string, 0, len(d.Sequence))
	for _, c := range d.Sequence {
		sequence = append(sequence, c.ShortString())
	}

	return fmt.Sprintf("Dealer: %s\nCut: %s\nCount: %d\nSequence: %s",
		d.Dealer, cut, d.Count, strings.Join(sequence, " "))
}

func cardNames(cards []deck.Card) string {
	short := make([]string, 0, len(cards))
	for _, c := range cards {
		short = append(short, c.ShortString())
	}
	return strings.Join(short, " ")
}
