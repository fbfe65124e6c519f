package game

import (
	"fmt"
	"strings"

	"github.com/minaorangina/cribbage/deck"
)

func joinLines(lines ...string) string {
	out := []string{}
	for _, l := range lines {
		if l != "" {
			out = append(out, l)
		}
	}
	return strings.Join(out, "\n")
}

func teamPoints(t *Team) string {
	return fmt.Sprintf("(%s: %d)", t, t.Points())
}

func buildThrowMessage(name string, remaining int) string {
	return fmt.Sprintf("%s threw to the kitty. %d more cards needed.", name, remaining)
}

func buildCutMessage(cut deck.Card, leader string) string {
	return fmt.Sprintf("The cut is the %s. %s leads.", cut, leader)
}

func buildHeelsMessage(dealer string, t *Team) string {
	return fmt.Sprintf("%s gets 2 for his heels %s", dealer, teamPoints(t))
}

func buildPlayMessage(name string, c deck.Card, points int, t *Team) string {
	if points == 0 {
		return fmt.Sprintf("%s played the %s.", name, c)
	}
	return fmt.Sprintf("%s played the %s for %d %s", name, c, points, teamPoints(t))
}

func buildPegMessage(name string, points, count int, t *Team) string {
	return fmt.Sprintf("%s pegged %d at %d %s", name, points, count, teamPoints(t))
}

func buildCountMessage(count int, next string) string {
	return fmt.Sprintf("The count is %d. You're up %s.", count, next)
}

func buildLegOverMessage(next string) string {
	return fmt.Sprintf("The count is back at 0. You're up %s.", next)
}

func buildGoMessage(name, next string) string {
	return fmt.Sprintf("%s says go. You're up %s.", name, next)
}

func buildGoPointMessage(name string, t *Team) string {
	return fmt.Sprintf("%s gets a point for a go %s", name, teamPoints(t))
}

func buildShowMessage(counts []HandCount) string {
	lines := []string{}
	for _, hc := range counts {
		whose := hc.Player
		if hc.Kitty {
			whose += "'s kitty"
		}
		lines = append(lines, fmt.Sprintf("%s: %s = %d", whose, cardList(hc.Hand), hc.Score.Total))
	}
	return strings.Join(lines, "\n")
}

func buildNextRoundMessage(dealer string) string {
	return fmt.Sprintf("Round over. %s deals the next round.", dealer)
}

func buildGameOverMessage(winner *Team) string {
	if winner == nil {
		return "Game over!"
	}
	return fmt.Sprintf("Game over! %s won with %d points.", winner, winner.Points())
}

func cardList(cards []deck.Card) string {
	short := make([]string, 0, len(cards))
	for _, c := range cards {
		short = append(short, c.ShortString())
	}
	return strings.Join(short, " ")
}
