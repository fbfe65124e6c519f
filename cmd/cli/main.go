package main

import (
	"log/slog"
	"math/rand"
	"os"
	"strings"

	"github.com/minaorangina/cribbage/config"
	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/game"
	"github.com/minaorangina/cribbage/protocol"
	"github.com/minaorangina/cribbage/table"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	level, _ := cfg.Level()
	if level <= slog.LevelDebug {
		pterm.DefaultLogger.Level = pterm.LogLevelDebug
	} else {
		pterm.DefaultLogger.Level = pterm.LogLevelWarn
	}
	logger := slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger))

	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Seed))
	}
	tbl := table.New(table.TableOpts{Rand: rng, Logger: logger})

	pterm.DefaultHeader.Println("Cribbage")
	seatPlayers(tbl)

	out := tbl.Handle(protocol.InboundMessage{Command: protocol.Begin})
	if out.Command == protocol.Error {
		pterm.Error.Println(out.Error)
		os.Exit(1)
	}

	for {
		d := tbl.Describe()
		switch d.Stage {
		case game.Discarding.String():
			throwToKitty(tbl, d)
		case game.Playing.String():
			playTurn(tbl, d)
		case game.Finished.String():
			pterm.DefaultTable.WithHasHeader().WithData(scoreTableData(d)).Render()
			pterm.Success.Printfln("%s won!", strings.Join(d.Winner, " and "))
			return
		}
	}
}

func seatPlayers(tbl *table.Table) {
	for {
		name, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(addPlayerText).Show()
		name = strings.TrimSpace(name)
		if name == "done" {
			if n := len(tbl.Describe().Players); n >= 2 && n <= 6 && n != 5 {
				return
			}
			pterm.Warning.Println("Seat 2, 3, 4 or 6 players")
			continue
		}
		if name == "" {
			continue
		}

		out := tbl.Handle(protocol.InboundMessage{Player: name, Command: protocol.Join})
		if out.Command == protocol.Error {
			pterm.Error.Println(out.Error)
			continue
		}
		pterm.Info.Println(out.Message)
	}
}

// throwToKitty asks every player in turn for their discards until the
// cut is turned
func throwToKitty(tbl *table.Table, d game.Description) {
	pterm.DefaultSection.Printfln("%s deals", d.Dealer)
	pterm.DefaultTable.WithHasHeader().WithData(scoreTableData(d)).Render()

	for _, name := range d.Players {
		for {
			hand := tbl.Handle(protocol.InboundMessage{Player: name, Command: protocol.Hand}).Hand
			if len(hand) == 0 {
				break
			}
			pterm.Info.Printfln("%s's hand: %s", name, cardNames(hand))

			input, _ := pterm.DefaultInteractiveTextInput.WithDefaultText(throwPrompt(name, len(d.Players))).Show()
			cards, err := parseThrow(input)
			if err != nil {
				pterm.Error.Println(err)
				continue
			}

			out := tbl.Handle(protocol.InboundMessage{Player: name, Command: protocol.Throw, Cards: cards})
			if out.Command == protocol.Error {
				if out.Error == game.ErrInvalidThrower.Error() {
					break
				}
				pterm.Error.Println(out.Error)
				continue
			}
			pterm.Info.Println(out.Message)
			break
		}
	}
}

func playTurn(tbl *table.Table, d game.Description) {
	pterm.DefaultBox.WithTitle("Table").Println(tableSummary(d))

	name := d.NextPlayer
	hand := tbl.Handle(protocol.InboundMessage{Player: name, Command: protocol.Hand}).Hand
	choice, _ := pterm.DefaultInteractiveSelect.
		WithDefaultText(name + ", play a card or say go").
		WithOptions(playOptions(hand)).
		Show()

	msg := protocol.InboundMessage{Player: name, Command: protocol.Go}
	if choice != goOption {
		c, err := optionCard(choice)
		if err != nil {
			pterm.Error.Println(err)
			return
		}
		msg = protocol.InboundMessage{Player: name, Command: protocol.Play, Cards: []deck.Card{c}}
	}

	out := tbl.Handle(msg)
	if out.Command == protocol.Error {
		pterm.Error.Println(out.Error)
		return
	}
	pterm.Println(out.Message)
	if out.Result != nil && out.Result.RoundOver && out.Description != nil {
		pterm.DefaultTable.WithHasHeader().WithData(scoreTableData(*out.Description)).Render()
	}
}
