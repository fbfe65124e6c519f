// Package table hosts one cribbage game for remote players, serialising
// every command against it.
package table

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/minaorangina/cribbage/game"
	"github.com/minaorangina/cribbage/protocol"
	uuid "github.com/satori/go.uuid"
)

var (
	ErrMissingPlayer = errors.New("missing player name")
	ErrMissingCard   = errors.New("choose exactly one card to play")
	ErrUnhandledCmd  = errors.New("command can't be sent to a table")
)

// Table wraps a game with the lock it needs to be shared
type Table struct {
	ID   string
	mu   sync.Mutex
	game *game.Game
	log  *slog.Logger
}

// TableOpts configures a new table
type TableOpts struct {
	ID     string
	Rand   *rand.Rand
	Logger *slog.Logger
}

// NewID generates a table or connection ID
func NewID() string {
	return uuid.NewV4().String()
}

// New sets up an empty table
func New(opts TableOpts) *Table {
	id := opts.ID
	if id == "" {
		id = NewID()
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	// NewGame only fails on duplicate players
	g, _ := game.NewGame(game.GameOpts{Rand: opts.Rand})

	return &Table{
		ID:   id,
		game: g,
		log:  logger.With("table", id),
	}
}

// Handle applies one command and reports the outcome
func (t *Table) Handle(msg protocol.InboundMessage) protocol.OutboundMessage {
	t.mu.Lock()
	defer t.mu.Unlock()

	out, err := t.dispatch(msg)
	if err != nil {
		t.log.Warn("command rejected", "player", msg.Player, "command", msg.Command, "err", err)
		return t.buildErrorMessage(msg.Player, err)
	}

	t.log.Info("command applied", "player", msg.Player, "command", msg.Command)
	out.TableID = t.ID
	out.Player = msg.Player
	out.Command = msg.Command
	return out
}

func (t *Table) dispatch(msg protocol.InboundMessage) (protocol.OutboundMessage, error) {
	switch msg.Command {
	case protocol.Describe:
		d := t.game.Describe()
		return protocol.OutboundMessage{Description: &d}, nil

	case protocol.Begin:
		if err := t.game.Begin(); err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildDescribedMessage("The game has begun.")

	case protocol.Deal:
		if err := t.game.Deal(); err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildDescribedMessage("The cards have been dealt again.")
	}

	if msg.Player == "" {
		return protocol.OutboundMessage{}, ErrMissingPlayer
	}

	switch msg.Command {
	case protocol.Join:
		if err := t.game.AddPlayer(msg.Player); err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildDescribedMessage(msg.Player + " joined the table.")

	case protocol.Hand:
		hand, err := t.game.PlayerHand(msg.Player)
		if err != nil {
			return protocol.OutboundMessage{}, err
		}
		return protocol.OutboundMessage{Hand: hand}, nil

	case protocol.Throw:
		res, err := t.game.GiveToKitty(msg.Player, msg.Cards)
		if err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildResultMessage(res), nil

	case protocol.Play:
		if len(msg.Cards) != 1 {
			return protocol.OutboundMessage{}, ErrMissingCard
		}
		res, err := t.game.PlayCard(msg.Player, msg.Cards[0])
		if err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildResultMessage(res), nil

	case protocol.Go:
		res, err := t.game.Go(msg.Player)
		if err != nil {
			return protocol.OutboundMessage{}, err
		}
		return t.buildResultMessage(res), nil
	}

	return protocol.OutboundMessage{}, ErrUnhandledCmd
}

// Describe snapshots the table's game
func (t *Table) Describe() game.Description {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.game.Describe()
}
