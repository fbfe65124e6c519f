package protocol

import (
	"errors"
	"fmt"

	"github.com/minaorangina/cribbage/deck"
	"github.com/minaorangina/cribbage/game"
)

var ErrUnknownCmd = errors.New("unknown command")

// InboundMessage is a message from a player to the table
type InboundMessage struct {
	Player  string      `json:"player"`
	Command Cmd         `json:"command"`
	Cards   []deck.Card `json:"cards,omitempty"`
}

// OutboundMessage is a message from the table to players
type OutboundMessage struct {
	TableID     string            `json:"tableID"`
	Player      string            `json:"player,omitempty"`
	Command     Cmd               `json:"command"`
	Message     string            `json:"message,omitempty"`
	Hand        []deck.Card       `json:"hand,omitempty"`
	Result      *game.Result      `json:"result,omitempty"`
	Description *game.Description `json:"description,omitempty"`
	Error       string            `json:"error,omitempty"`
}

type Cmd int

const (
	Null Cmd = iota
	Join
	Begin
	Deal
	Throw
	Play
	Go
	Describe
	Hand
	Error
)

var CmdNames = map[Cmd]string{
	Null:     "Null",
	Join:     "Join",
	Begin:    "Begin",
	Deal:     "Deal",
	Throw:    "Throw",
	Play:     "Play",
	Go:       "Go",
	Describe: "Describe",
	Hand:     "Hand",
	Error:    "Error",
}

var NameToCmd = map[string]Cmd{
	"Null":     Null,
	"Join":     Join,
	"Begin":    Begin,
	"Deal":     Deal,
	"Throw":    Throw,
	"Play":     Play,
	"Go":       Go,
	"Describe": Describe,
	"Hand":     Hand,
	"Error":    Error,
}

func (c Cmd) String() string {
	return CmdNames[c]
}

// MarshalText sends commands by name
func (c Cmd) MarshalText() ([]byte, error) {
	name, ok := CmdNames[c]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownCmd, int(c))
	}
	return []byte(name), nil
}

func (c *Cmd) UnmarshalText(text []byte) error {
	cmd, ok := NameToCmd[string(text)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCmd, text)
	}
	*c = cmd
	return nil
}
