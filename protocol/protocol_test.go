package protocol

import (
	"encoding/json"
	"testing"

	"github.com/minaorangina/cribbage/deck"
	utils "github.com/minaorangina/cribbage/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCmdNames(t *testing.T) {
	for cmd, name := range CmdNames {
		utils.AssertEqual(t, cmd.String(), name)
		utils.AssertEqual(t, NameToCmd[name], cmd)
	}
	utils.AssertEqual(t, len(CmdNames), len(NameToCmd))
}

func TestInboundMessageJSON(t *testing.T) {
	t.Run("decodes commands and cards by name", func(t *testing.T) {
		var msg InboundMessage
		err := json.Unmarshal([]byte(`{"player":"Alice","command":"Throw","cards":["5H","10C"]}`), &msg)
		require.NoError(t, err)

		utils.AssertEqual(t, msg.Player, "Alice")
		utils.AssertEqual(t, msg.Command, Throw)
		utils.AssertDeepEqual(t, msg.Cards, []deck.Card{
			deck.NewCard(deck.Five, deck.Hearts),
			deck.NewCard(deck.Ten, deck.Clubs),
		})
	})

	t.Run("rejects unknown commands", func(t *testing.T) {
		var msg InboundMessage
		err := json.Unmarshal([]byte(`{"player":"Alice","command":"Shuffle"}`), &msg)
		assert.ErrorIs(t, err, ErrUnknownCmd)
	})

	t.Run("rejects bad cards", func(t *testing.T) {
		var msg InboundMessage
		err := json.Unmarshal([]byte(`{"player":"Alice","command":"Play","cards":["ZZ"]}`), &msg)
		assert.ErrorIs(t, err, deck.ErrInvalidCardSyntax)
	})
}

func TestOutboundMessageJSON(t *testing.T) {
	b, err := json.Marshal(OutboundMessage{TableID: "t1", Command: Error, Error: "nope"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tableID":"t1","command":"Error","error":"nope"}`, string(b))
}
