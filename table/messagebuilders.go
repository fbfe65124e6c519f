package table

import (
	"github.com/minaorangina/cribbage/game"
	"github.com/minaorangina/cribbage/protocol"
)

func (t *Table) buildDescribedMessage(message string) (protocol.OutboundMessage, error) {
	d := t.game.Describe()
	return protocol.OutboundMessage{
		Message:     message,
		Description: &d,
	}, nil
}

func (t *Table) buildResultMessage(res game.Result) protocol.OutboundMessage {
	d := t.game.Describe()
	if res.GameOver {
		t.log.Info("game over", "winner", d.Winner)
	} else if res.RoundOver {
		t.log.Info("round over", "dealer", d.Dealer)
	}

	return protocol.OutboundMessage{
		Message:     res.Message,
		Result:      &res,
		Description: &d,
	}
}

func (t *Table) buildErrorMessage(player string, err error) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		TableID: t.ID,
		Player:  player,
		Command: protocol.Error,
		Error:   err.Error(),
	}
}
