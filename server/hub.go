package server

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/minaorangina/cribbage/protocol"
	"github.com/minaorangina/cribbage/table"
)

type inbound struct {
	from *conn
	msg  protocol.InboundMessage
	err  error
}

// hub fans a table's outcomes out to its websocket connections.
// Only run touches conns.
type hub struct {
	table      *table.Table
	log        *slog.Logger
	conns      map[*conn]bool
	register   chan *conn
	unregister chan *conn
	incoming   chan inbound
	broadcast  chan protocol.OutboundMessage
	done       chan struct{}
	stopOnce   sync.Once
}

func newHub(tbl *table.Table, log *slog.Logger) *hub {
	return &hub{
		table:      tbl,
		log:        log.With("table", tbl.ID),
		conns:      map[*conn]bool{},
		register:   make(chan *conn),
		unregister: make(chan *conn),
		incoming:   make(chan inbound),
		broadcast:  make(chan protocol.OutboundMessage, 16),
		done:       make(chan struct{}),
	}
}

func (h *hub) run() {
	for {
		select {
		case c := <-h.register:
			h.conns[c] = true
			h.log.Info("connection registered", "conn", c.id, "conns", len(h.conns))

		case c := <-h.unregister:
			h.drop(c)

		case in := <-h.incoming:
			if in.err != nil {
				h.send(in.from, protocol.OutboundMessage{
					TableID: h.table.ID,
					Command: protocol.Error,
					Error:   in.err.Error(),
				})
				continue
			}
			out := h.table.Handle(in.msg)
			if private(out.Command) {
				h.send(in.from, out)
				continue
			}
			h.sendAll(out)

		case out := <-h.broadcast:
			h.sendAll(out)

		case <-h.done:
			for c := range h.conns {
				h.drop(c)
			}
			return
		}
	}
}

// add registers a connection unless the hub has stopped
func (h *hub) add(c *conn) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// publish queues an outcome produced outside the hub
func (h *hub) publish(out protocol.OutboundMessage) {
	select {
	case h.broadcast <- out:
	case <-h.done:
	}
}

func (h *hub) stop() {
	h.stopOnce.Do(func() { close(h.done) })
}

func (h *hub) sendAll(out protocol.OutboundMessage) {
	for c := range h.conns {
		h.send(c, out)
	}
}

// send drops connections that can't keep up
func (h *hub) send(c *conn, out protocol.OutboundMessage) {
	if !h.conns[c] {
		return
	}
	data, err := json.Marshal(out)
	if err != nil {
		h.log.Error("could not encode message", "err", err)
		return
	}

	select {
	case c.send <- data:
	default:
		h.log.Warn("connection too slow, dropping", "conn", c.id)
		h.drop(c)
	}
}

func (h *hub) drop(c *conn) {
	if !h.conns[c] {
		return
	}
	delete(h.conns, c)
	close(c.send)
	h.log.Info("connection unregistered", "conn", c.id, "conns", len(h.conns))
}

// private outcomes only go back to whoever asked
func private(cmd protocol.Cmd) bool {
	switch cmd {
	case protocol.Error, protocol.Hand, protocol.Describe:
		return true
	}
	return false
}
