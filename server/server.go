package server

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/handlers"
	"github.com/gorilla/websocket"
	"github.com/minaorangina/cribbage/protocol"
	"github.com/minaorangina/cribbage/table"
)

// GameServer hosts one cribbage table over HTTP and websockets
type GameServer struct {
	table   *table.Table
	hub     *hub
	log     *slog.Logger
	upgrade websocket.Upgrader
	http.Server
}

// ServerOpts configures a GameServer
type ServerOpts struct {
	Addr           string
	Table          *table.Table
	Logger         *slog.Logger
	AccessLog      io.Writer
	AllowedOrigins []string
}

// NewServer creates a new GameServer and starts the table's hub
func NewServer(opts ServerOpts) *GameServer {
	s := &GameServer{
		table: opts.Table,
		log:   opts.Logger,
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	if s.table == nil {
		s.table = table.New(table.TableOpts{Logger: s.log})
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	s.upgrade = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			return originAllowed(origins, r.Header.Get("Origin"))
		},
	}

	router := http.NewServeMux()
	router.HandleFunc("GET /describe", s.HandleDescribe)
	router.HandleFunc("GET /hand", s.HandleHand)
	router.HandleFunc("POST /command", s.HandleCommand)
	router.HandleFunc("GET /ws", s.HandleWS)

	accessLog := opts.AccessLog
	if accessLog == nil {
		accessLog = io.Discard
	}

	var handler http.Handler = router
	handler = handlers.CORS(
		handlers.AllowedOrigins(origins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost}),
		handlers.AllowedHeaders([]string{"Content-Type"}),
	)(handler)
	handler = handlers.LoggingHandler(accessLog, handler)
	handler = handlers.RecoveryHandler(handlers.RecoveryLogger(slogRecoveryLogger{s.log}))(handler)

	s.Addr = opts.Addr
	s.Handler = handler

	s.hub = newHub(s.table, s.log)
	go s.hub.run()

	return s
}

// ServeHTTP serves http
func (s *GameServer) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Handler.ServeHTTP(w, r)
}

// HandleDescribe returns a snapshot of the game
func (s *GameServer) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.table.Describe())
}

// HandleHand returns the hand of the player named in the query
func (s *GameServer) HandleHand(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if name == "" {
		writeText(w, http.StatusBadRequest, "missing player name")
		return
	}

	out := s.table.Handle(protocol.InboundMessage{Player: name, Command: protocol.Hand})
	writeOutbound(w, out)
}

// HandleCommand applies an inbound message and broadcasts the outcome to
// the websocket connections
func (s *GameServer) HandleCommand(w http.ResponseWriter, r *http.Request) {
	var msg protocol.InboundMessage
	err := json.NewDecoder(r.Body).Decode(&msg)
	defer r.Body.Close()
	if err != nil {
		writeParseError(s.log, err, w)
		return
	}

	out := s.table.Handle(msg)
	if !private(out.Command) {
		s.hub.publish(out)
	}
	writeOutbound(w, out)
}

// HandleWS upgrades to a websocket which takes inbound messages and
// receives every outcome at the table
func (s *GameServer) HandleWS(w http.ResponseWriter, r *http.Request) {
	rawConn, err := s.upgrade.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("could not upgrade to websocket", "err", err)
		return
	}

	c := newConn(rawConn, s.hub, s.log)
	if !s.hub.add(c) {
		rawConn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// Close stops the hub and the HTTP server
func (s *GameServer) Close() error {
	s.hub.stop()
	return s.Server.Close()
}

func originAllowed(allowed []string, origin string) bool {
	if origin == "" {
		return true
	}
	for _, a := range allowed {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}

type slogRecoveryLogger struct {
	log *slog.Logger
}

func (l slogRecoveryLogger) Println(v ...interface{}) {
	l.log.Error("recovered from panic", "panic", v)
}
