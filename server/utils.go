package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/minaorangina/cribbage/protocol"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	bytes, err := json.Marshal(payload)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(bytes)
}

func writeText(w http.ResponseWriter, status int, text string) {
	w.Header().Add("Content-Type", "text/plain")
	w.WriteHeader(status)
	w.Write([]byte(text))
}

// writeOutbound sends rejected commands back as 422s
func writeOutbound(w http.ResponseWriter, out protocol.OutboundMessage) {
	status := http.StatusOK
	if out.Command == protocol.Error {
		status = http.StatusUnprocessableEntity
	}
	writeJSON(w, status, out)
}

func writeParseError(log *slog.Logger, err error, w http.ResponseWriter) {
	if errors.Is(err, io.EOF) {
		writeText(w, http.StatusBadRequest, "Missing body")
		return
	}

	log.Warn("could not parse request", "err", err)
	writeText(w, http.StatusBadRequest, err.Error())
}
