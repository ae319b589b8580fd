package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// previewRetry is the reconnect delay suggested to preview clients.
const previewRetry = 2 * time.Second

// SSEWriter writes Server-Sent Events. Every event carries an increasing id
// so a client can tell a fresh render from a replay after reconnecting.
type SSEWriter struct {
	w       http.ResponseWriter
	flusher http.Flusher
	seq     int
}

// NewSSEWriter sets the stream headers and sends the retry hint. It fails
// if w cannot flush.
func NewSSEWriter(w http.ResponseWriter) (*SSEWriter, error) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		return nil, fmt.Errorf("streaming not supported")
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
	w.WriteHeader(http.StatusOK)

	if _, err := fmt.Fprintf(w, "retry: %d\n\n", previewRetry.Milliseconds()); err != nil {
		return nil, err
	}
	flusher.Flush()
	return &SSEWriter{w: w, flusher: flusher}, nil
}

// WriteEvent sends data as JSON under the given event name.
func (s *SSEWriter) WriteEvent(event string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	s.seq++
	if _, err := fmt.Fprintf(s.w, "id: %d\nevent: %s\ndata: %s\n\n", s.seq, event, payload); err != nil {
		return err
	}
	s.flusher.Flush()
	return nil
}

// WriteError sends an "error" event. The stream stays open.
func (s *SSEWriter) WriteError(err error) error {
	return s.WriteEvent("error", map[string]string{"error": err.Error()})
}
