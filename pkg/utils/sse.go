package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// SetupSSEHeaders prepares w for a Server-Sent Events stream.
func SetupSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Accel-Buffering", "no")
}

// SendSSEEvent writes one named event and flushes it.
func SendSSEEvent(w http.ResponseWriter, flusher http.Flusher, event string, data interface{}) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("marshal sse event: %w", err)
	}

	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, payload); err != nil {
		return fmt.Errorf("write sse event: %w", err)
	}
	flusher.Flush()
	return nil
}

// SendSSEComment writes a comment line, used as a keep-alive.
func SendSSEComment(w http.ResponseWriter, flusher http.Flusher, comment string) error {
	if _, err := fmt.Fprintf(w, ": %s\n\n", comment); err != nil {
		return fmt.Errorf("write sse comment: %w", err)
	}
	flusher.Flush()
	return nil
}
