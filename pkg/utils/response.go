package utils

import (
	"encoding/json"
	"log"
	"net/http"
)

// RespondJSON writes payload as JSON with the given status.
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// RespondError writes {"error": message}.
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, map[string]string{"error": message})
}

// RespondText writes a plain text body.
func RespondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(body)); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}

// RespondEmpty writes only the status line.
func RespondEmpty(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}
