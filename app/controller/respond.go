package controller

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("❌ writeJSON: Error encoding response: %v", err)
	}
}

// writeJSONError writes a short machine-readable error message. Detailed
// diagnostics stay in server-side logs.
func writeJSONError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// readLimitedBody reads at most limit bytes of the request body
func readLimitedBody(r *http.Request, limit int64) ([]byte, error) {
	defer r.Body.Close()
	return io.ReadAll(io.LimitReader(r.Body, limit))
}
