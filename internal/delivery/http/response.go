package http

import (
	"encoding/json"
	"net/http"
)

// MessageResponse is the response envelope for the reservation endpoint.
// Both success and failure carry only a human-readable message; malformed
// input and transport failure are deliberately not distinguished at the
// boundary (see DESIGN.md).
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

// WriteMessage sets Content-Type to application/json, writes statusCode, and
// encodes a MessageResponse with the given message.
func WriteMessage(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(MessageResponse{Message: message})
}

// WriteJSON sets Content-Type to application/json, writes statusCode, and
// encodes data as-is.
func WriteJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}
