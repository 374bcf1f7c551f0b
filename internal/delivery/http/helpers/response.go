package helpers

import (
	"encoding/json"
	"net/http"
)

// APIResponse is the standardized envelope for all API responses:
// {success, data?, error?, message?, count?}. On success Error is empty;
// on failure only Success and Error are set.
// swagger:model APIResponse
type APIResponse struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
	Count   *int   `json:"count,omitempty"`
}

func writeJSON(w http.ResponseWriter, statusCode int, resp APIResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

// WriteJSONData writes a success envelope carrying data.
func WriteJSONData(w http.ResponseWriter, statusCode int, data any) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data})
}

// WriteJSONDataMessage writes a success envelope carrying data and a human-readable message.
func WriteJSONDataMessage(w http.ResponseWriter, statusCode int, data any, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data, Message: message})
}

// WriteJSONList writes a success envelope carrying a collection and its count.
func WriteJSONList(w http.ResponseWriter, statusCode int, data any, count int) {
	writeJSON(w, statusCode, APIResponse{Success: true, Data: data, Count: &count})
}

// WriteJSONMessage writes a success envelope with only a message (e.g. after delete).
func WriteJSONMessage(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: true, Message: message})
}

// WriteJSONError writes a failure envelope with the given error message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, APIResponse{Success: false, Error: message})
}
