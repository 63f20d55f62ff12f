// Package response writes the JSON envelope every API reply uses.
package response

import (
	"encoding/json"
	"net/http"
)

// Envelope is the uniform response body: {success, message?, data?,
// error?, errors?}.
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// Success writes a success envelope with the given status code.
func Success(w http.ResponseWriter, data interface{}, message string, statusCode int) {
	write(w, statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes an error envelope with the given status code.
func Error(w http.ResponseWriter, message string, statusCode int) {
	write(w, statusCode, Envelope{
		Success: false,
		Error:   message,
	})
}

// ValidationError writes a 400 envelope carrying structured detail,
// e.g. the list of missing fields.
func ValidationError(w http.ResponseWriter, message string, errors interface{}) {
	write(w, http.StatusBadRequest, Envelope{
		Success: false,
		Error:   message,
		Errors:  errors,
	})
}

// ErrorWithDetail writes an error envelope carrying structured detail.
func ErrorWithDetail(w http.ResponseWriter, message string, statusCode int, errors interface{}) {
	write(w, statusCode, Envelope{
		Success: false,
		Error:   message,
		Errors:  errors,
	})
}

func write(w http.ResponseWriter, statusCode int, body Envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(body)
}
