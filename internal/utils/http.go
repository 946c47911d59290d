package utils

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/skillvance-api/models"
)

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// WriteSuccess writes a successful {success, message, data} envelope.
// data is omitted from the body when nil.
func WriteSuccess(w http.ResponseWriter, statusCode int, message string, data any) (int, error) {
	return WriteJSON(w, models.Response{Success: true, Message: message, Data: data}, statusCode)
}

// WriteFailure writes a failed {success, message} envelope.
func WriteFailure(w http.ResponseWriter, statusCode int, message string) (int, error) {
	return WriteJSON(w, models.Response{Success: false, Message: message}, statusCode)
}
