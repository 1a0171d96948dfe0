package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

const (
	contentTypeJSON  = "application/json"
	contentTypePlain = "text/plain; charset=utf-8"
)

// WriteJSON marshals data and sends it as an application/json body with
// statusCode. When data cannot be marshaled nothing but a plain 500 is sent
// and the marshaling error is returned.
//
//	utils.WriteJSON(w, verdict, verdict.StatusCode)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	body, err := json.Marshal(data)
	if err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return 0, fmt.Errorf("encoding response body: %w", err)
	}

	return writeBody(w, contentTypeJSON, body, statusCode)
}

// WritePlainText sends text as a text/plain body with statusCode.
func WritePlainText(w http.ResponseWriter, text string, statusCode int) (int, error) {
	return writeBody(w, contentTypePlain, []byte(text), statusCode)
}

func writeBody(w http.ResponseWriter, contentType string, body []byte, statusCode int) (int, error) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)

	return w.Write(body)
}
