package utils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name       string
		data       any
		statusCode int
		wantBody   string
	}{
		{
			name:       "verdict shaped body",
			data:       map[string]any{"valid": true, "data": map[string]string{"id": "X"}},
			statusCode: http.StatusOK,
			wantBody:   `{"data":{"id":"X"},"valid":true}`,
		},
		{
			name:       "message only",
			data:       map[string]string{"message": "Card number is required."},
			statusCode: http.StatusBadRequest,
			wantBody:   `{"message":"Card number is required."}`,
		},
		{
			name:       "nil",
			data:       nil,
			statusCode: http.StatusOK,
			wantBody:   `null`,
		},
		{
			name:       "empty struct",
			data:       struct{}{},
			statusCode: http.StatusNotFound,
			wantBody:   `{}`,
		},
		{
			name: "raw message passes through",
			data: struct {
				Error json.RawMessage `json:"error"`
			}{Error: json.RawMessage(`{"code":"E1","nested":[1,2]}`)},
			statusCode: http.StatusBadGateway,
			wantBody:   `{"error":{"code":"E1","nested":[1,2]}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			n, err := WriteJSON(w, tt.data, tt.statusCode)

			require.NoError(t, err)
			assert.Equal(t, len(tt.wantBody), n)
			assert.Equal(t, tt.statusCode, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Equal(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestWriteJSON_UnmarshalableData(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WriteJSON(w, make(chan int), http.StatusOK)

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEqual(t, "application/json", w.Header().Get("Content-Type"))
}

func TestWritePlainText(t *testing.T) {
	w := httptest.NewRecorder()

	n, err := WritePlainText(w, "NFC Auth Backend Server is running!", http.StatusOK)

	require.NoError(t, err)
	assert.Equal(t, len("NFC Auth Backend Server is running!"), n)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "NFC Auth Backend Server is running!", w.Body.String())
}
