package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondHelpers(t *testing.T) {
	tests := []struct {
		name       string
		respond    func(w http.ResponseWriter)
		wantStatus int
		wantMsg    string
	}{
		{name: "bad request", respond: func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, wantStatus: http.StatusBadRequest, wantMsg: "bad"},
		{name: "not found", respond: func(w http.ResponseWriter) { RespondNotFound(w, "gone") }, wantStatus: http.StatusNotFound, wantMsg: "gone"},
		{name: "internal", respond: RespondInternalError, wantStatus: http.StatusInternalServerError, wantMsg: msgInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantMsg, body.Message)
		})
	}
}

func TestDecodeJSON(t *testing.T) {
	type payload struct {
		Lat float64 `json:"lat"`
	}

	var ok payload
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"lat": 1.5}`))
	require.NoError(t, DecodeJSON(req, &ok))
	assert.Equal(t, 1.5, ok.Lat)

	var bad payload
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"lat": 1.5, "x": 1}`))
	assert.Error(t, DecodeJSON(req, &bad))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`not json`))
	assert.Error(t, DecodeJSON(req, &bad))
}
