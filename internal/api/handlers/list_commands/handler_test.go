package list_commands

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{}) {}

func TestHandle(t *testing.T) {
	rec := httptest.NewRecorder()
	NewHandler(nopLogger{}).Handle(rec, httptest.NewRequest(http.MethodGet, "/api/v1/commands", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body CommandsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	names := make([]string, 0, len(body.Commands))
	for _, c := range body.Commands {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"/start", "/help", "/room", "/locations", "/availability", "/nearme"}, names)
	assert.Equal(t, note, body.Note)
}
