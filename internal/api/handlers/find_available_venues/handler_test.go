package find_available_venues

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	findAvailableVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/find_available_venues"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *findAvailableVenues.Response
	err  error
	got  *findAvailableVenues.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *findAvailableVenues.Request) (*findAvailableVenues.Response, error) {
	s.got = req
	return s.resp, s.err
}

func serve(h *Handler, location, timeRange string) *httptest.ResponseRecorder {
	target := "/api/v1/locations/" + location + "/availability"
	if timeRange != "" {
		target += "?timeRange=" + url.QueryEscape(timeRange)
	}
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req = mux.SetURLVars(req, map[string]string{"location": location})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{resp: &findAvailableVenues.Response{
		Location: domain.LocationSOC,
		Window:   domain.TimeRange{Start: 9 * 60, End: 15 * 60},
		Venues:   []findAvailableVenues.Venue{{VenueID: "COM1-0203", MapsURL: "https://maps/1"}},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "SOC", "0930-1450")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0930-1450", uc.got.TimeRange)
	assert.Equal(t, "SOC", uc.got.Location)

	var body AvailableVenuesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "0900", body.From)
	assert.Equal(t, "1500", body.To)
	assert.Equal(t, "These are the veNUeS that are available from 0900 to 1500:\n• [COM1-0203](https://maps/1)", body.Message)
}

func TestHandleMissingTimeRange(t *testing.T) {
	uc := &stubUseCase{}

	rec := serve(NewHandler(uc, nopLogger{}), "SOC", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, uc.got)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid location", err: findAvailableVenues.ErrInvalidLocation, wantStatus: http.StatusBadRequest},
		{name: "invalid time range", err: findAvailableVenues.ErrInvalidTimeRange, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, nopLogger{}), "SOC", "1000-1100")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
