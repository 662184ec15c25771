package get_location_venues

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/service/availability"
	getLocationVenues "github.com/m04kA/SMC-VenueFinder/internal/usecase/get_location_venues"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp *getLocationVenues.Response
	err  error
}

func (s *stubUseCase) Execute(context.Context, *getLocationVenues.Request) (*getLocationVenues.Response, error) {
	return s.resp, s.err
}

func serve(h *Handler, location string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/locations/"+location+"/venues", nil)
	req = mux.SetURLVars(req, map[string]string{"location": location})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{resp: &getLocationVenues.Response{
		Location: domain.LocationSOC,
		Venues: []getLocationVenues.FreeVenue{
			{VenueID: "COM1-0202", MapsURL: "https://maps/1", FreeFor: availability.FreeSpan(4)},
			{VenueID: "COM1-0201", MapsURL: "https://maps/2", FreeFor: availability.FreeSpan(1)},
		},
	}}

	rec := serve(NewHandler(uc, nopLogger{}), "SOC")
	require.Equal(t, http.StatusOK, rec.Code)

	var body LocationVenuesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "SOC", body.Location)
	require.Len(t, body.Venues, 2)
	assert.Equal(t, 2.0, body.Venues[0].FreeHours)
	assert.Equal(t, 0.5, body.Venues[1].FreeHours)
	assert.Equal(t, "Here are some veNUeS that are available in SOC 🚀"+
		"\n• [COM1-0202](https://maps/1) is available for next 2.0 hrs"+
		"\n• [COM1-0201](https://maps/2) is available for next 0.5 hrs", body.Message)
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "invalid location", err: getLocationVenues.ErrInvalidLocation, wantStatus: http.StatusBadRequest},
		{name: "internal", err: errors.New("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(NewHandler(&stubUseCase{err: tt.err}, nopLogger{}), "MARS")
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
