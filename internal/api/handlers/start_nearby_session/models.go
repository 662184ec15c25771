package start_nearby_session

import (
	"time"

	startNearbySession "github.com/m04kA/SMC-VenueFinder/internal/usecase/start_nearby_session"
)

const msgAskTimeRange = "Please enter start and end time! Time must be in 24 hour format! e.g. 0930-1450"

// StartNearbySessionRequest HTTP request model
type StartNearbySessionRequest struct {
	Lat  *float64 `json:"lat"`
	Long *float64 `json:"long"`
}

// NearbySessionResponse HTTP response model
type NearbySessionResponse struct {
	SessionID string    `json:"sessionId"`
	Lat       float64   `json:"lat"`
	Long      float64   `json:"long"`
	ExpiresAt time.Time `json:"expiresAt"`
	Message   string    `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *StartNearbySessionRequest) ToUseCaseRequest() (*startNearbySession.Request, bool) {
	if r.Lat == nil || r.Long == nil {
		return nil, false
	}
	return &startNearbySession.Request{Lat: *r.Lat, Long: *r.Long}, true
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *startNearbySession.Response) *NearbySessionResponse {
	return &NearbySessionResponse{
		SessionID: resp.SessionID,
		Lat:       resp.Lat,
		Long:      resp.Long,
		ExpiresAt: resp.ExpiresAt,
		Message:   msgAskTimeRange,
	}
}
