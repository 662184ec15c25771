package start_nearby_session

import "time"

// Request точка, которой поделился пользователь
type Request struct {
	Lat  float64
	Long float64
}

// Response созданная сессия
type Response struct {
	SessionID string
	Lat       float64
	Long      float64
	ExpiresAt time.Time
}
