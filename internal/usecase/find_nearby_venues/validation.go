package find_nearby_venues

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// validateRequest проверяет источник точки и интервал
func validateRequest(req *Request) (domain.TimeRange, error) {
	hasSession := strings.TrimSpace(req.SessionID) != ""
	if hasSession == (req.Origin != nil) {
		return domain.TimeRange{}, fmt.Errorf("%w: exactly one of session id or origin is required", ErrInvalidInput)
	}

	if o := req.Origin; o != nil {
		if math.IsNaN(o.Lat) || o.Lat < -90 || o.Lat > 90 || math.IsNaN(o.Long) || o.Long < -180 || o.Long > 180 {
			return domain.TimeRange{}, fmt.Errorf("%w: origin (%v, %v) is out of range", ErrInvalidInput, o.Lat, o.Long)
		}
	}

	window, err := domain.ParseTimeRange(req.TimeRange)
	if err != nil {
		return domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	return window, nil
}
