package start_nearby_session

import (
	"fmt"
	"math"
)

// validateRequest проверяет диапазоны широты и долготы
func validateRequest(req *Request) error {
	if math.IsNaN(req.Lat) || req.Lat < -90 || req.Lat > 90 {
		return fmt.Errorf("%w: lat must be within [-90, 90]", ErrInvalidInput)
	}
	if math.IsNaN(req.Long) || req.Long < -180 || req.Long > 180 {
		return fmt.Errorf("%w: long must be within [-180, 180]", ErrInvalidInput)
	}
	return nil
}
