package find_available_venues

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// validateRequest валидирует запрос и возвращает группу и интервал на сетке слотов
func validateRequest(req *Request) (domain.Location, domain.TimeRange, error) {
	loc, err := domain.ParseLocation(strings.ToUpper(strings.TrimSpace(req.Location)))
	if err != nil {
		return "", domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}

	window, err := domain.ParseTimeRange(req.TimeRange)
	if err != nil {
		return "", domain.TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	return loc, window, nil
}
