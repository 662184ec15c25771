package get_location_venues

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает группу аудиторий
func validateRequest(req *Request) (domain.Location, error) {
	loc, err := domain.ParseLocation(strings.ToUpper(strings.TrimSpace(req.Location)))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidLocation, err)
	}
	return loc, nil
}
