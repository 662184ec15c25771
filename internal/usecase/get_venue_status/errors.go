package get_venue_status

import (
	"errors"
	"fmt"
)

var (
	// ErrVenueNotFound возвращается, когда аудитория не найдена
	ErrVenueNotFound = errors.New("venue not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// VenueNotFoundError аудитория не найдена, к ошибке приложены похожие варианты
type VenueNotFoundError struct {
	VenueID     string
	Suggestions []string
}

func (e *VenueNotFoundError) Error() string {
	return fmt.Sprintf("%v: %s (%d suggestions)", ErrVenueNotFound, e.VenueID, len(e.Suggestions))
}

// Is позволяет проверять ошибку через errors.Is(err, ErrVenueNotFound)
func (e *VenueNotFoundError) Is(target error) bool {
	return target == ErrVenueNotFound
}
