package get_location_venues

import "errors"

var (
	// ErrInvalidLocation возвращается для неизвестной группы аудиторий
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
