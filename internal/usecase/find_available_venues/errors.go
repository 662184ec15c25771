package find_available_venues

import "errors"

var (
	// ErrInvalidLocation возвращается для неизвестной группы аудиторий
	ErrInvalidLocation = errors.New("invalid location")

	// ErrInvalidTimeRange возвращается, если интервал не в формате HHMM-HHMM или конец раньше начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
