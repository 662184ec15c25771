package find_nearby_venues

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных координатах или отсутствии точки
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается, если интервал не в формате HHMM-HHMM или конец раньше начала
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrSessionNotFound возвращается, когда сессия истекла или не существует
	ErrSessionNotFound = errors.New("nearby session not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
