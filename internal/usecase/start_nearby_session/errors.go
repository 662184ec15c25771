package start_nearby_session

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных координатах
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
