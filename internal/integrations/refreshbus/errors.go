package refreshbus

import "errors"

var (
	// ErrPublish возвращается, если событие не удалось отправить
	ErrPublish = errors.New("refreshbus: failed to publish event")

	// ErrDecode возвращается для некорректного события
	ErrDecode = errors.New("refreshbus: failed to decode event")
)
