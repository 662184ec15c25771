package availability

import "errors"

// ErrInvalidWindow возвращается, когда в движок передан невыровненный или перевернутый интервал.
// Валидация выполняется выше, поэтому это нарушение контракта вызывающей стороны.
var ErrInvalidWindow = errors.New("availability: invalid window")
