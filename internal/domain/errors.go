package domain

import "errors"

var (
	// ErrInvalidSlot возвращается, когда строка не является корректным HHMM
	ErrInvalidSlot = errors.New("invalid slot")

	// ErrInvalidTimeRange возвращается при некорректном или перевернутом интервале
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrInvalidWeekday возвращается при неизвестном названии дня недели
	ErrInvalidWeekday = errors.New("invalid weekday")

	// ErrInvalidLocation возвращается при неизвестной локации
	ErrInvalidLocation = errors.New("invalid location")
)

// ErrCorruptSnapshot возвращается, когда в снапшоте нет обязательных полей аудитории
var ErrCorruptSnapshot = errors.New("corrupt snapshot")
