package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Slot получасовой интервал дня, задается минутами от полуночи до его начала.
// Строковое представление HHMM используется только на границах (снапшот, API).
type Slot int

// NewSlot создает слот из часов и минут, минуты должны быть кратны 30
func NewSlot(hour, minute int) (Slot, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d out of range", ErrInvalidSlot, hour, minute)
	}
	s := Slot(hour*60 + minute)
	if !s.IsAligned() {
		return 0, fmt.Errorf("%w: %02d:%02d is not aligned to %d minutes", ErrInvalidSlot, hour, minute, SlotMinutes)
	}
	return s, nil
}

// ParseSlot разбирает строгий ключ слота HHMM (0000-2330, только :00 и :30)
func ParseSlot(s string) (Slot, error) {
	minutes, err := parseClock(s)
	if err != nil {
		return 0, err
	}
	return NewSlot(minutes/60, minutes%60)
}

// parseClock разбирает произвольное время HHMM и возвращает минуты от полуночи
func parseClock(s string) (int, error) {
	if len(s) != 4 {
		return 0, fmt.Errorf("%w: %q must have format %s", ErrInvalidSlot, s, SlotFormat)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q must have format %s", ErrInvalidSlot, s, SlotFormat)
		}
	}

	hour, _ := strconv.Atoi(s[:2])
	minute, _ := strconv.Atoi(s[2:])
	if hour > 23 || minute > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrInvalidSlot, s)
	}

	return hour*60 + minute, nil
}

// FloorSlot округляет время вниз до ближайшей границы слота
func FloorSlot(minutes int) Slot {
	return Slot(minutes - minutes%SlotMinutes)
}

// CeilSlot округляет время вверх до ближайшей границы слота (может вернуть EndOfDay)
func CeilSlot(minutes int) Slot {
	if rem := minutes % SlotMinutes; rem != 0 {
		return Slot(minutes + SlotMinutes - rem)
	}
	return Slot(minutes)
}

// SlotOf возвращает слот, в который попадает момент t (floor slot)
func SlotOf(t time.Time) Slot {
	return FloorSlot(t.Hour()*60 + t.Minute())
}

// Next возвращает следующий слот
func (s Slot) Next() Slot {
	return s + SlotMinutes
}

// IsAligned проверяет, что слот начинается на :00 или :30
func (s Slot) IsAligned() bool {
	return s%SlotMinutes == 0
}

// InDay проверяет, что слот принадлежит суткам (0000-2330)
func (s Slot) InDay() bool {
	return s >= 0 && s < EndOfDay
}

// String возвращает слот в формате HHMM, EndOfDay отображается как 2400
func (s Slot) String() string {
	return fmt.Sprintf("%02d%02d", int(s)/60, int(s)%60)
}

// MarshalText позволяет использовать Slot как ключ и значение в JSON
func (s Slot) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText разбирает строгий ключ слота HHMM
func (s *Slot) UnmarshalText(text []byte) error {
	parsed, err := ParseSlot(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
