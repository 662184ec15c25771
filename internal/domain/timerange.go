package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// timeRangePattern час 00-23, минута 00-59
var timeRangePattern = regexp.MustCompile(`^(0[0-9]|1[0-9]|2[0-3])[0-5][0-9]-(0[0-9]|1[0-9]|2[0-3])[0-5][0-9]$`)

// TimeRange интервал [Start, End) на сетке слотов
type TimeRange struct {
	Start Slot
	End   Slot
}

// ParseTimeRange разбирает пользовательский ввод HHMM-HHMM.
// Начало округляется вниз, конец вверх до границы слота.
func ParseTimeRange(s string) (TimeRange, error) {
	s = strings.TrimSpace(s)
	if !timeRangePattern.MatchString(s) {
		return TimeRange{}, fmt.Errorf("%w: %q must have format %s", ErrInvalidTimeRange, s, TimeRangeFormat)
	}

	parts := strings.SplitN(s, "-", 2)
	start, err := parseClock(parts[0])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}
	end, err := parseClock(parts[1])
	if err != nil {
		return TimeRange{}, fmt.Errorf("%w: %v", ErrInvalidTimeRange, err)
	}

	tr := TimeRange{Start: FloorSlot(start), End: CeilSlot(end)}
	if err := tr.Validate(); err != nil {
		return TimeRange{}, err
	}

	return tr, nil
}

// Validate проверяет выравнивание и порядок границ
func (r TimeRange) Validate() error {
	if !r.Start.IsAligned() || !r.End.IsAligned() {
		return fmt.Errorf("%w: %s is not aligned to %d minutes", ErrInvalidTimeRange, r, SlotMinutes)
	}
	if !r.Start.InDay() || r.End < 0 || r.End > EndOfDay {
		return fmt.Errorf("%w: %s is out of day bounds", ErrInvalidTimeRange, r)
	}
	if r.End < r.Start {
		return fmt.Errorf("%w: end %s is earlier than start %s", ErrInvalidTimeRange, r.End, r.Start)
	}
	return nil
}

// IsEmpty возвращает true для интервала нулевой длины
func (r TimeRange) IsEmpty() bool {
	return r.Start == r.End
}

func (r TimeRange) String() string {
	return r.Start.String() + "-" + r.End.String()
}
