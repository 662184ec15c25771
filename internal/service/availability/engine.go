package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Engine отвечает на вопросы о свободности одной аудитории относительно момента now.
// Все методы чистые: не блокируются, не делают I/O и безопасны для конкурентного вызова.
type Engine struct {
	location *time.Location
}

// NewEngine создает движок, который переводит now в часовой пояс кампуса
func NewEngine(location *time.Location) *Engine {
	if location == nil {
		location = time.UTC
	}
	return &Engine{location: location}
}

// resolve возвращает день недели и floor slot для момента now
func (e *Engine) resolve(now time.Time) (time.Weekday, domain.Slot) {
	local := now.In(e.location)
	return local.Weekday(), domain.SlotOf(local)
}

// IsAvailableNow проверяет, что аудитория свободна ближайший час:
// текущий слот и следующий за ним.
func (e *Engine) IsAvailableNow(v *domain.Venue, now time.Time) bool {
	if !v.HasAvailability() {
		return false
	}

	day, current := e.resolve(now)
	schedule, ok := v.ScheduleFor(day)
	if !ok {
		return true
	}

	// Слот после 2330 относится к следующим суткам и не проверяется
	for _, s := range []domain.Slot{current, current.Next()} {
		if s.InDay() && schedule.IsOccupied(s) {
			return false
		}
	}
	return true
}

// NextAvailableTime ищет первый свободный слот начиная с текущего.
// Поиск не заходит дальше LastCheckedSlot.
func (e *Engine) NextAvailableTime(v *domain.Venue, now time.Time) NextAvailability {
	if !v.HasAvailability() {
		return NextAvailability{Kind: NextNoneToday}
	}

	day, current := e.resolve(now)
	schedule, ok := v.ScheduleFor(day)
	if !ok {
		return NextAvailability{Kind: NextAllDay}
	}

	for s := current; s <= domain.LastCheckedSlot; s = s.Next() {
		if !schedule.IsOccupied(s) {
			return NextAvailability{Kind: NextAt, At: s}
		}
	}

	return NextAvailability{Kind: NextNoneToday}
}

// IsAvailableForWindow проверяет, что все слоты [Start, End) сегодняшнего дня свободны.
// End не проверяется, пустой интервал свободен.
func (e *Engine) IsAvailableForWindow(v *domain.Venue, now time.Time, window domain.TimeRange) (bool, error) {
	if err := window.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidWindow, err)
	}

	if !v.HasAvailability() {
		return false, nil
	}

	day, _ := e.resolve(now)
	schedule, ok := v.ScheduleFor(day)
	if !ok {
		return true, nil
	}

	for s := window.Start; s < window.End; s = s.Next() {
		if schedule.IsOccupied(s) {
			return false, nil
		}
	}
	return true, nil
}

// FreeDurationFromNow считает подряд идущие свободные слоты от текущего до первого занятого
// или до LastCheckedSlot включительно.
func (e *Engine) FreeDurationFromNow(v *domain.Venue, now time.Time) FreeSpan {
	if !v.HasAvailability() {
		return 0
	}

	day, current := e.resolve(now)
	// Без расписания на сегодня все слоты свободны
	schedule, _ := v.ScheduleFor(day)

	var span FreeSpan
	for s := current; s <= domain.LastCheckedSlot; s = s.Next() {
		if schedule.IsOccupied(s) {
			break
		}
		span++
	}
	return span
}
