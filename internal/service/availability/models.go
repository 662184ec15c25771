package availability

import (
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// NextKind тип ответа на вопрос "когда аудитория освободится"
type NextKind string

const (
	NextAt        NextKind = "at"         // освободится в слот At
	NextAllDay    NextKind = "all_day"    // на сегодня нет расписания, свободна весь день
	NextNoneToday NextKind = "none_today" // до 2130 включительно свободных слотов нет
)

// NextAvailability результат NextAvailableTime
type NextAvailability struct {
	Kind NextKind
	At   domain.Slot // заполнен только для NextAt
}

// FreeSpan количество подряд идущих свободных слотов начиная с текущего
type FreeSpan int

// Hours возвращает длительность в часах с шагом 0.5
func (f FreeSpan) Hours() float64 {
	return float64(f) * domain.SlotMinutes / 60
}

// Duration возвращает длительность как time.Duration
func (f FreeSpan) Duration() time.Duration {
	return time.Duration(f) * domain.SlotMinutes * time.Minute
}
