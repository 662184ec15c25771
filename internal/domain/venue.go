package domain

import (
	"fmt"
	"strconv"
	"time"
)

// Coordinates географические координаты в градусах
type Coordinates struct {
	Lat  float64
	Long float64
}

// Venue аудитория из снапшота. Неизменяема в течение жизни снапшота.
type Venue struct {
	ID          string
	Coordinates *Coordinates // nil = координаты неизвестны, аудитория не участвует в поиске рядом
	Location    Location     // пусто, если зона не из фиксированного списка
	// Availability nil означает "никогда не доступна"
	Availability WeeklyAvailability
}

// WeeklyAvailability расписание по дням недели.
// Отсутствие дня означает, что аудитория свободна весь день.
type WeeklyAvailability map[time.Weekday]DaySchedule

// DaySchedule множество занятых слотов одного дня
type DaySchedule map[Slot]struct{}

// NewDaySchedule создает расписание дня из занятых слотов
func NewDaySchedule(occupied ...Slot) DaySchedule {
	d := make(DaySchedule, len(occupied))
	for _, s := range occupied {
		d[s] = struct{}{}
	}
	return d
}

// IsOccupied returns true if the slot is booked
func (d DaySchedule) IsOccupied(s Slot) bool {
	_, ok := d[s]
	return ok
}

// HasAvailability returns true if the venue carries a weekly availability record
func (v *Venue) HasAvailability() bool {
	return v.Availability != nil
}

// HasCoordinates returns true if the venue can be ranked by distance
func (v *Venue) HasCoordinates() bool {
	return v.Coordinates != nil
}

// ScheduleFor возвращает расписание на день недели и признак его наличия
func (v *Venue) ScheduleFor(day time.Weekday) (DaySchedule, bool) {
	if v.Availability == nil {
		return nil, false
	}
	d, ok := v.Availability[day]
	return d, ok
}

// MapsURL возвращает ссылку на аудиторию в Google Maps, пустую строку без координат
func (v *Venue) MapsURL() string {
	if v.Coordinates == nil {
		return ""
	}
	return fmt.Sprintf(MapsSearchURL,
		strconv.FormatFloat(v.Coordinates.Lat, 'f', -1, 64),
		strconv.FormatFloat(v.Coordinates.Long, 'f', -1, 64))
}

var weekdays = map[string]time.Weekday{
	"Monday":    time.Monday,
	"Tuesday":   time.Tuesday,
	"Wednesday": time.Wednesday,
	"Thursday":  time.Thursday,
	"Friday":    time.Friday,
	"Saturday":  time.Saturday,
	"Sunday":    time.Sunday,
}

// ParseWeekday разбирает английское название дня недели ("Monday".."Sunday")
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdays[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrInvalidWeekday, s)
	}
	return d, nil
}
