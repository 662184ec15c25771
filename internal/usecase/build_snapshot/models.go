package build_snapshot

import "time"

// Response итог сборки снапшота
type Response struct {
	Venues            int // аудиторий в снапшоте
	WithAvailability  int // из них с расписанием
	SkippedNoCoords   int // нет координат в каталоге
	SkippedDuplicates int // совпали после приведения к верхнему регистру
	Ungrouped         int // не попали ни в одну группу
	GeneratedAt       time.Time
	Published         bool
}
