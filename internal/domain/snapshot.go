package domain

import "time"

// Snapshot выгрузка аудиторий, собранная ингестом.
// Порядок Venues задает порядок отображения внутри локации.
type Snapshot struct {
	Venues      []*Venue
	GeneratedAt time.Time
	Source      string
}
