package schedule

import (
	"fmt"
	"math"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// Index неизменяемый индекс аудиторий одного снапшота.
// Безопасен для конкурентного чтения без блокировок.
type Index struct {
	venues     map[string]*domain.Venue
	order      []*domain.Venue
	byLocation map[domain.Location][]string
}

// NewIndex строит индекс и проверяет снапшот целиком.
// Любая ошибка здесь фатальна для снапшота: запросы по нему не обслуживаются.
func NewIndex(snapshot *domain.Snapshot) (*Index, error) {
	if snapshot == nil {
		return nil, fmt.Errorf("%w: snapshot is nil", ErrCorruptSnapshot)
	}

	idx := &Index{
		venues:     make(map[string]*domain.Venue, len(snapshot.Venues)),
		order:      make([]*domain.Venue, 0, len(snapshot.Venues)),
		byLocation: make(map[domain.Location][]string, len(domain.Locations)),
	}

	for i, v := range snapshot.Venues {
		if err := validateVenue(v); err != nil {
			return nil, fmt.Errorf("%w: venue #%d: %v", ErrCorruptSnapshot, i, err)
		}
		if _, dup := idx.venues[v.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate venue %q", ErrCorruptSnapshot, v.ID)
		}

		idx.venues[v.ID] = v
		idx.order = append(idx.order, v)
		if v.Location.IsValid() {
			idx.byLocation[v.Location] = append(idx.byLocation[v.Location], v.ID)
		}
	}

	return idx, nil
}

// validateVenue проверяет обязательные поля аудитории
func validateVenue(v *domain.Venue) error {
	if v == nil {
		return fmt.Errorf("venue is nil")
	}
	if v.ID == "" {
		return fmt.Errorf("empty venue id")
	}
	if v.ID != strings.ToUpper(v.ID) {
		return fmt.Errorf("venue id %q is not upper case", v.ID)
	}

	if c := v.Coordinates; c != nil {
		if math.IsNaN(c.Lat) || math.IsNaN(c.Long) || c.Lat < -90 || c.Lat > 90 || c.Long < -180 || c.Long > 180 {
			return fmt.Errorf("venue %q has invalid coordinates (%v, %v)", v.ID, c.Lat, c.Long)
		}
	}

	for day, schedule := range v.Availability {
		for s := range schedule {
			if !s.IsAligned() || !s.InDay() {
				return fmt.Errorf("venue %q has invalid slot %d on %s", v.ID, int(s), day)
			}
		}
	}

	return nil
}

// Get возвращает аудиторию по идентификатору
func (i *Index) Get(id string) (*domain.Venue, error) {
	v, ok := i.venues[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVenueNotFound, id)
	}
	return v, nil
}

// ByLocation возвращает идентификаторы аудиторий локации в порядке снапшота
func (i *Index) ByLocation(loc domain.Location) []string {
	ids := i.byLocation[loc]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// Venues возвращает все аудитории в порядке снапшота
func (i *Index) Venues() []*domain.Venue {
	out := make([]*domain.Venue, len(i.order))
	copy(out, i.order)
	return out
}

// IDs возвращает идентификаторы всех аудиторий в порядке снапшота
func (i *Index) IDs() []string {
	ids := make([]string, len(i.order))
	for n, v := range i.order {
		ids[n] = v.ID
	}
	return ids
}

// Len возвращает количество аудиторий
func (i *Index) Len() int {
	return len(i.order)
}
