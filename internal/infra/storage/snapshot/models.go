package snapshot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
)

// occupiedMark значение занятого слота в файле снапшота
const occupiedMark = "occupied"

// fileSnapshot формат файла снапшота:
//
//	{"venues": {"COM1-0203": {"lat": 1.29, "long": 103.77, "location": "SOC",
//	  "availability": {"Monday": {"0800": "occupied"}}}}}
type fileSnapshot struct {
	GeneratedAt *time.Time             `json:"generatedAt,omitempty"`
	Venues      map[string]venueRecord `json:"venues"`
}

type venueRecord struct {
	Lat          *float64                              `json:"lat,omitempty"`
	Long         *float64                              `json:"long,omitempty"`
	Location     string                                `json:"location,omitempty"`
	Availability map[string]map[string]json.RawMessage `json:"availability,omitempty"`
}

// toDomain переводит файл в снапшот. Аудитории упорядочиваются по идентификатору.
func (f *fileSnapshot) toDomain(source string) (*domain.Snapshot, error) {
	ids := make([]string, 0, len(f.Venues))
	for id := range f.Venues {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	venues := make([]*domain.Venue, 0, len(ids))
	for _, id := range ids {
		v, err := f.Venues[id].toDomain(id)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrCorruptSnapshot, err)
		}
		venues = append(venues, v)
	}

	snapshot := &domain.Snapshot{Venues: venues, Source: source}
	if f.GeneratedAt != nil {
		snapshot.GeneratedAt = *f.GeneratedAt
	}
	return snapshot, nil
}

func (r venueRecord) toDomain(id string) (*domain.Venue, error) {
	v := &domain.Venue{ID: id, Location: domain.Location(r.Location)}

	switch {
	case r.Lat != nil && r.Long != nil:
		v.Coordinates = &domain.Coordinates{Lat: *r.Lat, Long: *r.Long}
	case r.Lat != nil || r.Long != nil:
		return nil, fmt.Errorf("venue %q has only one coordinate", id)
	}

	if r.Availability == nil {
		return v, nil
	}

	v.Availability = make(domain.WeeklyAvailability, len(r.Availability))
	for dayName, slots := range r.Availability {
		day, err := domain.ParseWeekday(dayName)
		if err != nil {
			return nil, fmt.Errorf("venue %q: %v", id, err)
		}

		schedule := make(domain.DaySchedule, len(slots))
		for key, value := range slots {
			s, err := domain.ParseSlot(key)
			if err != nil {
				return nil, fmt.Errorf("venue %q on %s: %v", id, dayName, err)
			}
			if isTruthy(value) {
				schedule[s] = struct{}{}
			}
		}
		v.Availability[day] = schedule
	}

	return v, nil
}

// isTruthy занятым считается любое непустое значение слота
func isTruthy(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	switch {
	case len(raw) == 0:
		return false
	case bytes.Equal(raw, []byte("null")), bytes.Equal(raw, []byte("false")),
		bytes.Equal(raw, []byte(`""`)), bytes.Equal(raw, []byte("{}")), bytes.Equal(raw, []byte("[]")):
		return false
	}
	if n, err := strconv.ParseFloat(string(raw), 64); err == nil {
		return n != 0
	}
	return true
}

// fromDomain переводит снапшот в формат файла
func fromDomain(s *domain.Snapshot) *fileSnapshot {
	f := &fileSnapshot{Venues: make(map[string]venueRecord, len(s.Venues))}
	if !s.GeneratedAt.IsZero() {
		generatedAt := s.GeneratedAt.UTC()
		f.GeneratedAt = &generatedAt
	}

	mark, _ := json.Marshal(occupiedMark)
	for _, v := range s.Venues {
		r := venueRecord{Location: string(v.Location)}
		if v.Coordinates != nil {
			lat, long := v.Coordinates.Lat, v.Coordinates.Long
			r.Lat, r.Long = &lat, &long
		}
		if v.Availability != nil {
			r.Availability = make(map[string]map[string]json.RawMessage, len(v.Availability))
			for day, schedule := range v.Availability {
				slots := make(map[string]json.RawMessage, len(schedule))
				for s := range schedule {
					slots[s.String()] = mark
				}
				r.Availability[day.String()] = slots
			}
		}
		f.Venues[v.ID] = r
	}
	return f
}
