package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/pkg/psqlbuilder"
)

const (
	tableVenues        = "venues"
	tableScheduleDays  = "venue_schedule_days"
	tableOccupiedSlots = "venue_occupied_slots"
	tableSnapshotMeta  = "snapshot_meta"
)

// PostgresRepository снапшот в postgres.
// Наличие строки в venue_schedule_days означает, что у аудитории есть расписание на этот день,
// занятые слоты лежат в venue_occupied_slots.
type PostgresRepository struct {
	db Querier
}

// NewPostgresRepository создает репозиторий снапшота поверх postgres
func NewPostgresRepository(db Querier) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Load читает снапшот целиком
func (r *PostgresRepository) Load(ctx context.Context) (*domain.Snapshot, error) {
	venues, byID, err := r.loadVenues(ctx)
	if err != nil {
		return nil, err
	}

	if err := r.loadScheduleDays(ctx, byID); err != nil {
		return nil, err
	}

	if err := r.loadOccupiedSlots(ctx, byID); err != nil {
		return nil, err
	}

	generatedAt, err := r.loadGeneratedAt(ctx)
	if err != nil {
		return nil, err
	}

	return &domain.Snapshot{Venues: venues, GeneratedAt: generatedAt, Source: "postgres"}, nil
}

func (r *PostgresRepository) loadVenues(ctx context.Context) ([]*domain.Venue, map[string]*domain.Venue, error) {
	query, args, err := psqlbuilder.Select("id", "lat", "long", "location", "has_availability").
		From(tableVenues).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loadVenues - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: loadVenues - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	venues := make([]*domain.Venue, 0)
	byID := make(map[string]*domain.Venue)
	for rows.Next() {
		var (
			id, location    string
			lat, long       sql.NullFloat64
			hasAvailability bool
		)
		if err := rows.Scan(&id, &lat, &long, &location, &hasAvailability); err != nil {
			return nil, nil, fmt.Errorf("%w: loadVenues - scan: %v", ErrScanRow, err)
		}

		v := &domain.Venue{ID: id, Location: domain.Location(location)}
		switch {
		case lat.Valid && long.Valid:
			v.Coordinates = &domain.Coordinates{Lat: lat.Float64, Long: long.Float64}
		case lat.Valid || long.Valid:
			return nil, nil, fmt.Errorf("%w: venue %q has only one coordinate", domain.ErrCorruptSnapshot, id)
		}
		if hasAvailability {
			v.Availability = make(domain.WeeklyAvailability)
		}

		venues = append(venues, v)
		byID[id] = v
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: loadVenues - iterate: %v", ErrExecQuery, err)
	}

	return venues, byID, nil
}

func (r *PostgresRepository) loadScheduleDays(ctx context.Context, byID map[string]*domain.Venue) error {
	query, args, err := psqlbuilder.Select("venue_id", "day").
		From(tableScheduleDays).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadScheduleDays - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadScheduleDays - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var venueID, dayName string
		if err := rows.Scan(&venueID, &dayName); err != nil {
			return fmt.Errorf("%w: loadScheduleDays - scan: %v", ErrScanRow, err)
		}

		v, day, err := lookupDay(byID, venueID, dayName)
		if err != nil {
			return err
		}
		if _, ok := v.Availability[day]; !ok {
			v.Availability[day] = make(domain.DaySchedule)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadScheduleDays - iterate: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *PostgresRepository) loadOccupiedSlots(ctx context.Context, byID map[string]*domain.Venue) error {
	query, args, err := psqlbuilder.Select("venue_id", "day", "slot").
		From(tableOccupiedSlots).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: loadOccupiedSlots - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: loadOccupiedSlots - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var venueID, dayName, key string
		if err := rows.Scan(&venueID, &dayName, &key); err != nil {
			return fmt.Errorf("%w: loadOccupiedSlots - scan: %v", ErrScanRow, err)
		}

		v, day, err := lookupDay(byID, venueID, dayName)
		if err != nil {
			return err
		}
		s, err := domain.ParseSlot(key)
		if err != nil {
			return fmt.Errorf("%w: venue %q on %s: %v", domain.ErrCorruptSnapshot, venueID, dayName, err)
		}

		schedule, ok := v.Availability[day]
		if !ok {
			schedule = make(domain.DaySchedule)
			v.Availability[day] = schedule
		}
		schedule[s] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("%w: loadOccupiedSlots - iterate: %v", ErrExecQuery, err)
	}

	return nil
}

func (r *PostgresRepository) loadGeneratedAt(ctx context.Context) (time.Time, error) {
	query, args, err := psqlbuilder.Select("generated_at").
		From(tableSnapshotMeta).
		Where(squirrel.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: loadGeneratedAt - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: loadGeneratedAt - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	var generatedAt sql.NullTime
	if rows.Next() {
		if err := rows.Scan(&generatedAt); err != nil {
			return time.Time{}, fmt.Errorf("%w: loadGeneratedAt - scan: %v", ErrScanRow, err)
		}
	}
	if err := rows.Err(); err != nil {
		return time.Time{}, fmt.Errorf("%w: loadGeneratedAt - iterate: %v", ErrExecQuery, err)
	}

	return generatedAt.Time, nil
}

// lookupDay находит аудиторию с расписанием и разбирает день недели
func lookupDay(byID map[string]*domain.Venue, venueID, dayName string) (*domain.Venue, time.Weekday, error) {
	v, ok := byID[venueID]
	if !ok {
		return nil, 0, fmt.Errorf("%w: schedule for unknown venue %q", domain.ErrCorruptSnapshot, venueID)
	}
	if v.Availability == nil {
		return nil, 0, fmt.Errorf("%w: venue %q has schedule rows but no availability flag", domain.ErrCorruptSnapshot, venueID)
	}
	day, err := domain.ParseWeekday(dayName)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: venue %q: %v", domain.ErrCorruptSnapshot, venueID, err)
	}
	return v, day, nil
}
