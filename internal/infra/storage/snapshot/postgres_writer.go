package snapshot

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/pkg/psqlbuilder"
)

// insertBatchSize количество строк в одном INSERT
const insertBatchSize = 500

// PostgresWriter заменяет снапшот в postgres целиком в одной транзакции
type PostgresWriter struct {
	db TxBeginner
}

// NewPostgresWriter создает writer снапшота
func NewPostgresWriter(db TxBeginner) *PostgresWriter {
	return &PostgresWriter{db: db}
}

type insertRows struct {
	table   string
	columns []string
	values  [][]interface{}
}

// Save удаляет старый снапшот и записывает новый.
// Читатели видят либо старый, либо новый снапшот целиком.
func (w *PostgresWriter) Save(ctx context.Context, s *domain.Snapshot) (err error) {
	tx, err := w.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return fmt.Errorf("%w: Save - begin: %v", ErrTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	// Сначала зависимые таблицы
	for _, table := range []string{tableOccupiedSlots, tableScheduleDays, tableVenues} {
		query, args, buildErr := psqlbuilder.Delete(table).ToSql()
		if buildErr != nil {
			return fmt.Errorf("%w: Save - build delete %s: %v", ErrBuildQuery, table, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - delete %s: %v", ErrExecQuery, table, err)
		}
	}

	for _, rows := range snapshotRows(s) {
		if err = insertInBatches(ctx, tx, rows); err != nil {
			return err
		}
	}

	query, args, err := psqlbuilder.Insert(tableSnapshotMeta).
		Columns("id", "generated_at").
		Values(1, s.GeneratedAt).
		Suffix("ON CONFLICT (id) DO UPDATE SET generated_at = EXCLUDED.generated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Save - build upsert meta: %v", ErrBuildQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: Save - upsert meta: %v", ErrExecQuery, err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: Save - commit: %v", ErrTransaction, err)
	}
	return nil
}

// snapshotRows раскладывает снапшот по таблицам в порядке вставки
func snapshotRows(s *domain.Snapshot) []insertRows {
	venues := insertRows{table: tableVenues, columns: []string{"id", "lat", "long", "location", "has_availability"}}
	days := insertRows{table: tableScheduleDays, columns: []string{"venue_id", "day"}}
	slots := insertRows{table: tableOccupiedSlots, columns: []string{"venue_id", "day", "slot"}}

	for _, v := range s.Venues {
		var lat, long sql.NullFloat64
		if v.Coordinates != nil {
			lat = sql.NullFloat64{Float64: v.Coordinates.Lat, Valid: true}
			long = sql.NullFloat64{Float64: v.Coordinates.Long, Valid: true}
		}
		venues.values = append(venues.values, []interface{}{v.ID, lat, long, string(v.Location), v.HasAvailability()})

		for _, day := range sortedDays(v.Availability) {
			days.values = append(days.values, []interface{}{v.ID, day.String()})
			for _, slot := range sortedSlots(v.Availability[day]) {
				slots.values = append(slots.values, []interface{}{v.ID, day.String(), slot.String()})
			}
		}
	}

	return []insertRows{venues, days, slots}
}

func insertInBatches(ctx context.Context, tx *sql.Tx, rows insertRows) error {
	for start := 0; start < len(rows.values); start += insertBatchSize {
		end := start + insertBatchSize
		if end > len(rows.values) {
			end = len(rows.values)
		}

		b := psqlbuilder.Insert(rows.table).Columns(rows.columns...)
		for _, values := range rows.values[start:end] {
			b = b.Values(values...)
		}

		query, args, err := b.ToSql()
		if err != nil {
			return fmt.Errorf("%w: Save - build insert %s: %v", ErrBuildQuery, rows.table, err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: Save - insert %s: %v", ErrExecQuery, rows.table, err)
		}
	}
	return nil
}

func sortedDays(w domain.WeeklyAvailability) []time.Weekday {
	days := make([]time.Weekday, 0, len(w))
	for d := range w {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

func sortedSlots(d domain.DaySchedule) []domain.Slot {
	slots := make([]domain.Slot, 0, len(d))
	for s := range d {
		slots = append(slots, s)
	}
	sort.Slice(slots, func(i, j int) bool { return slots[i] < slots[j] })
	return slots
}
