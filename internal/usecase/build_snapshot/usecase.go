package build_snapshot

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/SMC-VenueFinder/internal/domain"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/nusmods"
	"github.com/m04kA/SMC-VenueFinder/internal/integrations/refreshbus"
	"github.com/m04kA/SMC-VenueFinder/internal/service/schedule"
)

// UseCase собирает снапшот из каталога и ленты занятости NUSMods
type UseCase struct {
	source       VenueSource
	writers      []SnapshotWriter
	publisher    RefreshPublisher
	locations    *LocationResolver
	timeProvider TimeProvider
	logger       Logger
	sourceName   string
}

// NewUseCase создает use case. publisher может быть nil, тогда событие не отправляется.
func NewUseCase(
	source VenueSource,
	writers []SnapshotWriter,
	publisher RefreshPublisher,
	locations *LocationResolver,
	logger Logger,
	sourceName string,
) *UseCase {
	return &UseCase{
		source:       source,
		writers:      writers,
		publisher:    publisher,
		locations:    locations,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		sourceName:   sourceName,
	}
}

// Execute выполняет сборку, запись и публикацию события
func (uc *UseCase) Execute(ctx context.Context) (*Response, error) {
	uc.logger.Info("BuildSnapshot: started")

	// 1. Загружаем каталог аудиторий
	catalog, err := uc.source.FetchCatalog(ctx)
	if err != nil {
		uc.logger.Error("BuildSnapshot: failed to fetch catalog: %v", err)
		return nil, fmt.Errorf("%w: catalog: %v", ErrFetch, err)
	}

	// 2. Загружаем занятость
	feed, err := uc.source.FetchAvailability(ctx)
	if err != nil {
		uc.logger.Error("BuildSnapshot: failed to fetch availability: %v", err)
		return nil, fmt.Errorf("%w: availability: %v", ErrFetch, err)
	}

	// 3. Объединяем по идентификатору в верхнем регистре
	resp := &Response{GeneratedAt: uc.timeProvider.Now().UTC()}
	venues := uc.buildVenues(catalog, resp)
	uc.attachAvailability(venues, feed, resp)

	if len(venues) == 0 {
		return nil, ErrEmptySnapshot
	}

	snapshot := &domain.Snapshot{
		Venues:      sortedVenues(venues),
		GeneratedAt: resp.GeneratedAt,
		Source:      uc.sourceName,
	}

	// 4. Проверяем снапшот теми же правилами, что и сервер при загрузке
	if _, err := schedule.NewIndex(snapshot); err != nil {
		uc.logger.Error("BuildSnapshot: built snapshot is invalid: %v", err)
		return nil, err
	}
	resp.Venues = len(snapshot.Venues)

	// 5. Записываем во все настроенные хранилища
	for _, w := range uc.writers {
		if err := w.Save(ctx, snapshot); err != nil {
			uc.logger.Error("BuildSnapshot: failed to write snapshot: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrWrite, err)
		}
	}

	// 6. Уведомляем серверы
	if uc.publisher != nil {
		event := refreshbus.RefreshEvent{Source: uc.sourceName, Venues: resp.Venues, GeneratedAt: resp.GeneratedAt}
		if err := uc.publisher.Publish(ctx, event); err != nil {
			// снапшот уже записан, серверы подхватят его при следующем перезапуске
			uc.logger.Warn("BuildSnapshot: failed to publish refresh event: %v", err)
		} else {
			resp.Published = true
		}
	}

	uc.logger.Info("BuildSnapshot: done: venues=%d, with_availability=%d, skipped_no_coords=%d, skipped_duplicates=%d, ungrouped=%d",
		resp.Venues, resp.WithAvailability, resp.SkippedNoCoords, resp.SkippedDuplicates, resp.Ungrouped)

	return resp, nil
}

// buildVenues оставляет аудитории каталога с координатами: x долгота, y широта
func (uc *UseCase) buildVenues(catalog nusmods.Catalog, resp *Response) map[string]*domain.Venue {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)

	venues := make(map[string]*domain.Venue, len(catalog))
	for _, name := range names {
		entry := catalog[name]
		if entry.Location == nil || entry.Location.X == nil || entry.Location.Y == nil {
			uc.logger.Warn("BuildSnapshot: %s has no location coordinates available", name)
			resp.SkippedNoCoords++
			continue
		}

		id := strings.ToUpper(strings.TrimSpace(name))
		if _, dup := venues[id]; dup {
			uc.logger.Warn("BuildSnapshot: duplicate venue %s after upper-casing, keeping first", id)
			resp.SkippedDuplicates++
			continue
		}

		loc := uc.locations.Resolve(id)
		if loc == "" {
			resp.Ungrouped++
		}

		venues[id] = &domain.Venue{
			ID:          id,
			Coordinates: &domain.Coordinates{Lat: *entry.Location.Y, Long: *entry.Location.X},
			Location:    loc,
		}
	}
	return venues
}

// attachAvailability переносит занятость на аудитории каталога, лишние записи ленты игнорируются
func (uc *UseCase) attachAvailability(venues map[string]*domain.Venue, feed nusmods.AvailabilityFeed, resp *Response) {
	for name, days := range feed {
		v, ok := venues[strings.ToUpper(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if v.Availability == nil {
			v.Availability = make(domain.WeeklyAvailability, len(days))
			resp.WithAvailability++
		}

		for _, d := range days {
			day, err := domain.ParseWeekday(d.Day)
			if err != nil {
				uc.logger.Warn("BuildSnapshot: %s: skipping day: %v", v.ID, err)
				continue
			}

			schedule, ok := v.Availability[day]
			if !ok {
				schedule = make(domain.DaySchedule, len(d.Availability))
				v.Availability[day] = schedule
			}
			for key, value := range d.Availability {
				if value == "" {
					continue
				}
				s, err := domain.ParseSlot(key)
				if err != nil || !s.IsAligned() {
					uc.logger.Warn("BuildSnapshot: %s %s: skipping slot %q", v.ID, d.Day, key)
					continue
				}
				schedule[s] = struct{}{}
			}
		}
	}
}

func sortedVenues(venues map[string]*domain.Venue) []*domain.Venue {
	out := make([]*domain.Venue, 0, len(venues))
	for _, v := range venues {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
