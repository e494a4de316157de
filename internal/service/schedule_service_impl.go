package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/ogison/daily-planner/internal/db"
	"github.com/ogison/daily-planner/internal/domain"
	"github.com/ogison/daily-planner/internal/repository"
)

type scheduleService struct {
	schedules  repository.ScheduleRepo
	uow        db.UnitOfWork
	defaultDay DefaultDayFunc
	observer   UseCaseObserver

	// Guards the exists-check plus seed of a date so two callers cannot
	// materialize different default days for the same key.
	seedMu sync.Mutex
}

// NewScheduleService creates a ScheduleService backed by the given
// repository. defaultDay supplies the items seeded on first access of a
// date; pass DefaultDay for the standard sample schedule.
func NewScheduleService(schedules repository.ScheduleRepo, uow db.UnitOfWork, defaultDay DefaultDayFunc, observers ...UseCaseObserver) ScheduleService {
	return &scheduleService{
		schedules:  schedules,
		uow:        uow,
		defaultDay: defaultDay,
		observer:   useCaseObserverOrNoop(observers),
	}
}

func (s *scheduleService) GetCurrentSchedule(ctx context.Context, date string) (day *domain.DaySchedule, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "get-schedule",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": date},
		})
	}()

	if err = s.ensureDay(ctx, date); err != nil {
		return nil, err
	}
	return s.schedules.GetDay(ctx, date)
}

func (s *scheduleService) AddItem(ctx context.Context, draft domain.ItemDraft, date string) (item *domain.ScheduleItem, err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "add-item",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": date},
		})
	}()

	if err = s.ensureDay(ctx, date); err != nil {
		return nil, err
	}

	color := draft.Color
	if color == "" {
		color = draft.Category.DefaultColor()
	}
	now := time.Now().UTC()
	item = &domain.ScheduleItem{
		ID:        uuid.New().String(),
		Title:     draft.Title,
		StartMin:  draft.StartMin,
		EndMin:    draft.EndMin,
		Category:  draft.Category,
		Notes:     draft.Notes,
		Color:     color,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err = s.schedules.CreateItem(ctx, date, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *scheduleService) UpdateItem(ctx context.Context, id string, patch domain.ItemPatch, date string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "update-item",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": date, "id": id},
		})
	}()

	if err = s.ensureDay(ctx, date); err != nil {
		return err
	}

	existing, err := s.schedules.GetItem(ctx, date, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			err = nil // unknown id: no-op
			return nil
		}
		return err
	}

	updated := domain.ApplyPatch(*existing, patch)
	updated.UpdatedAt = time.Now().UTC()
	return s.schedules.UpdateItem(ctx, date, &updated)
}

func (s *scheduleService) DeleteItem(ctx context.Context, id, date string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "delete-item",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": date, "id": id},
		})
	}()

	if err = s.ensureDay(ctx, date); err != nil {
		return err
	}
	// Deleting an unknown id is a no-op at the SQL level already.
	return s.schedules.DeleteItem(ctx, date, id)
}

func (s *scheduleService) ReorderItems(ctx context.Context, items []*domain.ScheduleItem, date string) (err error) {
	startedAt := time.Now().UTC()
	defer func() {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      "reorder-items",
			StartedAt: startedAt,
			Duration:  time.Since(startedAt),
			Success:   err == nil,
			Err:       err,
			Fields:    map[string]any{"date": date, "count": len(items)},
		})
	}()

	if err = s.ensureDay(ctx, date); err != nil {
		return err
	}

	now := time.Now().UTC()
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteScheduleRepo(tx)
		if err := txRepo.DeleteDay(ctx, date); err != nil {
			return err
		}
		for _, it := range items {
			stored := *it
			if stored.ID == "" {
				stored.ID = uuid.New().String()
			}
			if stored.CreatedAt.IsZero() {
				stored.CreatedAt = now
			}
			stored.UpdatedAt = now
			if err := txRepo.CreateItem(ctx, date, &stored); err != nil {
				return err
			}
		}
		return nil
	})
}

// ensureDay lazily materializes the default schedule for a date. The
// mutex makes the check-then-act atomic for concurrent callers; the
// transaction makes the seed all-or-nothing.
func (s *scheduleService) ensureDay(ctx context.Context, date string) error {
	s.seedMu.Lock()
	defer s.seedMu.Unlock()

	exists, err := s.schedules.DayExists(ctx, date)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	items := s.defaultDay(date)
	return s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txRepo := repository.NewSQLiteScheduleRepo(tx)
		// The marker commits with the items, so the date only counts as
		// materialized once the seed fully succeeds, and keeps counting
		// after every item is deleted again.
		if err := txRepo.MarkDay(ctx, date); err != nil {
			return err
		}
		for _, it := range items {
			if err := txRepo.CreateItem(ctx, date, it); err != nil {
				return err
			}
		}
		return nil
	})
}
