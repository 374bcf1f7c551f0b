package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumninexus/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	contextTimeout time.Duration
}

func NewEventService(repo domain.EventRepository, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *eventService) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *eventService) CreateEvent(ctx context.Context, e *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	e.ID = newRecordID("event", now)
	e.DateTime = now
	e.RSVP = 0
	if e.Capacity <= 0 {
		e.Capacity = domain.DefaultEventCapacity
	}
	if e.AlumniList == nil {
		e.AlumniList = []string{}
	}

	if err := s.repo.Create(ctx, e); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}
	return e, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, id string, patch domain.EventPatch) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update event: %w", err)
	}
	return e, nil
}

func (s *eventService) DeleteEvent(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
