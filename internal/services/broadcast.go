package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"alumninexus/internal/domain"
)

type broadcastService struct {
	repo           domain.BroadcastRepository
	emailService   domain.EmailService
	notifyList     []string
	logger         *slog.Logger
	contextTimeout time.Duration
}

// NewBroadcastService returns a BroadcastService. emailService may be nil
// (or notifyList empty) to disable notification fan-out.
func NewBroadcastService(repo domain.BroadcastRepository, emailService domain.EmailService, notifyList []string, logger *slog.Logger, timeout time.Duration) domain.BroadcastService {
	return &broadcastService{
		repo:           repo,
		emailService:   emailService,
		notifyList:     notifyList,
		logger:         logger,
		contextTimeout: timeout,
	}
}

func (s *broadcastService) ListBroadcasts(ctx context.Context, rng domain.DateRange) ([]*domain.Broadcast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	broadcasts, err := s.repo.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list broadcasts: %w", err)
	}
	if broadcasts == nil {
		broadcasts = []*domain.Broadcast{}
	}
	return broadcasts, nil
}

func (s *broadcastService) GetBroadcast(ctx context.Context, id string) (*domain.Broadcast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get broadcast: %w", err)
	}
	return b, nil
}

func (s *broadcastService) CreateBroadcast(ctx context.Context, b *domain.Broadcast) (*domain.Broadcast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	b.ID = newRecordID("broadcast", now)
	b.DateTime = now

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create broadcast: %w", err)
	}

	// Notification fan-out is best effort: a mail failure never fails the
	// create that already persisted.
	if s.emailService != nil && len(s.notifyList) > 0 {
		data := &domain.BroadcastEmailData{
			Title:    b.Title,
			Body:     b.Body,
			FromYear: b.FromYear,
			ToYear:   b.ToYear,
		}
		for _, to := range s.notifyList {
			if err := s.emailService.SendBroadcastNotification(ctx, to, data); err != nil {
				s.logger.Error("broadcast notification failed", "to", to, "broadcast_id", b.ID, "err", err)
			}
		}
	}

	return b, nil
}

func (s *broadcastService) UpdateBroadcast(ctx context.Context, id string, patch domain.BroadcastPatch) (*domain.Broadcast, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	b, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update broadcast: %w", err)
	}
	return b, nil
}

func (s *broadcastService) DeleteBroadcast(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete broadcast: %w", err)
	}
	return nil
}
