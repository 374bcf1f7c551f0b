package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"alumninexus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type fakeBroadcastRepo struct {
	broadcasts []*domain.Broadcast
}

func (f *fakeBroadcastRepo) List(ctx context.Context, rng domain.DateRange) ([]*domain.Broadcast, error) {
	return f.broadcasts, nil
}

func (f *fakeBroadcastRepo) GetByID(ctx context.Context, id string) (*domain.Broadcast, error) {
	for _, b := range f.broadcasts {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBroadcastRepo) Create(ctx context.Context, b *domain.Broadcast) error {
	f.broadcasts = append([]*domain.Broadcast{b}, f.broadcasts...)
	return nil
}

func (f *fakeBroadcastRepo) Update(ctx context.Context, id string, patch domain.BroadcastPatch) (*domain.Broadcast, error) {
	for _, b := range f.broadcasts {
		if b.ID == id {
			patch.Apply(b)
			return b, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBroadcastRepo) Delete(ctx context.Context, id string) error {
	for i, b := range f.broadcasts {
		if b.ID == id {
			f.broadcasts = append(f.broadcasts[:i], f.broadcasts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type fakeEmailService struct {
	sent    []string
	sendErr error
}

func (f *fakeEmailService) SendBroadcastNotification(ctx context.Context, to string, data *domain.BroadcastEmailData) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, to)
	return nil
}

func TestBroadcastService_CreateNotifiesRecipients(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBroadcastRepo{}
	emails := &fakeEmailService{}
	svc := NewBroadcastService(repo, emails, []string{"a@example.com", "b@example.com"}, testLogger, time.Second)

	b, err := svc.CreateBroadcast(ctx, domain.NewBroadcast("Deadline moved", "submit by friday", 2018, 2022))
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, emails.sent)
}

func TestBroadcastService_MailFailureDoesNotFailCreate(t *testing.T) {
	ctx := context.Background()
	repo := &fakeBroadcastRepo{}
	emails := &fakeEmailService{sendErr: errors.New("ses throttled")}
	svc := NewBroadcastService(repo, emails, []string{"a@example.com"}, testLogger, time.Second)

	b, err := svc.CreateBroadcast(ctx, domain.NewBroadcast("Deadline moved", "submit by friday", 2018, 2022))
	require.NoError(t, err)

	got, err := svc.GetBroadcast(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deadline moved", got.Title)
}

func TestBroadcastService_CreateWithoutMailerSkipsFanout(t *testing.T) {
	ctx := context.Background()
	svc := NewBroadcastService(&fakeBroadcastRepo{}, nil, nil, testLogger, time.Second)

	_, err := svc.CreateBroadcast(ctx, domain.NewBroadcast("Quiet one", "no email for this", 2018, 2022))
	require.NoError(t, err)
}
