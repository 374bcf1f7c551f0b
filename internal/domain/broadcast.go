package domain

import (
	"context"
	"time"
)

// Broadcast is an announcement pushed to a graduation cohort range.
// Unlike blog posts it carries no author.
// swagger:model Broadcast
type Broadcast struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	DateTime time.Time `json:"dateTime"`
	FromYear int       `json:"fromYear"`
	ToYear   int       `json:"toYear"`
}

// NewBroadcast returns a Broadcast. ID and DateTime are assigned by the
// service on create.
func NewBroadcast(title, body string, fromYear, toYear int) *Broadcast {
	return &Broadcast{
		Title:    title,
		Body:     body,
		FromYear: fromYear,
		ToYear:   toYear,
	}
}

// BroadcastPatch is a partial update. Nil fields are left unchanged; ID and
// DateTime are not patchable.
type BroadcastPatch struct {
	Title    *string
	Body     *string
	FromYear *int
	ToYear   *int
}

// Apply merges the patch into b.
func (patch BroadcastPatch) Apply(b *Broadcast) {
	if patch.Title != nil {
		b.Title = *patch.Title
	}
	if patch.Body != nil {
		b.Body = *patch.Body
	}
	if patch.FromYear != nil {
		b.FromYear = *patch.FromYear
	}
	if patch.ToYear != nil {
		b.ToYear = *patch.ToYear
	}
}

// BroadcastRepository defines the interface for broadcast storage.
type BroadcastRepository interface {
	List(ctx context.Context, rng DateRange) ([]*Broadcast, error)
	GetByID(ctx context.Context, id string) (*Broadcast, error)
	Create(ctx context.Context, b *Broadcast) error
	Update(ctx context.Context, id string, patch BroadcastPatch) (*Broadcast, error)
	Delete(ctx context.Context, id string) error
}

// BroadcastService defines the business logic for broadcasts.
type BroadcastService interface {
	ListBroadcasts(ctx context.Context, rng DateRange) ([]*Broadcast, error)
	GetBroadcast(ctx context.Context, id string) (*Broadcast, error)
	CreateBroadcast(ctx context.Context, b *Broadcast) (*Broadcast, error)
	UpdateBroadcast(ctx context.Context, id string, patch BroadcastPatch) (*Broadcast, error)
	DeleteBroadcast(ctx context.Context, id string) error
}
