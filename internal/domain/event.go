package domain

import (
	"context"
	"time"
)

// EventType is closed to exactly two values.
type EventType string

const (
	EventTypeGathering EventType = "gathering"
	EventTypeGuidance  EventType = "guidance"
)

// ValidEventType reports whether t is one of the two known event types.
func ValidEventType(t EventType) bool {
	return t == EventTypeGathering || t == EventTypeGuidance
}

// DefaultEventCapacity is used when a create request omits capacity.
const DefaultEventCapacity = 100

// Event is a gathering or guidance session. AlumniList holds denormalized
// display names, not references, and must be non-empty for guidance events.
// swagger:model Event
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Type        EventType `json:"type"`
	Date        string    `json:"date"` // calendar date of the event, YYYY-MM-DD
	Venue       string    `json:"venue"`
	Capacity    int       `json:"capacity"`
	RSVP        int       `json:"rsvp"`
	Description string    `json:"description"`
	AlumniList  []string  `json:"alumniList"`
	DateTime    time.Time `json:"dateTime"`
	FromYear    *int      `json:"fromYear"`
	ToYear      *int      `json:"toYear"`
}

// NewEvent returns an Event with RSVP zeroed. ID and DateTime are assigned
// by the service on create.
func NewEvent(title string, typ EventType, date, venue, description string, capacity int, alumniList []string) *Event {
	if alumniList == nil {
		alumniList = []string{}
	}
	return &Event{
		Title:       title,
		Type:        typ,
		Date:        date,
		Venue:       venue,
		Capacity:    capacity,
		RSVP:        0,
		Description: description,
		AlumniList:  alumniList,
	}
}

// EventPatch is a partial update. Nil fields are left unchanged; ID and
// DateTime are not patchable.
type EventPatch struct {
	Title       *string
	Type        *EventType
	Date        *string
	Venue       *string
	Capacity    *int
	Description *string
	AlumniList  *[]string
	FromYear    *int
	ToYear      *int
}

// Apply merges the patch into e.
func (patch EventPatch) Apply(e *Event) {
	if patch.Title != nil {
		e.Title = *patch.Title
	}
	if patch.Type != nil {
		e.Type = *patch.Type
	}
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.Venue != nil {
		e.Venue = *patch.Venue
	}
	if patch.Capacity != nil {
		e.Capacity = *patch.Capacity
	}
	if patch.Description != nil {
		e.Description = *patch.Description
	}
	if patch.AlumniList != nil {
		e.AlumniList = *patch.AlumniList
	}
	if patch.FromYear != nil {
		e.FromYear = patch.FromYear
	}
	if patch.ToYear != nil {
		e.ToYear = patch.ToYear
	}
}

// EventRepository defines the interface for event storage. Events are not
// date-filtered; List always returns the full collection.
type EventRepository interface {
	List(ctx context.Context) ([]*Event, error)
	GetByID(ctx context.Context, id string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, id string, patch EventPatch) (*Event, error)
	Delete(ctx context.Context, id string) error
}

// EventService defines the business logic for events.
type EventService interface {
	ListEvents(ctx context.Context) ([]*Event, error)
	GetEvent(ctx context.Context, id string) (*Event, error)
	CreateEvent(ctx context.Context, e *Event) (*Event, error)
	UpdateEvent(ctx context.Context, id string, patch EventPatch) (*Event, error)
	DeleteEvent(ctx context.Context, id string) error
}
