package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/domain"
)

// CreateEventRequest is the request body for POST /api/events.
type CreateEventRequest struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Venue       string   `json:"venue"`
	Capacity    *int     `json:"capacity"`
	Description string   `json:"description"`
	AlumniList  []string `json:"alumniList"`
	FromYear    *int     `json:"fromYear"`
	ToYear      *int     `json:"toYear"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Type) == "" ||
		strings.TrimSpace(c.Date) == "" || strings.TrimSpace(c.Venue) == "" ||
		strings.TrimSpace(c.Description) == "" {
		return []string{"Missing required fields: title, type, date, venue, description"}
	}
	var errs []string
	if !domain.ValidEventType(domain.EventType(c.Type)) {
		errs = append(errs, "Invalid event type. Must be 'gathering' or 'guidance'")
	}
	if domain.EventType(c.Type) == domain.EventTypeGuidance && len(trimmedNames(c.AlumniList)) == 0 {
		errs = append(errs, "Alumni list is required for guidance events")
	}
	if c.Capacity != nil && *c.Capacity <= 0 {
		errs = append(errs, "Capacity must be a positive number")
	}
	if c.FromYear != nil && c.ToYear != nil {
		errs = append(errs, validateYearRange(*c.FromYear, *c.ToYear)...)
	}
	return errs
}

// UpdateEventRequest is the request body for PUT /api/events/{id}.
type UpdateEventRequest struct {
	Title       *string   `json:"title"`
	Type        *string   `json:"type"`
	Date        *string   `json:"date"`
	Venue       *string   `json:"venue"`
	Capacity    *int      `json:"capacity"`
	Description *string   `json:"description"`
	AlumniList  *[]string `json:"alumniList"`
	FromYear    *int      `json:"fromYear"`
	ToYear      *int      `json:"toYear"`
}

// Validate implements Validator. Each rule applies only when its field is
// supplied; switching the type to guidance additionally requires alumni in
// the same request, so an event can never end up guidance with nobody listed.
func (u UpdateEventRequest) Validate() []string {
	var errs []string
	if u.Type != nil && !domain.ValidEventType(domain.EventType(*u.Type)) {
		errs = append(errs, "Invalid event type. Must be 'gathering' or 'guidance'")
	}
	if u.Type != nil && domain.EventType(*u.Type) == domain.EventTypeGuidance &&
		(u.AlumniList == nil || len(trimmedNames(*u.AlumniList)) == 0) {
		errs = append(errs, "Alumni list is required for guidance events")
	}
	if u.Capacity != nil && *u.Capacity <= 0 {
		errs = append(errs, "Capacity must be a positive number")
	}
	if u.FromYear != nil && u.ToYear != nil && *u.FromYear > *u.ToYear {
		errs = append(errs, "fromYear cannot be greater than toYear")
	}
	return errs
}

func (u UpdateEventRequest) patch() domain.EventPatch {
	p := domain.EventPatch{
		Capacity: u.Capacity,
		FromYear: u.FromYear,
		ToYear:   u.ToYear,
	}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		p.Title = &title
	}
	if u.Type != nil {
		typ := domain.EventType(strings.TrimSpace(*u.Type))
		p.Type = &typ
	}
	if u.Date != nil {
		date := strings.TrimSpace(*u.Date)
		p.Date = &date
	}
	if u.Venue != nil {
		venue := strings.TrimSpace(*u.Venue)
		p.Venue = &venue
	}
	if u.Description != nil {
		desc := strings.TrimSpace(*u.Description)
		p.Description = &desc
	}
	if u.AlumniList != nil {
		names := trimmedNames(*u.AlumniList)
		p.AlumniList = &names
	}
	return p
}

// trimmedNames drops blank entries so a list of whitespace does not pass the
// guidance requirement.
func trimmedNames(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			out = append(out, n)
		}
	}
	return out
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List events
// @Description Returns all events sorted newest first. Events take no date query parameters.
// @Tags events
// @Produce json
// @Success 200 {object} helpers.APIResponse "data is an array of events, count its length"
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.ListEvents(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch events")
		return
	}
	helpers.WriteJSONList(w, http.StatusOK, events, len(events))
}

// GetEvent godoc
// @Summary Get an event by ID
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "data contains the event"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	ev, err := c.Service.GetEvent(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch event")
		return
	}
	helpers.WriteJSONData(w, http.StatusOK, ev)
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates an event. rsvp starts at 0 and capacity defaults to 100 when omitted.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event fields"
// @Success 201 {object} helpers.APIResponse "data contains the created event"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	capacity := 0
	if req.Capacity != nil {
		capacity = *req.Capacity
	}
	ev := domain.NewEvent(
		strings.TrimSpace(req.Title),
		domain.EventType(strings.TrimSpace(req.Type)),
		strings.TrimSpace(req.Date),
		strings.TrimSpace(req.Venue),
		strings.TrimSpace(req.Description),
		capacity,
		trimmedNames(req.AlumniList),
	)
	ev.FromYear = req.FromYear
	ev.ToYear = req.ToYear
	created, err := c.Service.CreateEvent(r.Context(), ev)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create event")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusCreated, created, "Event created successfully")
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Merges the supplied fields into the event; omitted fields are unchanged.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param event body UpdateEventRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated event"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{id} [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ev, err := c.Service.UpdateEvent(r.Context(), id, req.patch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update event")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusOK, ev, "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Tags events
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} helpers.APIResponse "message confirms deletion"
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/events/{id} [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteEvent(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Event not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete event")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Event deleted successfully")
}
