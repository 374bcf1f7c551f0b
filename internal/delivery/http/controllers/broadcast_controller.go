package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/domain"
)

// CreateBroadcastRequest is the request body for POST /api/broadcasts.
// Broadcasts carry no length minimums on title or body.
type CreateBroadcastRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	FromYear *int   `json:"fromYear"`
	ToYear   *int   `json:"toYear"`
}

// Validate implements Validator.
func (c CreateBroadcastRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Body) == "" || c.FromYear == nil || c.ToYear == nil {
		return []string{"Missing required fields: title, body, fromYear, toYear"}
	}
	return validateYearRange(*c.FromYear, *c.ToYear)
}

// UpdateBroadcastRequest is the request body for PUT /api/broadcasts/{id}.
type UpdateBroadcastRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	FromYear *int    `json:"fromYear"`
	ToYear   *int    `json:"toYear"`
}

// Validate implements Validator. The year ordering rule applies only when
// both bounds are supplied.
func (u UpdateBroadcastRequest) Validate() []string {
	if u.FromYear != nil && u.ToYear != nil && *u.FromYear > *u.ToYear {
		return []string{"fromYear cannot be greater than toYear"}
	}
	return nil
}

func (u UpdateBroadcastRequest) patch() domain.BroadcastPatch {
	p := domain.BroadcastPatch{FromYear: u.FromYear, ToYear: u.ToYear}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		p.Title = &title
	}
	if u.Body != nil {
		body := strings.TrimSpace(*u.Body)
		p.Body = &body
	}
	return p
}

type BroadcastController struct {
	Logger  *slog.Logger
	Service domain.BroadcastService
}

func NewBroadcastController(logger *slog.Logger, svc domain.BroadcastService) *BroadcastController {
	return &BroadcastController{
		Logger:  logger,
		Service: svc,
	}
}

// ListBroadcasts godoc
// @Summary List broadcasts
// @Description Returns all broadcasts sorted newest first. Optional fromDate/toDate bound the creation time (inclusive).
// @Tags broadcasts
// @Produce json
// @Param fromDate query string false "Lower bound (YYYY-MM-DD or RFC 3339)"
// @Param toDate query string false "Upper bound (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} helpers.APIResponse "data is an array of broadcasts, count its length"
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/broadcasts [get]
func (c *BroadcastController) ListBroadcasts(w http.ResponseWriter, r *http.Request) {
	rng, err := domain.ParseDateRange(r.URL.Query().Get("fromDate"), r.URL.Query().Get("toDate"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	broadcasts, err := c.Service.ListBroadcasts(r.Context(), rng)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch broadcasts")
		return
	}
	helpers.WriteJSONList(w, http.StatusOK, broadcasts, len(broadcasts))
}

// GetBroadcast godoc
// @Summary Get a broadcast by ID
// @Tags broadcasts
// @Produce json
// @Param id path string true "Broadcast ID"
// @Success 200 {object} helpers.APIResponse "data contains the broadcast"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/broadcasts/{id} [get]
func (c *BroadcastController) GetBroadcast(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	b, err := c.Service.GetBroadcast(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Broadcast not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch broadcast")
		return
	}
	helpers.WriteJSONData(w, http.StatusOK, b)
}

// CreateBroadcast godoc
// @Summary Create a broadcast
// @Description Creates a broadcast and, when configured, notifies the broadcast mailing list.
// @Tags broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param broadcast body CreateBroadcastRequest true "Broadcast fields"
// @Success 201 {object} helpers.APIResponse "data contains the created broadcast"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/broadcasts [post]
func (c *BroadcastController) CreateBroadcast(w http.ResponseWriter, r *http.Request) {
	var req CreateBroadcastRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	b := domain.NewBroadcast(strings.TrimSpace(req.Title), strings.TrimSpace(req.Body), *req.FromYear, *req.ToYear)
	created, err := c.Service.CreateBroadcast(r.Context(), b)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create broadcast")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusCreated, created, "Broadcast created successfully")
}

// UpdateBroadcast godoc
// @Summary Update a broadcast
// @Description Merges the supplied fields into the broadcast; omitted fields are unchanged.
// @Tags broadcasts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Broadcast ID"
// @Param broadcast body UpdateBroadcastRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated broadcast"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/broadcasts/{id} [put]
func (c *BroadcastController) UpdateBroadcast(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateBroadcastRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	b, err := c.Service.UpdateBroadcast(r.Context(), id, req.patch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Broadcast not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update broadcast")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusOK, b, "Broadcast updated successfully")
}

// DeleteBroadcast godoc
// @Summary Delete a broadcast
// @Tags broadcasts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Broadcast ID"
// @Success 200 {object} helpers.APIResponse "message confirms deletion"
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/broadcasts/{id} [delete]
func (c *BroadcastController) DeleteBroadcast(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteBroadcast(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Broadcast not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete broadcast")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Broadcast deleted successfully")
}
