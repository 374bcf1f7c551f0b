package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"alumninexus/internal/delivery/http/helpers"
	"alumninexus/internal/domain"
)

// CreateBlogRequest is the request body for POST /api/blogs.
type CreateBlogRequest struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	FromYear *int   `json:"fromYear"`
	ToYear   *int   `json:"toYear"`
}

// Validate implements Validator.
func (c CreateBlogRequest) Validate() []string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Body) == "" || c.FromYear == nil || c.ToYear == nil {
		return []string{"Missing required fields: title, body, fromYear, toYear"}
	}
	var errs []string
	errs = append(errs, validateYearRange(*c.FromYear, *c.ToYear)...)
	if len(strings.TrimSpace(c.Title)) < 3 {
		errs = append(errs, "Title must be at least 3 characters long")
	}
	if len(strings.TrimSpace(c.Body)) < 10 {
		errs = append(errs, "Blog body must be at least 10 characters long")
	}
	return errs
}

// UpdateBlogRequest is the request body for PUT /api/blogs/{id}.
// All fields are optional; omitted fields are unchanged. id and dateTime
// are never patchable.
type UpdateBlogRequest struct {
	Title    *string `json:"title"`
	Body     *string `json:"body"`
	FromYear *int    `json:"fromYear"`
	ToYear   *int    `json:"toYear"`
	Author   *string `json:"author"`
}

// Validate implements Validator. Each rule applies only when its field is supplied.
func (u UpdateBlogRequest) Validate() []string {
	var errs []string
	if u.FromYear != nil && u.ToYear != nil && *u.FromYear > *u.ToYear {
		errs = append(errs, "fromYear cannot be greater than toYear")
	}
	if u.Title != nil && len(strings.TrimSpace(*u.Title)) < 3 {
		errs = append(errs, "Title must be at least 3 characters long")
	}
	if u.Body != nil && len(strings.TrimSpace(*u.Body)) < 10 {
		errs = append(errs, "Blog body must be at least 10 characters long")
	}
	return errs
}

func (u UpdateBlogRequest) patch() domain.BlogPatch {
	p := domain.BlogPatch{FromYear: u.FromYear, ToYear: u.ToYear}
	if u.Title != nil {
		title := strings.TrimSpace(*u.Title)
		p.Title = &title
	}
	if u.Body != nil {
		body := strings.TrimSpace(*u.Body)
		p.Body = &body
	}
	if u.Author != nil {
		author := strings.TrimSpace(*u.Author)
		p.Author = &author
	}
	return p
}

type BlogController struct {
	Logger  *slog.Logger
	Service domain.BlogService
}

func NewBlogController(logger *slog.Logger, svc domain.BlogService) *BlogController {
	return &BlogController{
		Logger:  logger,
		Service: svc,
	}
}

// ListBlogs godoc
// @Summary List blog posts
// @Description Returns all blog posts sorted newest first. Optional fromDate/toDate bound the creation time (inclusive).
// @Tags blogs
// @Produce json
// @Param fromDate query string false "Lower bound (YYYY-MM-DD or RFC 3339)"
// @Param toDate query string false "Upper bound (YYYY-MM-DD or RFC 3339)"
// @Success 200 {object} helpers.APIResponse "data is an array of blog posts, count its length"
// @Failure 400 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/blogs [get]
func (c *BlogController) ListBlogs(w http.ResponseWriter, r *http.Request) {
	rng, err := domain.ParseDateRange(r.URL.Query().Get("fromDate"), r.URL.Query().Get("toDate"))
	if err != nil {
		helpers.WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	posts, err := c.Service.ListBlogPosts(r.Context(), rng)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch blogs")
		return
	}
	helpers.WriteJSONList(w, http.StatusOK, posts, len(posts))
}

// GetBlog godoc
// @Summary Get a blog post by ID
// @Tags blogs
// @Produce json
// @Param id path string true "Blog post ID"
// @Success 200 {object} helpers.APIResponse "data contains the blog post"
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/blogs/{id} [get]
func (c *BlogController) GetBlog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	post, err := c.Service.GetBlogPost(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to fetch blog post")
		return
	}
	helpers.WriteJSONData(w, http.StatusOK, post)
}

// CreateBlog godoc
// @Summary Create a blog post
// @Description Creates a blog post. id, dateTime, and author are server-assigned.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param blog body CreateBlogRequest true "Blog post fields"
// @Success 201 {object} helpers.APIResponse "data contains the created blog post"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/blogs [post]
func (c *BlogController) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var req CreateBlogRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post := domain.NewBlogPost(strings.TrimSpace(req.Title), strings.TrimSpace(req.Body), *req.FromYear, *req.ToYear)
	created, err := c.Service.CreateBlogPost(r.Context(), post)
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to create blog post")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusCreated, created, "Blog post created successfully")
}

// UpdateBlog godoc
// @Summary Update a blog post
// @Description Merges the supplied fields into the blog post; omitted fields are unchanged.
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog post ID"
// @Param blog body UpdateBlogRequest true "Fields to update (all optional)"
// @Success 200 {object} helpers.APIResponse "data contains the updated blog post"
// @Failure 400 {object} helpers.APIResponse
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/blogs/{id} [put]
func (c *BlogController) UpdateBlog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateBlogRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	post, err := c.Service.UpdateBlogPost(r.Context(), id, req.patch())
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to update blog post")
		return
	}
	helpers.WriteJSONDataMessage(w, http.StatusOK, post, "Blog post updated successfully")
}

// DeleteBlog godoc
// @Summary Delete a blog post
// @Tags blogs
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog post ID"
// @Success 200 {object} helpers.APIResponse "message confirms deletion"
// @Failure 401 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/blogs/{id} [delete]
func (c *BlogController) DeleteBlog(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteBlogPost(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, "Blog post not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, "Failed to delete blog post")
		return
	}
	helpers.WriteJSONMessage(w, http.StatusOK, "Blog post deleted successfully")
}
