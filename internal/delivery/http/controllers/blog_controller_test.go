package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"alumninexus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeBlogService implements domain.BlogService for handler tests.
type fakeBlogService struct {
	posts     []*domain.BlogPost
	err       error
	lastRange domain.DateRange
	deleted   []string
}

func (f *fakeBlogService) ListBlogPosts(ctx context.Context, rng domain.DateRange) ([]*domain.BlogPost, error) {
	f.lastRange = rng
	if f.err != nil {
		return nil, f.err
	}
	return f.posts, nil
}

func (f *fakeBlogService) GetBlogPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlogService) CreateBlogPost(ctx context.Context, p *domain.BlogPost) (*domain.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	p.ID = "blog_1_abc"
	p.Author = domain.DefaultAuthor
	f.posts = append([]*domain.BlogPost{p}, f.posts...)
	return p, nil
}

func (f *fakeBlogService) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPatch) (*domain.BlogPost, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, p := range f.posts {
		if p.ID == id {
			patch.Apply(p)
			return p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeBlogService) DeleteBlogPost(ctx context.Context, id string) error {
	if f.err != nil {
		return f.err
	}
	for i, p := range f.posts {
		if p.ID == id {
			f.posts = append(f.posts[:i], f.posts[i+1:]...)
			f.deleted = append(f.deleted, id)
			return nil
		}
	}
	return domain.ErrNotFound
}

func decodeEnvelope(t *testing.T, body *bytes.Buffer) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.NewDecoder(body).Decode(&out))
	return out
}

func TestBlogController_CreateBlog_Validation(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		wantStatus     int
		wantBodySubstr string
	}{
		{
			name:           "success",
			body:           `{"title":"Reunion recap","body":"It was a great evening all around.","fromYear":2015,"toYear":2020}`,
			wantStatus:     http.StatusCreated,
			wantBodySubstr: "Blog post created successfully",
		},
		{
			name:           "invalid json",
			body:           `{invalid`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "invalid request body",
		},
		{
			name:           "missing fields",
			body:           `{"title":"Only a title"}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "Missing required fields: title, body, fromYear, toYear",
		},
		{
			name:           "title too short",
			body:           `{"title":"ab","body":"long enough body text","fromYear":2015,"toYear":2020}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "Title must be at least 3 characters long",
		},
		{
			name:           "body too short",
			body:           `{"title":"Reunion","body":"short","fromYear":2015,"toYear":2020}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "Blog body must be at least 10 characters long",
		},
		{
			name:           "fromYear after toYear",
			body:           `{"title":"Reunion","body":"long enough body text","fromYear":2021,"toYear":2020}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "fromYear cannot be greater than toYear",
		},
		{
			name:           "year out of bounds",
			body:           `{"title":"Reunion","body":"long enough body text","fromYear":1850,"toYear":2020}`,
			wantStatus:     http.StatusBadRequest,
			wantBodySubstr: "Invalid year range",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeBlogService{}
			ctrl := NewBlogController(testLogger, fake)
			req := httptest.NewRequest(http.MethodPost, "/api/blogs", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rr := httptest.NewRecorder()

			ctrl.CreateBlog(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Contains(t, rr.Body.String(), tt.wantBodySubstr, "response body")

			out := decodeEnvelope(t, rr.Body)
			if tt.wantStatus == http.StatusCreated {
				assert.Equal(t, true, out["success"])
				data := out["data"].(map[string]any)
				assert.Equal(t, "blog_1_abc", data["id"])
				assert.Equal(t, "Admin", data["author"])
			} else {
				assert.Equal(t, false, out["success"])
			}
		})
	}
}

func TestBlogController_ListBlogs(t *testing.T) {
	fake := &fakeBlogService{posts: []*domain.BlogPost{
		{ID: "blog_2_b", Title: "Second"},
		{ID: "blog_1_a", Title: "First"},
	}}
	ctrl := NewBlogController(testLogger, fake)
	req := httptest.NewRequest(http.MethodGet, "/api/blogs?fromDate=2025-01-01", nil)
	rr := httptest.NewRecorder()

	ctrl.ListBlogs(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeEnvelope(t, rr.Body)
	assert.Equal(t, true, out["success"])
	assert.Equal(t, float64(2), out["count"])
	require.NotNil(t, fake.lastRange.From, "fromDate should be passed through")
	assert.Nil(t, fake.lastRange.To)
}

func TestBlogController_ListBlogs_BadDate(t *testing.T) {
	ctrl := NewBlogController(testLogger, &fakeBlogService{})
	req := httptest.NewRequest(http.MethodGet, "/api/blogs?fromDate=yesterday", nil)
	rr := httptest.NewRecorder()

	ctrl.ListBlogs(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestBlogController_ListBlogs_ServiceError(t *testing.T) {
	ctrl := NewBlogController(testLogger, &fakeBlogService{err: errors.New("disk gone")})
	req := httptest.NewRequest(http.MethodGet, "/api/blogs", nil)
	rr := httptest.NewRecorder()

	ctrl.ListBlogs(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, rr.Body.String(), "Failed to fetch blogs")
	assert.NotContains(t, rr.Body.String(), "disk gone", "internal error detail must not leak")
}

func TestBlogController_GetBlog_NotFound(t *testing.T) {
	ctrl := NewBlogController(testLogger, &fakeBlogService{})
	req := httptest.NewRequest(http.MethodGet, "/api/blogs/blog_9_zzz", nil)
	req.SetPathValue("id", "blog_9_zzz")
	rr := httptest.NewRecorder()

	ctrl.GetBlog(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	out := decodeEnvelope(t, rr.Body)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Blog post not found", out["error"])
}

func TestBlogController_UpdateBlog(t *testing.T) {
	fake := &fakeBlogService{posts: []*domain.BlogPost{
		{ID: "blog_1_a", Title: "Before", Body: "original body text", FromYear: 2015, ToYear: 2020},
	}}
	ctrl := NewBlogController(testLogger, fake)
	req := httptest.NewRequest(http.MethodPut, "/api/blogs/blog_1_a", bytes.NewBufferString(`{"title":"After party"}`))
	req.SetPathValue("id", "blog_1_a")
	rr := httptest.NewRecorder()

	ctrl.UpdateBlog(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	out := decodeEnvelope(t, rr.Body)
	data := out["data"].(map[string]any)
	assert.Equal(t, "After party", data["title"])
	assert.Equal(t, "original body text", data["body"], "omitted fields keep their values")
	assert.Contains(t, out["message"], "updated successfully")
}

func TestBlogController_UpdateBlog_ValidatesSuppliedFields(t *testing.T) {
	ctrl := NewBlogController(testLogger, &fakeBlogService{})
	req := httptest.NewRequest(http.MethodPut, "/api/blogs/blog_1_a", bytes.NewBufferString(`{"title":"ab"}`))
	req.SetPathValue("id", "blog_1_a")
	rr := httptest.NewRecorder()

	ctrl.UpdateBlog(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "Title must be at least 3 characters long")
}

func TestBlogController_DeleteBlog(t *testing.T) {
	fake := &fakeBlogService{posts: []*domain.BlogPost{{ID: "blog_1_a"}}}
	ctrl := NewBlogController(testLogger, fake)

	req := httptest.NewRequest(http.MethodDelete, "/api/blogs/blog_1_a", nil)
	req.SetPathValue("id", "blog_1_a")
	rr := httptest.NewRecorder()
	ctrl.DeleteBlog(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "Blog post deleted successfully")

	// A second delete of the same id is a 404.
	req = httptest.NewRequest(http.MethodDelete, "/api/blogs/blog_1_a", nil)
	req.SetPathValue("id", "blog_1_a")
	rr = httptest.NewRecorder()
	ctrl.DeleteBlog(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	out := decodeEnvelope(t, rr.Body)
	assert.Equal(t, false, out["success"])
	assert.Equal(t, "Blog post not found", out["error"])
}
