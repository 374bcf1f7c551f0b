// Package client is a typed API client for the Alumni Nexus backend. One
// HTTP call per operation, no retries or caching; the feed cache in feed.go
// layers optimistic list state on top.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"alumninexus/internal/domain"
)

type Client struct {
	baseURL string
	http    *http.Client
	token   string
}

type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithToken sets the Bearer role token sent with every request.
func WithToken(token string) Option {
	return func(c *Client) { c.token = token }
}

// New returns a Client for the given base URL, e.g. "http://localhost:8080".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// SetToken replaces the Bearer role token, e.g. after SelectRole.
func (c *Client) SetToken(token string) { c.token = token }

// envelope mirrors the server's response shape.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
	Count   *int            `json:"count"`
}

// do performs one request and decodes the envelope into out (when non-nil).
// A failure envelope becomes an error built from its error string; a success
// envelope missing expected data becomes a generic error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	var reqBody *bytes.Buffer
	if body != nil {
		reqBody = &bytes.Buffer{}
		if err := json.NewEncoder(reqBody).Encode(body); err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
	}
	var req *http.Request
	var err error
	if reqBody != nil {
		req, err = http.NewRequestWithContext(ctx, method, u, reqBody)
	} else {
		req, err = http.NewRequestWithContext(ctx, method, u, nil)
	}
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s %s: decode response (status %d): %w", method, path, resp.StatusCode, err)
	}
	if !env.Success {
		if env.Error != "" {
			return fmt.Errorf("%s", env.Error)
		}
		return fmt.Errorf("request failed with status %d", resp.StatusCode)
	}
	if out != nil {
		if len(env.Data) == 0 {
			return fmt.Errorf("response carried no data")
		}
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("%s %s: decode data: %w", method, path, err)
		}
	}
	return nil
}

func rangeQuery(rng domain.DateRange) url.Values {
	q := url.Values{}
	if rng.From != nil {
		q.Set("fromDate", rng.From.Format(time.RFC3339))
	}
	if rng.To != nil {
		q.Set("toDate", rng.To.Format(time.RFC3339))
	}
	return q
}

// SelectRole asks the server for a role token and stores it on the client.
func (c *Client) SelectRole(ctx context.Context, role string) (string, error) {
	var out struct {
		Role  string `json:"role"`
		Token string `json:"token"`
	}
	body := map[string]string{"role": role}
	if err := c.do(ctx, http.MethodPost, "/api/auth/role", nil, body, &out); err != nil {
		return "", err
	}
	c.token = out.Token
	return out.Token, nil
}

// CurrentRole returns the role the server sees for the stored token.
func (c *Client) CurrentRole(ctx context.Context) (string, error) {
	var out struct {
		Role string `json:"role"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/auth/role", nil, nil, &out); err != nil {
		return "", err
	}
	return out.Role, nil
}

// Blogs

// BlogCreate carries the writable fields of a new blog post.
type BlogCreate struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	FromYear int    `json:"fromYear"`
	ToYear   int    `json:"toYear"`
}

// BlogUpdate carries a partial blog update; nil fields are omitted.
type BlogUpdate struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	FromYear *int    `json:"fromYear,omitempty"`
	ToYear   *int    `json:"toYear,omitempty"`
}

func (c *Client) ListBlogs(ctx context.Context, rng domain.DateRange) ([]*domain.BlogPost, error) {
	var out []*domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/api/blogs", rangeQuery(rng), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBlog(ctx context.Context, id string) (*domain.BlogPost, error) {
	var out domain.BlogPost
	if err := c.do(ctx, http.MethodGet, "/api/blogs/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBlog(ctx context.Context, in BlogCreate) (*domain.BlogPost, error) {
	var out domain.BlogPost
	if err := c.do(ctx, http.MethodPost, "/api/blogs", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBlog(ctx context.Context, id string, in BlogUpdate) (*domain.BlogPost, error) {
	var out domain.BlogPost
	if err := c.do(ctx, http.MethodPut, "/api/blogs/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/blogs/"+url.PathEscape(id), nil, nil, nil)
}

// Broadcasts

type BroadcastCreate struct {
	Title    string `json:"title"`
	Body     string `json:"body"`
	FromYear int    `json:"fromYear"`
	ToYear   int    `json:"toYear"`
}

type BroadcastUpdate struct {
	Title    *string `json:"title,omitempty"`
	Body     *string `json:"body,omitempty"`
	FromYear *int    `json:"fromYear,omitempty"`
	ToYear   *int    `json:"toYear,omitempty"`
}

func (c *Client) ListBroadcasts(ctx context.Context, rng domain.DateRange) ([]*domain.Broadcast, error) {
	var out []*domain.Broadcast
	if err := c.do(ctx, http.MethodGet, "/api/broadcasts", rangeQuery(rng), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetBroadcast(ctx context.Context, id string) (*domain.Broadcast, error) {
	var out domain.Broadcast
	if err := c.do(ctx, http.MethodGet, "/api/broadcasts/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateBroadcast(ctx context.Context, in BroadcastCreate) (*domain.Broadcast, error) {
	var out domain.Broadcast
	if err := c.do(ctx, http.MethodPost, "/api/broadcasts", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateBroadcast(ctx context.Context, id string, in BroadcastUpdate) (*domain.Broadcast, error) {
	var out domain.Broadcast
	if err := c.do(ctx, http.MethodPut, "/api/broadcasts/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteBroadcast(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/broadcasts/"+url.PathEscape(id), nil, nil, nil)
}

// Events

type EventCreate struct {
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Date        string   `json:"date"`
	Venue       string   `json:"venue"`
	Capacity    *int     `json:"capacity,omitempty"`
	Description string   `json:"description"`
	AlumniList  []string `json:"alumniList,omitempty"`
	FromYear    *int     `json:"fromYear,omitempty"`
	ToYear      *int     `json:"toYear,omitempty"`
}

type EventUpdate struct {
	Title       *string   `json:"title,omitempty"`
	Type        *string   `json:"type,omitempty"`
	Date        *string   `json:"date,omitempty"`
	Venue       *string   `json:"venue,omitempty"`
	Capacity    *int      `json:"capacity,omitempty"`
	Description *string   `json:"description,omitempty"`
	AlumniList  *[]string `json:"alumniList,omitempty"`
	FromYear    *int      `json:"fromYear,omitempty"`
	ToYear      *int      `json:"toYear,omitempty"`
}

func (c *Client) ListEvents(ctx context.Context) ([]*domain.Event, error) {
	var out []*domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetEvent(ctx context.Context, id string) (*domain.Event, error) {
	var out domain.Event
	if err := c.do(ctx, http.MethodGet, "/api/events/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateEvent(ctx context.Context, in EventCreate) (*domain.Event, error) {
	var out domain.Event
	if err := c.do(ctx, http.MethodPost, "/api/events", nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateEvent(ctx context.Context, id string, in EventUpdate) (*domain.Event, error) {
	var out domain.Event
	if err := c.do(ctx, http.MethodPut, "/api/events/"+url.PathEscape(id), nil, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteEvent(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/events/"+url.PathEscape(id), nil, nil, nil)
}
