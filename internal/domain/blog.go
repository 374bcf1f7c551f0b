package domain

import (
	"context"
	"time"
)

// DefaultAuthor is stamped on every admin-created blog post.
const DefaultAuthor = "Admin"

// BlogPost is a dashboard article targeted at a graduation cohort range.
// swagger:model BlogPost
type BlogPost struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Body     string    `json:"body"`
	DateTime time.Time `json:"dateTime"`
	FromYear int       `json:"fromYear"`
	ToYear   int       `json:"toYear"`
	Author   string    `json:"author"`
}

// NewBlogPost returns a BlogPost with the default author set.
// ID and DateTime are assigned by the service on create.
func NewBlogPost(title, body string, fromYear, toYear int) *BlogPost {
	return &BlogPost{
		Title:    title,
		Body:     body,
		FromYear: fromYear,
		ToYear:   toYear,
		Author:   DefaultAuthor,
	}
}

// BlogPatch is a partial update. Nil fields are left unchanged; ID and
// DateTime are not patchable.
type BlogPatch struct {
	Title    *string
	Body     *string
	FromYear *int
	ToYear   *int
	Author   *string
}

// Apply merges the patch into p.
func (patch BlogPatch) Apply(p *BlogPost) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Body != nil {
		p.Body = *patch.Body
	}
	if patch.FromYear != nil {
		p.FromYear = *patch.FromYear
	}
	if patch.ToYear != nil {
		p.ToYear = *patch.ToYear
	}
	if patch.Author != nil {
		p.Author = *patch.Author
	}
}

// BlogRepository defines the interface for blog post storage.
type BlogRepository interface {
	List(ctx context.Context, rng DateRange) ([]*BlogPost, error)
	GetByID(ctx context.Context, id string) (*BlogPost, error)
	Create(ctx context.Context, post *BlogPost) error
	Update(ctx context.Context, id string, patch BlogPatch) (*BlogPost, error)
	Delete(ctx context.Context, id string) error
}

// BlogService defines the business logic for blog posts.
type BlogService interface {
	ListBlogPosts(ctx context.Context, rng DateRange) ([]*BlogPost, error)
	GetBlogPost(ctx context.Context, id string) (*BlogPost, error)
	CreateBlogPost(ctx context.Context, post *BlogPost) (*BlogPost, error)
	UpdateBlogPost(ctx context.Context, id string, patch BlogPatch) (*BlogPost, error)
	DeleteBlogPost(ctx context.Context, id string) error
}
