package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"alumninexus/internal/domain"
)

type blogService struct {
	repo           domain.BlogRepository
	contextTimeout time.Duration
}

func NewBlogService(repo domain.BlogRepository, timeout time.Duration) domain.BlogService {
	return &blogService{
		repo:           repo,
		contextTimeout: timeout,
	}
}

func (s *blogService) ListBlogPosts(ctx context.Context, rng domain.DateRange) ([]*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	posts, err := s.repo.List(ctx, rng)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	if posts == nil {
		posts = []*domain.BlogPost{}
	}
	return posts, nil
}

func (s *blogService) GetBlogPost(ctx context.Context, id string) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	post, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) CreateBlogPost(ctx context.Context, post *domain.BlogPost) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	now := time.Now()
	post.ID = newRecordID("blog", now)
	post.DateTime = now
	post.Author = domain.DefaultAuthor

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) UpdateBlogPost(ctx context.Context, id string, patch domain.BlogPatch) (*domain.BlogPost, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	post, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("update blog post: %w", err)
	}
	return post, nil
}

func (s *blogService) DeleteBlogPost(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}
