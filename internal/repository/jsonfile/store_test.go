package jsonfile

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"alumninexus/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func mustTime(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := time.Parse(time.RFC3339, s)
	require.NoError(t, err)
	return ts
}

func newTestBlogRepo(t *testing.T) (domain.BlogRepository, string) {
	t.Helper()
	dir := t.TempDir()
	return NewBlogRepository(dir, testLogger), dir
}

func TestBlogRepository_ListCreatesEmptyFileLazily(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestBlogRepo(t)

	posts, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, posts)

	raw, err := os.ReadFile(filepath.Join(dir, "blogs.json"))
	require.NoError(t, err)
	var doc map[string][]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	records, ok := doc["blogs"]
	require.True(t, ok, "document must keep the blogs key")
	assert.Empty(t, records)
}

func TestBlogRepository_CorruptFileDegradesToEmpty(t *testing.T) {
	ctx := context.Background()
	repo, dir := newTestBlogRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "blogs.json"), []byte("{not json"), 0o644))

	posts, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestBlogRepository_ListSortsDescendingAndFilters(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlogRepo(t)

	times := []string{"2025-01-01T00:00:00Z", "2025-06-01T00:00:00Z", "2025-12-01T00:00:00Z"}
	for _, s := range times {
		post := domain.NewBlogPost("Post", "body text here", 2015, 2020)
		post.ID = "blog_" + s
		post.DateTime = mustTime(t, s)
		require.NoError(t, repo.Create(ctx, post))
	}

	all, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "blog_2025-12-01T00:00:00Z", all[0].ID)
	assert.Equal(t, "blog_2025-01-01T00:00:00Z", all[2].ID)

	from := mustTime(t, "2025-03-01T00:00:00Z")
	filtered, err := repo.List(ctx, domain.DateRange{From: &from})
	require.NoError(t, err)
	require.Len(t, filtered, 2)
	assert.Equal(t, "blog_2025-12-01T00:00:00Z", filtered[0].ID)
	assert.Equal(t, "blog_2025-06-01T00:00:00Z", filtered[1].ID)

	// Bounds are inclusive on both ends.
	to := mustTime(t, "2025-06-01T00:00:00Z")
	window, err := repo.List(ctx, domain.DateRange{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, window, 1)
	assert.Equal(t, "blog_2025-06-01T00:00:00Z", window[0].ID)
}

func TestBlogRepository_GetByID(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlogRepo(t)

	post := domain.NewBlogPost("Reunion recap", "it was a great evening", 2010, 2014)
	post.ID = "blog_1"
	post.DateTime = mustTime(t, "2025-01-01T00:00:00Z")
	require.NoError(t, repo.Create(ctx, post))

	got, err := repo.GetByID(ctx, "blog_1")
	require.NoError(t, err)
	assert.Equal(t, "Reunion recap", got.Title)
	assert.Equal(t, domain.DefaultAuthor, got.Author)

	_, err = repo.GetByID(ctx, "blog_missing")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlogRepository_UpdateMergesNotReplaces(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlogRepo(t)

	post := domain.NewBlogPost("Original title", "original body text", 2010, 2014)
	post.ID = "blog_1"
	post.DateTime = mustTime(t, "2025-01-01T00:00:00Z")
	require.NoError(t, repo.Create(ctx, post))

	newTitle := "Updated title"
	updated, err := repo.Update(ctx, "blog_1", domain.BlogPatch{Title: &newTitle})
	require.NoError(t, err)
	assert.Equal(t, "Updated title", updated.Title)
	assert.Equal(t, "original body text", updated.Body)
	assert.Equal(t, 2010, updated.FromYear)
	assert.Equal(t, mustTime(t, "2025-01-01T00:00:00Z"), updated.DateTime)

	// The merge survives a reload from disk.
	got, err := repo.GetByID(ctx, "blog_1")
	require.NoError(t, err)
	assert.Equal(t, "Updated title", got.Title)
	assert.Equal(t, "original body text", got.Body)

	_, err = repo.Update(ctx, "blog_missing", domain.BlogPatch{Title: &newTitle})
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBlogRepository_DeleteMissingLeavesCollectionUnchanged(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestBlogRepo(t)

	post := domain.NewBlogPost("Keep me", "still here after the miss", 2010, 2014)
	post.ID = "blog_1"
	post.DateTime = mustTime(t, "2025-01-01T00:00:00Z")
	require.NoError(t, repo.Create(ctx, post))

	before, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)

	err = repo.Delete(ctx, "blog_missing")
	require.ErrorIs(t, err, domain.ErrNotFound)

	after, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	assert.Equal(t, before, after)

	require.NoError(t, repo.Delete(ctx, "blog_1"))
	_, err = repo.GetByID(ctx, "blog_1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestBroadcastRepository_CreatePrepends(t *testing.T) {
	ctx := context.Background()
	repo := NewBroadcastRepository(t.TempDir(), testLogger)

	// Same timestamp so ordering comes from insert position, not sorting.
	ts := mustTime(t, "2025-01-01T00:00:00Z")
	for _, id := range []string{"bc_1", "bc_2"} {
		b := domain.NewBroadcast("Announcement", "read this please", 2000, 2030)
		b.ID = id
		b.DateTime = ts
		require.NoError(t, repo.Create(ctx, b))
	}

	list, err := repo.List(ctx, domain.DateRange{})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "bc_2", list[0].ID)
}

func TestEventRepository_RoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewEventRepository(t.TempDir(), testLogger)

	e := domain.NewEvent("Mentorship circle", domain.EventTypeGuidance,
		"2025-09-01", "Main hall", "Guidance for final years", 50, []string{"A. Mentor"})
	e.ID = "event_1"
	e.DateTime = mustTime(t, "2025-01-01T00:00:00Z")
	require.NoError(t, repo.Create(ctx, e))

	got, err := repo.GetByID(ctx, "event_1")
	require.NoError(t, err)
	assert.Equal(t, 0, got.RSVP)
	assert.Equal(t, []string{"A. Mentor"}, got.AlumniList)
	assert.Nil(t, got.FromYear)

	venue := "Auditorium"
	updated, err := repo.Update(ctx, "event_1", domain.EventPatch{Venue: &venue})
	require.NoError(t, err)
	assert.Equal(t, "Auditorium", updated.Venue)
	assert.Equal(t, "Mentorship circle", updated.Title)

	require.NoError(t, repo.Delete(ctx, "event_1"))
	_, err = repo.GetByID(ctx, "event_1")
	require.ErrorIs(t, err, domain.ErrNotFound)
}
