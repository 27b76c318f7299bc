// Package repository declares the persistence contracts used by the use case layer.
package repository

import (
	"context"
	"errors"
	"time"

	"article-api/internal/domain/entity"
)

// ErrUnavailable is returned (wrapped) when the store refuses calls without trying,
// for example while a circuit breaker is open.
var ErrUnavailable = errors.New("repository unavailable")

// ArticlePatch carries the columns a merge-mode update may write.
// Nil fields are left untouched.
type ArticlePatch struct {
	ID        uint64
	Title     *string
	Content   *string
	ViewNum   *uint32
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Empty reports whether the patch would not change any column.
func (p ArticlePatch) Empty() bool {
	return p.Title == nil && p.Content == nil && p.ViewNum == nil &&
		p.UpdatedAt == nil && p.DeletedAt == nil
}

// ArticleRepository issues one parameterized statement per call against the shared pool.
type ArticleRepository interface {
	// List returns every row in storage order. An empty table yields an empty slice.
	List(ctx context.Context) ([]*entity.Article, error)
	// Get returns the row with the given id.
	// Returns (nil, nil) if no row matches.
	Get(ctx context.Context, id uint64) (*entity.Article, error)
	// Create inserts a row with only title and content set and returns the generated id.
	Create(ctx context.Context, title, content string) (uint64, error)
	// Update overwrites title and content. Nil values are written as NULL.
	Update(ctx context.Context, id uint64, title, content *string) error
	// Patch writes only the non-nil fields of p. An empty patch issues no statement.
	Patch(ctx context.Context, p ArticlePatch) error
	// Delete removes the row. It succeeds whether or not a row matched.
	Delete(ctx context.Context, id uint64) error
	// Count returns the number of rows in the table.
	Count(ctx context.Context) (int64, error)
}
