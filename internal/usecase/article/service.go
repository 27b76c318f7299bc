package article

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/metrics"
	"article-api/internal/repository"
)

// UpdateMode selects how Update treats fields missing from the request.
type UpdateMode string

const (
	// UpdateModeOverwrite writes title and content unconditionally; omitted values become NULL.
	UpdateModeOverwrite UpdateMode = "overwrite"
	// UpdateModeMerge writes only the supplied fields.
	UpdateModeMerge UpdateMode = "merge"
)

// ParseUpdateMode converts a configuration value to an UpdateMode.
// The empty string selects UpdateModeOverwrite.
func ParseUpdateMode(s string) (UpdateMode, error) {
	switch UpdateMode(strings.ToLower(strings.TrimSpace(s))) {
	case "", UpdateModeOverwrite:
		return UpdateModeOverwrite, nil
	case UpdateModeMerge:
		return UpdateModeMerge, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownUpdateMode, s)
	}
}

// CreateInput represents the input parameters for creating a new article.
type CreateInput struct {
	Title   string
	Content string
}

// UpdateInput represents the input parameters for updating an existing article.
// Which nil fields are written depends on the service's UpdateMode.
type UpdateInput struct {
	ID        uint64
	Title     *string
	Content   *string
	ViewNum   *uint32
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Service provides article management use cases.
// It handles business logic for article operations and delegates persistence to the repository.
type Service struct {
	Repo repository.ArticleRepository
	Mode UpdateMode
}

// List retrieves all articles from the repository.
func (s *Service) List(ctx context.Context) ([]*entity.Article, error) {
	articles, err := s.Repo.List(ctx)
	observe("list", err)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

// Get retrieves a single article by its ID.
// Returns ErrArticleNotFound if the article does not exist.
func (s *Service) Get(ctx context.Context, id uint64) (*entity.Article, error) {
	article, err := s.Repo.Get(ctx, id)
	if err != nil {
		observe("get", err)
		return nil, fmt.Errorf("get article: %w", err)
	}
	if article == nil {
		observe("get", ErrArticleNotFound)
		return nil, ErrArticleNotFound
	}
	observe("get", nil)
	return article, nil
}

// Create inserts a new article and returns the id the database assigned.
func (s *Service) Create(ctx context.Context, in CreateInput) (uint64, error) {
	id, err := s.Repo.Create(ctx, in.Title, in.Content)
	observe("create", err)
	if err != nil {
		return 0, fmt.Errorf("create article: %w", err)
	}
	return id, nil
}

// Update modifies the article identified by in.ID according to s.Mode.
// A missing row is not reported; the statement simply affects nothing.
func (s *Service) Update(ctx context.Context, in UpdateInput) error {
	var err error
	switch s.Mode {
	case UpdateModeMerge:
		err = s.Repo.Patch(ctx, repository.ArticlePatch{
			ID:        in.ID,
			Title:     in.Title,
			Content:   in.Content,
			ViewNum:   in.ViewNum,
			UpdatedAt: in.UpdatedAt,
			DeletedAt: in.DeletedAt,
		})
	default:
		err = s.Repo.Update(ctx, in.ID, in.Title, in.Content)
	}
	observe("update", err)
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	return nil
}

// Delete removes the article with the given ID. Deleting a missing id succeeds.
func (s *Service) Delete(ctx context.Context, id uint64) error {
	err := s.Repo.Delete(ctx, id)
	observe("delete", err)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}

func observe(op string, err error) {
	switch {
	case err == nil:
		metrics.RecordArticleOperation(op, metrics.ResultSuccess)
	case errors.Is(err, ErrArticleNotFound):
		metrics.RecordArticleOperation(op, metrics.ResultNotFound)
	default:
		metrics.RecordArticleOperation(op, metrics.ResultError)
	}
}
