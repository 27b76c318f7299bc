package circuitbreaker

import (
	"context"

	"article-api/internal/domain/entity"
	"article-api/internal/repository"
)

// ArticleRepo protects an ArticleRepository with a circuit breaker.
// While the breaker rejects calls, errors wrap repository.ErrUnavailable.
type ArticleRepo struct {
	cb   *CircuitBreaker
	next repository.ArticleRepository
}

// NewArticleRepo wraps next with a breaker built from cfg.
func NewArticleRepo(next repository.ArticleRepository, cfg Config) *ArticleRepo {
	return &ArticleRepo{cb: New(cfg), next: next}
}

// Breaker exposes the underlying breaker for health reporting.
func (r *ArticleRepo) Breaker() *CircuitBreaker {
	return r.cb
}

func (r *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	return Call(r.cb, func() ([]*entity.Article, error) { return r.next.List(ctx) })
}

func (r *ArticleRepo) Get(ctx context.Context, id uint64) (*entity.Article, error) {
	return Call(r.cb, func() (*entity.Article, error) { return r.next.Get(ctx, id) })
}

func (r *ArticleRepo) Create(ctx context.Context, title, content string) (uint64, error) {
	return Call(r.cb, func() (uint64, error) { return r.next.Create(ctx, title, content) })
}

func (r *ArticleRepo) Update(ctx context.Context, id uint64, title, content *string) error {
	return Run(r.cb, func() error { return r.next.Update(ctx, id, title, content) })
}

func (r *ArticleRepo) Patch(ctx context.Context, p repository.ArticlePatch) error {
	return Run(r.cb, func() error { return r.next.Patch(ctx, p) })
}

func (r *ArticleRepo) Delete(ctx context.Context, id uint64) error {
	return Run(r.cb, func() error { return r.next.Delete(ctx, id) })
}

func (r *ArticleRepo) Count(ctx context.Context) (int64, error) {
	return Call(r.cb, func() (int64, error) { return r.next.Count(ctx) })
}

var _ repository.ArticleRepository = (*ArticleRepo)(nil)
