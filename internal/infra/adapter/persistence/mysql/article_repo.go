package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"article-api/internal/domain/entity"
	"article-api/internal/observability/metrics"
	"article-api/internal/repository"
)

// ArticleRepo implements the ArticleRepository interface using MySQL.
type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

// NewArticleRepo creates a new MySQL-backed article repository.
// The pool must have been opened with parseTime enabled so DATETIME columns scan into time.Time.
func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

// List retrieves all articles in storage order.
func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	defer metrics.ObserveDBQuery("list", time.Now())

	const query = `
SELECT id, title, content, view_num, created_at, updated_at, deleted_at
FROM articles
`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: QueryContext: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		var article entity.Article
		err := rows.Scan(&article.ID,
			&article.Title, &article.Content, &article.ViewNum,
			&article.CreatedAt, &article.UpdatedAt, &article.DeletedAt)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, &article)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows.Err: %w", err)
	}

	return articles, nil
}

// Get retrieves a single article by ID. Returns (nil, nil) when no row matches.
func (repo *ArticleRepo) Get(ctx context.Context, id uint64) (*entity.Article, error) {
	defer metrics.ObserveDBQuery("get", time.Now())

	const query = `
SELECT id, title, content, view_num, created_at, updated_at, deleted_at
FROM articles
WHERE id = ?
`
	var article entity.Article
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&article.ID,
		&article.Title, &article.Content, &article.ViewNum,
		&article.CreatedAt, &article.UpdatedAt, &article.DeletedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: QueryRowContext: %w", err)
	}
	return &article, nil
}

// Create inserts title and content and returns the AUTO_INCREMENT id.
func (repo *ArticleRepo) Create(ctx context.Context, title, content string) (uint64, error) {
	defer metrics.ObserveDBQuery("create", time.Now())

	const query = `INSERT INTO articles (title, content) VALUES (?, ?)`
	res, err := repo.db.ExecContext(ctx, query, title, content)
	if err != nil {
		return 0, fmt.Errorf("Create: ExecContext: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("Create: LastInsertId: %w", err)
	}
	return uint64(id), nil
}

// Update overwrites title and content; nil values become NULL.
func (repo *ArticleRepo) Update(ctx context.Context, id uint64, title, content *string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	const query = `UPDATE articles SET title = ?, content = ? WHERE id = ?`
	if _, err := repo.db.ExecContext(ctx, query, title, content, id); err != nil {
		return fmt.Errorf("Update: ExecContext: %w", err)
	}
	return nil
}

// Patch writes only the supplied columns.
func (repo *ArticleRepo) Patch(ctx context.Context, p repository.ArticlePatch) error {
	query, args := repo.queryBuilder.BuildPatch(p)
	if query == "" {
		return nil
	}
	defer metrics.ObserveDBQuery("patch", time.Now())

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("Patch: ExecContext: %w", err)
	}
	return nil
}

// Delete removes the row without checking whether it existed.
func (repo *ArticleRepo) Delete(ctx context.Context, id uint64) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	const query = `DELETE FROM articles WHERE id = ?`
	if _, err := repo.db.ExecContext(ctx, query, id); err != nil {
		return fmt.Errorf("Delete: ExecContext: %w", err)
	}
	return nil
}

// Count returns the number of rows in the articles table.
func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: QueryRowContext: %w", err)
	}
	return count, nil
}
