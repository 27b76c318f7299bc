package postgres

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

const articleColumns = `id, title, content, view_num, created_at, updated_at, deleted_at`

type ArticleRepo struct {
	db           *sql.DB
	queryBuilder *ArticleQueryBuilder
}

func NewArticleRepo(db *sql.DB) repository.ArticleRepository {
	return &ArticleRepo{
		db:           db,
		queryBuilder: NewArticleQueryBuilder(),
	}
}

func (repo *ArticleRepo) List(ctx context.Context) ([]*entity.Article, error) {
	defer metrics.ObserveDBQuery("list", time.Now())

	const query = `SELECT ` + articleColumns + ` FROM articles`
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	defer func() { _ = rows.Close() }()

	articles := make([]*entity.Article, 0, 64)
	for rows.Next() {
		article, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("List: Scan: %w", err)
		}
		articles = append(articles, article)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("List: rows: %w", err)
	}
	return articles, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id uint64) (*entity.Article, error) {
	defer metrics.ObserveDBQuery("get", time.Now())

	const query = `SELECT ` + articleColumns + ` FROM articles WHERE id = $1`
	article, err := scanArticle(repo.db.QueryRowContext(ctx, query, int64(id)))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return article, nil
}

func (repo *ArticleRepo) Create(ctx context.Context, title, content string) (uint64, error) {
	defer metrics.ObserveDBQuery("create", time.Now())

	const query = `INSERT INTO articles (title, content) VALUES ($1, $2) RETURNING id`
	var id int64
	if err := repo.db.QueryRowContext(ctx, query, title, content).Scan(&id); err != nil {
		return 0, fmt.Errorf("Create: %w", err)
	}
	return uint64(id), nil
}

func (repo *ArticleRepo) Update(ctx context.Context, id uint64, title, content *string) error {
	defer metrics.ObserveDBQuery("update", time.Now())

	const query = `UPDATE articles SET title = $1, content = $2 WHERE id = $3`
	if _, err := repo.db.ExecContext(ctx, query, title, content, int64(id)); err != nil {
		return fmt.Errorf("Update: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Patch(ctx context.Context, p repository.ArticlePatch) error {
	query, args := repo.queryBuilder.BuildPatch(p)
	if query == "" {
		return nil
	}
	defer metrics.ObserveDBQuery("patch", time.Now())

	if _, err := repo.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("Patch: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Delete(ctx context.Context, id uint64) error {
	defer metrics.ObserveDBQuery("delete", time.Now())

	const query = `DELETE FROM articles WHERE id = $1`
	if _, err := repo.db.ExecContext(ctx, query, int64(id)); err != nil {
		return fmt.Errorf("Delete: %w", err)
	}
	return nil
}

func (repo *ArticleRepo) Count(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("Count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanArticle(row rowScanner) (*entity.Article, error) {
	var article entity.Article
	var viewNum sql.NullInt64
	if err := row.Scan(&article.ID, &article.Title, &article.Content, &viewNum,
		&article.CreatedAt, &article.UpdatedAt, &article.DeletedAt); err != nil {
		return nil, err
	}
	if viewNum.Valid {
		v := uint32(viewNum.Int64)
		article.ViewNum = &v
	}
	return &article, nil
}
