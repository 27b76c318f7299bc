// Package postgres provides PostgreSQL implementations of repository interfaces.
package postgres

import (
	"fmt"
	"strings"

	"article-api/internal/repository"
)

// ArticleQueryBuilder builds the SET clause of merge-mode updates.
// Column names come from a fixed list; values are always bound as $N placeholders.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildPatch returns the UPDATE statement and its arguments for p.
// The id is always the last argument. Returns an empty query if p is empty.
func (qb *ArticleQueryBuilder) BuildPatch(p repository.ArticlePatch) (query string, args []interface{}) {
	if p.Empty() {
		return "", nil
	}

	var sets []string
	add := func(col string, v interface{}) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}

	if p.Title != nil {
		add("title", *p.Title)
	}
	if p.Content != nil {
		add("content", *p.Content)
	}
	if p.ViewNum != nil {
		add("view_num", int64(*p.ViewNum))
	}
	if p.UpdatedAt != nil {
		add("updated_at", *p.UpdatedAt)
	}
	if p.DeletedAt != nil {
		add("deleted_at", *p.DeletedAt)
	}

	args = append(args, int64(p.ID))
	query = fmt.Sprintf("UPDATE articles SET %s WHERE id = $%d", strings.Join(sets, ", "), len(args))
	return query, args
}
