// Package mysql provides MySQL implementations of repository interfaces.
// Statements use `?` placeholders, as expected by github.com/go-sql-driver/mysql.
package mysql

import (
	"strings"

	"article-api/internal/repository"
)

// ArticleQueryBuilder builds the SET clause of merge-mode updates.
type ArticleQueryBuilder struct{}

// NewArticleQueryBuilder creates a new query builder instance.
func NewArticleQueryBuilder() *ArticleQueryBuilder {
	return &ArticleQueryBuilder{}
}

// BuildPatch returns the UPDATE statement and its arguments for p.
// Returns an empty query if p is empty.
func (qb *ArticleQueryBuilder) BuildPatch(p repository.ArticlePatch) (query string, args []interface{}) {
	if p.Empty() {
		return "", nil
	}

	var sets []string
	if p.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *p.Title)
	}
	if p.Content != nil {
		sets = append(sets, "content = ?")
		args = append(args, *p.Content)
	}
	if p.ViewNum != nil {
		sets = append(sets, "view_num = ?")
		args = append(args, int64(*p.ViewNum))
	}
	if p.UpdatedAt != nil {
		sets = append(sets, "updated_at = ?")
		args = append(args, *p.UpdatedAt)
	}
	if p.DeletedAt != nil {
		sets = append(sets, "deleted_at = ?")
		args = append(args, *p.DeletedAt)
	}

	args = append(args, p.ID)
	return "UPDATE articles SET " + strings.Join(sets, ", ") + " WHERE id = ?", args
}
