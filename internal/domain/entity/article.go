// Package entity defines the persisted domain records of the service.
// Nullable columns are modeled as pointers so that a nil value round-trips as SQL NULL
// and serializes as JSON null.
package entity

import "time"

// Article represents a row of the articles table.
// ID is assigned by the database on insert and never changes afterwards.
// Every other column is nullable to tolerate incomplete legacy rows.
type Article struct {
	ID        uint64
	Title     *string
	Content   *string
	ViewNum   *uint32
	CreatedAt *time.Time
	UpdatedAt *time.Time
	DeletedAt *time.Time
}

// Ptr returns a pointer to v. It keeps literals for nullable fields short.
func Ptr[T any](v T) *T {
	return &v
}
