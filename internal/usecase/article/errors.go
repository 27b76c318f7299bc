// Package article provides use cases for managing article entities.
// It maps repository results onto not-found and unavailable sentinels
// and applies the configured update policy.
package article

import (
	"errors"

	"article-api/internal/repository"
)

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	ErrArticleNotFound = errors.New("article not found")

	// ErrUnavailable indicates the store refused the call without trying.
	// Handlers map it to 503.
	ErrUnavailable = repository.ErrUnavailable

	// ErrUnknownUpdateMode is returned by ParseUpdateMode for unrecognized values.
	ErrUnknownUpdateMode = errors.New("unknown update mode")
)
