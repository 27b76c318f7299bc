// Package pathutil parses and labels the paths served by the article routes.
package pathutil

import (
	"errors"
	"strconv"
)

// ErrInvalidID marks an {id} segment that is not an unsigned decimal integer.
var ErrInvalidID = errors.New("invalid id")

// ParseID reads an {id} path value. Signs, spaces and values past the uint64
// range fail with ErrInvalidID; zero parses and simply never matches a row.
//
//	id, err := ParseID(r.PathValue("id"))
func ParseID(raw string) (uint64, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, ErrInvalidID
	}
	return id, nil
}
