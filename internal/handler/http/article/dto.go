// Package article provides HTTP handlers for the /Article endpoints.
// It includes handlers for listing, fetching, creating, updating, and deleting articles.
package article

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"article-api/internal/domain/entity"
)

// naiveLayout is the zone-less wire format; fractional seconds appear only when non-zero.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// inputLayouts are tried in order when decoding a Timestamp.
var inputLayouts = []string{
	naiveLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999",
}

// Timestamp is a time.Time that travels as a naive date-time in UTC.
type Timestamp struct {
	time.Time
}

// MarshalJSON renders the UTC wall clock without a zone suffix.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.UTC().Format(naiveLayout) + `"`), nil
}

// UnmarshalJSON accepts naive and RFC 3339 strings. RFC 3339 values are converted to UTC.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	for _, layout := range inputLayouts {
		if v, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid timestamp %q: must be YYYY-MM-DDTHH:MM:SS or RFC 3339", s)
}

func newTimestamp(v *time.Time) *Timestamp {
	if v == nil {
		return nil
	}
	return &Timestamp{Time: *v}
}

func (t *Timestamp) timePtr() *time.Time {
	if t == nil {
		return nil
	}
	v := t.Time
	return &v
}

// DTO represents the JSON structure for article data transfer.
// Absent values serialize as null.
type DTO struct {
	ID        uint64     `json:"id" example:"1"`
	Title     *string    `json:"title" example:"Hello"`
	Content   *string    `json:"content" example:"World"`
	ViewNum   *uint32    `json:"view_num" example:"0"`
	CreatedAt *Timestamp `json:"created_at" swaggertype:"string" example:"2023-11-05T09:00:00"`
	UpdatedAt *Timestamp `json:"updated_at" swaggertype:"string" example:"2023-11-05T09:00:00"`
	DeletedAt *Timestamp `json:"deleted_at" swaggertype:"string" example:"2023-11-05T09:00:00"`
}

func toDTO(a *entity.Article) DTO {
	return DTO{
		ID:        a.ID,
		Title:     a.Title,
		Content:   a.Content,
		ViewNum:   a.ViewNum,
		CreatedAt: newTimestamp(a.CreatedAt),
		UpdatedAt: newTimestamp(a.UpdatedAt),
		DeletedAt: newTimestamp(a.DeletedAt),
	}
}

// CreateRequest is the POST /Article body. Both keys must be present as strings.
type CreateRequest struct {
	Title   *string `json:"title" example:"Hello"`
	Content *string `json:"content" example:"World"`
}

// UpdateRequest is the PUT /Article/{id} body. Every field is optional;
// created_at is not accepted because creation time is immutable.
type UpdateRequest struct {
	Title     *string    `json:"title" example:"Hello again"`
	Content   *string    `json:"content" example:"Edited"`
	ViewNum   *uint32    `json:"view_num" example:"10"`
	UpdatedAt *Timestamp `json:"updated_at" swaggertype:"string" example:"2024-01-02T03:04:05"`
	DeletedAt *Timestamp `json:"deleted_at" swaggertype:"string" example:"2024-01-02T03:04:05"`
}
