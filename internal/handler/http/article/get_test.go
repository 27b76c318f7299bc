package article_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"article-api/internal/domain/entity"
)

/* ───────── テストケース ───────── */

func TestGetHandler_Success(t *testing.T) {
	deleted := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	stub := newStub(&entity.Article{
		ID: 5, Title: entity.Ptr("t"), Content: entity.Ptr(""), ViewNum: entity.Ptr(uint32(0)), DeletedAt: &deleted,
	})

	rec := do(t, newMux(stub, ""), http.MethodGet, "/Article/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"id":5,"title":"t","content":"","view_num":0,"created_at":null,"updated_at":null,"deleted_at":"2024-01-02T03:04:05"}`,
		rec.Body.String())
}

func TestGetHandler_NotFound(t *testing.T) {
	rec := do(t, newMux(newStub(), ""), http.MethodGet, "/Article/999999", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestGetHandler_InvalidID(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{name: "non-numeric", path: "/Article/abc"},
		{name: "negative", path: "/Article/-1"},
		{name: "overflow", path: "/Article/18446744073709551616"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			rec := do(t, newMux(stub, ""), http.MethodGet, tt.path, "")

			assert.Equal(t, http.StatusNotFound, rec.Code)
			assert.Zero(t, stub.calls, "repository must not be called")
		})
	}
}

func TestGetHandler_DatabaseError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("Error 1146 (42S02): Table 'app.articles' doesn't exist")

	rec := do(t, newMux(stub, ""), http.MethodGet, "/Article/1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code, "database errors are not 404")
	assert.JSONEq(t, `{"error":"internal server error"}`, rec.Body.String())
}
