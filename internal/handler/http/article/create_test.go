package article_test

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateHandler_Success(t *testing.T) {
	stub := newStub()

	rec := do(t, newMux(stub, ""), http.MethodPost, "/Article", `{"title":"Hello","content":"World"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String(), "generated id is never returned")
	require.Len(t, stub.created, 1)
	assert.Equal(t, "Hello", *stub.created[0].Title)
	assert.Equal(t, "World", *stub.created[0].Content)
}

func TestCreateHandler_ThenList(t *testing.T) {
	stub := newStub()
	mux := newMux(stub, "")

	require.Equal(t, http.StatusCreated, do(t, mux, http.MethodPost, "/Article", `{"title":"Hello","content":"World"}`).Code)

	rec := do(t, mux, http.MethodGet, "/Article", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"title":"Hello","content":"World"`)
}

func TestCreateHandler_EmptyStringsAccepted(t *testing.T) {
	stub := newStub()

	rec := do(t, newMux(stub, ""), http.MethodPost, "/Article", `{"title":"","content":""}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.Len(t, stub.created, 1)
}

func TestCreateHandler_ExtraFieldsIgnored(t *testing.T) {
	stub := newStub()

	rec := do(t, newMux(stub, ""), http.MethodPost, "/Article", `{"title":"a","content":"b","view_num":9,"id":77}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint64(1), stub.created[0].ID)
}

func TestCreateHandler_BadRequest(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed JSON", body: `{"title":"a",`},
		{name: "missing title", body: `{"content":"b"}`},
		{name: "missing content", body: `{"title":"a"}`},
		{name: "null title", body: `{"title":null,"content":"b"}`},
		{name: "wrong type", body: `{"title":1,"content":"b"}`},
		{name: "empty body", body: ``},
		{name: "array", body: `[]`},
		{name: "trailing garbage", body: `{"title":"a","content":"b"} garbage`},
		{name: "extra closing brace", body: `{"title":"a","content":"b"}}`},
		{name: "second object", body: `{"title":"a","content":"b"}{"x":1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := newStub()
			rec := do(t, newMux(stub, ""), http.MethodPost, "/Article", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Zero(t, stub.calls, "no database call before validation")
		})
	}
}

func TestCreateHandler_BodyTooLarge(t *testing.T) {
	stub := newStub()
	mux := newMux(stub, "")
	limited := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, 16)
		mux.ServeHTTP(w, r)
	})

	rec := do(t, limited, http.MethodPost, "/Article", `{"title":"`+strings.Repeat("x", 64)+`","content":""}`)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Zero(t, stub.calls)
}

func TestCreateHandler_ServiceError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("Error 1062: Duplicate entry")

	rec := do(t, newMux(stub, ""), http.MethodPost, "/Article", `{"title":"a","content":"b"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCreateHandler_Concurrent(t *testing.T) {
	stub := newStub()
	mux := newMux(stub, "")

	const n = 20
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			body := fmt.Sprintf(`{"title":"t%d","content":"c%d"}`, i, i)
			rec := do(t, mux, http.MethodPost, "/Article", body)
			assert.Equal(t, http.StatusCreated, rec.Code)
		}(i)
	}
	wg.Wait()

	require.Len(t, stub.created, n)
	seen := make(map[string]string, n)
	for _, a := range stub.created {
		seen[*a.Title] = *a.Content
	}
	for i := 0; i < n; i++ {
		assert.Equal(t, fmt.Sprintf("c%d", i), seen[fmt.Sprintf("t%d", i)], "payloads must not mix")
	}
}
