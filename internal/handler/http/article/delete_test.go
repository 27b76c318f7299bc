package article_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteHandler_Success(t *testing.T) {
	stub := newStub()

	rec := do(t, newMux(stub, ""), http.MethodDelete, "/Article/8", "")

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, []uint64{8}, stub.deleted)
}

func TestDeleteHandler_NonExistentID(t *testing.T) {
	rec := do(t, newMux(newStub(), ""), http.MethodDelete, "/Article/999999", "")

	assert.Equal(t, http.StatusCreated, rec.Code)
}

func TestDeleteHandler_InvalidID(t *testing.T) {
	stub := newStub()

	rec := do(t, newMux(stub, ""), http.MethodDelete, "/Article/1.5", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, stub.deleted)
}

func TestDeleteHandler_DeleteError(t *testing.T) {
	stub := newStub()
	stub.err = errors.New("lock wait timeout exceeded")

	rec := do(t, newMux(stub, ""), http.MethodDelete, "/Article/1", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRegister_MethodNotAllowed(t *testing.T) {
	rec := do(t, newMux(newStub(), ""), http.MethodPatch, "/Article/1", `{}`)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
