package article

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

// writeServiceError maps use case errors onto status codes.
// Not-found is expected traffic and is answered with an empty 404.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, artUC.ErrArticleNotFound):
		respond.Status(w, http.StatusNotFound)
	case errors.Is(err, artUC.ErrUnavailable):
		respond.SafeError(r.Context(), w, http.StatusServiceUnavailable, err)
	default:
		respond.SafeError(r.Context(), w, http.StatusInternalServerError, err)
	}
}

// decodeBody decodes the request JSON into dst. The body must hold exactly one
// JSON value. Failures become *entity.ValidationError except for oversized
// bodies, which are reported as-is.
func decodeBody(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return decodeFailure(err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		if err != nil {
			return decodeFailure(err)
		}
		return &entity.ValidationError{Field: "body", Message: "malformed JSON: trailing data after value"}
	}
	return nil
}

func decodeFailure(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return err
	}
	return &entity.ValidationError{Field: "body", Message: "malformed JSON: " + err.Error()}
}

// writeDecodeError answers 413 for oversized bodies and 400 otherwise.
func writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		respond.JSON(w, http.StatusRequestEntityTooLarge, map[string]string{"error": "request body too large"})
		return
	}
	respond.SafeError(r.Context(), w, http.StatusBadRequest, err)
}
