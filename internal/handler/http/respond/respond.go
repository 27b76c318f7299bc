// Package respond provides utilities for sending HTTP responses in JSON format.
// It includes error handling with sanitization to prevent leaking sensitive information.
package respond

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/requestid"
)

// JSON writes a JSON response with the given status code and data.
func JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			// Headers are already sent; nothing left but to log.
			slog.Default().Error("failed to encode JSON response",
				slog.Int("status_code", code),
				slog.Any("error", err))
		}
	}
}

// Status writes a bare status line with an empty body.
func Status(w http.ResponseWriter, code int) {
	w.WriteHeader(code)
}

// SafeError writes err as a JSON error body without leaking internals.
// Only 4xx validation failures (errors matching entity.ErrInvalidInput) reach
// the client verbatim. Everything else is logged with the request ID, its DSN
// passwords masked, and answered with the generic status text.
func SafeError(ctx context.Context, w http.ResponseWriter, code int, err error) {
	if err == nil {
		return
	}

	if code < 500 && errors.Is(err, entity.ErrInvalidInput) {
		JSON(w, code, map[string]string{"error": err.Error()})
		return
	}

	requestid.Logger(ctx).Error("request failed",
		slog.String("status", http.StatusText(code)),
		slog.Int("code", code),
		slog.String("error", SanitizeError(err)))

	msg := "internal server error"
	if code < 500 {
		msg = strings.ToLower(http.StatusText(code))
	}
	JSON(w, code, map[string]string{"error": msg})
}
