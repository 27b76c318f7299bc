package article

import (
	"log/slog"
	"net/http"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/requestid"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type CreateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事作成
// @Summary      記事作成
// @Description  title と content を保存します。レスポンスボディは空です。
// @Tags         articles
// @Accept       json
// @Param        article body CreateRequest true "記事情報"
// @Success      201 "Created"
// @Failure      400 {object} map[string]string "Malformed body or missing title/content"
// @Failure      413 {object} map[string]string "Body larger than 1 MiB"
// @Failure      500 {object} map[string]string "Database error"
// @Failure      503 {object} map[string]string "Database circuit open"
// @Router       /Article [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req CreateRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}
	if req.Title == nil {
		respond.SafeError(r.Context(), w, http.StatusBadRequest,
			&entity.ValidationError{Field: "title", Message: "is required"})
		return
	}
	if req.Content == nil {
		respond.SafeError(r.Context(), w, http.StatusBadRequest,
			&entity.ValidationError{Field: "content", Message: "is required"})
		return
	}

	id, err := h.Svc.Create(r.Context(), artUC.CreateInput{
		Title:   *req.Title,
		Content: *req.Content,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	requestid.Logger(r.Context()).Debug("article created", slog.Uint64("article_id", id))
	respond.Status(w, http.StatusCreated)
}
