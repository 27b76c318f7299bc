package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type GetHandler struct{ Svc artUC.Service }

// ServeHTTP 記事詳細取得
// @Summary      記事詳細取得
// @Description  指定されたIDの記事を取得します
// @Tags         articles
// @Produce      json
// @Param        id path int true "記事ID"
// @Success      200 {object} DTO "記事詳細"
// @Failure      404 "Not found - unknown or unparseable id"
// @Failure      500 {object} map[string]string "Database error"
// @Failure      503 {object} map[string]string "Database circuit open"
// @Router       /Article/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Status(w, http.StatusNotFound)
		return
	}

	article, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond.JSON(w, http.StatusOK, toDTO(article))
}
