package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type DeleteHandler struct{ Svc artUC.Service }

// ServeHTTP 記事削除
// @Summary      記事削除
// @Description  行を物理削除します。存在しない ID でも 201 を返します。
// @Tags         articles
// @Param        id path int true "記事ID"
// @Success      201 "Deleted"
// @Failure      404 "Unparseable id"
// @Failure      500 {object} map[string]string "Database error"
// @Failure      503 {object} map[string]string "Database circuit open"
// @Router       /Article/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Status(w, http.StatusNotFound)
		return
	}

	if err := h.Svc.Delete(r.Context(), id); err != nil {
		writeServiceError(w, r, err)
		return
	}
	respond.Status(w, http.StatusCreated)
}
