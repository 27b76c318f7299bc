package article

import (
	"net/http"

	"article-api/internal/handler/http/pathutil"
	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type UpdateHandler struct{ Svc artUC.Service }

// ServeHTTP 記事更新
// @Summary      記事更新
// @Description  overwrite モード（既定）では title と content を無条件に書き込み、省略値は NULL になります。
// @Description  merge モードでは指定されたフィールドのみ更新します。存在しない ID でも 201 を返します。
// @Tags         articles
// @Accept       json
// @Param        id path int true "記事ID"
// @Param        article body UpdateRequest true "更新内容"
// @Success      201 "Updated"
// @Failure      400 {object} map[string]string "Malformed body"
// @Failure      404 "Unparseable id"
// @Failure      500 {object} map[string]string "Database error"
// @Failure      503 {object} map[string]string "Database circuit open"
// @Router       /Article/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ParseID(r.PathValue("id"))
	if err != nil {
		respond.Status(w, http.StatusNotFound)
		return
	}

	var req UpdateRequest
	if err := decodeBody(r, &req); err != nil {
		writeDecodeError(w, r, err)
		return
	}

	if err := h.Svc.Update(r.Context(), artUC.UpdateInput{
		ID:        id,
		Title:     req.Title,
		Content:   req.Content,
		ViewNum:   req.ViewNum,
		UpdatedAt: req.UpdatedAt.timePtr(),
		DeletedAt: req.DeletedAt.timePtr(),
	}); err != nil {
		writeServiceError(w, r, err)
		return
	}
	// 201 rather than 200/204: existing clients depend on it.
	respond.Status(w, http.StatusCreated)
}
