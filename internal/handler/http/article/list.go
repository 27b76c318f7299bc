package article

import (
	"net/http"

	"article-api/internal/handler/http/respond"
	artUC "article-api/internal/usecase/article"
)

type ListHandler struct{ Svc artUC.Service }

// ServeHTTP 記事一覧取得
// @Summary      記事一覧取得
// @Description  全記事を保存順で返します。フィルタやページングはありません。
// @Tags         articles
// @Produce      json
// @Success      200 {array} DTO "記事一覧"
// @Failure      500 {object} map[string]string "Database error"
// @Failure      503 {object} map[string]string "Database circuit open"
// @Router       /Article [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	list, err := h.Svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := make([]DTO, 0, len(list))
	for _, a := range list {
		out = append(out, toDTO(a))
	}
	respond.JSON(w, http.StatusOK, out)
}
