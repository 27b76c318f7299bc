package article

import (
	"net/http"

	artUC "article-api/internal/usecase/article"
)

// Register registers all article-related HTTP handlers with the given mux.
// Paths keep the capitalized /Article form existing clients call.
func Register(mux *http.ServeMux, svc artUC.Service) {
	mux.Handle("GET /Article", ListHandler{svc})
	mux.Handle("GET /Article/{id}", GetHandler{svc})
	mux.Handle("POST /Article", CreateHandler{svc})
	mux.Handle("PUT /Article/{id}", UpdateHandler{svc})
	mux.Handle("DELETE /Article/{id}", DeleteHandler{svc})
}
