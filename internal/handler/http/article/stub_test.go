package article_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"article-api/internal/domain/entity"
	"article-api/internal/handler/http/article"
	"article-api/internal/repository"
	artUC "article-api/internal/usecase/article"
)

/* ───────── モック実装 ───────── */

// stubRepo は呼び出し内容を記録するインメモリ ArticleRepository
type stubRepo struct {
	mu sync.Mutex

	rows   []*entity.Article
	nextID uint64
	err    error

	created []entity.Article
	updated []entity.Article
	patched []repository.ArticlePatch
	deleted []uint64
	calls   int
}

func newStub(rows ...*entity.Article) *stubRepo {
	return &stubRepo{rows: rows, nextID: uint64(len(rows)) + 1}
}

func (s *stubRepo) List(_ context.Context) ([]*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]*entity.Article(nil), s.rows...), nil
}

func (s *stubRepo) Get(_ context.Context, id uint64) (*entity.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.rows {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, title, content string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	id := s.nextID
	s.nextID++
	a := entity.Article{ID: id, Title: &title, Content: &content}
	s.created = append(s.created, a)
	s.rows = append(s.rows, &a)
	return id, nil
}

func (s *stubRepo) Update(_ context.Context, id uint64, title, content *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.updated = append(s.updated, entity.Article{ID: id, Title: title, Content: content})
	return nil
}

func (s *stubRepo) Patch(_ context.Context, p repository.ArticlePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.patched = append(s.patched, p)
	return nil
}

func (s *stubRepo) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return s.err
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubRepo) Count(_ context.Context) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return int64(len(s.rows)), s.err
}

/* ───────── ヘルパー ───────── */

func newMux(repo repository.ArticleRepository, mode artUC.UpdateMode) *http.ServeMux {
	mux := http.NewServeMux()
	article.Register(mux, artUC.Service{Repo: repo, Mode: mode})
	return mux
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
