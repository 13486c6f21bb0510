package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portfolioapi/handlers"
)

// Routes register on the default mux, so set them up once for the package.
func TestMain(m *testing.M) {
	SetupRoutes("test-secret",
		&handlers.UserHandler{},
		&handlers.ArticleHandler{},
		&handlers.HeroHandler{})
	m.Run()
}

func TestPublicRoutesRejectNonGET(t *testing.T) {
	paths := []string{
		"/api/articles",
		"/api/articles/some-slug",
		"/api/categories",
		"/api/tags",
		"/api/hero",
	}
	for _, path := range paths {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		rec := httptest.NewRecorder()
		http.DefaultServeMux.ServeHTTP(rec, req)

		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: status = %d, want 405", path, rec.Code)
		}
	}
}

func TestPreflightAllowed(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/categories", nil)
	rec := httptest.NewRecorder()
	http.DefaultServeMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("OPTIONS preflight: status = %d, want 200", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Methods"); got == "" {
		t.Error("preflight response missing Access-Control-Allow-Methods header")
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/admin/articles", nil)
	rec := httptest.NewRecorder()
	http.DefaultServeMux.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("unauthenticated admin request: status = %d, want 401", rec.Code)
	}
}
