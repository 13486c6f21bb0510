package routes

import (
	"net/http"

	"portfolioapi/handlers"
)

// CORS middleware
func withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*") // Replace * with your domain in production
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		// Handle preflight request
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func SetupRoutes(
	jwtSecret string,
	userHandler *handlers.UserHandler,
	articleHandler *handlers.ArticleHandler,
	heroHandler *handlers.HeroHandler,
) {
	register := func(pattern string, h http.HandlerFunc) {
		http.Handle(pattern, withCORS(http.HandlerFunc(handlers.RecoverWrapper(h))))
	}
	admin := func(pattern string, h http.HandlerFunc) {
		register(pattern, handlers.AuthenticateAdmin(jwtSecret, h))
	}

	// Auth
	register("/api/login", userHandler.Login)

	// Public article routes
	register("/api/articles", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		articleHandler.ListArticles(w, r)
	})
	register("/api/articles/", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		idOrSlug := r.URL.Path[len("/api/articles/"):]
		if idOrSlug == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		articleHandler.GetArticle(w, r, idOrSlug)
	})
	register("/api/categories", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		articleHandler.GetCategories(w, r)
	})
	register("/api/tags", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		articleHandler.GetTags(w, r)
	})

	// Public hero route
	register("/api/hero", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		heroHandler.GetHero(w, r)
	})

	// Admin article routes
	admin("/api/admin/articles", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			articleHandler.AdminListArticles(w, r)
		case http.MethodPost:
			articleHandler.CreateArticle(w, r)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})
	admin("/api/admin/articles/", func(w http.ResponseWriter, r *http.Request) {
		id := r.URL.Path[len("/api/admin/articles/"):]
		if id == "" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		switch r.Method {
		case http.MethodPatch:
			articleHandler.UpdateArticle(w, r, id)
		case http.MethodDelete:
			articleHandler.DeleteArticle(w, r, id)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	})

	// Admin hero + password routes
	admin("/api/admin/hero", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		heroHandler.UpdateHero(w, r)
	})
	admin("/api/admin/change-password", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		userHandler.ChangePassword(w, r)
	})
}
