package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Get("/api/search", h.search)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/upload", h.upload)
		r.Get("/api/mydocs", h.myDocuments)
		r.Delete("/api/documents/{documentID}", h.deleteDocument)
	})

	// uploaded blobs are served back statically, keyed by their stored
	// relative path
	router.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.uploadDir))))

	return router
}
