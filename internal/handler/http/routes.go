package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRecover)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/refresh", h.refresh)
	})

	// routes that require an authenticated principal
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.createNote)
		r.Delete("/notes/{id}", h.deleteNote)
		r.Get("/me", h.currentUser)
	})

	return router
}
