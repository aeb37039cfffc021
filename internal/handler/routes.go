package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Routes builds the HTTP route table with the full middleware stack.
func (h *BlogHandler) Routes(requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(WithIdentity(h.sessionUseCase, h.logger))

	r.Get("/", h.Root)
	r.Get("/home", h.Home)
	r.Get("/about", h.About)
	r.Get("/login", h.LoginPage)
	r.Post("/login", h.Login)
	r.Get("/register", h.RegisterPage)
	r.Post("/register", h.Register)
	r.Get("/admin", h.Admin)

	// Routes that require an established session.
	r.Group(func(r chi.Router) {
		r.Use(RequireAuth)
		r.Get("/logout", h.Logout)
		r.Get("/publish", h.PublishPage)
		r.Post("/publish", h.Publish)
	})

	return r
}
