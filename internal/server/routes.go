package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/httprate"
)

func (s *Server) RegisterRoutes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Timeout(30 * time.Second))
	if s.logRequests {
		r.Use(httplog.RequestLogger(slog.Default(), &httplog.Options{
			Level:         slog.LevelInfo,
			Schema:        httplog.SchemaOTEL.Concise(true),
			RecoverPanics: true,
		}))
	} else {
		r.Use(middleware.Recoverer)
	}
	r.Use(middleware.Heartbeat("/up"))
	r.Use(middleware.URLFormat)

	MountStatic(r)

	r.Group(func(r chi.Router) {
		if s.rateLimit > 0 {
			r.Use(httprate.LimitByIP(s.rateLimit, 10*time.Second))
		}

		r.Get("/login", s.LoginPageHandler)
		r.Post("/login", s.LoginHandler)
		r.Get("/register", s.RegisterPageHandler)
		r.Post("/register", s.RegisterHandler)
		r.Post("/logout", s.LogoutHandler)

		r.Group(func(r chi.Router) {
			r.Use(s.requireAuth)

			r.Get("/", s.BooksHandler)
			r.Get("/filter", s.FilterHandler)
			r.Get("/search", s.SearchHandler)
			r.Get("/dashboard", s.DashboardHandler)

			r.Route("/books", func(r chi.Router) {
				// /books.rss, /books.atom and /books.json arrive here once
				// URLFormat strips the extension.
				r.Get("/", s.FeedHandler)
				r.Get("/search", s.ApplySearchHandler)
				r.Get("/new", s.NewBookHandler)
				r.Post("/new", s.CreateBookHandler)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", s.BookHandler)
					r.Get("/edit", s.EditBookHandler)
					r.Post("/edit", s.UpdateBookHandler)
					r.Post("/delete", s.DeleteBookHandler)
					r.Post("/rate", s.RateBookHandler)
				})
			})
		})
	})

	return r
}
