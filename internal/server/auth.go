package server

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/bookapi"
	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/validate"
	"github.com/RobBrazier/booklister/internal/web"
)

// apiContext attaches the session token, if any, to calls made for r.
func (s *Server) apiContext(r *http.Request) context.Context {
	ctx := r.Context()
	if sess, ok := s.sessions.FromRequest(r); ok {
		ctx = bookapi.WithToken(ctx, sess.Token)
	}
	return ctx
}

// requireAuth sends anonymous visitors to the login page when the
// deployment is configured to need a session.
func (s *Server) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.authRequired {
			if _, ok := s.sessions.FromRequest(r); !ok {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) redirectIfLoggedIn(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := s.sessions.FromRequest(r); ok {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return true
	}
	return false
}

func authError(err error) web.AuthForm {
	form := web.AuthForm{}
	var fields validate.Errors
	if errors.As(err, &fields) {
		form.Errors = fields
		return form
	}
	var catalogErr *catalog.Error
	if errors.As(err, &catalogErr) {
		form.Error = catalogErr.Message()
		if errors.Is(err, catalog.ErrUnauthorized) {
			form.Error = "Invalid email or password"
		}
		return form
	}
	form.Error = err.Error()
	return form
}

func (s *Server) LoginPageHandler(w http.ResponseWriter, r *http.Request) {
	if s.redirectIfLoggedIn(w, r) {
		return
	}
	s.render(w, r, http.StatusOK, web.LoginPage(s.newPage(w, r, "Sign In"), web.AuthForm{}))
}

func (s *Server) LoginHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostForm.Get("email"))
	payload, err := s.catalog.Login(r.Context(), email, r.PostForm.Get("password"))
	if err != nil {
		log.Info().Err(err).Str("email", email).Msg("Login failed")
		form := authError(err)
		form.Email = email
		s.render(w, r, http.StatusUnauthorized, web.LoginPage(s.newPage(w, r, "Sign In"), form))
		return
	}
	s.sessions.Set(w, payload)
	log.Info().Str("user", payload.User.ID).Msg("Logged in")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) RegisterPageHandler(w http.ResponseWriter, r *http.Request) {
	if s.redirectIfLoggedIn(w, r) {
		return
	}
	s.render(w, r, http.StatusOK, web.RegisterPage(s.newPage(w, r, "Sign Up"), web.AuthForm{}))
}

func (s *Server) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostForm.Get("name"))
	email := strings.TrimSpace(r.PostForm.Get("email"))
	password := r.PostForm.Get("password")
	if password != r.PostForm.Get("confirmPassword") {
		form := web.AuthForm{Name: name, Email: email, Errors: validate.Errors{"confirmPassword": "Passwords do not match"}}
		s.render(w, r, http.StatusBadRequest, web.RegisterPage(s.newPage(w, r, "Sign Up"), form))
		return
	}
	payload, err := s.catalog.Register(r.Context(), name, email, password)
	if err != nil {
		form := authError(err)
		form.Name, form.Email = name, email
		s.render(w, r, http.StatusBadRequest, web.RegisterPage(s.newPage(w, r, "Sign Up"), form))
		return
	}
	s.sessions.Set(w, payload)
	log.Info().Str("user", payload.User.ID).Msg("Registered")
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	s.sessions.Clear(w)
	target := "/"
	if s.authRequired {
		target = "/login"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
