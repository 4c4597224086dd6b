package server

import (
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/web"
)

const flashCookie = "booklister_flash"

func (s *Server) newPage(w http.ResponseWriter, r *http.Request, title string) web.Page {
	p := web.Page{
		Title:        title,
		AuthRequired: s.authRequired,
		Flash:        s.takeFlash(w, r),
	}
	if sess, ok := s.sessions.FromRequest(r); ok {
		p.SignedIn = true
		p.User = sess.Name
	}
	return p
}

// render writes view with status. The page is rendered in full before
// anything is written, so a failed render still becomes a clean 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, view templ.Component) {
	templ.Handler(view,
		templ.WithStatus(status),
		templ.WithErrorHandler(func(r *http.Request, err error) http.Handler {
			log.Error().Err(err).Str("path", r.URL.Path).Msg("Unable to render page")
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "internal error", http.StatusInternalServerError)
			})
		}),
	).ServeHTTP(w, r)
}

// signOut ends the session and sends the visitor back to the login page when
// the API rejected the session token on a deployment that needs one.
func (s *Server) signOut(w http.ResponseWriter, r *http.Request, err error) bool {
	if !s.authRequired || !errors.Is(err, catalog.ErrUnauthorized) {
		return false
	}
	s.sessions.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
	return true
}

// renderError shows a catalog failure inline with a link that retries the
// same request.
func (s *Server) renderError(w http.ResponseWriter, r *http.Request, err error, retryURL string) {
	if s.signOut(w, r, err) {
		return
	}
	status := http.StatusBadGateway
	message := "Something went wrong"
	var catalogErr *catalog.Error
	if errors.As(err, &catalogErr) {
		message = catalogErr.Message()
	}
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		status = http.StatusNotFound
		retryURL = ""
	case errors.Is(err, catalog.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnauthorized):
		status = http.StatusUnauthorized
	}
	page := s.newPage(w, r, "Error")
	s.render(w, r, status, web.ErrorPage(page, web.ErrorData{Message: message, RetryURL: retryURL}))
}

func (s *Server) setFlash(w http.ResponseWriter, message string) {
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

func (s *Server) takeFlash(w http.ResponseWriter, r *http.Request) string {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return ""
	}
	http.SetCookie(w, &http.Cookie{Name: flashCookie, Path: "/", MaxAge: -1})
	message, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return message
}

// localRedirect only accepts same-site paths, falling back otherwise.
func localRedirect(target, fallback string) string {
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") || strings.HasPrefix(target, "/\\") {
		return fallback
	}
	return target
}
