// Package session keeps the API bearer token in a browser cookie.
package session

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/model"
)

const (
	CookieName = "booklister_session"
	// used when the token carries no exp claim
	defaultLifetime = 7 * 24 * time.Hour
)

type Session struct {
	Token   string    `json:"token"`
	UserID  string    `json:"id"`
	Name    string    `json:"name"`
	Email   string    `json:"email"`
	Expires time.Time `json:"expires"`
}

type Manager struct {
	Secure bool
	now    func() time.Time
}

func NewManager(secure bool) *Manager {
	return &Manager{Secure: secure, now: time.Now}
}

// expiry reads the exp claim without verifying the signature; the API
// verifies the token, this only decides when to stop sending it.
func (m *Manager) expiry(token string) time.Time {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			return exp.Time
		}
	}
	return m.now().Add(defaultLifetime)
}

func (m *Manager) Set(w http.ResponseWriter, payload model.AuthPayload) Session {
	s := Session{
		Token:   payload.Token,
		UserID:  payload.User.ID,
		Name:    payload.User.Name,
		Email:   payload.User.Email,
		Expires: m.expiry(payload.Token),
	}
	raw, err := json.Marshal(s)
	if err != nil {
		log.Error().Err(err).Msg("Unable to encode session")
		return s
	}
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    base64.RawURLEncoding.EncodeToString(raw),
		Path:     "/",
		Expires:  s.Expires,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
	return s
}

func (m *Manager) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.Secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// FromRequest returns the session, treating malformed and expired cookies
// as absent.
func (m *Manager) FromRequest(r *http.Request) (Session, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return Session{}, false
	}
	raw, err := base64.RawURLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return Session{}, false
	}
	var s Session
	if err := json.Unmarshal(raw, &s); err != nil || s.Token == "" {
		return Session{}, false
	}
	if !s.Expires.IsZero() && !m.now().Before(s.Expires) {
		return Session{}, false
	}
	return s, true
}
