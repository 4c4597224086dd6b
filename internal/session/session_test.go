package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/booklister/internal/model"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-1",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return signed
}

func roundTrip(m *Manager, payload model.AuthPayload) *http.Request {
	w := httptest.NewRecorder()
	m.Set(w, payload)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestSetAndRead(t *testing.T) {
	m := NewManager(false)
	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	token := signedToken(t, exp)

	r := roundTrip(m, model.AuthPayload{Token: token, User: model.User{ID: "1", Name: "Ann", Email: "ann@example.com"}})
	s, ok := m.FromRequest(r)
	require.True(t, ok)
	assert.Equal(t, token, s.Token)
	assert.Equal(t, "Ann", s.Name)
	assert.True(t, exp.Equal(s.Expires))
}

func TestExpiredTokenIsAbsent(t *testing.T) {
	m := NewManager(false)
	token := signedToken(t, time.Now().Add(-time.Minute))
	r := roundTrip(m, model.AuthPayload{Token: token})
	_, ok := m.FromRequest(r)
	assert.False(t, ok)
}

func TestOpaqueTokenGetsDefaultLifetime(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	m := NewManager(false)
	m.now = func() time.Time { return now }

	r := roundTrip(m, model.AuthPayload{Token: "opaque"})
	s, ok := m.FromRequest(r)
	require.True(t, ok)
	assert.True(t, now.Add(7*24*time.Hour).Equal(s.Expires))
}

func TestMalformedCookieIsAbsent(t *testing.T) {
	m := NewManager(false)
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.AddCookie(&http.Cookie{Name: CookieName, Value: "%%%"})
	_, ok := m.FromRequest(r)
	assert.False(t, ok)

	_, ok = m.FromRequest(httptest.NewRequest(http.MethodGet, "/", nil))
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	m := NewManager(true)
	w := httptest.NewRecorder()
	m.Clear(w)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
	assert.True(t, cookies[0].Secure)
}
