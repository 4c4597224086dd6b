package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/booklister/internal/bookapi"
	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/session"
)

func sessionCookie(t *testing.T, token string) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	session.NewManager(false).Set(w, model.AuthPayload{
		Token: token,
		User:  model.User{ID: "u1", Name: "Ada", Email: "ada@example.com"},
	})
	c := cookie(w, session.CookieName)
	require.NotNil(t, c)
	return c
}

func TestAuthRequiredRedirectsAnonymous(t *testing.T) {
	mockCatalog, h := newTestServer(Options{AuthRequired: true})

	for _, target := range []string{"/", "/dashboard", "/books/42", "/books.rss"} {
		w := get(h, target)
		assert.Equal(t, http.StatusSeeOther, w.Code, target)
		assert.Equal(t, "/login", w.Header().Get("Location"), target)
	}
	mockCatalog.AssertNotCalled(t, "ListBooks", mock.Anything, mock.Anything)
}

func TestAuthRequiredAllowsPublicPages(t *testing.T) {
	_, h := newTestServer(Options{AuthRequired: true})

	assert.Equal(t, http.StatusOK, get(h, "/login").Code)
	assert.Equal(t, http.StatusOK, get(h, "/register").Code)
	assert.Equal(t, http.StatusOK, get(h, "/up").Code)
	assert.Equal(t, http.StatusOK, get(h, "/robots.txt").Code)
}

func TestSessionTokenReachesCatalog(t *testing.T) {
	mockCatalog, h := newTestServer(Options{AuthRequired: true})
	hasToken := mock.MatchedBy(func(ctx context.Context) bool {
		token, ok := bookapi.TokenFrom(ctx)
		return ok && token == "secret"
	})
	mockCatalog.On("ListBooks", hasToken, mock.Anything).Return(model.BookPage{Page: 1, TotalPages: 1}, nil)
	mockCatalog.On("Genres", hasToken).Return([]string{}, nil)

	w := get(h, "/", sessionCookie(t, "secret"))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ada")
	mockCatalog.AssertExpectations(t)
}

func TestUnauthorizedClearsSession(t *testing.T) {
	mockCatalog, h := newTestServer(Options{AuthRequired: true})
	mockCatalog.On("Stats", mock.Anything).
		Return(model.BookStats{}, &catalog.Error{Kind: catalog.ErrUnauthorized, Op: "stats"})

	w := get(h, "/dashboard", sessionCookie(t, "stale"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
	c := cookie(w, session.CookieName)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestLogin(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("Login", mock.Anything, "ada@example.com", "hunter22").
		Return(model.AuthPayload{Token: "tok", User: model.User{ID: "u1", Name: "Ada"}}, nil)

	w := post(h, "/login", url.Values{"email": {" ada@example.com "}, "password": {"hunter22"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	c := cookie(w, session.CookieName)
	require.NotNil(t, c)
	assert.True(t, c.HttpOnly)
}

func TestLoginFailure(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("Login", mock.Anything, "ada@example.com", "wrong").
		Return(model.AuthPayload{}, &catalog.Error{Kind: catalog.ErrUnauthorized, Op: "login"})

	w := post(h, "/login", url.Values{"email": {"ada@example.com"}, "password": {"wrong"}})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid email or password")
	assert.Contains(t, w.Body.String(), `value="ada@example.com"`)
}

func TestLoginPageRedirectsWhenSignedIn(t *testing.T) {
	_, h := newTestServer(Options{})

	w := get(h, "/login", sessionCookie(t, "tok"))

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestRegisterPasswordMismatch(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})

	w := post(h, "/register", url.Values{
		"name":            {"Ada"},
		"email":           {"ada@example.com"},
		"password":        {"hunter22"},
		"confirmPassword": {"hunter23"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Passwords do not match")
	mockCatalog.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestLogout(t *testing.T) {
	_, h := newTestServer(Options{AuthRequired: true})

	w := post(h, "/logout", url.Values{}, sessionCookie(t, "tok"))

	assert.Equal(t, "/login", w.Header().Get("Location"))
	c := cookie(w, session.CookieName)
	require.NotNil(t, c)
	assert.Equal(t, -1, c.MaxAge)
}

func TestMutationUnauthorizedSignsOut(t *testing.T) {
	unauthorized := &catalog.Error{Kind: catalog.ErrUnauthorized, Op: "mutate"}
	tests := []struct {
		name   string
		target string
		form   url.Values
		setup  func(m *MockCatalog)
	}{
		{
			name:   "create",
			target: "/books/new",
			form:   url.Values{"title": {"Dune"}, "author": {"Frank Herbert"}, "publishedYear": {"1965"}, "genre": {"Science Fiction"}},
			setup: func(m *MockCatalog) {
				m.On("CreateBook", mock.Anything, mock.Anything).Return(model.Book{}, unauthorized)
			},
		},
		{
			name:   "update",
			target: "/books/42/edit",
			form:   url.Values{"title": {"Dune"}, "author": {"Frank Herbert"}, "publishedYear": {"1965"}, "genre": {"Science Fiction"}},
			setup: func(m *MockCatalog) {
				m.On("UpdateBook", mock.Anything, "42", mock.Anything).Return(model.Book{}, unauthorized)
			},
		},
		{
			name:   "delete",
			target: "/books/42/delete",
			form:   url.Values{"return": {"/?page=2"}},
			setup: func(m *MockCatalog) {
				m.On("DeleteBook", mock.Anything, "42").Return(unauthorized)
			},
		},
		{
			name:   "rate",
			target: "/books/42/rate",
			form:   url.Values{"rating": {"4"}, "return": {"/?page=2"}},
			setup: func(m *MockCatalog) {
				m.On("RateBook", mock.Anything, "42", 4.0).Return(model.Rating{}, unauthorized)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockCatalog, h := newTestServer(Options{AuthRequired: true})
			tt.setup(mockCatalog)

			w := post(h, tt.target, tt.form, sessionCookie(t, "stale"))

			assert.Equal(t, http.StatusSeeOther, w.Code)
			assert.Equal(t, "/login", w.Header().Get("Location"))
			c := cookie(w, session.CookieName)
			require.NotNil(t, c)
			assert.Equal(t, -1, c.MaxAge)
			assert.Empty(t, flash(w))
			mockCatalog.AssertExpectations(t)
		})
	}
}

func TestMutationUnauthorizedWithoutAuthRequired(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("DeleteBook", mock.Anything, "42").
		Return(&catalog.Error{Kind: catalog.ErrUnauthorized, Op: "delete book"})

	w := post(h, "/books/42/delete", url.Values{"return": {"/?page=2"}})

	assert.Equal(t, "/?page=2", w.Header().Get("Location"))
	assert.Contains(t, flash(w), "Error deleting book")
}
