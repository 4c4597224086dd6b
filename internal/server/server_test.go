package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
)

// MockCatalog is a mock implementation of the catalog.Service interface
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) ListBooks(ctx context.Context, req listing.Request) (model.BookPage, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(model.BookPage), args.Error(1)
}

func (m *MockCatalog) GetBook(ctx context.Context, id string) (model.Book, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockCatalog) SearchBooks(ctx context.Context, query string, limit int) ([]model.Book, error) {
	args := m.Called(ctx, query, limit)
	return args.Get(0).([]model.Book), args.Error(1)
}

func (m *MockCatalog) Stats(ctx context.Context) (model.BookStats, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.BookStats), args.Error(1)
}

func (m *MockCatalog) Genres(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockCatalog) CreateBook(ctx context.Context, input model.BookInput) (model.Book, error) {
	args := m.Called(ctx, input)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockCatalog) UpdateBook(ctx context.Context, id string, input model.BookUpdate) (model.Book, error) {
	args := m.Called(ctx, id, input)
	return args.Get(0).(model.Book), args.Error(1)
}

func (m *MockCatalog) DeleteBook(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalog) RateBook(ctx context.Context, id string, rating float64) (model.Rating, error) {
	args := m.Called(ctx, id, rating)
	return args.Get(0).(model.Rating), args.Error(1)
}

func (m *MockCatalog) Login(ctx context.Context, email, password string) (model.AuthPayload, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(model.AuthPayload), args.Error(1)
}

func (m *MockCatalog) Register(ctx context.Context, name, email, password string) (model.AuthPayload, error) {
	args := m.Called(ctx, name, email, password)
	return args.Get(0).(model.AuthPayload), args.Error(1)
}

func (m *MockCatalog) Me(ctx context.Context) (model.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.User), args.Error(1)
}

func newTestServer(opts Options) (*MockCatalog, http.Handler) {
	mockCatalog := new(MockCatalog)
	s := New(mockCatalog, opts)
	return mockCatalog, s.RegisterRoutes()
}

func ptr[T any](v T) *T {
	return &v
}

func get(h http.Handler, target string, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return serve(h, req)
}

func post(h http.Handler, target string, form url.Values, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	req := newFormRequest(target, form)
	for _, c := range cookies {
		req.AddCookie(c)
	}
	return serve(h, req)
}

func cookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func flash(w *httptest.ResponseRecorder) string {
	c := cookie(w, flashCookie)
	if c == nil {
		return ""
	}
	message, _ := url.QueryUnescape(c.Value)
	return message
}

func newFormRequest(target string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}
