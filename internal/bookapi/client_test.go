package bookapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	Auth      string
	Agent     string
	OpName    string         `json:"operationName"`
	Variables map[string]any `json:"variables"`
}

func newServer(t *testing.T, response string, captured *capturedRequest) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Auth = r.Header.Get("Authorization")
		captured.Agent = r.Header.Get("User-Agent")
		require.NoError(t, json.NewDecoder(r.Body).Decode(captured))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGetBooksSendsFilterWithoutAbsentFields(t *testing.T) {
	var captured capturedRequest
	srv := newServer(t, `{"data":{"books":{"books":[{"id":"1","title":"Dune","author":"Frank Herbert","publishedYear":1965,"genre":"Science Fiction","rating":4.5}],"total":1,"page":1,"totalPages":1}}}`, &captured)
	client := GetClient(Options{URL: srv.URL, Token: "static"})

	page, limit := 1, 12
	genre := "Science Fiction"
	data, err := GetBooks(context.Background(), client, &page, &limit, &BookFilterInput{Genre: &genre})
	require.NoError(t, err)

	assert.Equal(t, "GetBooks", captured.OpName)
	assert.Equal(t, "Bearer static", captured.Auth)
	assert.Contains(t, captured.Agent, "booklister/")
	assert.Equal(t, map[string]any{"genre": "Science Fiction"}, captured.Variables["filter"])
	assert.EqualValues(t, 12, captured.Variables["limit"])

	require.Len(t, data.Books.Books, 1)
	assert.Equal(t, "Dune", data.Books.Books[0].Title)
	assert.Equal(t, 4.5, *data.Books.Books[0].Rating)
	assert.Nil(t, data.Books.Books[0].CoverImage)
}

func TestContextTokenOverridesStaticToken(t *testing.T) {
	var captured capturedRequest
	srv := newServer(t, `{"data":{"genres":["Fantasy"]}}`, &captured)
	client := GetClient(Options{URL: srv.URL, Token: "static"})

	ctx := WithToken(context.Background(), "session-token")
	data, err := GetGenres(ctx, client)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fantasy"}, data.Genres)
	assert.Equal(t, "Bearer session-token", captured.Auth)
}

func TestNoTokenSendsNoAuthorization(t *testing.T) {
	var captured capturedRequest
	srv := newServer(t, `{"data":{"deleteBook":true}}`, &captured)
	client := GetClient(Options{URL: srv.URL})

	data, err := DeleteBook(context.Background(), client, "42")
	require.NoError(t, err)
	assert.True(t, data.DeleteBook)
	assert.Empty(t, captured.Auth)
	assert.Equal(t, "42", captured.Variables["id"])
}

func TestUpdateBookOmitsUnsetFields(t *testing.T) {
	var captured capturedRequest
	srv := newServer(t, `{"data":{"updateBook":{"id":"7","title":"New","author":"A","publishedYear":2000,"genre":"Drama"}}}`, &captured)
	client := GetClient(Options{URL: srv.URL})

	title := "New"
	_, err := UpdateBook(context.Background(), client, "7", UpdateBookInput{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"title": "New"}, captured.Variables["input"])
}

func TestRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"genres":[]}}`))
	}))
	defer srv.Close()

	client := GetClient(Options{URL: srv.URL, RetryMax: 2})
	_, err := GetGenres(context.Background(), client)
	require.NoError(t, err)
	assert.EqualValues(t, 2, calls.Load())
}

func TestWithoutRetrySendsOnce(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := GetClient(Options{URL: srv.URL, RetryMax: 2})
	_, err := DeleteBook(WithoutRetry(context.Background()), client, "42")
	require.Error(t, err)
	assert.EqualValues(t, 1, calls.Load())
}
