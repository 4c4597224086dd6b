package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
)

func TestFeedHandler(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	filter := model.BookFilter{Genre: ptr("Science Fiction")}
	mockCatalog.On("ListBooks", mock.Anything, listing.Request{Page: 1, Limit: listing.PageSize, Filter: filter}).
		Return(model.BookPage{Books: []model.Book{dune()}, Total: 1, Page: 1, TotalPages: 1}, nil)

	tests := []struct {
		target      string
		contentType string
	}{
		{"/books.rss?genre=Science+Fiction", "application/rss+xml; charset=utf-8"},
		{"/books.atom?genre=Science+Fiction", "application/atom+xml; charset=utf-8"},
		{"/books.json?genre=Science+Fiction", "application/json; charset=utf-8"},
	}
	for _, tt := range tests {
		t.Run(tt.target, func(t *testing.T) {
			w := get(h, tt.target)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.contentType, w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), "Dune")
			assert.Contains(t, w.Body.String(), "/books/42")
		})
	}
}

// brokenWriter accepts headers but fails every body write, like a client that
// hung up mid-response.
type brokenWriter struct {
	*httptest.ResponseRecorder
}

func (brokenWriter) Write([]byte) (int, error) {
	return 0, errors.New("connection reset")
}

func TestWriteFeedLogsWriteErrors(t *testing.T) {
	var logs bytes.Buffer
	orig := log.Logger
	log.Logger = zerolog.New(&logs)
	t.Cleanup(func() { log.Logger = orig })

	s := New(new(MockCatalog), Options{})
	req := httptest.NewRequest(http.MethodGet, "/books.rss", nil)
	feed := s.buildFeed(req, listing.New(), []model.Book{dune()})

	for _, format := range []feedFormat{formatRSS, formatAtom, formatJSON} {
		logs.Reset()
		w := brokenWriter{httptest.NewRecorder()}
		require.NotPanics(t, func() { s.writeFeed(format, feed, w) })
		assert.Contains(t, logs.String(), `"message":"Unable to write feed"`, format)
		assert.Contains(t, logs.String(), `"format":"`+string(format)+`"`, format)
		assert.Contains(t, logs.String(), "connection reset", format)
	}
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "All books", describeFilter(listing.New()))

	state := listing.New()
	state.SetFilter(model.BookFilter{Genre: ptr("Fantasy"), MinYear: ptr(2000)})
	assert.Equal(t, "Books matching genre=Fantasy, minYear=2000", describeFilter(state))
}

func TestSearchHandler(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("SearchBooks", mock.Anything, "dune", 5).Return([]model.Book{dune()}, nil)

	w := get(h, "/search?q=dune&limit=5")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
	var body searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Len(t, body.Results, 1)
	assert.Equal(t, "Dune", body.Results[0].Title)
	assert.Equal(t, "/books/42", body.Results[0].URL)
}

func TestSuggestionsLimit(t *testing.T) {
	assert.Equal(t, defaultSuggestions, suggestionsLimit(""))
	assert.Equal(t, defaultSuggestions, suggestionsLimit("-3"))
	assert.Equal(t, 3, suggestionsLimit("3"))
	assert.Equal(t, maxSuggestions, suggestionsLimit("1000"))
}

func TestDashboardHandler(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("Stats", mock.Anything).Return(model.BookStats{
		TotalBooks:    4,
		AverageRating: 4.5,
		GenreDistribution: []model.GenreCount{
			{Genre: "Fantasy", Count: 1},
			{Genre: "Science Fiction", Count: 3},
		},
		BooksPerYear: []model.YearCount{{Year: 1965, Count: 4}},
	}, nil)

	w := get(h, "/dashboard")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "75.0%")
	assert.Contains(t, body, "25.0%")
	assert.Contains(t, body, "4.5")
}

func TestNewDashboardDataSortsByCount(t *testing.T) {
	page := newDashboardData(model.BookStats{
		GenreDistribution: []model.GenreCount{{Genre: "A", Count: 1}, {Genre: "B", Count: 5}},
		BooksPerYear:      []model.YearCount{{Year: 1990, Count: 1}, {Year: 2020, Count: 2}},
	})
	assert.Equal(t, "B", page.Genres[0].Genre)
	assert.Equal(t, 2020, page.Years[0].Year)
}
