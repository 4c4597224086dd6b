package listing

import (
	"net/url"
	"testing"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T {
	return &v
}

func TestSetSearchBlankDropsField(t *testing.T) {
	filters := []model.BookFilter{
		{},
		{Genre: ptr("Fantasy")},
		{Genre: ptr("Fantasy"), Language: ptr("English"), MinYear: ptr(1900), Search: ptr("ring")},
	}
	for _, f := range filters {
		for _, blank := range []string{"", "   ", "\t"} {
			s := New()
			s.SetFilter(f)
			s.SetSearch(blank)
			req := s.Request()
			assert.Nil(t, req.Filter.Search)
			assert.Equal(t, f.Genre, req.Filter.Genre)
			assert.Equal(t, f.Language, req.Filter.Language)
		}
	}
}

func TestSetSearchMerges(t *testing.T) {
	s := New()
	s.SetFilter(model.BookFilter{Genre: ptr("Fantasy")})
	s.SetSearch("  hobbit ")

	req := s.Request()
	assert.Equal(t, ptr("hobbit"), req.Filter.Search)
	assert.Equal(t, ptr("Fantasy"), req.Filter.Genre)
}

func TestSetFilterIsNotAdditive(t *testing.T) {
	s := New()
	s.SetFilter(model.BookFilter{Genre: ptr("Fantasy"), Language: ptr("English")})
	s.SetFilter(model.BookFilter{Genre: ptr("Fantasy")})

	assert.Equal(t, model.BookFilter{Genre: ptr("Fantasy")}, s.Request().Filter)
}

func TestSetFilterClearsSearch(t *testing.T) {
	s := New()
	s.SetSearch("dune")
	s.SetFilter(model.BookFilter{Genre: ptr("Science Fiction")})
	assert.Nil(t, s.Request().Filter.Search)
}

func TestFilterChangesResetPage(t *testing.T) {
	s := New()
	s.SetPage(3)
	s.SetSearch("dune")
	assert.Equal(t, 1, s.Page)

	s.SetPage(3)
	s.SetFilter(model.BookFilter{})
	assert.Equal(t, 1, s.Page)
}

func TestSetPageDoesNotClamp(t *testing.T) {
	s := New()
	s.SetPage(99)
	assert.Equal(t, 99, s.Request().Page)
	s.SetPage(-2)
	assert.Equal(t, -2, s.Request().Page)
}

func TestRequestShape(t *testing.T) {
	s := New()
	req := s.Request()
	assert.Equal(t, Request{Page: 1, Limit: 12}, req)
	assert.Equal(t, req, s.Request())
}

func TestNextStopsAtLastPage(t *testing.T) {
	totalPages := 3
	s := New()
	var requested []int
	for range 3 {
		before := s.Page
		s.Next(totalPages)
		if s.Page != before {
			requested = append(requested, s.Request().Page)
		}
	}
	assert.Equal(t, []int{2, 3}, requested)
	assert.False(t, s.HasNext(totalPages))
}

func TestPrevStopsAtFirstPage(t *testing.T) {
	s := New()
	assert.False(t, s.HasPrev())
	s.Prev()
	assert.Equal(t, 1, s.Page)

	s.SetPage(2)
	s.Prev()
	assert.Equal(t, 1, s.Page)
}

func TestActiveFilters(t *testing.T) {
	s := New()
	s.SetFilter(model.BookFilter{Genre: ptr("Horror"), MinRating: ptr(3.5), Search: ptr("it")})
	assert.Equal(t, 2, s.ActiveFilters())
}

func TestFromQuery(t *testing.T) {
	q := url.Values{
		"page":      {"2"},
		"q":         {"dune"},
		"genre":     {"Science Fiction"},
		"minYear":   {"1960"},
		"maxYear":   {""},
		"minRating": {"4.5"},
		"maxRating": {"abc"},
		"language":  {" "},
	}
	s := FromQuery(q)
	assert.Equal(t, 2, s.Page)
	assert.Equal(t, model.BookFilter{
		Genre:     ptr("Science Fiction"),
		MinYear:   ptr(1960),
		MinRating: ptr(4.5),
		Search:    ptr("dune"),
	}, s.Filter)

	assert.Equal(t, 1, FromQuery(url.Values{"page": {"x"}}).Page)
}

func TestQueryRoundTrip(t *testing.T) {
	states := []State{
		New(),
		{Page: 4, Filter: model.BookFilter{Genre: ptr("Drama")}},
		{Page: 1, Filter: model.BookFilter{
			MinYear:   ptr(1900),
			MaxYear:   ptr(2000),
			MinRating: ptr(1.5),
			MaxRating: ptr(5.0),
			Language:  ptr("French"),
			Search:    ptr("les"),
		}},
	}
	for _, s := range states {
		assert.Equal(t, s, FromQuery(s.Query()))
	}
}

func TestPageURL(t *testing.T) {
	s := New()
	s.SetFilter(model.BookFilter{Genre: ptr("Fantasy")})
	assert.Equal(t, "/?genre=Fantasy&page=2", s.PageURL("/", 2))
	assert.Equal(t, "/?genre=Fantasy", s.PageURL("/", 1))
	assert.Equal(t, "/", New().URL("/"))
}
