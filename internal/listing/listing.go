// Package listing holds the search, filter and pagination state of the book
// list and projects it onto the request sent to the catalog.
package listing

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/RobBrazier/booklister/internal/model"
)

const PageSize = 12

type Request struct {
	Page   int
	Limit  int
	Filter model.BookFilter
}

// State is a plain value; every setter works on a copy held by the caller.
type State struct {
	Page   int
	Filter model.BookFilter
}

func New() State {
	return State{Page: 1}
}

// SetSearch merges a search term into the filter. Blank input drops the
// term entirely rather than searching for an empty string.
func (s *State) SetSearch(query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		s.Filter.Search = nil
	} else {
		s.Filter.Search = &query
	}
	s.Page = 1
}

// SetFilter replaces the whole filter. Fields missing from f are cleared,
// including the search term.
func (s *State) SetFilter(f model.BookFilter) {
	s.Filter = f
	s.Page = 1
}

// SetPage stores n as is. Range checks belong to the caller.
func (s *State) SetPage(n int) {
	s.Page = n
}

func (s State) HasPrev() bool {
	return s.Page > 1
}

func (s State) HasNext(totalPages int) bool {
	return s.Page < totalPages
}

func (s *State) Prev() {
	if s.HasPrev() {
		s.Page--
	}
}

func (s *State) Next(totalPages int) {
	if s.HasNext(totalPages) {
		s.Page++
	}
}

func (s State) Request() Request {
	return Request{
		Page:   s.Page,
		Limit:  PageSize,
		Filter: s.Filter,
	}
}

func (s State) Search() string {
	if s.Filter.Search == nil {
		return ""
	}
	return *s.Filter.Search
}

// ActiveFilters counts the constrained filter fields, not counting search.
func (s State) ActiveFilters() int {
	f := s.Filter
	count := 0
	for _, set := range []bool{
		f.Genre != nil,
		f.MinYear != nil,
		f.MaxYear != nil,
		f.MinRating != nil,
		f.MaxRating != nil,
		f.Language != nil,
	} {
		if set {
			count++
		}
	}
	return count
}

// FromQuery rebuilds state from URL query parameters. Empty or unparseable
// values are treated as absent.
func FromQuery(q url.Values) State {
	s := New()
	if page, err := strconv.Atoi(q.Get("page")); err == nil {
		s.Page = page
	}
	s.Filter = model.BookFilter{
		Genre:     parseString(q.Get("genre")),
		MinYear:   parseInt(q.Get("minYear")),
		MaxYear:   parseInt(q.Get("maxYear")),
		MinRating: parseFloat(q.Get("minRating")),
		MaxRating: parseFloat(q.Get("maxRating")),
		Language:  parseString(q.Get("language")),
		Search:    parseString(q.Get("q")),
	}
	return s
}

// Query encodes state back into URL parameters. Page 1 is implied.
func (s State) Query() url.Values {
	q := FilterQuery(s.Filter)
	if s.Page != 1 {
		q.Set("page", strconv.Itoa(s.Page))
	}
	return q
}

func FilterQuery(f model.BookFilter) url.Values {
	q := url.Values{}
	setString(q, "genre", f.Genre)
	setInt(q, "minYear", f.MinYear)
	setInt(q, "maxYear", f.MaxYear)
	setFloat(q, "minRating", f.MinRating)
	setFloat(q, "maxRating", f.MaxRating)
	setString(q, "language", f.Language)
	setString(q, "q", f.Search)
	return q
}

// PageURL returns the list URL for another page of the same query.
func (s State) PageURL(base string, page int) string {
	s.Page = page
	return withQuery(base, s.Query())
}

func (s State) URL(base string) string {
	return withQuery(base, s.Query())
}

func withQuery(base string, q url.Values) string {
	if len(q) == 0 {
		return base
	}
	return base + "?" + q.Encode()
}

func parseString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func parseInt(v string) *int {
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return nil
	}
	return &n
}

func parseFloat(v string) *float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}

func setString(q url.Values, key string, v *string) {
	if v != nil {
		q.Set(key, *v)
	}
}

func setInt(q url.Values, key string, v *int) {
	if v != nil {
		q.Set(key, strconv.Itoa(*v))
	}
}

func setFloat(q url.Values, key string, v *float64) {
	if v != nil {
		q.Set(key, strconv.FormatFloat(*v, 'f', -1, 64))
	}
}
