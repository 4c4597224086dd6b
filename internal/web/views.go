// Package web holds the templ components that render the HTML pages and the
// view models they are rendered from.
package web

//go:generate go tool templ generate

import (
	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
)

// Page is what the layout needs on every request.
type Page struct {
	Title        string
	User         string
	SignedIn     bool
	AuthRequired bool
	Flash        string
}

// ShowNav reports whether the catalog links are reachable for the visitor.
func (p Page) ShowNav() bool {
	return p.SignedIn || !p.AuthRequired
}

type BooksData struct {
	State       listing.State
	Result      model.BookPage
	Genres      []string
	TotalPages  int
	HasPrev     bool
	HasNext     bool
	PrevURL     string
	NextURL     string
	CurrentURL  string
	FeedURL     string
	FilterCount int
}

// Filtered reports whether a search or any filter narrows the list.
func (d BooksData) Filtered() bool {
	return d.FilterCount > 0 || d.State.Search() != ""
}

type BookData struct {
	Book      model.Book
	ReturnURL string
}

type DashboardData struct {
	Stats  model.BookStats
	Genres []model.GenreCount
	Years  []model.YearCount
}

type ErrorData struct {
	Message  string
	RetryURL string
}

type AuthForm struct {
	Name   string
	Email  string
	Errors validate.Errors
	Error  string
}
