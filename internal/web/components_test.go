package web

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
)

func ptr[T any](v T) *T {
	return &v
}

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var sb strings.Builder
	require.NoError(t, c.Render(context.Background(), &sb))
	return sb.String()
}

func TestBookCard(t *testing.T) {
	book := model.Book{ID: "42", Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965, Genre: "Science Fiction", Rating: ptr(3.0)}

	html := render(t, BookCard(book, "/?genre=Fantasy&page=2"))

	assert.Contains(t, html, `<a href="/books/42">Dune</a>`)
	assert.Contains(t, html, `href="/books/42/edit"`)
	assert.Contains(t, html, `<form method="post" action="/books/42/delete"`)
	assert.Contains(t, html, `<form class="rate" method="post" action="/books/42/rate">`)
	assert.Equal(t, 2, strings.Count(html, `<input type="hidden" name="return" value="/?genre=Fantasy&amp;page=2">`))
	assert.Equal(t, 3, strings.Count(html, `class="on"`))
	assert.NotContains(t, html, "Not rated")
}

func TestBookCardUnrated(t *testing.T) {
	html := render(t, BookCard(model.Book{ID: "7", Title: "Emma"}, "/"))
	assert.Contains(t, html, "Not rated")
	assert.NotContains(t, html, `class="cover"`)
}

func TestLayoutEscapesFlash(t *testing.T) {
	html := render(t, ErrorPage(Page{Title: "Error", Flash: "<b>saved</b>"}, ErrorData{Message: "Book not found"}))

	assert.Contains(t, html, "&lt;b&gt;saved&lt;/b&gt;")
	assert.Contains(t, html, "<title>Error | Booklister</title>")
	assert.NotContains(t, html, "Try again")
	assert.Contains(t, html, `<a href="/login">Sign in</a>`)
}

func TestLayoutNavigation(t *testing.T) {
	anonymous := render(t, Layout(Page{AuthRequired: true}))
	assert.NotContains(t, anonymous, `href="/dashboard"`)

	signedIn := render(t, Layout(Page{AuthRequired: true, SignedIn: true, User: "Ada"}))
	assert.Contains(t, signedIn, `href="/dashboard"`)
	assert.Contains(t, signedIn, "Ada")
	assert.Contains(t, signedIn, "Sign out")
}

func TestPaginationHiddenForSinglePage(t *testing.T) {
	assert.Empty(t, render(t, Pagination(BooksData{State: listing.New(), TotalPages: 1})))
}

func TestFiltersMarksSelectedGenre(t *testing.T) {
	state := listing.New()
	state.SetFilter(model.BookFilter{Genre: ptr("Fantasy"), MinYear: ptr(2000)})
	html := render(t, Filters(BooksData{State: state, Genres: []string{"Fantasy", "Horror"}, FilterCount: 2}))

	assert.Contains(t, html, `<details class="card" open>`)
	assert.Contains(t, html, `<option value="Fantasy" selected>`)
	assert.Contains(t, html, `<option value="Horror">`)
	assert.Contains(t, html, `name="minYear" value="2000"`)
	assert.Contains(t, html, "(2)")
}

func TestFieldError(t *testing.T) {
	errs := validate.Errors{"title": "Title is required"}
	assert.Equal(t, `<p class="field-error">Title is required</p>`, render(t, FieldError(errs, "title")))
	assert.Empty(t, render(t, FieldError(errs, "author")))
}

func TestCarriedFieldsSkipsSearchAndPage(t *testing.T) {
	state := listing.New()
	state.SetFilter(model.BookFilter{Genre: ptr("Fantasy"), Language: ptr("English"), Search: ptr("dune")})
	state.SetPage(3)

	assert.Equal(t, []field{{"genre", "Fantasy"}, {"language", "English"}}, carriedFields(state))
}

func TestClassesMergesExtra(t *testing.T) {
	assert.Equal(t, "card", classes("card", ""))
	assert.Equal(t, "card stat", classes("card", "stat"))
}
