package web

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RobBrazier/booklister/internal/model"
)

func TestParseBookFormTargetsCreate(t *testing.T) {
	form := ParseBookForm(url.Values{"title": {"  Dune "}, "genre": {"Space Opera"}})

	assert.Equal(t, "Dune", form.Title)
	assert.Equal(t, "/books/new", form.Action)
	assert.Equal(t, "Add Book", form.SubmitLabel)
	assert.Contains(t, form.Genres, "Space Opera")

	form.ForBook("42")
	assert.Equal(t, "/books/42/edit", form.Action)
	assert.Equal(t, "/books/42", form.CancelURL)
}

func TestBookFormInput(t *testing.T) {
	form := ParseBookForm(url.Values{
		"title":         {"Dune"},
		"author":        {"Frank Herbert"},
		"publishedYear": {"1965"},
		"genre":         {"Science Fiction"},
		"rating":        {"4.5"},
		"totalPages":    {"412"},
	})

	input, errs := form.Input()

	assert.Empty(t, errs)
	assert.Equal(t, 1965, input.PublishedYear)
	assert.Equal(t, ptr(4.5), input.Rating)
	assert.Equal(t, ptr(412), input.TotalPages)
	assert.Nil(t, input.ISBN)
}

func TestBookFormInputReportsUnparseableNumbers(t *testing.T) {
	form := ParseBookForm(url.Values{"publishedYear": {"soon"}, "rating": {"high"}, "totalPages": {"many"}})

	_, errs := form.Input()

	assert.Equal(t, "Invalid year", errs["publishedYear"])
	assert.Equal(t, "Rating must be between 0 and 5", errs["rating"])
	assert.Equal(t, "Total pages must be at least 1", errs["totalPages"])
}

func TestBookFormUpdateSendsClearedText(t *testing.T) {
	form := ParseBookForm(url.Values{"title": {"Dune"}, "description": {""}})

	update, errs := form.Update()

	assert.Empty(t, errs)
	assert.Equal(t, ptr(""), update.Description)
	assert.Nil(t, update.PublishedYear)
	assert.Nil(t, update.Genre)
}

func TestEditBookForm(t *testing.T) {
	form := EditBookForm(model.Book{
		ID:            "42",
		Title:         "Dune",
		PublishedYear: 1965,
		Genre:         "Space Opera",
		Rating:        ptr(4.25),
		TotalPages:    ptr(412),
	})

	assert.Equal(t, "1965", form.PublishedYear)
	assert.Equal(t, "4.25", form.Rating)
	assert.Equal(t, "412", form.TotalPages)
	assert.Equal(t, "Save Changes", form.SubmitLabel)
	assert.Contains(t, form.Genres, "Space Opera")
}
