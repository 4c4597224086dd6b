package validate

import (
	"testing"
	"time"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func fixedYear(t *testing.T, year int) {
	t.Helper()
	orig := now
	now = func() time.Time { return time.Date(year, time.June, 1, 0, 0, 0, 0, time.UTC) }
	t.Cleanup(func() { now = orig })
}

func TestBookInput(t *testing.T) {
	fixedYear(t, 2025)
	valid := model.BookInput{
		Title:         "Dune",
		Author:        "Frank Herbert",
		PublishedYear: 1965,
		Genre:         "Science Fiction",
	}
	assert.NoError(t, Struct(valid))

	tests := []struct {
		name  string
		edit  func(in *model.BookInput)
		field string
	}{
		{"missing title", func(in *model.BookInput) { in.Title = "" }, "title"},
		{"blank title", func(in *model.BookInput) { in.Title = "   " }, "title"},
		{"missing author", func(in *model.BookInput) { in.Author = "" }, "author"},
		{"year too early", func(in *model.BookInput) { in.PublishedYear = 999 }, "publishedYear"},
		{"year in future", func(in *model.BookInput) { in.PublishedYear = 2026 }, "publishedYear"},
		{"rating too high", func(in *model.BookInput) { in.Rating = ptr(5.5) }, "rating"},
		{"negative rating", func(in *model.BookInput) { in.Rating = ptr(-1.0) }, "rating"},
		{"zero pages", func(in *model.BookInput) { in.TotalPages = ptr(0) }, "totalPages"},
		{"bad cover", func(in *model.BookInput) { in.CoverImage = ptr("not a url") }, "coverImage"},
		{"bad isbn", func(in *model.BookInput) { in.ISBN = ptr("12345") }, "isbn"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := valid
			tt.edit(&in)
			err := Struct(in)
			require.Error(t, err)
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.True(t, errs.Has(tt.field), "expected error on %s, got %v", tt.field, errs)
		})
	}
}

func TestBookInputBoundaries(t *testing.T) {
	fixedYear(t, 2025)
	in := model.BookInput{
		Title:         "Old",
		Author:        "Someone",
		PublishedYear: 1000,
		Genre:         "History",
		Rating:        ptr(0.0),
		ISBN:          ptr("978-3-16-148410-0"),
		CoverImage:    ptr("https://example.com/book-cover.jpg"),
	}
	assert.NoError(t, Struct(in))

	in.PublishedYear = 2025
	in.Rating = ptr(5.0)
	assert.NoError(t, Struct(in))
}

func TestBookUpdateOnlyChecksPresentFields(t *testing.T) {
	fixedYear(t, 2025)
	assert.NoError(t, Struct(model.BookUpdate{}))
	assert.NoError(t, Struct(model.BookUpdate{Genre: ptr("Fantasy")}))

	err := Struct(model.BookUpdate{Title: ptr(" ")})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Title is required", errs["title"])
}

func TestBlankRequiredFieldsAreReported(t *testing.T) {
	fixedYear(t, 2025)
	inputs := map[string]any{
		"create":   model.BookInput{Title: "  ", Author: "Frank Herbert", PublishedYear: 1965, Genre: "Science Fiction"},
		"update":   model.BookUpdate{Title: ptr("")},
		"register": Registration{Name: "\t", Email: "ann@example.com", Password: "secret"},
	}
	want := map[string]string{"create": "title", "update": "title", "register": "name"}
	for name, input := range inputs {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = Struct(input) })
			var errs Errors
			require.ErrorAs(t, err, &errs)
			assert.Len(t, errs, 1)
			assert.True(t, errs.Has(want[name]), "got %v", errs)
		})
	}
}

func TestRating(t *testing.T) {
	assert.NoError(t, Rating(4.5))
	assert.NoError(t, Rating(0))
	assert.NoError(t, Rating(5))
	assert.Error(t, Rating(5.5))
	assert.Error(t, Rating(-1))
}

func TestRegistration(t *testing.T) {
	err := Struct(Registration{Name: "Ann", Email: "ann@example.com", Password: "abc"})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])

	assert.NoError(t, Struct(Credentials{Email: "ann@example.com", Password: "x"}))
}

func TestErrorsMessageIsStable(t *testing.T) {
	errs := Errors{"title": "Title is required", "author": "Author is required"}
	assert.Equal(t, "validation failed: author: Author is required; title: Title is required", errs.Error())
}

func TestErrorsSummary(t *testing.T) {
	errs := Errors{"title": "Title is required", "author": "Author is required"}
	assert.Equal(t, "Author is required, Title is required", errs.Summary())
}
