package server

import (
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
)

func dune() model.Book {
	return model.Book{
		ID:            "42",
		Title:         "Dune",
		Author:        "Frank Herbert",
		PublishedYear: 1965,
		Genre:         "Science Fiction",
		Rating:        ptr(4.5),
		Language:      "English",
	}
}

func TestBooksHandlerFirstPage(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("ListBooks", mock.Anything, listing.Request{Page: 1, Limit: listing.PageSize}).
		Return(model.BookPage{Books: []model.Book{dune()}, Total: 30, Page: 1, TotalPages: 3}, nil)
	mockCatalog.On("Genres", mock.Anything).Return([]string{"Science Fiction"}, nil)

	w := get(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Dune")
	assert.Contains(t, body, "Page 1 of 3")
	assert.Contains(t, body, `<span class="disabled">Previous</span>`)
	assert.Contains(t, body, `href="/?page=2"`)
	mockCatalog.AssertExpectations(t)
}

func TestBooksHandlerLastPage(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	filter := model.BookFilter{Genre: ptr("Fantasy")}
	mockCatalog.On("ListBooks", mock.Anything, listing.Request{Page: 3, Limit: listing.PageSize, Filter: filter}).
		Return(model.BookPage{Books: []model.Book{dune()}, Total: 30, Page: 3, TotalPages: 3}, nil)
	mockCatalog.On("Genres", mock.Anything).Return([]string{"Fantasy"}, nil)

	w := get(h, "/?genre=Fantasy&page=3")

	body := w.Body.String()
	assert.Contains(t, body, "Page 3 of 3")
	assert.Contains(t, body, `<span class="disabled">Next</span>`)
	assert.Contains(t, body, `href="/?genre=Fantasy&amp;page=2"`)
}

func TestBooksHandlerPastLastPage(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("ListBooks", mock.Anything, listing.Request{Page: 10, Limit: listing.PageSize}).
		Return(model.BookPage{Total: 30, Page: 10, TotalPages: 3}, nil)
	mockCatalog.On("Genres", mock.Anything).Return([]string{}, nil)

	w := get(h, "/?page=10")

	body := w.Body.String()
	assert.Contains(t, body, `<a href="/?page=3">Previous</a>`)
	assert.Contains(t, body, `<span class="disabled">Next</span>`)
}

func TestNewBooksDataClampsPrevious(t *testing.T) {
	state := listing.New()
	state.SetPage(10)
	data := newBooksData(state, model.BookPage{Page: 10, TotalPages: 3}, nil)
	assert.Equal(t, "/?page=3", data.PrevURL)
	assert.True(t, data.HasPrev)
	assert.False(t, data.HasNext)

	state.SetPage(2)
	data = newBooksData(state, model.BookPage{Page: 2, TotalPages: 3}, nil)
	assert.Equal(t, "/", data.PrevURL)
	assert.Equal(t, "/?page=3", data.NextURL)
}

func TestBooksHandlerCardActionsReturnToList(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	filter := model.BookFilter{Genre: ptr("Fantasy")}
	mockCatalog.On("ListBooks", mock.Anything, listing.Request{Page: 2, Limit: listing.PageSize, Filter: filter}).
		Return(model.BookPage{Books: []model.Book{dune()}, Total: 30, Page: 2, TotalPages: 3}, nil)
	mockCatalog.On("Genres", mock.Anything).Return([]string{"Fantasy"}, nil)

	w := get(h, "/?genre=Fantasy&page=2")

	body := w.Body.String()
	assert.Contains(t, body, `href="/books/42/edit"`)
	assert.Contains(t, body, `action="/books/42/delete"`)
	assert.Contains(t, body, `action="/books/42/rate"`)
	assert.Contains(t, body, `onsubmit="return confirm('Delete this book?')"`)
	assert.Equal(t, 2, strings.Count(body, `name="return" value="/?genre=Fantasy&amp;page=2"`))
}

func TestBooksHandlerEmpty(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("ListBooks", mock.Anything, mock.Anything).
		Return(model.BookPage{Page: 1, TotalPages: 0}, nil)
	mockCatalog.On("Genres", mock.Anything).Return([]string{}, nil)

	w := get(h, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "No books found")
	assert.NotContains(t, w.Body.String(), "Page 1 of")
}

func TestBooksHandlerServiceDown(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("ListBooks", mock.Anything, mock.Anything).
		Return(model.BookPage{}, &catalog.Error{Kind: catalog.ErrTransport, Op: "list books"})

	w := get(h, "/?page=2")

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "The book service is unavailable, please try again")
	assert.Contains(t, w.Body.String(), `href="/?page=2"`)
}

func TestApplySearchResetsPage(t *testing.T) {
	_, h := newTestServer(Options{})

	w := get(h, "/books/search?q=+dune+&genre=Fantasy&page=3")

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?genre=Fantasy&q=dune", w.Header().Get("Location"))

	w = get(h, "/books/search?q=+++&genre=Fantasy")
	assert.Equal(t, "/?genre=Fantasy", w.Header().Get("Location"))
}

func TestFilterReplacesPreviousFilter(t *testing.T) {
	_, h := newTestServer(Options{})

	w := get(h, "/filter?minYear=2000&page=4")
	assert.Equal(t, "/?minYear=2000", w.Header().Get("Location"))

	w = get(h, "/filter?clear=1&genre=Fantasy")
	assert.Equal(t, "/", w.Header().Get("Location"))
}

func TestBookHandlerNotFound(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("GetBook", mock.Anything, "missing").
		Return(model.Book{}, &catalog.Error{Kind: catalog.ErrNotFound, Op: "get book"})

	w := get(h, "/books/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Book not found")
	assert.NotContains(t, w.Body.String(), "Try again")
}

func TestBookHandler(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("GetBook", mock.Anything, "42").Return(dune(), nil)

	w := get(h, "/books/42")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Frank Herbert")
	assert.Contains(t, body, `action="/books/42/delete"`)
}

func TestCreateBookRedirectsToDetail(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("CreateBook", mock.Anything, mock.MatchedBy(func(input model.BookInput) bool {
		return input.Title == "Dune" && input.PublishedYear == 1965 && input.ISBN == nil
	})).Return(dune(), nil)

	w := post(h, "/books/new", url.Values{
		"title":         {"Dune"},
		"author":        {"Frank Herbert"},
		"publishedYear": {"1965"},
		"genre":         {"Science Fiction"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/books/42", w.Header().Get("Location"))
	assert.Equal(t, "Book created successfully!", flash(w))
}

func TestCreateBookRerendersWithErrors(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("CreateBook", mock.Anything, mock.Anything).
		Return(model.Book{}, &catalog.Error{Kind: catalog.ErrValidation, Op: "create book", Err: validate.Errors{"title": "Title is required"}})

	w := post(h, "/books/new", url.Values{
		"title":         {""},
		"author":        {"Frank Herbert"},
		"publishedYear": {"1965"},
		"genre":         {"Science Fiction"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title is required")
	assert.Contains(t, w.Body.String(), `value="Frank Herbert"`)
}

func TestCreateBookUnparseableYearSkipsService(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})

	w := post(h, "/books/new", url.Values{
		"title":         {"Dune"},
		"author":        {"Frank Herbert"},
		"publishedYear": {"soon"},
		"genre":         {"Science Fiction"},
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid year")
	mockCatalog.AssertNotCalled(t, "CreateBook", mock.Anything, mock.Anything)
}

func TestUpdateBook(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("UpdateBook", mock.Anything, "42", mock.MatchedBy(func(update model.BookUpdate) bool {
		return *update.Title == "Dune Messiah" && update.Rating == nil && *update.Description == ""
	})).Return(dune(), nil)

	w := post(h, "/books/42/edit", url.Values{
		"title":         {"Dune Messiah"},
		"author":        {"Frank Herbert"},
		"publishedYear": {"1969"},
		"genre":         {"Science Fiction"},
	})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/books/42", w.Header().Get("Location"))
	mockCatalog.AssertExpectations(t)
}

func TestDeleteFromDetailRedirectsHome(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("DeleteBook", mock.Anything, "42").Return(nil)

	w := post(h, "/books/42/delete", url.Values{"return": {"/books/42"}})

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "Book deleted successfully!", flash(w))
}

func TestDeleteKeepsListPosition(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("DeleteBook", mock.Anything, "42").Return(nil)

	w := post(h, "/books/42/delete", url.Values{"return": {"/?page=2"}})

	assert.Equal(t, "/?page=2", w.Header().Get("Location"))
}

func TestDeleteFailure(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("DeleteBook", mock.Anything, "42").
		Return(&catalog.Error{Kind: catalog.ErrNotFound, Op: "delete book"})

	w := post(h, "/books/42/delete", url.Values{"return": {"//evil.example"}})

	assert.Equal(t, "/", w.Header().Get("Location"))
	assert.Equal(t, "Error deleting book: Book not found", flash(w))
}

func TestRateBookRedirectsToReferer(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("RateBook", mock.Anything, "42", 4.5).Return(model.Rating{ID: "42", Rating: 4.5}, nil)

	req := newFormRequest("/books/42/rate", url.Values{"rating": {"4.5"}})
	req.Header.Set("Referer", "http://example.com/?page=2")
	w := serve(h, req)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/?page=2", w.Header().Get("Location"))

	w = post(h, "/books/42/rate", url.Values{"rating": {"4.5"}})
	assert.Equal(t, "/books/42", w.Header().Get("Location"))
	mockCatalog.AssertNumberOfCalls(t, "RateBook", 2)
}

func TestRateBookOutOfRange(t *testing.T) {
	mockCatalog, h := newTestServer(Options{})
	mockCatalog.On("RateBook", mock.Anything, "42", 5.5).
		Return(model.Rating{}, &catalog.Error{Kind: catalog.ErrValidation, Op: "rate book", Err: validate.Errors{"rating": "Rating must be between 0 and 5"}})

	w := post(h, "/books/42/rate", url.Values{"rating": {"5.5"}})

	assert.Equal(t, "/books/42", w.Header().Get("Location"))
	assert.Equal(t, "Error rating book: Rating must be between 0 and 5", flash(w))
}

func TestLocalRedirect(t *testing.T) {
	assert.Equal(t, "/books/1", localRedirect("/books/1", "/"))
	assert.Equal(t, "/", localRedirect("https://evil.example", "/"))
	assert.Equal(t, "/", localRedirect("//evil.example", "/"))
	assert.Equal(t, "/", localRedirect("", "/"))
}
