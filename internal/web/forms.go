package web

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
)

// BookForm keeps the raw submitted values so an invalid form re-renders
// exactly as it was typed.
type BookForm struct {
	ID            string
	Title         string
	Author        string
	ISBN          string
	PublishedYear string
	Genre         string
	Description   string
	CoverImage    string
	Rating        string
	TotalPages    string
	Language      string
	Publisher     string

	Genres      []string
	Errors      validate.Errors
	Error       string
	SubmitLabel string
	Action      string
	CancelURL   string
}

func NewBookForm() BookForm {
	return BookForm{
		PublishedYear: strconv.Itoa(time.Now().Year()),
		Genre:         "Fiction",
		Language:      model.DefaultLanguage,
		Genres:        model.Genres,
		SubmitLabel:   "Add Book",
		Action:        "/books/new",
		CancelURL:     "/",
	}
}

// EditBookForm prefills the form with a stored book.
func EditBookForm(book model.Book) BookForm {
	form := BookForm{
		Title:         book.Title,
		Author:        book.Author,
		ISBN:          text(book.ISBN),
		PublishedYear: strconv.Itoa(book.PublishedYear),
		Genre:         book.Genre,
		Description:   text(book.Description),
		CoverImage:    text(book.CoverImage),
		Rating:        decimal(book.Rating),
		TotalPages:    number(book.TotalPages),
		Language:      book.Language,
		Publisher:     text(book.Publisher),
		Genres:        genresWith(book.Genre),
	}
	form.ForBook(book.ID)
	return form
}

// ForBook points the form at an existing book's edit endpoint.
func (f *BookForm) ForBook(id string) {
	f.ID = id
	f.SubmitLabel = "Save Changes"
	f.Action = BookPath(id) + "/edit"
	f.CancelURL = BookPath(id)
}

// ParseBookForm reads a submitted form. The result targets creation until
// ForBook is called.
func ParseBookForm(values url.Values) BookForm {
	get := func(key string) string {
		return strings.TrimSpace(values.Get(key))
	}
	base := NewBookForm()
	return BookForm{
		Title:         get("title"),
		Author:        get("author"),
		ISBN:          get("isbn"),
		PublishedYear: get("publishedYear"),
		Genre:         get("genre"),
		Description:   get("description"),
		CoverImage:    get("coverImage"),
		Rating:        get("rating"),
		TotalPages:    get("totalPages"),
		Language:      get("language"),
		Publisher:     get("publisher"),
		Genres:        genresWith(get("genre")),
		SubmitLabel:   base.SubmitLabel,
		Action:        base.Action,
		CancelURL:     base.CancelURL,
	}
}

// genresWith keeps a genre the service returned selectable even when it is
// not one of the defaults.
func genresWith(genre string) []string {
	for _, known := range model.Genres {
		if known == genre {
			return model.Genres
		}
	}
	if genre == "" {
		return model.Genres
	}
	return append(append([]string{}, model.Genres...), genre)
}

func optional(value string) *string {
	if value == "" {
		return nil
	}
	return &value
}

// numbers parses the numeric fields, recording unparseable ones as errors.
func (f BookForm) numbers(errs validate.Errors) (year *int, rating *float64, pages *int) {
	if f.PublishedYear != "" {
		if n, err := strconv.Atoi(f.PublishedYear); err == nil {
			year = &n
		} else {
			errs["publishedYear"] = "Invalid year"
		}
	}
	if f.Rating != "" {
		if n, err := strconv.ParseFloat(f.Rating, 64); err == nil {
			rating = &n
		} else {
			errs["rating"] = "Rating must be between 0 and 5"
		}
	}
	if f.TotalPages != "" {
		if n, err := strconv.Atoi(f.TotalPages); err == nil {
			pages = &n
		} else {
			errs["totalPages"] = "Total pages must be at least 1"
		}
	}
	return year, rating, pages
}

// Input converts the form for creation. Parse errors are returned alongside
// the input so they can be merged with validation errors.
func (f BookForm) Input() (model.BookInput, validate.Errors) {
	errs := validate.Errors{}
	year, rating, pages := f.numbers(errs)
	input := model.BookInput{
		Title:       f.Title,
		Author:      f.Author,
		ISBN:        optional(f.ISBN),
		Genre:       f.Genre,
		Description: optional(f.Description),
		CoverImage:  optional(f.CoverImage),
		Rating:      rating,
		TotalPages:  pages,
		Language:    optional(f.Language),
		Publisher:   optional(f.Publisher),
	}
	if year != nil {
		input.PublishedYear = *year
	} else if _, ok := errs["publishedYear"]; !ok {
		errs["publishedYear"] = "Invalid year"
	}
	return input, errs
}

// Update converts the form for a partial update. Text fields are always
// sent so clearing one clears it remotely; empty numbers are left untouched.
func (f BookForm) Update() (model.BookUpdate, validate.Errors) {
	errs := validate.Errors{}
	year, rating, pages := f.numbers(errs)
	return model.BookUpdate{
		Title:         &f.Title,
		Author:        &f.Author,
		ISBN:          optional(f.ISBN),
		PublishedYear: year,
		Genre:         optional(f.Genre),
		Description:   &f.Description,
		CoverImage:    optional(f.CoverImage),
		Rating:        rating,
		TotalPages:    pages,
		Language:      optional(f.Language),
		Publisher:     &f.Publisher,
	}, errs
}
