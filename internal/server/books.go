package server

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/validate"
	"github.com/RobBrazier/booklister/internal/web"
)

// newBooksData derives the navigation of the list page. A page past the end
// still offers a way back to the last real page.
func newBooksData(state listing.State, result model.BookPage, genres []string) web.BooksData {
	totalPages := result.TotalPages
	if totalPages < 1 {
		totalPages = 1
	}
	prev, next := state, state
	if prev.Page > totalPages {
		prev.SetPage(totalPages)
	} else {
		prev.Prev()
	}
	next.Next(totalPages)
	return web.BooksData{
		State:       state,
		Result:      result,
		Genres:      genres,
		TotalPages:  totalPages,
		HasPrev:     state.HasPrev(),
		HasNext:     state.HasNext(totalPages),
		PrevURL:     prev.URL("/"),
		NextURL:     next.URL("/"),
		CurrentURL:  state.URL("/"),
		FeedURL:     state.URL("/books.rss"),
		FilterCount: state.ActiveFilters(),
	}
}

func (s *Server) BooksHandler(w http.ResponseWriter, r *http.Request) {
	state := listing.FromQuery(r.URL.Query())
	ctx := s.apiContext(r)
	result, err := s.catalog.ListBooks(ctx, state.Request())
	if err != nil {
		log.Error().Err(err).Int("page", state.Page).Msg("error retrieving books")
		s.renderError(w, r, err, state.URL("/"))
		return
	}
	genres, err := s.catalog.Genres(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("error retrieving genres")
		genres = nil
	}
	page := s.newPage(w, r, "Book Collection")
	s.render(w, r, http.StatusOK, web.BooksPage(page, newBooksData(state, result, genres)))
}

// ApplySearchHandler merges the submitted term into the current filter and
// redirects to the resulting list.
func (s *Server) ApplySearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := listing.FromQuery(query)
	state.SetSearch(query.Get("q"))
	http.Redirect(w, r, state.URL("/"), http.StatusSeeOther)
}

// FilterHandler applies the filter panel. The submitted filter replaces the
// previous one entirely.
func (s *Server) FilterHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	state := listing.New()
	if query.Has("clear") {
		state.SetFilter(model.BookFilter{})
	} else {
		state.SetFilter(listing.FromQuery(query).Filter)
	}
	http.Redirect(w, r, state.URL("/"), http.StatusSeeOther)
}

func (s *Server) BookHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := log.With().Str("book", id).Logger()
	book, err := s.catalog.GetBook(s.apiContext(r), id)
	if err != nil {
		log.Error().Err(err).Msg("error retrieving book")
		s.renderError(w, r, err, web.BookPath(id))
		return
	}
	page := s.newPage(w, r, book.Title)
	s.render(w, r, http.StatusOK, web.BookPage(page, web.BookData{Book: book, ReturnURL: web.BookPath(id)}))
}

func (s *Server) NewBookHandler(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusOK, web.BookFormPage(s.newPage(w, r, "Add New Book"), web.NewBookForm()))
}

// formErrors merges parse failures with validation or service failures.
func formErrors(form *web.BookForm, parseErrs validate.Errors, err error) {
	form.Errors = validate.Errors{}
	var fields validate.Errors
	if errors.As(err, &fields) {
		for field, message := range fields {
			form.Errors[field] = message
		}
	} else if err != nil {
		var catalogErr *catalog.Error
		if errors.As(err, &catalogErr) {
			form.Error = catalogErr.Message()
		} else {
			form.Error = err.Error()
		}
	}
	for field, message := range parseErrs {
		form.Errors[field] = message
	}
}

// rejected validates a form that failed to parse so every problem is
// reported at once, without calling the service.
func rejected(input any, parseErrs validate.Errors) error {
	if err := validate.Struct(input); err != nil {
		return err
	}
	return parseErrs
}

func (s *Server) CreateBookHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := web.ParseBookForm(r.PostForm)
	input, parseErrs := form.Input()
	var err error
	if len(parseErrs) > 0 {
		err = rejected(input, parseErrs)
	} else {
		var book model.Book
		book, err = s.catalog.CreateBook(s.apiContext(r), input)
		if err == nil {
			s.setFlash(w, "Book created successfully!")
			http.Redirect(w, r, web.BookPath(book.ID), http.StatusSeeOther)
			return
		}
	}
	if s.signOut(w, r, err) {
		return
	}
	log.Info().Err(err).Msg("Create book rejected")
	formErrors(&form, parseErrs, err)
	s.render(w, r, statusFor(err), web.BookFormPage(s.newPage(w, r, "Add New Book"), form))
}

func (s *Server) EditBookHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	book, err := s.catalog.GetBook(s.apiContext(r), id)
	if err != nil {
		log.Error().Err(err).Str("book", id).Msg("error retrieving book")
		s.renderError(w, r, err, web.BookPath(id)+"/edit")
		return
	}
	s.render(w, r, http.StatusOK, web.BookFormPage(s.newPage(w, r, "Edit Book"), web.EditBookForm(book)))
}

func (s *Server) UpdateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	form := web.ParseBookForm(r.PostForm)
	form.ForBook(id)

	update, parseErrs := form.Update()
	var err error
	if len(parseErrs) > 0 {
		err = rejected(update, parseErrs)
	} else {
		_, err = s.catalog.UpdateBook(s.apiContext(r), id, update)
		if err == nil {
			s.setFlash(w, "Book updated successfully!")
			http.Redirect(w, r, web.BookPath(id), http.StatusSeeOther)
			return
		}
		if errors.Is(err, catalog.ErrNotFound) {
			s.renderError(w, r, err, "")
			return
		}
	}
	if s.signOut(w, r, err) {
		return
	}
	log.Info().Err(err).Str("book", id).Msg("Update book rejected")
	formErrors(&form, parseErrs, err)
	s.render(w, r, statusFor(err), web.BookFormPage(s.newPage(w, r, "Edit Book"), form))
}

// DeleteBookHandler deletes and navigates away from the book's own page.
func (s *Server) DeleteBookHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	log := log.With().Str("book", id).Logger()
	target := localRedirect(r.FormValue("return"), "/")
	if self := web.BookPath(id); target == self || strings.HasPrefix(target, self+"/") || strings.HasPrefix(target, self+"?") {
		target = "/"
	}
	if err := s.catalog.DeleteBook(s.apiContext(r), id); err != nil {
		log.Error().Err(err).Msg("error deleting book")
		if s.signOut(w, r, err) {
			return
		}
		s.setFlash(w, fmt.Sprintf("Error deleting book: %s", message(err)))
		http.Redirect(w, r, localRedirect(r.FormValue("return"), "/"), http.StatusSeeOther)
		return
	}
	s.setFlash(w, "Book deleted successfully!")
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (s *Server) RateBookHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	target := localRedirect(r.FormValue("return"), refererPath(r, web.BookPath(id)))
	rating, err := strconv.ParseFloat(strings.TrimSpace(r.FormValue("rating")), 64)
	if err != nil {
		s.setFlash(w, "Rating must be between 0 and 5")
		http.Redirect(w, r, target, http.StatusSeeOther)
		return
	}
	if _, err := s.catalog.RateBook(s.apiContext(r), id, rating); err != nil {
		log.Error().Err(err).Str("book", id).Float64("rating", rating).Msg("error rating book")
		if s.signOut(w, r, err) {
			return
		}
		s.setFlash(w, fmt.Sprintf("Error rating book: %s", message(err)))
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// refererPath returns the path of a same-host Referer, or fallback.
func refererPath(r *http.Request, fallback string) string {
	referer, err := url.Parse(r.Referer())
	if err != nil || referer.Host != r.Host {
		return fallback
	}
	return localRedirect(referer.RequestURI(), fallback)
}

func message(err error) string {
	var catalogErr *catalog.Error
	if errors.As(err, &catalogErr) {
		return catalogErr.Message()
	}
	var fields validate.Errors
	if errors.As(err, &fields) {
		return fields.Summary()
	}
	return err.Error()
}

func statusFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, catalog.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, catalog.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, catalog.ErrNotFound):
		return http.StatusNotFound
	}
	var fields validate.Errors
	if errors.As(err, &fields) {
		return http.StatusBadRequest
	}
	return http.StatusBadGateway
}
