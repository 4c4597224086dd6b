package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/web"
)

const (
	defaultSuggestions = 8
	maxSuggestions     = 50
)

type suggestion struct {
	ID     string   `json:"id"`
	Title  string   `json:"title"`
	Author string   `json:"author"`
	Genre  string   `json:"genre"`
	Year   int      `json:"publishedYear"`
	Rating *float64 `json:"rating,omitempty"`
	URL    string   `json:"url"`
}

type searchResponse struct {
	Query   string       `json:"query"`
	Results []suggestion `json:"results"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	writeContentType("application/json", w)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Error().Err(err).Msg("Unable to encode response")
	}
}

func suggestionsLimit(raw string) int {
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 1 {
		return defaultSuggestions
	}
	return min(limit, maxSuggestions)
}

// SearchHandler answers free-text suggestions as JSON. A blank query
// returns no results without calling the service.
func (s *Server) SearchHandler(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	books, err := s.catalog.SearchBooks(s.apiContext(r), query, suggestionsLimit(r.URL.Query().Get("limit")))
	if err != nil {
		log.Error().Err(err).Str("query", query).Msg("error searching books")
		writeJSON(w, statusFor(err), errorResponse{Error: message(err)})
		return
	}
	writeJSON(w, http.StatusOK, searchResponse{Query: query, Results: suggestions(books)})
}

func suggestions(books []model.Book) []suggestion {
	results := make([]suggestion, 0, len(books))
	for _, book := range books {
		results = append(results, suggestion{
			ID:     book.ID,
			Title:  book.Title,
			Author: book.Author,
			Genre:  book.Genre,
			Year:   book.PublishedYear,
			Rating: book.Rating,
			URL:    web.BookPath(book.ID),
		})
	}
	return results
}
