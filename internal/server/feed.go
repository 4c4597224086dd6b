package server

import (
	"embed"
	"fmt"
	"html/template"
	"mime"
	"net/http"
	"slices"
	"strings"
	"time"

	"github.com/Masterminds/sprig/v3"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/feeds"
	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/listing"
	"github.com/RobBrazier/booklister/internal/model"
	"github.com/RobBrazier/booklister/internal/web"
)

type feedFormat string

const (
	formatRSS  feedFormat = "rss"
	formatAtom feedFormat = "atom"
	formatJSON feedFormat = "json"
)

//go:embed templates/*
var templateFS embed.FS

var feedContent = template.Must(
	template.New("content.html").Funcs(contentFuncs()).ParseFS(templateFS, "templates/feed/content.html"),
)

func contentFuncs() template.FuncMap {
	funcs := sprig.FuncMap()
	funcs["deref"] = func(value any) any {
		switch v := value.(type) {
		case *string:
			if v == nil {
				return ""
			}
			return *v
		case *int:
			if v == nil {
				return 0
			}
			return *v
		}
		return value
	}
	return funcs
}

func writeContentType(mediaType string, w http.ResponseWriter) {
	params := map[string]string{
		"charset": "utf-8",
	}
	contentType := mime.FormatMediaType(mediaType, params)
	w.Header().Set("Content-Type", contentType)
}

func (s *Server) writeFeed(format feedFormat, out *feeds.Feed, w http.ResponseWriter) {
	w.Header().Set("Last-Modified", out.Created.UTC().Format(http.TimeFormat))
	w.Header().Set("Cache-Control", "max-age=300")

	var err error
	switch format {
	case formatAtom:
		writeContentType("application/atom+xml", w)
		err = out.WriteAtom(w)
	case formatJSON:
		writeContentType("application/json", w)
		err = out.WriteJSON(w)
	default:
		format = formatRSS
		writeContentType("application/rss+xml", w)
		err = out.WriteRss(w)
	}
	if err != nil {
		log.Error().Err(err).Str("format", string(format)).Int("entries", len(out.Items)).Msg("Unable to write feed")
	}
}

func baseURL(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

func describeFilter(state listing.State) string {
	query := listing.FilterQuery(state.Filter)
	if len(query) == 0 {
		return "All books"
	}
	var parts []string
	for key, values := range query {
		parts = append(parts, fmt.Sprintf("%s=%s", key, strings.Join(values, ",")))
	}
	slices.Sort(parts)
	return "Books matching " + strings.Join(parts, ", ")
}

func renderContent(book model.Book) string {
	var builder strings.Builder
	if err := feedContent.Execute(&builder, book); err != nil {
		log.Error().Err(err).Str("book", book.ID).Msg("Unable to render feed content")
	}
	return builder.String()
}

func (s *Server) buildFeed(r *http.Request, state listing.State, books []model.Book) *feeds.Feed {
	created := time.Now()
	base := baseURL(r)
	feed := &feeds.Feed{
		Title:       "Book Collection",
		Link:        &feeds.Link{Href: base + state.URL("/")},
		Description: describeFilter(state),
		Created:     created,
		Updated:     created,
	}
	for _, book := range books {
		if book.CreatedAt.IsZero() {
			book.CreatedAt = created
		}
		var enclosure *feeds.Enclosure
		if book.CoverImage != nil && *book.CoverImage != "" {
			enclosure = &feeds.Enclosure{
				Url:  *book.CoverImage,
				Type: "image/jpeg",
			}
		}
		description := fmt.Sprintf("%s (%d)", book.Genre, book.PublishedYear)
		if book.Description != nil {
			description = *book.Description
		}
		feed.Add(&feeds.Item{
			Id:          book.ID,
			Title:       book.Title,
			Link:        &feeds.Link{Href: base + web.BookPath(book.ID)},
			Author:      &feeds.Author{Name: book.Author},
			Description: description,
			Content:     renderContent(book),
			Created:     book.CreatedAt,
			Updated:     book.UpdatedAt,
			Enclosure:   enclosure,
		})
	}
	return feed
}

// FeedHandler serves the book list for the current query as RSS, Atom or
// JSON Feed, picked by the URL extension.
func (s *Server) FeedHandler(w http.ResponseWriter, r *http.Request) {
	ext, _ := r.Context().Value(middleware.URLFormatCtxKey).(string)
	format := feedFormat(strings.ToLower(ext))
	state := listing.FromQuery(r.URL.Query())
	result, err := s.catalog.ListBooks(s.apiContext(r), state.Request())
	if err != nil {
		log.Error().Err(err).Msg("error retrieving books for feed")
		s.renderError(w, r, err, r.URL.RequestURI())
		return
	}
	feed := s.buildFeed(r, state, result.Books)
	log.Info().Int("entries", len(feed.Items)).Str("format", string(format)).Msg("Generated feed for books")
	s.writeFeed(format, feed, w)
}
