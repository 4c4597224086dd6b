package catalog

import (
	"strconv"
	"strings"
	"time"

	"github.com/RobBrazier/booklister/internal/bookapi"
	"github.com/RobBrazier/booklister/internal/model"
)

// parseTimestamp accepts RFC 3339 strings and millisecond epochs, which is
// what the service emits for Date fields serialised as strings.
func parseTimestamp(value string) time.Time {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}
	}
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t
	}
	if ms, err := strconv.ParseInt(value, 10, 64); err == nil {
		return time.UnixMilli(ms).UTC()
	}
	return time.Time{}
}

func language(value *string) string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return model.DefaultLanguage
	}
	return *value
}

func mapSummary(source bookapi.BookSummary) model.Book {
	return model.Book{
		ID:            source.Id,
		Title:         source.Title,
		Author:        source.Author,
		PublishedYear: source.PublishedYear,
		Genre:         source.Genre,
		Rating:        source.Rating,
		CoverImage:    source.CoverImage,
		Description:   source.Description,
		Language:      model.DefaultLanguage,
	}
}

func mapSummaries(source []bookapi.BookSummary) []model.Book {
	books := make([]model.Book, 0, len(source))
	for _, book := range source {
		books = append(books, mapSummary(book))
	}
	return books
}

func mapResult(source bookapi.BookResult) model.Book {
	return model.Book{
		ID:            source.Id,
		Title:         source.Title,
		Author:        source.Author,
		PublishedYear: source.PublishedYear,
		Genre:         source.Genre,
		Rating:        source.Rating,
		CoverImage:    source.CoverImage,
		Language:      model.DefaultLanguage,
	}
}

func mapDetail(source bookapi.BookDetail) model.Book {
	return model.Book{
		ID:            source.Id,
		Title:         source.Title,
		Author:        source.Author,
		ISBN:          source.Isbn,
		PublishedYear: source.PublishedYear,
		Genre:         source.Genre,
		Description:   source.Description,
		CoverImage:    source.CoverImage,
		Rating:        source.Rating,
		TotalPages:    source.TotalPages,
		Language:      language(source.Language),
		Publisher:     source.Publisher,
		CreatedAt:     parseTimestamp(source.CreatedAt),
		UpdatedAt:     parseTimestamp(source.UpdatedAt),
	}
}

func mapStats(source bookapi.GetBookStatsBookStats) model.BookStats {
	stats := model.BookStats{
		TotalBooks:        source.TotalBooks,
		AverageRating:     source.AverageRating,
		GenreDistribution: make([]model.GenreCount, 0, len(source.GenreDistribution)),
		BooksPerYear:      make([]model.YearCount, 0, len(source.BooksPerYear)),
	}
	for _, genre := range source.GenreDistribution {
		stats.GenreDistribution = append(stats.GenreDistribution, model.GenreCount{Genre: genre.Genre, Count: genre.Count})
	}
	for _, year := range source.BooksPerYear {
		stats.BooksPerYear = append(stats.BooksPerYear, model.YearCount{Year: year.Year, Count: year.Count})
	}
	return stats
}

func mapUser(source bookapi.AuthUser) model.User {
	return model.User{
		ID:     source.Id,
		Name:   source.Name,
		Email:  source.Email,
		Avatar: source.Avatar,
	}
}

// blank drops empty optional strings so they are not sent at all.
func blank(value *string) *string {
	if value == nil || strings.TrimSpace(*value) == "" {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func toBookInput(input model.BookInput) bookapi.BookInput {
	return bookapi.BookInput{
		Title:         strings.TrimSpace(input.Title),
		Author:        strings.TrimSpace(input.Author),
		Isbn:          blank(input.ISBN),
		PublishedYear: input.PublishedYear,
		Genre:         input.Genre,
		Description:   blank(input.Description),
		CoverImage:    blank(input.CoverImage),
		Rating:        input.Rating,
		TotalPages:    input.TotalPages,
		Language:      blank(input.Language),
		Publisher:     blank(input.Publisher),
	}
}

func toUpdateInput(input model.BookUpdate) bookapi.UpdateBookInput {
	trim := func(value *string) *string {
		if value == nil {
			return nil
		}
		trimmed := strings.TrimSpace(*value)
		return &trimmed
	}
	return bookapi.UpdateBookInput{
		Title:         trim(input.Title),
		Author:        trim(input.Author),
		Isbn:          trim(input.ISBN),
		PublishedYear: input.PublishedYear,
		Genre:         input.Genre,
		Description:   trim(input.Description),
		CoverImage:    trim(input.CoverImage),
		Rating:        input.Rating,
		TotalPages:    input.TotalPages,
		Language:      trim(input.Language),
		Publisher:     trim(input.Publisher),
	}
}

// toFilterInput returns nil for an empty filter so the variable is omitted.
func toFilterInput(filter model.BookFilter) *bookapi.BookFilterInput {
	if filter == (model.BookFilter{}) {
		return nil
	}
	return &bookapi.BookFilterInput{
		Genre:     filter.Genre,
		MinYear:   filter.MinYear,
		MaxYear:   filter.MaxYear,
		MinRating: filter.MinRating,
		MaxRating: filter.MaxRating,
		Language:  filter.Language,
		Search:    filter.Search,
	}
}
