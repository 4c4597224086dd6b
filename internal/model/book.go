package model

import "time"

const DefaultLanguage = "English"

// Genres offered by the book form. The service accepts any genre string.
var Genres = []string{
	"Fiction",
	"Non-Fiction",
	"Science Fiction",
	"Fantasy",
	"Mystery",
	"Thriller",
	"Romance",
	"Horror",
	"Biography",
	"History",
	"Science",
	"Self-Help",
	"Business",
	"Poetry",
	"Drama",
	"Other",
}

type Book struct {
	ID            string
	Title         string
	Author        string
	ISBN          *string
	PublishedYear int
	Genre         string
	Description   *string
	CoverImage    *string
	Rating        *float64
	TotalPages    *int
	Language      string
	Publisher     *string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// RatingValue returns the rating or 0 when the book is unrated.
func (b Book) RatingValue() float64 {
	if b.Rating == nil {
		return 0
	}
	return *b.Rating
}

type BookPage struct {
	Books      []Book
	Total      int
	Page       int
	TotalPages int
}

// BookInput is the payload for creating a book.
type BookInput struct {
	Title         string   `validate:"notblank"`
	Author        string   `validate:"notblank"`
	ISBN          *string  `validate:"omitempty,isbn"`
	PublishedYear int      `validate:"min=1000,pastyear"`
	Genre         string   `validate:"required"`
	Description   *string  `validate:"omitempty"`
	CoverImage    *string  `validate:"omitempty,url"`
	Rating        *float64 `validate:"omitempty,min=0,max=5"`
	TotalPages    *int     `validate:"omitempty,min=1"`
	Language      *string  `validate:"omitempty"`
	Publisher     *string  `validate:"omitempty"`
}

// BookUpdate is a partial update; nil fields are left untouched.
type BookUpdate struct {
	Title         *string  `validate:"omitempty,notblank"`
	Author        *string  `validate:"omitempty,notblank"`
	ISBN          *string  `validate:"omitempty,isbn"`
	PublishedYear *int     `validate:"omitempty,min=1000,pastyear"`
	Genre         *string  `validate:"omitempty,notblank"`
	Description   *string  `validate:"omitempty"`
	CoverImage    *string  `validate:"omitempty,url"`
	Rating        *float64 `validate:"omitempty,min=0,max=5"`
	TotalPages    *int     `validate:"omitempty,min=1"`
	Language      *string  `validate:"omitempty"`
	Publisher     *string  `validate:"omitempty"`
}

// BookFilter constrains a list query. A nil field means no constraint.
type BookFilter struct {
	Genre     *string
	MinYear   *int
	MaxYear   *int
	MinRating *float64
	MaxRating *float64
	Language  *string
	Search    *string
}

type Rating struct {
	ID     string
	Rating float64
}

type GenreCount struct {
	Genre string
	Count int
}

type YearCount struct {
	Year  int
	Count int
}

type BookStats struct {
	TotalBooks        int
	AverageRating     float64
	GenreDistribution []GenreCount
	BooksPerYear      []YearCount
}
