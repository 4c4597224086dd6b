package web

import (
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"time"

	twmerge "github.com/Oudwins/tailwind-merge-go"

	"github.com/RobBrazier/booklister/internal/listing"
)

func BookPath(id string) string {
	return fmt.Sprintf("/books/%s", url.PathEscape(id))
}

// classes merges extra class lists over base, later classes winning.
func classes(base string, extra ...string) string {
	return twmerge.Merge(append([]string{base}, extra...)...)
}

func text(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func number(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func decimal(v *float64) string {
	if v == nil {
		return ""
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func oneDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func stars(rating float64) []bool {
	stars := make([]bool, 5)
	for i := range stars {
		stars[i] = float64(i) < rating
	}
	return stars
}

func percent(count, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(count) / float64(total) * 100
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "Unknown"
	}
	return t.Format("02 Jan 2006")
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}

var ratingChoices = []string{"5", "4", "3", "2", "1", "0"}

type field struct {
	Name  string
	Value string
}

// carriedFields lists the filter parameters a search submission keeps.
// The term and page are replaced by the search itself.
func carriedFields(state listing.State) []field {
	query := state.Query()
	keys := make([]string, 0, len(query))
	for key := range query {
		if key != "q" && key != "page" {
			keys = append(keys, key)
		}
	}
	slices.Sort(keys)
	var fields []field
	for _, key := range keys {
		for _, value := range query[key] {
			fields = append(fields, field{Name: key, Value: value})
		}
	}
	return fields
}
