package validate

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

var (
	validate *validator.Validate

	isbn10Re = regexp.MustCompile(`^\d{9}[\dX]$`)
	isbn13Re = regexp.MustCompile(`^\d{13}$`)

	// now is swapped out in tests
	now = time.Now
)

func init() {
	validate = validator.New()
	validate.RegisterValidation("notblank", validators.NotBlank)
	validate.RegisterValidation("isbn", validateISBN)
	validate.RegisterValidation("pastyear", validatePastYear)
}

func validateISBN(fl validator.FieldLevel) bool {
	isbn := strings.NewReplacer("-", "", " ", "").Replace(fl.Field().String())
	switch len(isbn) {
	case 10:
		return isbn10Re.MatchString(isbn)
	case 13:
		return isbn13Re.MatchString(isbn)
	}
	return false
}

// validatePastYear rejects years after the current calendar year.
func validatePastYear(fl validator.FieldLevel) bool {
	return fl.Field().Int() <= int64(now().Year())
}

// Errors maps a form field name to a human readable message.
type Errors map[string]string

func (e Errors) Error() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", field, e[field]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Summary joins the messages in field order for display outside a form.
func (e Errors) Summary() string {
	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	slices.Sort(fields)
	messages := make([]string, 0, len(fields))
	for _, field := range fields {
		messages = append(messages, e[field])
	}
	return strings.Join(messages, ", ")
}

func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Struct validates s and converts failures to Errors keyed by the
// lowerCamelCase field name used in forms and on the wire.
func Struct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := Errors{}
	for _, fe := range verrs {
		field := fieldName(fe.Field())
		if _, ok := out[field]; ok {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

func fieldName(name string) string {
	switch name {
	case "ISBN":
		return "isbn"
	case "ID":
		return "id"
	}
	if name == "" {
		return name
	}
	return strings.ToLower(name[:1]) + name[1:]
}

func message(field string, fe validator.FieldError) string {
	switch field {
	case "title":
		return "Title is required"
	case "author":
		return "Author is required"
	case "publishedYear":
		return "Invalid year"
	case "rating":
		return "Rating must be between 0 and 5"
	case "totalPages":
		return "Total pages must be at least 1"
	case "coverImage":
		return "Cover image must be a valid URL"
	case "isbn":
		return "Invalid ISBN"
	case "genre":
		return "Genre is required"
	case "email":
		return "A valid email is required"
	case "password":
		if fe.Tag() == "min" {
			return fmt.Sprintf("Password must be at least %s characters", fe.Param())
		}
		return "Password is required"
	case "name":
		return "Name is required"
	}
	return fmt.Sprintf("failed on %s", fe.Tag())
}

type rating struct {
	Rating float64 `validate:"min=0,max=5"`
}

// Rating checks a rating is within the closed range [0, 5].
func Rating(value float64) error {
	return Struct(rating{Rating: value})
}

type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

type Registration struct {
	Name     string `validate:"notblank"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}
