package catalog

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Khan/genqlient/graphql"
	"github.com/RobBrazier/booklister/internal/validate"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrTransport    = errors.New("service unavailable")
)

// Error is returned by every Service operation that fails.
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Err)
}

func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Message is the text shown to the user.
func (e *Error) Message() string {
	switch e.Kind {
	case ErrNotFound:
		return "Book not found"
	case ErrUnauthorized:
		return "You need to sign in to do that"
	case ErrValidation:
		var fields validate.Errors
		if errors.As(e.Err, &fields) {
			return fields.Summary()
		}
		var list gqlerror.List
		if errors.As(e.Err, &list) && len(list) > 0 {
			return list[0].Message
		}
		return "Invalid input"
	}
	var list gqlerror.List
	if errors.As(e.Err, &list) && len(list) > 0 {
		return list[0].Message
	}
	return "The book service is unavailable, please try again"
}

func notFound(op string) error {
	return &Error{Kind: ErrNotFound, Op: op}
}

// Classify turns an error from the API client into an *Error.
func Classify(op string, err error) error {
	if err == nil {
		return nil
	}
	var existing *Error
	if errors.As(err, &existing) {
		return err
	}
	return &Error{Kind: kindOf(err), Op: op, Err: err}
}

func kindOf(err error) error {
	var fields validate.Errors
	if errors.As(err, &fields) {
		return ErrValidation
	}
	var list gqlerror.List
	if errors.As(err, &list) {
		for _, gqlErr := range list {
			if kind := kindOfCode(gqlErr.Extensions["code"]); kind != nil {
				return kind
			}
		}
		return ErrTransport
	}
	var httpErr *graphql.HTTPError
	if errors.As(err, &httpErr) {
		switch httpErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return ErrUnauthorized
		case http.StatusNotFound:
			return ErrNotFound
		case http.StatusBadRequest:
			return ErrValidation
		}
	}
	return ErrTransport
}

func kindOfCode(code any) error {
	switch code {
	case "NOT_FOUND":
		return ErrNotFound
	case "BAD_USER_INPUT", "GRAPHQL_VALIDATION_FAILED":
		return ErrValidation
	case "UNAUTHENTICATED", "FORBIDDEN":
		return ErrUnauthorized
	}
	return nil
}
