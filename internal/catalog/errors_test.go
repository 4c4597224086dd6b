package catalog

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/Khan/genqlient/graphql"
	"github.com/RobBrazier/booklister/internal/validate"
	"github.com/stretchr/testify/assert"
	"github.com/vektah/gqlparser/v2/gqlerror"
)

func TestClassify(t *testing.T) {
	withCode := func(code string) error {
		return gqlerror.List{{Message: "boom", Extensions: map[string]any{"code": code}}}
	}
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"not found code", withCode("NOT_FOUND"), ErrNotFound},
		{"bad input", withCode("BAD_USER_INPUT"), ErrValidation},
		{"unauthenticated", withCode("UNAUTHENTICATED"), ErrUnauthorized},
		{"unknown code", withCode("INTERNAL_SERVER_ERROR"), ErrTransport},
		{"http 401", &graphql.HTTPError{StatusCode: http.StatusUnauthorized}, ErrUnauthorized},
		{"http 500", &graphql.HTTPError{StatusCode: http.StatusInternalServerError}, ErrTransport},
		{"network", errors.New("dial tcp: connection refused"), ErrTransport},
		{"local validation", validate.Errors{"title": "Title is required"}, ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Classify("op", tt.err)
			assert.ErrorIs(t, err, tt.kind)
			assert.NotNil(t, errors.Unwrap(err))
		})
	}
}

func TestClassifyKeepsExistingError(t *testing.T) {
	original := notFound("get book")
	wrapped := fmt.Errorf("loader: %w", original)
	assert.Same(t, wrapped, Classify("other", wrapped))
	assert.Nil(t, Classify("op", nil))
}

func TestMessage(t *testing.T) {
	var err *Error
	assert.ErrorAs(t, Classify("op", gqlerror.List{{Message: "Title must be unique", Extensions: map[string]any{"code": "BAD_USER_INPUT"}}}), &err)
	assert.Equal(t, "Title must be unique", err.Message())

	assert.ErrorAs(t, Classify("op", errors.New("timeout")), &err)
	assert.Equal(t, "The book service is unavailable, please try again", err.Message())

	assert.Equal(t, "Book not found", notFound("get book").(*Error).Message())
}
