package config

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	require.NoError(t, LoadConfig())

	assert.Equal(t, 8080, Port())
	assert.Equal(t, "http://localhost:4000/graphql", APIURL())
	assert.False(t, AuthRequired())
	assert.Equal(t, 60, RateLimit())
	assert.Equal(t, 3, APIRetryMax())
}

func TestOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("API_URL", "https://books.example.com/graphql")
	t.Setenv("AUTH_REQUIRED", "true")
	t.Setenv("LOG_LEVEL", "warn")
	t.Setenv("LOG_FORMAT", "xml")
	t.Setenv("APP_ENV", "local")
	require.NoError(t, LoadConfig())

	assert.Equal(t, 9000, Port())
	assert.Equal(t, "https://books.example.com/graphql", APIURL())
	assert.True(t, AuthRequired())
	assert.Equal(t, zerolog.WarnLevel, LogLevel())
	assert.Equal(t, "json", LogFormat())
	assert.True(t, IsLocal())
}

func TestInvalidValue(t *testing.T) {
	t.Setenv("PORT", "not-a-number")
	assert.Error(t, LoadConfig())
}
