package cache

import (
	"context"
	"testing"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyScopesByEndpointAndToken(t *testing.T) {
	anon := Key("genres", "http://api/graphql", "")
	assert.Contains(t, anon, "/anonymous")
	assert.NotEqual(t, anon, Key("genres", "http://api/graphql", "token"))
	assert.NotEqual(t, Key("genres", "http://a/graphql", "t"), Key("genres", "http://b/graphql", "t"))
	assert.NotContains(t, Key("stats", "http://api/graphql", "secret-token"), "secret-token")
}

func TestLoaderRunsOnceUntilInvalidated(t *testing.T) {
	c := New("")
	calls := 0
	loader := GenresLoaderFunc(func(ctx context.Context, key string) ([]string, error) {
		calls++
		return []string{"Fantasy", "Horror"}, nil
	})

	for range 3 {
		genres, err := c.Genres.Get(context.Background(), "k", loader)
		require.NoError(t, err)
		assert.Equal(t, []string{"Fantasy", "Horror"}, genres)
	}
	assert.Equal(t, 1, calls)

	c.Invalidate()
	_, err := c.Genres.Get(context.Background(), "k", loader)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	c := New(dir)
	stats := model.BookStats{
		TotalBooks:        2,
		AverageRating:     4.25,
		GenreDistribution: []model.GenreCount{{Genre: "Drama", Count: 2}},
	}
	c.Stats.Set("stats", stats)
	c.Genres.Set("genres", []string{"Drama"})
	c.Save()

	restored := New(dir)
	restored.Load()
	got, ok := restored.Stats.GetIfPresent("stats")
	require.True(t, ok)
	assert.Equal(t, stats, got)
	genres, ok := restored.Genres.GetIfPresent("genres")
	require.True(t, ok)
	assert.Equal(t, []string{"Drama"}, genres)
}

func TestLoadMissingFilesIsQuiet(t *testing.T) {
	c := New(t.TempDir())
	c.Load()
	assert.Equal(t, 0, c.Stats.EstimatedSize())
}
