package main

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RobBrazier/booklister/internal/model"
)

func parseListFlags(t *testing.T, args ...string) (*cobra.Command, listFlags) {
	t.Helper()
	var flags listFlags
	cmd := &cobra.Command{Use: "list"}
	flags.bind(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd, flags
}

func TestListFlagsState(t *testing.T) {
	cmd, flags := parseListFlags(t, "--genre", "Fantasy", "--min-year", "0", "--search", "  dune ", "--page", "3")

	state := flags.state(cmd)

	assert.Equal(t, 3, state.Page)
	assert.Equal(t, "Fantasy", *state.Filter.Genre)
	assert.Equal(t, 0, *state.Filter.MinYear)
	assert.Nil(t, state.Filter.MaxYear)
	assert.Nil(t, state.Filter.MinRating)
	assert.Equal(t, "dune", state.Search())
}

func TestListFlagsDefaults(t *testing.T) {
	cmd, flags := parseListFlags(t)

	state := flags.state(cmd)

	assert.Equal(t, 1, state.Page)
	assert.Equal(t, model.BookFilter{}, state.Filter)
}

func TestWriteBooks(t *testing.T) {
	var out bytes.Buffer
	rating := 4.5
	writeBooks(&out, []model.Book{
		{ID: "1", Title: "Dune", Author: "Frank Herbert", PublishedYear: 1965, Genre: "Science Fiction", Rating: &rating},
		{ID: "2", Title: "Emma", Author: "Jane Austen", PublishedYear: 1815, Genre: "Romance"},
	})

	lines := bytes.Split(bytes.TrimSpace(out.Bytes()), []byte("\n"))
	require.Len(t, lines, 3)
	assert.Contains(t, string(lines[0]), "TITLE")
	assert.Contains(t, string(lines[1]), "4.5")
	assert.Contains(t, string(lines[2]), "-")

	out.Reset()
	writeBooks(&out, nil)
	assert.Equal(t, "No books found\n", out.String())
}

func TestRootHasCommands(t *testing.T) {
	root := newRootCmd()
	for _, name := range []string{"serve", "books", "stats"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, name, cmd.Name())
	}
}
