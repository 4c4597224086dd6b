package cache

import (
	"errors"
	"os"
	"path"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/RobBrazier/booklister/internal/model"
	"github.com/maypok86/otter/v2"
	"github.com/zeebo/xxh3"
)

const (
	genresFile = "genres.gob"
	statsFile  = "stats.gob"
)

type GenresLoaderFunc = otter.LoaderFunc[string, []string]
type StatsLoaderFunc = otter.LoaderFunc[string, model.BookStats]

// Cache holds the slow-changing lookups shown around the book list. Book
// records themselves are never cached.
type Cache struct {
	Genres      *otter.Cache[string, []string]
	Stats       *otter.Cache[string, model.BookStats]
	storagePath string
}

func New(storagePath string) *Cache {
	return &Cache{
		Genres:      newGenresCache(),
		Stats:       newStatsCache(),
		storagePath: storagePath,
	}
}

func newGenresCache() *otter.Cache[string, []string] {
	return otter.Must(&otter.Options[string, []string]{
		MaximumSize:      1_000,
		ExpiryCalculator: otter.ExpiryCreating[string, []string](time.Hour),
	})
}

func newStatsCache() *otter.Cache[string, model.BookStats] {
	return otter.Must(&otter.Options[string, model.BookStats]{
		MaximumSize:      1_000,
		ExpiryCalculator: otter.ExpiryCreating[string, model.BookStats](5 * time.Minute),
	})
}

// Key scopes an entry to an API endpoint and the caller's token, so users of
// an authenticated API never see each other's lookups. The token is hashed
// because keys are persisted to disk.
func Key(kind, endpoint, token string) string {
	scope := "anonymous"
	if token != "" {
		scope = strconv.FormatUint(xxh3.HashString(token), 16)
	}
	return kind + "/" + strconv.FormatUint(xxh3.HashString(endpoint), 16) + "/" + scope
}

// Invalidate drops every lookup. Called after any mutation of the catalog.
func (c *Cache) Invalidate() {
	c.Genres.InvalidateAll()
	c.Stats.InvalidateAll()
}

func (c *Cache) Load() {
	if c.storagePath == "" {
		return
	}
	genresPath := path.Join(c.storagePath, genresFile)
	statsPath := path.Join(c.storagePath, statsFile)
	log.Info().Str("path", genresPath).Msg("Loading genres cache")
	if err := otter.LoadCacheFromFile(c.Genres, genresPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Msg("Load cache failed")
		}
	}
	log.Info().Str("path", statsPath).Msg("Loading stats cache")
	if err := otter.LoadCacheFromFile(c.Stats, statsPath); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Error().Err(err).Msg("Load cache failed")
		}
	}
}

func (c *Cache) Save() {
	if c.storagePath == "" {
		return
	}
	genresPath := path.Join(c.storagePath, genresFile)
	statsPath := path.Join(c.storagePath, statsFile)
	log.Info().Str("path", genresPath).Msg("Saving genres cache")
	if err := otter.SaveCacheToFile(c.Genres, genresPath); err != nil {
		log.Error().Err(err).Msg("Save cache failed")
	}
	log.Info().Str("path", statsPath).Msg("Saving stats cache")
	if err := otter.SaveCacheToFile(c.Stats, statsPath); err != nil {
		log.Error().Err(err).Msg("Save cache failed")
	}
}
