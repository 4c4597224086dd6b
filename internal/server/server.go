package server

import (
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	slogzerolog "github.com/samber/slog-zerolog/v2"

	"github.com/RobBrazier/booklister/config"
	"github.com/RobBrazier/booklister/internal/cache"
	"github.com/RobBrazier/booklister/internal/catalog"
	"github.com/RobBrazier/booklister/internal/session"
)

type Server struct {
	port         int
	catalog      catalog.Service
	sessions     *session.Manager
	authRequired bool
	logRequests  bool
	rateLimit    int
}

type Options struct {
	Port         int
	AuthRequired bool
	CookieSecure bool
	LogRequests  bool
	RateLimit    int
}

func New(svc catalog.Service, opts Options) *Server {
	return &Server{
		port:         opts.Port,
		catalog:      svc,
		sessions:     session.NewManager(opts.CookieSecure),
		authRequired: opts.AuthRequired,
		logRequests:  opts.LogRequests,
		rateLimit:    opts.RateLimit,
	}
}

// SetupLogger configures the global zerolog logger and routes slog through
// it, which go-retryablehttp and httplog log with.
func SetupLogger() *zerolog.Logger {
	var writer io.Writer
	writer = os.Stdout
	isLocal := config.IsLocal() || config.LogFormat() == "text"
	if isLocal {
		writer = zerolog.NewConsoleWriter()
	}
	context := zerolog.New(writer).With().Timestamp().Caller()
	if !isLocal {
		context = context.Str("service.name", "booklister")
	}
	logger := context.Logger().Level(config.LogLevel())
	log.Logger = logger

	slog.SetDefault(slog.New(slogzerolog.Option{Logger: &logger}.NewZerologHandler()))
	return &logger
}

// NewServer wires the catalog, the lookup cache and the HTTP server from
// configuration. The returned cleanup persists the cache and must run after
// the server stops.
func NewServer() (*http.Server, func()) {
	lookups := cache.New(config.CacheStorage())
	lookups.Load()

	scheduler, err := gocron.NewScheduler()
	if err != nil {
		log.Error().Err(err).Msg("Unable to create scheduler")
	} else {
		if _, err := scheduler.NewJob(
			gocron.DurationJob(1*time.Hour),
			gocron.NewTask(lookups.Save),
		); err != nil {
			log.Error().Err(err).Msg("Unable to schedule cache save")
		}
		scheduler.Start()
	}

	svc := catalog.NewService(catalog.Options{
		URL:      config.APIURL(),
		Token:    config.APIToken(),
		RetryMax: config.APIRetryMax(),
		Cache:    lookups,
	})
	app := New(svc, Options{
		Port:         config.Port(),
		AuthRequired: config.AuthRequired(),
		CookieSecure: config.CookieSecure(),
		LogRequests:  config.LogRequests(),
		RateLimit:    config.RateLimit(),
	})

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", app.port),
		Handler:      app.RegisterRoutes(),
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	cleanup := func() {
		if scheduler != nil {
			if err := scheduler.Shutdown(); err != nil {
				log.Error().Err(err).Msg("Scheduler shutdown failed")
			}
		}
		lookups.Save()
	}
	return server, cleanup
}
