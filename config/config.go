package config

import (
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
)

type config struct {
	Port int    `envconfig:"PORT" default:"8080"`
	Env  string `envconfig:"APP_ENV" default:"production"`
	Log  struct {
		Level    string `envconfig:"LOG_LEVEL" default:"debug"`
		Format   string `envconfig:"LOG_FORMAT" default:"text"`
		Requests bool   `envconfig:"LOG_REQUESTS" default:"false"`
	}
	API struct {
		URL      string `envconfig:"API_URL" default:"http://localhost:4000/graphql"`
		Token    string `envconfig:"API_TOKEN"`
		RetryMax int    `envconfig:"API_RETRY_MAX" default:"3"`
	}
	Auth struct {
		Required     bool `envconfig:"AUTH_REQUIRED" default:"false"`
		CookieSecure bool `envconfig:"COOKIE_SECURE" default:"false"`
	}
	RateLimit int `envconfig:"RATE_LIMIT" default:"60"`
	Cache     struct {
		StoragePath string `envconfig:"CACHE_STORAGE_PATH" default:"."`
	}
}

var cfg config

// LoadConfig reads the environment, after loading .env when present.
func LoadConfig() error {
	_ = godotenv.Load()
	err := envconfig.Process("", &cfg)
	if err != nil {
		return err
	}
	return nil
}

func Config() config {
	return cfg
}

func Port() int {
	return cfg.Port
}

func IsLocal() bool {
	return strings.ToLower(cfg.Env) == "local"
}

func LogLevel() zerolog.Level {
	switch strings.ToLower(cfg.Log.Level) {
	case "trace":
		return zerolog.TraceLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	case "panic":
		return zerolog.PanicLevel
	default:
		return zerolog.DebugLevel
	}
}

func LogFormat() string {
	allowed := []string{"text", "json"}
	format := strings.ToLower(cfg.Log.Format)
	if slices.Contains(allowed, format) {
		return format
	}
	return "json"
}

func LogRequests() bool {
	return cfg.Log.Requests
}

func APIURL() string {
	return cfg.API.URL
}

func APIToken() string {
	return cfg.API.Token
}

func APIRetryMax() int {
	return cfg.API.RetryMax
}

// AuthRequired gates every page behind login. Some deployments of the book
// service are open and some require a token, so this is configuration.
func AuthRequired() bool {
	return cfg.Auth.Required
}

func CookieSecure() bool {
	return cfg.Auth.CookieSecure
}

func RateLimit() int {
	return cfg.RateLimit
}

func CacheStorage() string {
	return cfg.Cache.StoragePath
}
