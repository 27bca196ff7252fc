package engine

import (
	"net/http"
	"time"
)

// DefaultAPIBase is the YouTube Data API v3 root.
const DefaultAPIBase = "https://www.googleapis.com/youtube/v3"

// Config holds all engine configuration, injected from main.
type Config struct {
	YouTubeAPIKey string        // Data API v3 key; scrapes fail without one
	APIBase       string        // override for tests
	FetchTimeout  time.Duration // per-request HTTP timeout
	PageDelay     time.Duration // courtesy throttle between comment pages
	Backoff       BackoffConfig
	HTTPClient    *http.Client
}

var cfg Config

// Cfg exposes the engine configuration for sub-packages (youtube, commentserver).
// Always points to the current cfg value.
var Cfg = &cfg

// Init initializes the engine with the given configuration.
// Zero-value fields fall back to production defaults.
func Init(c Config) {
	if c.APIBase == "" {
		c.APIBase = DefaultAPIBase
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 30 * time.Second
	}
	if c.PageDelay == 0 {
		c.PageDelay = 100 * time.Millisecond
	}
	if c.Backoff == (BackoffConfig{}) {
		c.Backoff = DefaultBackoffConfig
	}
	if c.HTTPClient == nil {
		c.HTTPClient = NewHTTPClient(c.FetchTimeout)
	}
	cfg = c
	Cfg = &cfg
}
