// go_comments — YouTube comment scraping & classification MCP server.
//
// Exposes one MCP tool: youtube_comments. Runs as HTTP MCP server or stdio
// transport. The scrape pipeline lives in internal/engine/youtube; the daily
// run quota and export formats live in internal/commentserver.
package main

import (
	"log/slog"
	"os"
	"time"

	"github.com/anatolykoptev/go-kit/env"
	"github.com/anatolykoptev/go-mcpserver"
	"github.com/anatolykoptev/go_comments/internal/commentserver"
	"github.com/anatolykoptev/go_comments/internal/engine"
	"github.com/lmittmann/tint"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

var (
	version = "dev"
	mcpPort = env.Str("MCP_PORT", "8892")
)

func main() {
	setupLogging()
	initEngine()

	slog.Info("starting go_comments",
		slog.String("port", mcpPort),
	)

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "go_comments",
		Version: version,
	}, nil)

	quota := commentserver.NewRunQuota(
		env.Int("MAX_RUNS_PER_DAY", 7),
		env.Str("REDIS_URL", ""),
	)
	commentserver.RegisterTools(server, quota)

	if err := mcpserver.Run(server, mcpserver.Config{
		Name:         "go_comments",
		Version:      version,
		Port:         mcpPort,
		WriteTimeout: 600 * time.Second,
		Metrics:      engine.FormatMetrics,
	}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
	}
}

func setupLogging() {
	level := slog.LevelInfo
	if env.Str("LOG_LEVEL", "") == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{Level: level})))
}

func initEngine() {
	c := engine.Config{
		YouTubeAPIKey: env.Str("YOUTUBE_API_KEY", ""),
		APIBase:       env.Str("YOUTUBE_API_BASE", engine.DefaultAPIBase),
		FetchTimeout:  env.Duration("FETCH_TIMEOUT", 30*time.Second),
		PageDelay:     env.Duration("PAGE_DELAY", 100*time.Millisecond),
		Backoff: engine.BackoffConfig{
			MaxRetries:  env.Int("MAX_RETRIES", 6),
			BackoffBase: env.Float("BACKOFF_BASE", 1.5),
			Unit:        time.Second,
		},
	}
	if c.YouTubeAPIKey == "" {
		slog.Warn("YOUTUBE_API_KEY not set, scrapes will be rejected")
	}
	engine.Init(c)
}
