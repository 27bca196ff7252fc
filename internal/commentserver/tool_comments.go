package commentserver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anatolykoptev/go_comments/internal/engine"
	"github.com/anatolykoptev/go_comments/internal/engine/youtube"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type CommentScrapeInput struct {
	VideoURL string `json:"video_url" jsonschema:"YouTube video URL (watch, youtu.be or shorts form)"`
	Classify bool   `json:"classify,omitempty" jsonschema:"Label each comment as question/criticism/affirmation/other"`
	Format   string `json:"format,omitempty" jsonschema:"Output format: json (default) or csv"`
}

type CommentScrapeOutput struct {
	Title      string                    `json:"title"`
	Count      int                       `json:"count"`
	Records    []engine.CommentRecord    `json:"records,omitempty"`
	Classified []engine.ClassifiedRecord `json:"classified,omitempty"`
	CSV        string                    `json:"csv,omitempty"`
	CSVName    string                    `json:"csv_name,omitempty"`
}

func registerCommentScrape(server *mcp.Server, quota *RunQuota) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "youtube_comments",
		Description: "Fetch all top-level comments of a YouTube video via the Data API, optionally classified by tone (question / criticism / affirmation / other). Returns structured records or CSV. Runs are capped per day to stay inside the API quota.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input CommentScrapeInput) (*mcp.CallToolResult, CommentScrapeOutput, error) {
		if input.VideoURL == "" {
			return nil, CommentScrapeOutput{}, errors.New("video_url is required")
		}
		if engine.Cfg.YouTubeAPIKey == "" {
			return nil, CommentScrapeOutput{}, errors.New("no YouTube API key configured, set YOUTUBE_API_KEY")
		}
		if !quota.TryConsume(ctx) {
			engine.IncrQuotaRejections()
			return nil, CommentScrapeOutput{}, errors.New("daily run limit reached, please come back tomorrow")
		}

		result, err := youtube.Scrape(ctx, engine.Cfg.YouTubeAPIKey, input.VideoURL, input.Classify)
		if err != nil {
			if engine.IsQuotaExhausted(err) {
				return nil, CommentScrapeOutput{}, errors.New("the YouTube API quota for the day is used up, please come back tomorrow")
			}
			slog.Warn("youtube_comments: scrape failed",
				slog.String("url", input.VideoURL), slog.Any("error", err))
			return nil, CommentScrapeOutput{}, err
		}

		if len(result.Records) > 0 {
			slog.Debug("youtube_comments: first record",
				slog.String("preview", engine.TruncateRunes(result.Records[0].Text, 80, "...")))
		}

		out := CommentScrapeOutput{Title: result.Title, Count: len(result.Records)}
		switch strings.ToLower(strings.TrimSpace(input.Format)) {
		case "", "json":
			out.Records = result.Records
			out.Classified = result.Classified
		case "csv":
			data, err := RecordsCSV(result)
			if err != nil {
				return nil, CommentScrapeOutput{}, fmt.Errorf("csv export: %w", err)
			}
			out.CSV = data
			out.CSVName = CSVFileName(result)
		default:
			return nil, CommentScrapeOutput{}, fmt.Errorf("unknown format %q (want json or csv)", input.Format)
		}
		return nil, out, nil
	})
}
