package youtube

import (
	"context"
	"log/slog"

	"github.com/anatolykoptev/go_comments/internal/engine"
	"github.com/anatolykoptev/go_comments/internal/engine/classify"
)

// Scrape is the single entry point for callers: resolve the URL, look up the
// title, fetch every comment page, flatten, and optionally classify.
// All-or-nothing: the first failure of any step aborts the whole scrape with
// no partial result. Classification is total and cannot fail.
func Scrape(ctx context.Context, apiKey, videoURL string, classifyRecords bool) (engine.ScrapeResult, error) {
	videoID, err := ResolveVideoID(videoURL)
	if err != nil {
		return engine.ScrapeResult{}, err
	}

	title, err := FetchVideoTitle(ctx, apiKey, videoID)
	if err != nil {
		return engine.ScrapeResult{}, err
	}

	threads, err := FetchAllCommentThreads(ctx, apiKey, videoID)
	if err != nil {
		return engine.ScrapeResult{}, err
	}
	engine.IncrCommentsFetched(len(threads))

	records := make([]engine.CommentRecord, 0, len(threads))
	for _, th := range threads {
		records = append(records, FlattenThread(th))
	}

	result := engine.ScrapeResult{Title: title, Records: records}
	if classifyRecords {
		result.Classified = make([]engine.ClassifiedRecord, 0, len(records))
		for _, rec := range records {
			engine.IncrClassifyCalls()
			result.Classified = append(result.Classified, engine.ClassifiedRecord{
				CommentRecord: rec,
				Label:         classify.Classify(rec.Text),
			})
		}
	}

	slog.Info("scrape complete",
		slog.String("video_id", videoID),
		slog.String("title", title),
		slog.Int("comments", len(records)),
		slog.Bool("classified", classifyRecords))
	return result, nil
}
