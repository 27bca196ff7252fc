package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/anatolykoptev/go_comments/internal/engine"
	"golang.org/x/time/rate"
)

// maxPageSize is the largest page the commentThreads endpoint allows.
const maxPageSize = 100

// FetchAllCommentThreads pages through every top-level comment thread of a
// video in the API's chronological order, preserving arrival order across
// pages. Pagination follows the opaque nextPageToken until the response
// carries none; a video with zero comments yields an empty slice, not an
// error. A short courtesy delay separates pages, independent of the
// fetcher's failure-driven backoff, and aborts early on ctx cancellation.
func FetchAllCommentThreads(ctx context.Context, apiKey, videoID string) ([]CommentThread, error) {
	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("videoId", videoID)
	params.Set("key", apiKey)
	params.Set("maxResults", fmt.Sprintf("%d", maxPageSize))
	params.Set("textFormat", "plainText")
	params.Set("order", "time")

	throttle := rate.NewLimiter(rate.Every(engine.Cfg.PageDelay), 1)
	throttle.Allow() // drain the initial token so the first inter-page wait is honored

	var threads []CommentThread
	for page := 1; ; page++ {
		endpoint := engine.Cfg.APIBase + "/commentThreads?" + params.Encode()
		resp, err := engine.FetchWithBackoff(ctx, engine.Cfg.HTTPClient, endpoint, engine.Cfg.Backoff)
		if err != nil {
			return nil, fmt.Errorf("comment page %d: %w", page, err)
		}

		var body commentThreadsResponse
		err = json.NewDecoder(resp.Body).Decode(&body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("decode comment page %d: %w", page, err)
		}

		engine.IncrCommentPages()
		threads = append(threads, body.Items...)

		if body.NextPageToken == "" {
			slog.Debug("comment pagination complete",
				slog.String("video_id", videoID),
				slog.Int("pages", page),
				slog.Int("threads", len(threads)))
			return threads, nil
		}
		params.Set("pageToken", body.NextPageToken)

		if err := throttle.Wait(ctx); err != nil {
			return nil, err
		}
	}
}

// FlattenThread maps one commentThreads item onto the flat record schema.
// Pure; total on decoded items. A thread without totalReplyCount flattens to
// reply_count 0, a missing likeCount stays an explicit null.
func FlattenThread(item CommentThread) engine.CommentRecord {
	top := item.Snippet.TopLevelComment.Snippet
	return engine.CommentRecord{
		Text:        top.TextDisplay,
		PublishedAt: top.PublishedAt,
		LikeCount:   top.LikeCount,
		ReplyCount:  item.Snippet.TotalReplyCount,
	}
}
