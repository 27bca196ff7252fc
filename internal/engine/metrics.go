package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	VideoLookups    atomic.Int64
	CommentPages    atomic.Int64
	CommentsFetched atomic.Int64
	FetchRetries    atomic.Int64
	ClassifyCalls   atomic.Int64
	QuotaRejections atomic.Int64
}

// GetMetrics returns a snapshot of all metrics.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"video_lookups":    metrics.VideoLookups.Load(),
		"comment_pages":    metrics.CommentPages.Load(),
		"comments_fetched": metrics.CommentsFetched.Load(),
		"fetch_retries":    metrics.FetchRetries.Load(),
		"classify_calls":   metrics.ClassifyCalls.Load(),
		"quota_rejections": metrics.QuotaRejections.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"video_lookups", "comment_pages", "comments_fetched",
		"fetch_retries", "classify_calls", "quota_rejections",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// Incrementors for the youtube/ and commentserver/ sub-packages.
func IncrVideoLookups()         { metrics.VideoLookups.Add(1) }
func IncrCommentPages()         { metrics.CommentPages.Add(1) }
func IncrCommentsFetched(n int) { metrics.CommentsFetched.Add(int64(n)) }
func IncrFetchRetries()         { metrics.FetchRetries.Add(1) }
func IncrClassifyCalls()        { metrics.ClassifyCalls.Add(1) }
func IncrQuotaRejections()      { metrics.QuotaRejections.Add(1) }
