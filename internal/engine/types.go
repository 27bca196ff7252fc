package engine

import "github.com/anatolykoptev/go_comments/internal/engine/classify"

// CommentRecord is the flat output schema for one top-level comment.
// Text is always present for a valid record; a comment with no source text
// yields "" rather than a missing field. LikeCount stays an explicit null
// in JSON when the API omitted it.
type CommentRecord struct {
	Text        string `json:"text"`
	PublishedAt string `json:"published_at"`
	LikeCount   *int64 `json:"like_count"`
	ReplyCount  int64  `json:"reply_count"`
}

// ClassifiedRecord is a CommentRecord plus its category label.
// The embedded record is a copy; classification never mutates the source.
type ClassifiedRecord struct {
	CommentRecord
	Label classify.Label `json:"label"`
}

// ScrapeResult is the all-or-nothing return value of a scrape.
// Records preserves arrival order from the paginated fetch. Classified is
// populated (same order, same length) only when classification was requested.
type ScrapeResult struct {
	Title      string             `json:"title"`
	Records    []CommentRecord    `json:"records"`
	Classified []ClassifiedRecord `json:"classified,omitempty"`
}
