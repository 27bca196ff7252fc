package youtube

// --- YouTube Data API v3 response types ---
//
// Field names are contractual; only the fields the flattener needs are
// decoded. A successful API response is guaranteed to carry this shape,
// so a missing nested snippet is a caller bug, not a runtime case.

type videosResponse struct {
	Items []videoItem `json:"items"`
}

type videoItem struct {
	Snippet struct {
		Title string `json:"title"`
	} `json:"snippet"`
}

type commentThreadsResponse struct {
	Items         []CommentThread `json:"items"`
	NextPageToken string          `json:"nextPageToken"`
}

// CommentThread is one top-level comment thread as returned by the
// commentThreads endpoint.
type CommentThread struct {
	Snippet struct {
		TopLevelComment struct {
			Snippet struct {
				TextDisplay string `json:"textDisplay"`
				PublishedAt string `json:"publishedAt"`
				LikeCount   *int64 `json:"likeCount"`
			} `json:"snippet"`
		} `json:"topLevelComment"`
		TotalReplyCount int64 `json:"totalReplyCount"`
	} `json:"snippet"`
}
