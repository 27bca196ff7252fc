package commentserver

import (
	"encoding/csv"
	"strings"
	"testing"

	"github.com/anatolykoptev/go_comments/internal/engine"
	"github.com/anatolykoptev/go_comments/internal/engine/classify"
	"github.com/stretchr/testify/require"
)

func int64p(n int64) *int64 { return &n }

func TestRecordsCSV(t *testing.T) {
	result := engine.ScrapeResult{
		Title: "My Video",
		Records: []engine.CommentRecord{
			{Text: "first, with a comma", PublishedAt: "2024-05-01T10:00:00Z", LikeCount: int64p(3), ReplyCount: 1},
			{Text: "no likes recorded", PublishedAt: "2024-05-02T10:00:00Z", LikeCount: nil, ReplyCount: 0},
		},
	}

	out, err := RecordsCSV(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"text", "published_at", "like_count", "reply_count"}, rows[0])
	require.Equal(t, []string{"first, with a comma", "2024-05-01T10:00:00Z", "3", "1"}, rows[1])
	require.Equal(t, "", rows[2][2], "null like_count must serialize as empty field")
}

func TestRecordsCSVClassified(t *testing.T) {
	rec := engine.CommentRecord{Text: "why?", PublishedAt: "2024-05-01T10:00:00Z", ReplyCount: 2}
	result := engine.ScrapeResult{
		Title:   "My Video",
		Records: []engine.CommentRecord{rec},
		Classified: []engine.ClassifiedRecord{
			{CommentRecord: rec, Label: classify.Question},
		},
	}

	out, err := RecordsCSV(result)
	require.NoError(t, err)

	rows, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	require.Equal(t, []string{"text", "published_at", "like_count", "reply_count", "label"}, rows[0])
	require.Equal(t, "question", rows[1][4])
}

func TestCSVFileName(t *testing.T) {
	require.Equal(t, "My Video.csv", CSVFileName(engine.ScrapeResult{Title: "My Video"}))
}
