package commentserver

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/anatolykoptev/go_comments/internal/engine"
)

// RecordsCSV renders a scrape result as CSV, one row per comment in arrival
// order. Classified results gain a trailing label column. A null like_count
// serializes as an empty field.
func RecordsCSV(result engine.ScrapeResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if result.Classified != nil {
		w.Write([]string{"text", "published_at", "like_count", "reply_count", "label"})
		for _, rec := range result.Classified {
			w.Write(append(recordFields(rec.CommentRecord), string(rec.Label)))
		}
	} else {
		w.Write([]string{"text", "published_at", "like_count", "reply_count"})
		for _, rec := range result.Records {
			w.Write(recordFields(rec))
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// CSVFileName suggests a download name for the result; the title is already
// sanitized by the scrape.
func CSVFileName(result engine.ScrapeResult) string {
	return result.Title + ".csv"
}

func recordFields(rec engine.CommentRecord) []string {
	likes := ""
	if rec.LikeCount != nil {
		likes = strconv.FormatInt(*rec.LikeCount, 10)
	}
	return []string{rec.Text, rec.PublishedAt, likes, strconv.FormatInt(rec.ReplyCount, 10)}
}
