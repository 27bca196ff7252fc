package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anatolykoptev/go_comments/internal/engine"
)

// FetchVideoTitle looks up the video's title via the videos endpoint and
// sanitizes it for use as a file name. A single GET, no retry: a transient
// failure here surfaces as *engine.APIError like any other non-2xx.
// Zero items for the id fails with engine.ErrVideoNotFound.
func FetchVideoTitle(ctx context.Context, apiKey, videoID string) (string, error) {
	engine.IncrVideoLookups()

	params := url.Values{}
	params.Set("part", "snippet")
	params.Set("id", videoID)
	params.Set("key", apiKey)
	apiURL := engine.Cfg.APIBase + "/videos?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", engine.UserAgentBot)
	req.Header.Set("Accept", "application/json")

	resp, err := engine.Cfg.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("video lookup: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", &engine.APIError{Status: resp.StatusCode}
	}

	var body videosResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode video lookup: %w", err)
	}
	if len(body.Items) == 0 {
		return "", fmt.Errorf("%w: %s", engine.ErrVideoNotFound, videoID)
	}
	return engine.SanitizeTitle(body.Items[0].Snippet.Title), nil
}
