package youtube

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_comments/internal/engine"
)

// ResolveVideoID extracts the video id from any supported YouTube URL shape:
// short links (youtu.be/<id>), watch URLs (?v=<id>, including the mobile
// subdomain) and shorts paths (/shorts/<id>). No network access.
// Anything else fails with engine.ErrInvalidURL.
func ResolveVideoID(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %q", engine.ErrInvalidURL, rawURL)
	}

	switch strings.ToLower(u.Hostname()) {
	case "youtu.be", "www.youtu.be":
		if id := strings.TrimLeft(u.Path, "/"); id != "" {
			return id, nil
		}
	case "youtube.com", "www.youtube.com", "m.youtube.com":
		if id := u.Query().Get("v"); id != "" {
			return id, nil
		}
		segments := strings.Split(u.Path, "/")
		for i, seg := range segments {
			if seg == "shorts" && i+1 < len(segments) && segments[i+1] != "" {
				return segments[i+1], nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", engine.ErrInvalidURL, rawURL)
}
