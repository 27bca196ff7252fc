package engine

import (
	"strings"
	"unicode"

	"github.com/anatolykoptev/go-kit/strutil"
)

// FallbackTitle replaces titles that sanitize down to nothing.
const FallbackTitle = "youtube_comments"

// SanitizeTitle reduces a video title to a filesystem-safe subset:
// letters, digits, space, hyphen and underscore. Surrounding whitespace is
// trimmed; an empty result becomes FallbackTitle.
func SanitizeTitle(title string) string {
	var b strings.Builder
	for _, r := range title {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == ' ' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	safe := strings.TrimSpace(b.String())
	if safe == "" {
		return FallbackTitle
	}
	return safe
}

// TruncateRunes caps s at limit runes, appending suffix if truncated.
// Pass suffix="" for no suffix. Safe for UTF-8 (Cyrillic, CJK, emoji).
func TruncateRunes(s string, limit int, suffix string) string {
	return strutil.TruncateWith(s, limit, suffix)
}
