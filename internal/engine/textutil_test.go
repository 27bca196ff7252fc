package engine

import "testing"

func TestSanitizeTitle(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "My Video", "My Video"},
		{"punctuation stripped", " My Video! ", "My Video"},
		{"keeps hyphen underscore", "go_comments - part 2", "go_comments - part 2"},
		{"all punctuation", "?!?!", FallbackTitle},
		{"empty", "", FallbackTitle},
		{"unicode letters kept", "日本語タイトル", "日本語タイトル"},
		{"emoji stripped", "great video 🔥🔥", "great video"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SanitizeTitle(tt.in); got != tt.want {
				t.Errorf("SanitizeTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
