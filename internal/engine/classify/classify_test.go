package classify

import "testing"

func TestClassifyRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"question mark", "how did you film this?", Question},
		{"negative keyword", "this is terrible", Criticism},
		{"phrase keyword", "honestly not good", Criticism},
		{"positive keyword", "what a great video", Affirmation},
		{"case folded negative", "WORST take ever", Criticism},
		{"case folded positive", "GREAT stuff", Affirmation},
		// Precedence: question mark beats keywords.
		{"question beats negative", "why is this bad?", Question},
		{"question beats positive", "isn't this great?", Question},
		// Precedence: negative beats positive.
		{"negative beats positive", "bad but great", Criticism},
		{"disagree beats embedded agree", "I disagree completely", Criticism},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyPolarityFallback(t *testing.T) {
	// None of these contain a question mark or a cascade keyword, so the
	// VADER compound score decides.
	tests := []struct {
		name string
		text string
		want Label
	}{
		{"positive polarity", "what a wonderful explanation", Affirmation},
		{"negative polarity", "utterly depressing and painful to watch", Criticism},
		{"neutral fact", "the video is twelve minutes long", Other},
		{"empty", "", Other},
		{"emoji only", "🎥🎥🎥", Other},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.text); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestClassifyDeterministic(t *testing.T) {
	texts := []string{
		"why is this bad?",
		"the video is twelve minutes long",
		"what a wonderful explanation",
		"утерянный контекст", // non-ASCII input must not change across calls either
	}
	for _, text := range texts {
		first := Classify(text)
		for i := 0; i < 5; i++ {
			if got := Classify(text); got != first {
				t.Fatalf("Classify(%q) flapped: %q then %q", text, first, got)
			}
		}
	}
}

func TestRuleOrder(t *testing.T) {
	// The cascade contract: question mark, then negative keywords, then
	// positive keywords. Additions must keep this order.
	want := []Label{Question, Criticism, Affirmation}
	if len(Rules) != len(want) {
		t.Fatalf("expected %d rules, got %d", len(want), len(Rules))
	}
	for i, label := range want {
		if Rules[i].Label != label {
			t.Errorf("Rules[%d].Label = %q, want %q", i, Rules[i].Label, label)
		}
	}
}
