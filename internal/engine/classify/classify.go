// Package classify assigns a coarse intent/sentiment label to comment text.
//
// Labeling is an ordered rule cascade: cheap lexical checks first, a VADER
// polarity score as the fallback. The lexical rules double as deterministic
// overrides for signals a generic sentiment score misjudges ("not good"
// scores near-neutral but is plainly criticism).
package classify

import (
	"strings"

	"github.com/grassmudhorses/vader-go/lexicon"
	"github.com/grassmudhorses/vader-go/sentitext"
)

// Label is a comment category.
type Label string

const (
	Question    Label = "question"
	Criticism   Label = "criticism"
	Affirmation Label = "affirmation"
	Other       Label = "other"
)

// Polarity thresholds for the VADER fallback.
const (
	positiveThreshold = 0.2
	negativeThreshold = -0.2
)

// Rule maps a predicate over case-folded text to a label.
type Rule struct {
	Name  string
	Match func(folded string) bool
	Label Label
}

// Rules run in order; first match wins. Keyword checks see case-folded text,
// so "hate" before "love" means mixed comments land on criticism.
var Rules = []Rule{
	{"question-mark", func(s string) bool { return strings.Contains(s, "?") }, Question},
	{"negative-keyword", containsAny("bad", "worst", "hate", "not good", "terrible", "disagree"), Criticism},
	{"positive-keyword", containsAny("good", "love", "nice", "amazing", "agree", "great", "awesome"), Affirmation},
}

// Classify returns a label for text. Total and deterministic: identical input
// always yields the identical label, and there is no failure path.
func Classify(text string) Label {
	folded := strings.ToLower(text)
	for _, r := range Rules {
		if r.Match(folded) {
			return r.Label
		}
	}
	return polarityLabel(text)
}

// polarityLabel scores the raw (non-folded) text; VADER is case-aware and
// treats all-caps words as emphasis.
func polarityLabel(text string) Label {
	score := sentitext.PolarityScore(sentitext.Parse(text, lexicon.DefaultLexicon))
	switch {
	case score.Compound > positiveThreshold:
		return Affirmation
	case score.Compound < negativeThreshold:
		return Criticism
	default:
		return Other
	}
}

func containsAny(words ...string) func(string) bool {
	return func(s string) bool {
		for _, w := range words {
			if strings.Contains(s, w) {
				return true
			}
		}
		return false
	}
}
