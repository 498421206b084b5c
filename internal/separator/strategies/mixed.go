// SPDX-License-Identifier: Apache-2.0

package strategies

import (
	"regexp"
	"strings"

	"github.com/Yug063/questionsep/internal/separator"
)

// twoTerminators matches a line with at least two sentence terminators.
var twoTerminators = regexp.MustCompile(`[.!?].*[.!?]`)

// punctuationRule maps the terminator that closed a fragment to its source
// tag and confidence.
type punctuationRule struct {
	source     string
	confidence float64
}

var punctuationRules = map[string]punctuationRule{
	"?": {source: separator.SourceQuestionPreserved, confidence: 0.95},
	"!": {source: separator.SourceExclamationConverted, confidence: 0.85},
	".": {source: separator.SourcePeriodConverted, confidence: 0.75},
	"":  {source: separator.SourceNoPunctuationConverted, confidence: 0.70},
}

// HasMultipleQuestions reports whether line contains more than one '?'.
func HasMultipleQuestions(line string) bool {
	return strings.Count(line, "?") > 1
}

// HasMixedPunctuation reports whether line carries two or more sentence
// terminators anywhere.
func HasMixedPunctuation(line string) bool {
	return twoTerminators.MatchString(line)
}

// SplitMixedPunctuation splits line into one candidate per terminated
// fragment, left to right. Fragments of five characters or fewer are dropped.
func SplitMixedPunctuation(line string) []separator.Candidate {
	parts := splitKeepingTerminators(line)

	var candidates []separator.Candidate
	for i := 0; i < len(parts); i += 2 {
		text := strings.TrimSpace(parts[i])
		if textLen(text) <= minQuestionLength {
			continue
		}

		var punctuation string
		if i+1 < len(parts) {
			punctuation = parts[i+1]
		}
		rule, ok := punctuationRules[punctuation]
		if !ok {
			rule = punctuationRules[""]
		}

		candidates = append(candidates, separator.Candidate{
			Text:         text + "?",
			Source:       rule.source,
			Confidence:   rule.confidence,
			OriginalText: line,
		})
	}
	return candidates
}

// splitKeepingTerminators splits s around each '.', '!' or '?', keeping the
// terminator as its own element and dropping empty elements. A run such as
// "??" therefore shifts the text/terminator pairing, which the caller
// tolerates through the length filter.
func splitKeepingTerminators(s string) []string {
	var parts []string
	add := func(p string) {
		if p != "" {
			parts = append(parts, p)
		}
	}

	start := 0
	for i, r := range s {
		switch r {
		case '.', '!', '?':
			add(s[start:i])
			add(string(r))
			start = i + 1
		}
	}
	add(s[start:])
	return parts
}

// MixedPunctuation handles lines that encode several questions or statements.
type MixedPunctuation struct{}

func NewMixedPunctuation() *MixedPunctuation {
	return &MixedPunctuation{}
}

func (s *MixedPunctuation) Name() string {
	return separator.MethodMixedPunctuation
}

func (s *MixedPunctuation) CanHandle(line separator.Line) bool {
	return HasMultipleQuestions(line.Text) || HasMixedPunctuation(line.Text)
}

// Apply always claims the processing method, even when the cap leaves no room.
func (s *MixedPunctuation) Apply(line separator.Line, _ int) separator.Outcome {
	return separator.Outcome{
		Candidates: SplitMixedPunctuation(line.Text),
		Method:     separator.MethodMixedPunctuation,
	}
}
