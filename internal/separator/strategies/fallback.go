// SPDX-License-Identifier: Apache-2.0

package strategies

import (
	"regexp"
	"strings"

	"github.com/Yug063/questionsep/internal/separator"
)

// Lines strictly between these lengths are eligible for transformation.
const (
	minFallbackLength = 20
	maxFallbackLength = 200
)

var trailingTerminator = regexp.MustCompile(`[.!]$`)

// transformRule rewrites a lower-cased statement when any of its keywords
// occur in it. Rules are evaluated in order; the first match wins.
type transformRule struct {
	keywords   []string
	rewrite    func(lower string) string
	confidence float64
}

var transformRules = []transformRule{
	{
		keywords:   []string{" is ", " are "},
		rewrite:    func(lower string) string { return "What " + lower + "?" },
		confidence: 0.70,
	},
	{
		keywords: []string{" has ", " have "},
		rewrite: func(lower string) string {
			return "What applications or features " + strings.Replace(lower, " has ", " have ", 1) + "?"
		},
		confidence: 0.68,
	},
	{
		keywords:   []string{" can ", " could "},
		rewrite:    func(lower string) string { return "How " + lower + "?" },
		confidence: 0.65,
	},
}

// TransformToQuestion turns a declarative statement into an interrogative
// one and returns it with the confidence of the rule that fired. Statements
// that already contain '?' are returned unchanged.
func TransformToQuestion(statement string) (string, float64) {
	if strings.Contains(statement, "?") {
		return statement, 0.95
	}

	lower := strings.ToLower(statement)
	for _, rule := range transformRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.rewrite(lower), rule.confidence
			}
		}
	}

	return "What about " + trailingTerminator.ReplaceAllString(lower, "") + "?", 0.60
}

// FallbackTransform rewrites prose lines that no other strategy accepted.
type FallbackTransform struct{}

func NewFallbackTransform() *FallbackTransform {
	return &FallbackTransform{}
}

func (s *FallbackTransform) Name() string {
	return separator.MethodFallbackProcessing
}

func (s *FallbackTransform) CanHandle(line separator.Line) bool {
	n := textLen(line.Text)
	return n > minFallbackLength && n < maxFallbackLength
}

func (s *FallbackTransform) Apply(line separator.Line, room int) separator.Outcome {
	if room <= 0 {
		return separator.Outcome{}
	}

	text, confidence := TransformToQuestion(line.Text)
	return separator.Outcome{
		Candidates: []separator.Candidate{{
			Text:         text,
			Source:       separator.SourceFallbackTransformed,
			Confidence:   confidence,
			IsFallback:   true,
			OriginalText: line.Text,
		}},
		Method:       separator.MethodFallbackProcessing,
		FallbackUsed: true,
	}
}
