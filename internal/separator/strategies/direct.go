// SPDX-License-Identifier: Apache-2.0

package strategies

import (
	"strconv"

	"github.com/Yug063/questionsep/internal/separator"
)

// DirectQuestion emits lines that already read as a question, after
// stripping any bullet, list number or "Q:" prefix.
type DirectQuestion struct{}

func NewDirectQuestion() *DirectQuestion {
	return &DirectQuestion{}
}

func (s *DirectQuestion) Name() string {
	return "direct_question"
}

func (s *DirectQuestion) CanHandle(line separator.Line) bool {
	return DetectQuestionInLine(line.Text)
}

// Apply emits at most one candidate. Unprefixed lines score 0.95, cleaned
// lines 0.85; only cleaned lines claim the prefix_cleaning method.
func (s *DirectQuestion) Apply(line separator.Line, room int) separator.Outcome {
	cleaned := CleanLinePrefix(line.Text)
	if textLen(cleaned) <= minQuestionLength || room <= 0 {
		return separator.Outcome{}
	}

	candidate := separator.Candidate{
		Text:         ensureQuestionMark(cleaned),
		Source:       separator.SourceLinePrefix + strconv.Itoa(line.Number),
		Confidence:   0.95,
		OriginalText: line.Text,
	}

	if cleaned == line.Text {
		return separator.Outcome{Candidates: []separator.Candidate{candidate}}
	}

	candidate.Source = PrefixSource(line.Text)
	candidate.Confidence = 0.85
	return separator.Outcome{
		Candidates: []separator.Candidate{candidate},
		Method:     separator.MethodPrefixCleaning,
	}
}
