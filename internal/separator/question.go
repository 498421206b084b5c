// SPDX-License-Identifier: Apache-2.0

package separator

// Source tags. Downstream consumers pattern-match these strings.
const (
	SourceQuestionPreserved      = "question_preserved"
	SourceExclamationConverted   = "exclamation_converted"
	SourcePeriodConverted        = "period_converted"
	SourceNoPunctuationConverted = "no_punctuation_converted"
	SourceBulletCleaned          = "bullet_cleaned"
	SourceNumberedCleaned        = "numbered_cleaned"
	SourcePrefixCleaned          = "prefix_cleaned"
	SourceLineCleaned            = "line_cleaned"
	SourceFallbackTransformed    = "fallback_transformed"
	SourceFallbackSentence       = "fallback_sentence"

	// SourceLinePrefix is completed with the 1-based line number, e.g. "line_3".
	SourceLinePrefix = "line_"
)

// Processing methods.
const (
	MethodLineBreaks         = "line_breaks"
	MethodMixedPunctuation   = "mixed_punctuation"
	MethodPrefixCleaning     = "prefix_cleaning"
	MethodFallbackProcessing = "fallback_processing"
	MethodFallbackSentences  = "fallback_sentences"
)

// DefaultMaxQuestions is the cap used when the caller does not pass one.
const DefaultMaxQuestions = 20

// Question is one segmented, confidence-scored interrogative string.
type Question struct {
	ID           string  `json:"id"`
	Text         string  `json:"text"`
	Source       string  `json:"source"`
	IsEdited     bool    `json:"is_edited"`
	Confidence   float64 `json:"confidence"`
	IsFallback   bool    `json:"is_fallback"`
	CardNumber   int     `json:"card_number"`
	OriginalText string  `json:"original_text"`
}

type Statistics struct {
	LinesProcessed    int     `json:"lines_processed"`
	QuestionsFound    int     `json:"questions_found"`
	FallbackUsed      bool    `json:"fallback_used"`
	ConfidenceAverage float64 `json:"confidence_average"`
}

// ProcessingResult is the output of one Engine.Process call.
type ProcessingResult struct {
	Questions        []Question `json:"questions"`
	TotalProcessed   int        `json:"total_processed"`
	ProcessingMethod string     `json:"processing_method"`
	Statistics       Statistics `json:"statistics"`
}

// Line is a trimmed, non-empty input line.
type Line struct {
	Text string
	// Number is the 1-based position among the non-empty lines.
	Number int
}

// Candidate is a question proposed by a strategy before the engine assigns
// identifiers and card numbers.
type Candidate struct {
	Text         string
	Source       string
	Confidence   float64
	IsFallback   bool
	OriginalText string
}

// Outcome is what a LineStrategy produced for a single line.
type Outcome struct {
	Candidates []Candidate
	// Method overwrites the result's processing method when non-empty.
	Method       string
	FallbackUsed bool
}

// LineStrategy turns one line into zero or more question candidates.
// room is the number of slots left under the cap and may be zero or negative.
type LineStrategy interface {
	CanHandle(line Line) bool
	Apply(line Line, room int) Outcome
	Name() string
}

// TextFallback re-segments the whole input when no line produced a question.
type TextFallback interface {
	Split(text string) []Candidate
	Name() string
}
