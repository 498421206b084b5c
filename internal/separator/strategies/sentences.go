// SPDX-License-Identifier: Apache-2.0

package strategies

import (
	"regexp"
	"strings"

	"github.com/Yug063/questionsep/internal/separator"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

// SplitBySentences splits text on runs of sentence terminators and returns
// every fragment longer than five characters, each ending in '?'.
func SplitBySentences(text string) []string {
	var sentences []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		clean := strings.TrimSpace(s)
		if textLen(clean) <= minQuestionLength {
			continue
		}
		sentences = append(sentences, ensureQuestionMark(clean))
	}
	return sentences
}

// SentenceFallback is the whole-input fallback of last resort.
type SentenceFallback struct{}

func NewSentenceFallback() *SentenceFallback {
	return &SentenceFallback{}
}

func (f *SentenceFallback) Name() string {
	return separator.MethodFallbackSentences
}

func (f *SentenceFallback) Split(text string) []separator.Candidate {
	sentences := SplitBySentences(text)
	candidates := make([]separator.Candidate, 0, len(sentences))
	for _, sentence := range sentences {
		question, confidence := TransformToQuestion(sentence)
		candidates = append(candidates, separator.Candidate{
			Text:         question,
			Source:       separator.SourceFallbackSentence,
			Confidence:   confidence,
			IsFallback:   true,
			OriginalText: sentence,
		})
	}
	return candidates
}
