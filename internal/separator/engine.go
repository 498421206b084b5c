// SPDX-License-Identifier: Apache-2.0

package separator

import (
	"fmt"
	"math"
	"strings"
)

// Engine segments free text into questions. It holds no mutable state, so a
// single Engine may be shared by concurrent callers.
type Engine struct {
	strategies []LineStrategy
	fallback   TextFallback
}

// NewEngine creates an Engine that routes every line to the first strategy
// able to handle it. Order matters: the mixed punctuation splitter must come
// before the direct question path, which must come before the transformer.
func NewEngine(fallback TextFallback, strategies ...LineStrategy) *Engine {
	return &Engine{
		strategies: strategies,
		fallback:   fallback,
	}
}

// Process converts text into at most maxQuestions questions.
func (e *Engine) Process(text string, maxQuestions int) ProcessingResult {
	lines := SplitLines(text)
	method := MethodLineBreaks
	fallbackUsed := false

	var candidates []Candidate
	for _, line := range lines {
		strategy := e.selectStrategy(line)
		if strategy == nil {
			continue
		}

		room := maxQuestions - len(candidates)
		out := strategy.Apply(line, room)
		candidates = append(candidates, limit(out.Candidates, room)...)

		if out.Method != "" {
			method = out.Method
		}
		if out.FallbackUsed {
			fallbackUsed = true
		}
	}

	if len(candidates) == 0 && e.fallback != nil {
		fallbackUsed = true
		method = MethodFallbackSentences
		candidates = limit(e.fallback.Split(text), maxQuestions)
	}

	questions := make([]Question, 0, len(candidates))
	for i, c := range candidates {
		questions = append(questions, Question{
			ID:           fmt.Sprintf("temp_%d", i+1),
			Text:         c.Text,
			Source:       c.Source,
			Confidence:   c.Confidence,
			IsFallback:   c.IsFallback,
			CardNumber:   i + 1,
			OriginalText: c.OriginalText,
		})
	}

	return ProcessingResult{
		Questions:        questions,
		TotalProcessed:   len(lines),
		ProcessingMethod: method,
		Statistics: Statistics{
			LinesProcessed:    len(lines),
			QuestionsFound:    len(questions),
			FallbackUsed:      fallbackUsed,
			ConfidenceAverage: averageConfidence(questions),
		},
	}
}

// selectStrategy returns the first registered strategy that can handle the line.
func (e *Engine) selectStrategy(line Line) LineStrategy {
	for _, s := range e.strategies {
		if s.CanHandle(line) {
			return s
		}
	}
	return nil
}

// Strategies returns the names of the registered line strategies in order.
func (e *Engine) Strategies() []string {
	names := make([]string, len(e.strategies))
	for i, s := range e.strategies {
		names[i] = s.Name()
	}
	return names
}

// SplitLines splits text on newlines and returns the trimmed, non-empty lines.
func SplitLines(text string) []Line {
	raw := strings.Split(text, "\n")
	lines := make([]Line, 0, len(raw))
	for _, l := range raw {
		trimmed := strings.TrimSpace(l)
		if trimmed == "" {
			continue
		}
		lines = append(lines, Line{Text: trimmed, Number: len(lines) + 1})
	}
	return lines
}

func limit(candidates []Candidate, room int) []Candidate {
	if room <= 0 {
		return nil
	}
	if len(candidates) > room {
		return candidates[:room]
	}
	return candidates
}

// averageConfidence is the mean confidence rounded to two decimals, 0 when empty.
func averageConfidence(questions []Question) float64 {
	if len(questions) == 0 {
		return 0
	}
	var sum float64
	for _, q := range questions {
		sum += q.Confidence
	}
	return math.Round(sum/float64(len(questions))*100) / 100
}
