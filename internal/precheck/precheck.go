// SPDX-License-Identifier: Apache-2.0

// Package precheck scores raw text before segmentation so a caller can warn
// about input that is unlikely to contain questions.
package precheck

import (
	"math"
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	bulletLine   = regexp.MustCompile(`(?m)^\s*[-•*]\s`)
	numberedLine = regexp.MustCompile(`(?m)^\d+\.\s`)
)

// Report is the heuristic summary of one input.
type Report struct {
	QuestionMarksFound int     `json:"question_marks_found"`
	LinesCount         int     `json:"lines_count"`
	AverageLineLength  int     `json:"average_line_length"`
	HasBulletPoints    bool    `json:"has_bullet_points"`
	CanProceed         bool    `json:"can_proceed"`
	ConfidenceScore    float64 `json:"confidence_score"`
}

// Analyze inspects text. With force set, CanProceed is always true.
func Analyze(text string, force bool) Report {
	questionMarks := strings.Count(text, "?")

	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if strings.TrimSpace(l) != "" {
			lines = append(lines, l)
		}
	}

	average := 0.0
	if len(lines) > 0 {
		total := 0
		for _, l := range lines {
			total += utf8.RuneCountInString(l)
		}
		average = float64(total) / float64(len(lines))
	}

	hasBullets := bulletLine.MatchString(text) || numberedLine.MatchString(text)
	length := utf8.RuneCountInString(text)

	canProceed := force ||
		questionMarks > 0 ||
		len(lines) > 1 ||
		hasBullets ||
		length > 100

	score := float64(questionMarks)*0.3 +
		math.Min(float64(len(lines))/5, 1)*0.3 +
		math.Min(float64(length)/500, 1)*0.2
	if hasBullets {
		score += 0.2
	}

	return Report{
		QuestionMarksFound: questionMarks,
		LinesCount:         len(lines),
		AverageLineLength:  int(math.Round(average)),
		HasBulletPoints:    hasBullets,
		CanProceed:         canProceed,
		ConfidenceScore:    math.Min(1, score),
	}
}
