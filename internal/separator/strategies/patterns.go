// SPDX-License-Identifier: Apache-2.0

package strategies

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/Yug063/questionsep/internal/separator"
)

var (
	bulletPoint    = regexp.MustCompile(`^\s*[-•*]\s+`)
	numberedList   = regexp.MustCompile(`^\d+\.\s+`)
	questionPrefix = regexp.MustCompile(`(?i)^(Q|Question)\s*\d*[:.]?\s+`)
)

// minQuestionLength is the strict lower bound on question text length.
// Anything of this length or shorter is treated as noise.
const minQuestionLength = 5

// textLen counts characters, not bytes.
func textLen(s string) int {
	return utf8.RuneCountInString(s)
}

// DetectQuestionInLine reports whether a line already looks like a question:
// it carries '?' or '!', is a short sentence ending in '.', or starts with a
// bullet, a list number or a "Q:"-style prefix.
func DetectQuestionInLine(line string) bool {
	return strings.ContainsAny(line, "?!") ||
		(strings.HasSuffix(line, ".") && textLen(line) < 100) ||
		bulletPoint.MatchString(line) ||
		numberedList.MatchString(line) ||
		questionPrefix.MatchString(line)
}

// CleanLinePrefix strips a bullet, then a list number, then a question
// prefix, and trims the result. Callers compare the result with the input to
// learn whether anything was removed.
func CleanLinePrefix(line string) string {
	cleaned := bulletPoint.ReplaceAllString(line, "")
	cleaned = numberedList.ReplaceAllString(cleaned, "")
	cleaned = questionPrefix.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// PrefixSource names the structural markup found at the start of line.
// The first matching pattern wins.
func PrefixSource(line string) string {
	switch {
	case bulletPoint.MatchString(line):
		return separator.SourceBulletCleaned
	case numberedList.MatchString(line):
		return separator.SourceNumberedCleaned
	case questionPrefix.MatchString(line):
		return separator.SourcePrefixCleaned
	default:
		return separator.SourceLineCleaned
	}
}

// ensureQuestionMark appends '?' unless text already ends with one.
func ensureQuestionMark(text string) string {
	if strings.HasSuffix(text, "?") {
		return text
	}
	return text + "?"
}
