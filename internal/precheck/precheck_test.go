// SPDX-License-Identifier: Apache-2.0

package precheck

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyze(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		force          bool
		wantMarks      int
		wantLines      int
		wantAverage    int
		wantBullets    bool
		wantCanProceed bool
	}{
		{
			name:           "two questions on two lines",
			text:           "What is AI?\nHow does ML work?",
			wantMarks:      2,
			wantLines:      2,
			wantAverage:    14,
			wantCanProceed: true,
		},
		{
			name:           "bulleted list",
			text:           "- first item\n- second item",
			wantLines:      2,
			wantAverage:    13,
			wantBullets:    true,
			wantCanProceed: true,
		},
		{
			name:           "numbered list on a later line",
			text:           "intro\n1. item",
			wantLines:      2,
			wantAverage:    6,
			wantBullets:    true,
			wantCanProceed: true,
		},
		{
			name:        "single short statement",
			text:        "just a note",
			wantLines:   1,
			wantAverage: 11,
		},
		{
			name:           "single short statement forced",
			text:           "just a note",
			force:          true,
			wantLines:      1,
			wantAverage:    11,
			wantCanProceed: true,
		},
		{
			name:           "long single line",
			text:           strings.Repeat("word ", 30),
			wantLines:      1,
			wantAverage:    150,
			wantCanProceed: true,
		},
		{
			name: "blank input",
			text: "\n  \n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Analyze(tt.text, tt.force)
			assert.Equal(t, tt.wantMarks, r.QuestionMarksFound)
			assert.Equal(t, tt.wantLines, r.LinesCount)
			assert.Equal(t, tt.wantAverage, r.AverageLineLength)
			assert.Equal(t, tt.wantBullets, r.HasBulletPoints)
			assert.Equal(t, tt.wantCanProceed, r.CanProceed)
			assert.GreaterOrEqual(t, r.ConfidenceScore, 0.0)
			assert.LessOrEqual(t, r.ConfidenceScore, 1.0)
		})
	}
}

func TestAnalyze_ConfidenceIsCapped(t *testing.T) {
	r := Analyze("a?\nb?\nc?\nd?\ne?", false)
	assert.Equal(t, 1.0, r.ConfidenceScore)
}

func TestAnalyze_ConfidenceScore(t *testing.T) {
	// 2 marks * 0.3 + (2/5) * 0.3 + (29/500) * 0.2
	r := Analyze("What is AI?\nHow does ML work?", false)
	assert.InDelta(t, 0.7316, r.ConfidenceScore, 1e-9)
}
