// SPDX-License-Identifier: Apache-2.0

package separator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yug063/questionsep/internal/separator"
	"github.com/Yug063/questionsep/internal/separator/strategies"
)

func TestRunSelfTest_AllCasesPass(t *testing.T) {
	report := separator.RunSelfTest(strategies.NewDefaultEngine())

	require.Equal(t, len(separator.SelfTestCases), report.Total)
	require.Len(t, report.Results, report.Total)
	for _, r := range report.Results {
		assert.True(t, r.Passed, "case %q: got %d questions via %s, want %d via %s",
			r.Name, r.Actual, r.Method, r.Expected, r.ExpectedMethod)
		assert.Len(t, r.Questions, r.Actual)
	}
	assert.Equal(t, report.Total, report.Passed)
}

func TestRunSelfTest_ReportsFailures(t *testing.T) {
	// An engine without strategies or fallback finds nothing.
	report := separator.RunSelfTest(separator.NewEngine(nil))

	assert.Equal(t, 0, report.Passed)
	for _, r := range report.Results {
		assert.False(t, r.Passed)
		assert.Equal(t, 0, r.Actual)
		assert.Equal(t, separator.MethodLineBreaks, r.Method)
	}
}

func TestSelfTestCases_Table(t *testing.T) {
	require.Len(t, separator.SelfTestCases, 5)

	methods := make(map[string]string, len(separator.SelfTestCases))
	for _, tc := range separator.SelfTestCases {
		methods[tc.Name] = tc.ExpectedMethod
	}
	assert.Equal(t, separator.MethodMixedPunctuation, methods["Sentence statements"],
		"two terminators on one line take the mixed punctuation path")
	assert.Equal(t, separator.MethodFallbackSentences, methods["Fallback sentence processing"])
}
