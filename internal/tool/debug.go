// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Yug063/questionsep/internal/separator"
)

// MetadataDebugSeparation describes the debug_separation tool.
var MetadataDebugSeparation = &mcp.Tool{
	Name:        "debug_separation",
	Description: "Run the question separator and return its raw result together with input diagnostics.",
}

// InputDebugSeparation is the input for the DebugSeparation tool.
type InputDebugSeparation struct {
	Text         string `json:"text" jsonschema:"raw text to split"`
	MaxQuestions *int   `json:"max_questions,omitempty" jsonschema:"maximum number of questions (default 20)"`
}

type DebugInfo struct {
	InputLength      int    `json:"input_length"`
	LinesDetected    int    `json:"lines_detected"`
	ProcessingMethod string `json:"processing_method"`
}

// OutputDebugSeparation is the output for the DebugSeparation tool.
type OutputDebugSeparation struct {
	Success   bool                       `json:"success"`
	Result    separator.ProcessingResult `json:"result"`
	DebugInfo DebugInfo                  `json:"debug_info"`
}

func (t *Toolset) DebugSeparation(_ context.Context, _ *mcp.CallToolRequest, input InputDebugSeparation) (*mcp.CallToolResult, OutputDebugSeparation, error) {
	if err := t.ValidateText(input.Text); err != nil {
		return nil, OutputDebugSeparation{}, err
	}

	result := t.engine.Process(input.Text, t.maxQuestions(input.MaxQuestions))
	return nil, OutputDebugSeparation{
		Success: true,
		Result:  result,
		DebugInfo: DebugInfo{
			InputLength:      utf8.RuneCountInString(input.Text),
			LinesDetected:    len(separator.SplitLines(input.Text)),
			ProcessingMethod: result.ProcessingMethod,
		},
	}, nil
}

// MetadataRunSelfTest describes the run_self_test tool.
var MetadataRunSelfTest = &mcp.Tool{
	Name:        "run_self_test",
	Description: "Run the built-in separation test cases and report how many passed.",
}

type InputRunSelfTest struct{}

// OutputRunSelfTest is the output for the RunSelfTest tool.
type OutputRunSelfTest struct {
	Success     bool                     `json:"success"`
	TestResults separator.SelfTestReport `json:"test_results"`
	Message     string                   `json:"message"`
}

func (t *Toolset) RunSelfTest(_ context.Context, _ *mcp.CallToolRequest, _ InputRunSelfTest) (*mcp.CallToolResult, OutputRunSelfTest, error) {
	report := separator.RunSelfTest(t.engine)
	return nil, OutputRunSelfTest{
		Success:     true,
		TestResults: report,
		Message:     fmt.Sprintf("%d/%d tests passed", report.Passed, report.Total),
	}, nil
}
