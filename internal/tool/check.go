// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/Yug063/questionsep/internal/precheck"
)

// MetadataCheckInput describes the check_input tool.
var MetadataCheckInput = &mcp.Tool{
	Name: "check_input",
	Description: "Score raw text before splitting it. Reports question marks, line count, " +
		"average line length and list markers, and whether the text is likely to yield " +
		"questions (can_proceed). Set force_mode to proceed regardless.",
}

// InputCheckInput is the input for the CheckInput tool.
type InputCheckInput struct {
	Text      string `json:"text" jsonschema:"raw text to score"`
	ForceMode bool   `json:"force_mode,omitempty" jsonschema:"always report can_proceed=true"`
}

// CheckInput scores text with the precheck heuristics. Only emptiness is
// rejected; oversized text is still scored so the client can show why it
// would be refused.
func (t *Toolset) CheckInput(_ context.Context, _ *mcp.CallToolRequest, input InputCheckInput) (*mcp.CallToolResult, precheck.Report, error) {
	if input.Text == "" {
		return nil, precheck.Report{}, ErrTextRequired
	}
	return nil, precheck.Analyze(input.Text, input.ForceMode), nil
}
