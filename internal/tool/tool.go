// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/Yug063/questionsep/internal/config"
	"github.com/Yug063/questionsep/internal/separator"
	"github.com/Yug063/questionsep/internal/separator/strategies"
)

var (
	// ErrTextRequired is returned when a call carries no text.
	ErrTextRequired = errors.New("text is required")
	// ErrInputTooLong is returned when text exceeds the configured ceiling.
	ErrInputTooLong = errors.New("your input is too long")
)

// Toolset holds the engine and the input policy shared by every tool handler.
type Toolset struct {
	engine *separator.Engine
	limits config.LimitsConfig
	logger *zap.Logger
}

// New creates a Toolset around the default segmentation engine.
func New(limits config.LimitsConfig, logger *zap.Logger) *Toolset {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Toolset{
		engine: strategies.NewDefaultEngine(),
		limits: limits,
		logger: logger,
	}
}

// Register adds every tool to server.
func (t *Toolset) Register(server *mcp.Server) {
	mcp.AddTool(server, MetadataSeparateQuestions, t.SeparateQuestions)
	mcp.AddTool(server, MetadataSeparateBatch, t.SeparateBatch)
	mcp.AddTool(server, MetadataCheckInput, t.CheckInput)
	mcp.AddTool(server, MetadataDebugSeparation, t.DebugSeparation)
	mcp.AddTool(server, MetadataRunSelfTest, t.RunSelfTest)
}

// Engine exposes the engine for callers that bypass MCP, such as the CLI.
func (t *Toolset) Engine() *separator.Engine {
	return t.engine
}

// ValidateText applies the boundary input policy. The engine itself accepts
// any string.
func (t *Toolset) ValidateText(text string) error {
	if text == "" {
		return ErrTextRequired
	}
	if n := utf8.RuneCountInString(text); n > t.limits.MaxInputChars {
		return fmt.Errorf("%w: please split it into smaller chunks under %d characters (got %d)",
			ErrInputTooLong, t.limits.MaxInputChars, n)
	}
	return nil
}

// maxQuestions resolves a caller-supplied limit. Only an absent limit takes
// the configured default; zero or less reaches the engine as is.
func (t *Toolset) maxQuestions(limit *int) int {
	if limit == nil {
		return t.limits.DefaultMaxQuestions
	}
	return *limit
}
