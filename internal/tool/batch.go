// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Yug063/questionsep/internal/separator"
)

// MetadataSeparateBatch describes the separate_batch tool.
var MetadataSeparateBatch = &mcp.Tool{
	Name: "separate_batch",
	Description: "Split several independent texts into questions in one call. " +
		"Questions from all texts are merged in input order and renumbered; every question " +
		"gets a globally unique id.",
}

// InputSeparateBatch is the input for the SeparateBatch tool.
type InputSeparateBatch struct {
	Texts []string `json:"texts" jsonschema:"texts to split, each processed independently"`
	Limit *int     `json:"limit,omitempty" jsonschema:"maximum number of questions per text (default 20); 0 or less returns none"`
}

// BatchQuestion is a merged question annotated with the text it came from.
type BatchQuestion struct {
	Question  QuestionCard `json:"question"`
	TextIndex int          `json:"text_index"`
}

// BatchItem summarizes the result for one input text.
type BatchItem struct {
	TextIndex         int               `json:"text_index"`
	QuestionsFound    int               `json:"questions_found"`
	ProcessingSummary ProcessingSummary `json:"processing_summary"`
}

// OutputSeparateBatch is the output for the SeparateBatch tool.
type OutputSeparateBatch struct {
	RequestID  string          `json:"request_id"`
	Questions  []BatchQuestion `json:"questions"`
	Items      []BatchItem     `json:"items"`
	TotalFound int             `json:"total_found"`
}

// SeparateBatch validates every text up front, runs the engine over them with
// bounded concurrency and merges the results in input order.
func (t *Toolset) SeparateBatch(ctx context.Context, _ *mcp.CallToolRequest, input InputSeparateBatch) (*mcp.CallToolResult, OutputSeparateBatch, error) {
	if len(input.Texts) == 0 {
		return nil, OutputSeparateBatch{}, fmt.Errorf("texts: %w", ErrTextRequired)
	}
	for i, text := range input.Texts {
		if err := t.ValidateText(text); err != nil {
			return nil, OutputSeparateBatch{}, fmt.Errorf("texts[%d]: %w", i, err)
		}
	}

	maxQuestions := t.maxQuestions(input.Limit)
	results := make([]separator.ProcessingResult, len(input.Texts))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(max(t.limits.BatchConcurrency, 1))
	for i, text := range input.Texts {
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = t.engine.Process(text, maxQuestions)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, OutputSeparateBatch{}, fmt.Errorf("batch cancelled: %w", err)
	}

	out := OutputSeparateBatch{
		RequestID: uuid.NewString(),
		Questions: []BatchQuestion{},
		Items:     make([]BatchItem, len(results)),
	}
	for i, result := range results {
		for _, card := range ToCards(result) {
			// Per-call ids collide across texts once merged.
			card.ID = uuid.NewString()
			card.CardNumber = len(out.Questions) + 1
			out.Questions = append(out.Questions, BatchQuestion{Question: card, TextIndex: i})
		}
		out.Items[i] = BatchItem{
			TextIndex:         i,
			QuestionsFound:    result.Statistics.QuestionsFound,
			ProcessingSummary: Summarize(result),
		}
		out.TotalFound += result.Statistics.QuestionsFound
	}

	t.logger.Debug("separated batch",
		zap.String("request_id", out.RequestID),
		zap.Int("texts", len(input.Texts)),
		zap.Int("questions", len(out.Questions)))

	return nil, out, nil
}
