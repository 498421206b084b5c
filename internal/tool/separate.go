// SPDX-License-Identifier: Apache-2.0

package tool

import (
	"context"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/Yug063/questionsep/internal/separator"
)

// MetadataSeparateQuestions describes the separate_questions tool.
var MetadataSeparateQuestions = &mcp.Tool{
	Name: "separate_questions",
	Description: "Split pasted text into individual questions. " +
		"Each question carries a source tag naming the heuristic that produced it and a " +
		"confidence score. Questions with is_fallback=true were synthesized from statements " +
		"and should be reviewed before use.",
}

// InputSeparateQuestions is the input for the SeparateQuestions tool.
type InputSeparateQuestions struct {
	Text  string `json:"text" jsonschema:"raw text containing one or more questions"`
	Limit *int   `json:"limit,omitempty" jsonschema:"maximum number of questions to return (default 20); 0 or less returns none"`
}

// QuestionCard is a question as rendered for a client.
type QuestionCard struct {
	ID               string  `json:"id"`
	Text             string  `json:"text"`
	IsEdited         bool    `json:"is_edited"`
	Confidence       float64 `json:"confidence"`
	IsFallback       bool    `json:"is_fallback"`
	CardNumber       int     `json:"card_number"`
	OriginalText     string  `json:"original_text"`
	ProcessingMethod string  `json:"processing_method"`
	Source           string  `json:"source"`
}

// ProcessingSummary describes how a result was produced.
type ProcessingSummary struct {
	Method            string               `json:"method"`
	LinesProcessed    int                  `json:"lines_processed"`
	FallbackUsed      bool                 `json:"fallback_used"`
	ConfidenceAverage float64              `json:"confidence_average"`
	Statistics        separator.Statistics `json:"statistics"`
}

// OutputSeparateQuestions is the output for the SeparateQuestions tool.
type OutputSeparateQuestions struct {
	RequestID         string            `json:"request_id"`
	Questions         []QuestionCard    `json:"questions"`
	TotalFound        int               `json:"total_found"`
	LimitedTo         int               `json:"limited_to"`
	ProcessingSummary ProcessingSummary `json:"processing_summary"`
}

// SeparateQuestions validates the text, runs the engine and maps the result
// to question cards numbered by position.
func (t *Toolset) SeparateQuestions(_ context.Context, _ *mcp.CallToolRequest, input InputSeparateQuestions) (*mcp.CallToolResult, OutputSeparateQuestions, error) {
	requestID := uuid.NewString()

	if err := t.ValidateText(input.Text); err != nil {
		t.logger.Info("rejected input",
			zap.String("request_id", requestID),
			zap.Int("length", len(input.Text)),
			zap.Error(err))
		return nil, OutputSeparateQuestions{}, err
	}

	result := t.engine.Process(input.Text, t.maxQuestions(input.Limit))

	t.logger.Debug("separated questions",
		zap.String("request_id", requestID),
		zap.String("method", result.ProcessingMethod),
		zap.Int("lines", result.TotalProcessed),
		zap.Int("questions", len(result.Questions)),
		zap.Bool("fallback_used", result.Statistics.FallbackUsed))

	questions := ToCards(result)
	return nil, OutputSeparateQuestions{
		RequestID:         requestID,
		Questions:         questions,
		TotalFound:        result.Statistics.QuestionsFound,
		LimitedTo:         len(questions),
		ProcessingSummary: Summarize(result),
	}, nil
}

// ToCards renumbers the questions by position and tags each with the
// result's processing method.
func ToCards(result separator.ProcessingResult) []QuestionCard {
	cards := make([]QuestionCard, len(result.Questions))
	for i, q := range result.Questions {
		original := q.OriginalText
		if original == "" {
			original = q.Text
		}
		cards[i] = QuestionCard{
			ID:               q.ID,
			Text:             q.Text,
			IsEdited:         q.IsEdited,
			Confidence:       q.Confidence,
			IsFallback:       q.IsFallback,
			CardNumber:       i + 1,
			OriginalText:     original,
			ProcessingMethod: result.ProcessingMethod,
			Source:           q.Source,
		}
	}
	return cards
}

func Summarize(result separator.ProcessingResult) ProcessingSummary {
	return ProcessingSummary{
		Method:            result.ProcessingMethod,
		LinesProcessed:    result.Statistics.LinesProcessed,
		FallbackUsed:      result.Statistics.FallbackUsed,
		ConfidenceAverage: result.Statistics.ConfidenceAverage,
		Statistics:        result.Statistics,
	}
}
