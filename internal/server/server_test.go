// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Yug063/questionsep/internal/config"
	"github.com/Yug063/questionsep/internal/tool"
)

func connect(t *testing.T) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()

	s := New("questionsep-test", "test", tool.New(config.Default().Limits, zap.NewNop()), zap.NewNop())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serverSession, err := s.MCP().Connect(ctx, serverTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "test"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = session.Close() })

	return session
}

func TestServer_ListTools(t *testing.T) {
	session := connect(t)

	res, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)

	var names []string
	for _, tl := range res.Tools {
		names = append(names, tl.Name)
	}
	sort.Strings(names)
	assert.Equal(t, []string{
		"check_input",
		"debug_separation",
		"run_self_test",
		"separate_batch",
		"separate_questions",
	}, names)
}

func TestServer_CallSeparateQuestions(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "separate_questions",
		Arguments: map[string]any{"text": "• What is AI?\n• How does ML work?"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	raw, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)

	var out tool.OutputSeparateQuestions
	require.NoError(t, json.Unmarshal(raw, &out))
	require.Len(t, out.Questions, 2)
	assert.Equal(t, "bullet_cleaned", out.Questions[0].Source)
	assert.Equal(t, "prefix_cleaning", out.ProcessingSummary.Method)
}

func TestServer_CallSeparateQuestions_RejectsEmptyText(t *testing.T) {
	session := connect(t)

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "separate_questions",
		Arguments: map[string]any{"text": ""},
	})
	require.NoError(t, err, "tool failures are reported in the result, not as protocol errors")
	assert.True(t, res.IsError)
}
