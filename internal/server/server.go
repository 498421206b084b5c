// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/Yug063/questionsep/internal/tool"
)

// Server exposes the question separation tools over MCP.
type Server struct {
	server *mcp.Server
	logger *zap.Logger
}

// New creates a server named name with every tool of tools registered.
func New(name, version string, tools *tool.Toolset, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	impl := &mcp.Implementation{
		Name:    name,
		Version: version,
	}

	s := &Server{
		server: mcp.NewServer(impl, nil),
		logger: logger,
	}
	tools.Register(s.server)
	return s
}

// MCP returns the underlying SDK server.
func (s *Server) MCP() *mcp.Server {
	return s.server
}

// Run serves over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	s.logger.Info("serving MCP over stdio")
	return s.server.Run(ctx, &mcp.StdioTransport{})
}

// RunHTTP serves the streamable HTTP transport on addr until ctx is cancelled.
func (s *Server) RunHTTP(ctx context.Context, addr string) error {
	handler := mcp.NewStreamableHTTPHandler(func(_ *http.Request) *mcp.Server {
		return s.server
	}, nil)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("http shutdown", zap.Error(err))
		}
	}()

	s.logger.Info("serving MCP over HTTP", zap.String("addr", addr))
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
