// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Yug063/questionsep/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server exposing the question separation tools:
separate_questions, separate_batch, check_input, debug_separation and run_self_test.

By default the server speaks JSON-RPC over stdio. Use --http to serve the
streamable HTTP transport instead.

Examples:
  # Stdio mode
  questionsep serve

  # HTTP mode
  questionsep serve --http :8080`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().String("http", "", "HTTP listen address (empty = use stdio)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	addr, err := cmd.Flags().GetString("http")
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.HTTPAddr
	}

	ctx, stop := signal.NotifyContext(cmdContext(cmd), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := server.New(cfg.Server.Name, version, tools, logger)
	if addr != "" {
		cmd.PrintErrf("MCP server listening on %s\n", addr)
		return srv.RunHTTP(ctx, addr)
	}
	return srv.Run(ctx)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
