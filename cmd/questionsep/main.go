// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Yug063/questionsep/internal/config"
	"github.com/Yug063/questionsep/internal/logging"
	"github.com/Yug063/questionsep/internal/tool"
)

var (
	// Global flags
	configPath string
	logLevel   string

	version = "dev"

	cfg    config.Config
	logger *zap.Logger
	tools  *tool.Toolset
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "questionsep",
	Short: "Split pasted text into individual, confidence-scored questions",
	Long: `questionsep turns a block of pasted text into a list of questions.

Lines that already read as questions are kept, bullets, list numbers and
"Q:" prefixes are stripped, lines packing several sentences are split, and
plain statements are rewritten as questions. Every question carries a source
tag and a confidence score.

Use "questionsep serve" to expose the same engine as MCP tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if logLevel != "" {
			cfg.Log.Level = logLevel
		}

		logger, err = logging.New(cfg.Log.Level, cfg.Log.Encoding)
		if err != nil {
			return err
		}
		tools = tool.New(cfg.Limits, logger)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("questionsep version %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a .yaml or .toml config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
