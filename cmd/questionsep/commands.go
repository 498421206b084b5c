// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/Yug063/questionsep/internal/precheck"
	"github.com/Yug063/questionsep/internal/separator"
	"github.com/Yug063/questionsep/internal/tool"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Split text from a file or stdin into questions",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExtract,
}

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Score text from a file or stdin before splitting it",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCheck,
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in separation test cases",
	RunE:  runSelftest,
}

func init() {
	extractCmd.Flags().IntP("limit", "n", 0, "maximum number of questions (unset = configured default, 0 or less = none)")
	extractCmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	checkCmd.Flags().Bool("force", false, "always report can_proceed")
	checkCmd.Flags().StringP("output", "o", "json", "output format: json or yaml")
	rootCmd.AddCommand(extractCmd, checkCmd, selftestCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	var limit *int
	if cmd.Flags().Changed("limit") {
		n, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		limit = &n
	}
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	_, out, err := tools.SeparateQuestions(cmdContext(cmd), nil, tool.InputSeparateQuestions{Text: text, Limit: limit})
	if err != nil {
		return err
	}
	return render(cmd.OutOrStdout(), format, out)
}

func runCheck(cmd *cobra.Command, args []string) error {
	force, err := cmd.Flags().GetBool("force")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	text, err := readInput(cmd, args)
	if err != nil {
		return err
	}
	if text == "" {
		return tool.ErrTextRequired
	}
	return render(cmd.OutOrStdout(), format, precheck.Analyze(text, force))
}

func runSelftest(cmd *cobra.Command, _ []string) error {
	report := separator.RunSelfTest(tools.Engine())
	for _, r := range report.Results {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		cmd.Printf("%s  %-30s %d/%d questions via %s\n", status, r.Name, r.Actual, r.Expected, r.Method)
	}
	cmd.Printf("%d/%d tests passed\n", report.Passed, report.Total)

	if report.Passed != report.Total {
		return fmt.Errorf("%d self-test case(s) failed", report.Total-report.Passed)
	}
	return nil
}

// readInput reads the file named by args[0], or stdin when no file or "-" is given.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", args[0], err)
	}
	return string(data), nil
}

// render writes v as indented JSON or as YAML with the same field names.
func render(w io.Writer, format string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}

	switch format {
	case "json":
	case "yaml", "yml":
		data, err = yaml.JSONToYAML(data)
		if err != nil {
			return fmt.Errorf("failed to encode output: %w", err)
		}
	default:
		return fmt.Errorf("unsupported output format %q: use json or yaml", format)
	}

	_, err = fmt.Fprintln(w, string(data))
	return err
}
