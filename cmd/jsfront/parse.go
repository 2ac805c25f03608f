package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js|->",
	Short: "Parse a JavaScript source file and print its AST",
	Long:  `Parse builds the syntax tree of a JavaScript source file. Any lexical or syntax error fails the command.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().String("format", "tree", "output format (tree|json)")
}

func runParse(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var result *driver.ParseResult
	if args[0] == "-" {
		text, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result, err = driver.ParseSource(cmd.Context(), "<stdin>", string(text), current.maxDiagnostics)
	} else {
		result, err = driver.Parse(cmd.Context(), args[0], current.maxDiagnostics)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if result.Bag.Len() > 0 {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, current.prettyOpts(true))
		if !current.quiet {
			diagfmt.RenderSummary(os.Stderr, result.Bag, current.prettyOpts(true))
		}
	}
	if result.Bag.HasErrors() {
		return errReported
	}

	switch format {
	case "json":
		return diagfmt.FormatASTJSON(cmd.OutOrStdout(), result.Program)
	default:
		return diagfmt.FormatASTTree(cmd.OutOrStdout(), result.Program, result.FileSet)
	}
}
