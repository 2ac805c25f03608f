package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.js|->",
	Short: "Tokenize a JavaScript source file",
	Long:  `Tokenize breaks a JavaScript source file into tokens. Lexical errors are reported but do not fail the command.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().String("format", "pretty", "output format (pretty|json)")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "pretty" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	var result *driver.TokenizeResult
	if args[0] == "-" {
		text, readErr := io.ReadAll(cmd.InOrStdin())
		if readErr != nil {
			return fmt.Errorf("failed to read stdin: %w", readErr)
		}
		result = driver.TokenizeSource(cmd.Context(), "<stdin>", string(text), current.maxDiagnostics)
	} else {
		result, err = driver.Tokenize(cmd.Context(), args[0], current.maxDiagnostics)
		if err != nil {
			return fmt.Errorf("tokenization failed: %w", err)
		}
	}

	// Выводим диагностику в stderr, если есть
	if result.Bag.Len() > 0 && !current.quiet {
		diagfmt.Pretty(os.Stderr, result.Bag, result.FileSet, current.prettyOpts(true))
	}

	switch format {
	case "json":
		return diagfmt.FormatTokensJSON(cmd.OutOrStdout(), result.Tokens)
	default:
		return diagfmt.FormatTokensPretty(cmd.OutOrStdout(), result.Tokens, result.FileSet)
	}
}
