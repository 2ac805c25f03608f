package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"jsfront/internal/diag"
	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
	"jsfront/internal/version"
)

const (
	promptMain  = "js> "
	promptCont  = "... "
	historyFile = ".jsfront_history"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Interactive parser: print the AST or diagnostics of each input",
	Args:  cobra.NoArgs,
	RunE:  runRepl,
}

func init() {
	replCmd.Flags().String("format", "tree", "AST output format (tree|json)")
}

func runRepl(cmd *cobra.Command, _ []string) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	if format != "tree" && format != "json" {
		return fmt.Errorf("unknown format: %s", format)
	}

	out := cmd.OutOrStdout()
	if !current.quiet {
		fmt.Fprintf(out, "%s repl. Type .help for commands, Ctrl-D to exit.\n", version.Banner(current.colorOut))
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	histPath := ""
	if home, homeErr := os.UserHomeDir(); homeErr == nil {
		histPath = filepath.Join(home, historyFile)
		if f, openErr := os.Open(histPath); openErr == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}
	defer func() {
		if histPath == "" {
			return
		}
		if f, createErr := os.Create(histPath); createErr == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	n := 0
	for {
		code, ok := readByParseProbe(cmd, ln)
		if !ok {
			fmt.Fprintln(out)
			return nil
		}
		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ".") {
			if exit := handleReplCommand(out, trimmed); exit {
				return nil
			}
			continue
		}

		n++
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
		if err := evalReplInput(cmd, out, fmt.Sprintf("<repl:%d>", n), code, format); err != nil {
			return err
		}
	}
}

func handleReplCommand(out io.Writer, line string) (exit bool) {
	switch strings.ToLower(line) {
	case ".exit", ".quit":
		return true
	case ".help":
		fmt.Fprintln(out, "  .help   show this message")
		fmt.Fprintln(out, "  .exit   leave the repl")
	default:
		fmt.Fprintf(out, "unknown command %s. Type .help for help.\n", line)
	}
	return false
}

// readByParseProbe читает строки, пока ввод выглядит незаконченным.
// ok=false означает конец ввода (Ctrl-D).
func readByParseProbe(cmd *cobra.Command, ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			if b.Len() > 0 {
				return b.String(), true
			}
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			// Ctrl-C сбрасывает текущий ввод
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ".") {
			return src, true
		}
		res, err := driver.ParseSource(cmd.Context(), "<repl>", src, 0)
		if err != nil || !needsMoreInput(res.Bag) {
			return src, true
		}
	}
}

// needsMoreInput is true when every error is an unexpected end of input,
// so another line may complete the program.
func needsMoreInput(bag *diag.Bag) bool {
	if bag == nil || !bag.HasErrors() {
		return false
	}
	for _, d := range bag.Items() {
		if d.Severity >= diag.SevError && d.Code != diag.SynUnexpectedEOF {
			return false
		}
	}
	return true
}

func evalReplInput(cmd *cobra.Command, out io.Writer, name, code, format string) error {
	res, err := driver.ParseSource(cmd.Context(), name, code, current.maxDiagnostics)
	if err != nil {
		return err
	}
	if res.Bag.Len() > 0 {
		diagfmt.Pretty(out, res.Bag, res.FileSet, current.prettyOpts(false))
		if res.Bag.HasErrors() {
			return nil
		}
	}
	if format == "json" {
		return diagfmt.FormatASTJSON(out, res.Program)
	}
	return diagfmt.FormatASTTree(out, res.Program, res.FileSet)
}
