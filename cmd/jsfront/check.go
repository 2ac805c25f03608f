package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"jsfront/internal/diag"
	"jsfront/internal/diagfmt"
	"jsfront/internal/driver"
	"jsfront/internal/trace"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.js|directory>",
	Short: "Check JavaScript sources for lexical and syntax errors",
	Long:  `Check parses a file or every matching file in a directory in parallel and reports diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	checkCmd.Flags().Bool("no-cache", false, "do not read or write the diagnostics cache")
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	view := newCheckView(format, uiFlag, 0)
	if err := view.validate(); err != nil {
		return err
	}
	format = view.format
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}

	opts := driver.CheckOptions{
		Extensions:     current.cfg.Check.Extensions,
		MaxDiagnostics: current.maxDiagnostics,
		Jobs:           current.cfg.Check.Jobs,
	}
	if cmd.Flags().Changed("jobs") {
		if opts.Jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
	}
	if current.cfg.Check.Cache && !noCache {
		cache, cacheErr := driver.OpenDiskCache("jsfront")
		if cacheErr != nil {
			// без кэша всё равно можно работать
			trace.Point(cmd.Context(), trace.ScopeDriver, "cache_unavailable", cacheErr.Error())
		} else {
			opts.Cache = cache
		}
	}

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}
	baseDir, files := target, []string{target}
	if st.IsDir() {
		if files, err = driver.ListFiles(target, opts.Extensions); err != nil {
			return err
		}
	} else {
		baseDir = filepath.Dir(target)
	}

	view.files = len(files)

	var result *driver.CheckResult
	if view.progress(os.Stdout) {
		result, err = runCheckWithUI(cmd.Context(), "checking "+target, baseDir, files, opts)
	} else {
		result, err = driver.CheckFiles(cmd.Context(), baseDir, files, opts)
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	merged := result.Merged()
	out := cmd.OutOrStdout()
	switch format {
	case "json":
		if err := diagfmt.JSON(out, merged, result.FileSet, diagfmt.JSONOpts{
			IncludePositions: true,
			IncludeNotes:     true,
			PathMode:         diagfmt.PathModeRelative,
		}); err != nil {
			return err
		}
	case "short":
		diagfmt.Short(out, merged, result.FileSet)
	default:
		renderPrettyCheck(out, result, merged)
	}

	if merged.HasErrors() {
		return errReported
	}
	return nil
}

func renderPrettyCheck(w io.Writer, result *driver.CheckResult, merged *diag.Bag) {
	opts := current.prettyOpts(false)
	diagfmt.Pretty(w, merged, result.FileSet, opts)
	if current.quiet {
		return
	}
	if merged.Len() > 0 {
		fmt.Fprintln(w)
	}
	diagfmt.RenderSummary(w, merged, opts)

	cached, statements := 0, 0
	for _, f := range result.Files {
		statements += f.Statements
		if f.Cached {
			cached++
		}
	}
	fmt.Fprintf(w, "checked %d file(s), %d statement(s)", len(result.Files), statements)
	if cached > 0 {
		fmt.Fprintf(w, ", %d from cache", cached)
	}
	fmt.Fprintln(w)
}
