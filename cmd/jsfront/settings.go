package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"jsfront/internal/diagfmt"
	"jsfront/internal/project"
)

// settings - итоговая конфигурация команды: флаги поверх jsfront.toml поверх умолчаний.
type settings struct {
	cfg            project.Config
	colorOut       bool
	colorErr       bool
	quiet          bool
	maxDiagnostics int
	context        int
}

var current settings

func loadSettings(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	cfg, err := project.Load(wd)
	if err != nil {
		return err
	}

	s := settings{
		cfg:            cfg,
		maxDiagnostics: cfg.Check.MaxDiagnostics,
		context:        cfg.Check.Context,
	}

	if s.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if flags.Changed("max-diagnostics") {
		if s.maxDiagnostics, err = flags.GetInt("max-diagnostics"); err != nil {
			return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
		}
		if s.maxDiagnostics < 0 {
			return fmt.Errorf("--max-diagnostics must be >= 0, got %d", s.maxDiagnostics)
		}
	}
	if flags.Changed("context") {
		if s.context, err = flags.GetInt("context"); err != nil {
			return fmt.Errorf("failed to get context flag: %w", err)
		}
		if s.context < 0 || s.context > 10 {
			return fmt.Errorf("--context must be in [0, 10], got %d", s.context)
		}
	}

	colorMode := cfg.Output.Color
	if flags.Changed("color") {
		if colorMode, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if s.colorOut, err = diagfmt.DetectColor(colorMode, os.Stdout); err != nil {
		return err
	}
	if s.colorErr, err = diagfmt.DetectColor(colorMode, os.Stderr); err != nil {
		return err
	}

	current = s
	return nil
}

func (s settings) prettyOpts(toStderr bool) diagfmt.PrettyOpts {
	c := s.colorOut
	if toStderr {
		c = s.colorErr
	}
	return diagfmt.PrettyOpts{
		Color:    c,
		Context:  int8(s.context),
		PathMode: diagfmt.PathModeAuto,
	}
}
