package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/jmgilman/go/errfactory"
	"github.com/jmgilman/go/errfactory/internal/definitions"
	"github.com/jmgilman/go/errfactory/internal/generate"
	"github.com/jmgilman/go/fs/billy"
	"github.com/jmgilman/go/fs/core"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "dev"

type options struct {
	input   string
	output  string
	pkg     string
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "errgen",
		Short: "Generate typed error constructors from definitions",
		Long: `Errgen reads error definitions (code, message template, status) and
generates a Go file with one errfactory family per definition.

Every placeholder of a message template becomes a field of a generated params
struct, so missing or misspelled parameters fail to compile.

Examples:
  # Generate from YAML
  errgen --input errors.yaml --output errors_gen.go --package api

  # Print CUE-defined errors to stdout
  errgen -i errors.cue -p api`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
			return run(cmd.Context(), billy.NewLocal(), cmd.OutOrStdout(), opts, logger)
		},
	}

	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "definitions file (.yaml, .yml, .json, .cue)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVarP(&opts.pkg, "package", "p", os.Getenv("GOPACKAGE"), "package name of the generated file")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	_ = cmd.MarkFlagRequired("input")

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// run generates from opts.input. Paths are resolved against the working
// directory since fsys is rooted at "/".
func run(ctx context.Context, fsys core.FS, stdout io.Writer, opts *options, logger *slog.Logger) error {
	if opts.pkg == "" {
		return fmt.Errorf("--package is required outside go generate")
	}

	input, err := filepath.Abs(opts.input)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", opts.input, err)
	}

	defs, err := definitions.NewLoader(fsys).Load(ctx, input)
	if err != nil {
		return err
	}
	logger.Debug("loaded definitions", "input", opts.input, "count", len(defs))

	families := warnDuplicates(logger, defs)

	src, err := generate.File(opts.pkg, defs)
	if err != nil {
		return fmt.Errorf("failed to generate %s: %w", opts.input, err)
	}

	if opts.output == "" {
		if _, err := stdout.Write(src); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	output, err := filepath.Abs(opts.output)
	if err != nil {
		return fmt.Errorf("failed to resolve %s: %w", opts.output, err)
	}
	if err := fsys.WriteFile(output, src, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", opts.output, err)
	}
	logger.Info("generated error families",
		"output", opts.output,
		"package", opts.pkg,
		"families", families,
	)
	return nil
}

// warnDuplicates logs every code defined more than once and returns the
// number of distinct codes.
func warnDuplicates(logger *slog.Logger, defs []errfactory.Definition) int {
	seen := make(map[string]int, len(defs))
	for i, def := range defs {
		if first, ok := seen[def.Code]; ok {
			logger.Warn("duplicate error code, later definition wins",
				"code", def.Code,
				"first", first,
				"duplicate", i,
			)
			continue
		}
		seen[def.Code] = i
	}
	return len(seen)
}
