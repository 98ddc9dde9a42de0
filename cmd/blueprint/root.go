package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/reoring/blueprint"
	"github.com/reoring/blueprint/internal/config"
)

var (
	// Global flags
	cfgFile string

	cfg    *config.Config
	logger = zerolog.Nop()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "blueprint",
	Short: "Decode, inspect and re-encode blueprint directories",
	Long: `blueprint reads a blueprint directory (bp.sbc plus an optional thumb.png),
decodes it against the field registries and writes it back without losing
fields the registries do not know.

  blueprint inspect DIR           # summary of definitions, grids and blocks
  blueprint unmapped DIR          # fields kept outside the registries
  blueprint export DIR -f yaml    # flattened graph as json, yaml, cbor or spew
  blueprint roundtrip DIR -o OUT  # decode and encode again
  blueprint watch DIR             # re-decode whenever bp.sbc changes`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		cfg = c
		logger = newLogger(cmd.ErrOrStderr(), c.Logging)
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file path (defaults apply when empty)")
}

func newLogger(w io.Writer, c config.LoggingConfig) zerolog.Logger {
	level, err := zerolog.ParseLevel(strings.ToLower(c.Level))
	if err != nil {
		level = zerolog.WarnLevel
	}
	if c.Format == "console" {
		output := zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
		return zerolog.New(output).Level(level).With().Timestamp().Logger()
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger()
}

// load decodes dir with the configured schema and policy. sink may be nil.
func load(ctx context.Context, dir string, sink func(blueprint.Issue)) (*blueprint.Blueprint, *blueprint.Schema, error) {
	s, err := cfg.Schema()
	if err != nil {
		return nil, nil, err
	}
	bp, err := blueprint.LoadDir(ctx, dir, blueprint.DecodeOpt{
		Schema:    s,
		Unknown:   cfg.UnknownPolicy(),
		Logger:    &logger,
		IssueSink: sink,
	})
	if err != nil {
		return nil, nil, err
	}
	return bp, s, nil
}
