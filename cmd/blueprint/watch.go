package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/reoring/blueprint"
	"github.com/reoring/blueprint/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Re-decode a blueprint whenever bp.sbc changes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		report := func(ctx context.Context) error {
			bp, s, err := load(ctx, dir, nil)
			if err != nil {
				return err
			}
			summarize(cmd.OutOrStdout(), bp, s)
			return nil
		}
		if err := report(ctx); err != nil {
			return err
		}
		return watch.Run(ctx, dir, blueprint.DocumentFile, logger, report)
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
