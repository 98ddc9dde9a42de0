package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/reoring/blueprint"
)

var roundtripOut string

var roundtripCmd = &cobra.Command{
	Use:   "roundtrip DIR",
	Short: "Decode a blueprint and encode it again",
	Long: `Decodes DIR and writes it back to --out (DIR itself when omitted).
Registry fields are rewritten in registry order; unmapped fields follow them
unless codec.unknown is "strip".`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		unmapped := 0
		bp, s, err := load(cmd.Context(), args[0], func(it blueprint.Issue) {
			if it.Code == blueprint.CodeUnknownKey {
				unmapped++
			}
		})
		if err != nil {
			return err
		}
		out := roundtripOut
		if out == "" {
			out = args[0]
		}
		err = blueprint.SaveDir(cmd.Context(), bp, out, blueprint.EncodeOpt{
			Schema:  s,
			Unknown: cfg.UnknownPolicy(),
			Indent:  cfg.Output.Indent,
		})
		if err != nil {
			return err
		}
		logger.Info().Str("out", out).Int("unmapped", unmapped).Msg("blueprint re-encoded")
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d unmapped fields)\n", filepath.Join(out, blueprint.DocumentFile), unmapped)
		return nil
	},
}

func init() {
	roundtripCmd.Flags().StringVarP(&roundtripOut, "out", "o", "", "output directory (default: DIR)")
	rootCmd.AddCommand(roundtripCmd)
}
