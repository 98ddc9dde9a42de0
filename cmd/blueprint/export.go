package main

import (
	"github.com/spf13/cobra"

	"github.com/reoring/blueprint/internal/config"
	"github.com/reoring/blueprint/internal/export"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export DIR",
	Short: "Write the decoded graph as json, yaml, cbor or spew",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		format := exportFormat
		if format == "" {
			format = cfg.Output.Format
		}
		if err := config.ValidateFormat(format); err != nil {
			return err
		}
		bp, s, err := load(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		return export.Render(cmd.OutOrStdout(), format, cfg.Output.Indent, export.Flatten(s, bp.Document))
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportFormat, "format", "f", "", "output format (json, yaml, cbor, spew); overrides output.format")
	rootCmd.AddCommand(exportCmd)
}
