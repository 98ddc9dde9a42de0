package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/reoring/blueprint"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect DIR",
	Short: "Print a summary of a blueprint directory",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bp, s, err := load(cmd.Context(), args[0], nil)
		if err != nil {
			return err
		}
		summarize(cmd.OutOrStdout(), bp, s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(inspectCmd)
}

func summarize(w io.Writer, bp *blueprint.Blueprint, s *blueprint.Schema) {
	fmt.Fprintf(w, "document:  %s\n", bp.DocumentPath)
	if bp.ThumbnailPath != "" {
		fmt.Fprintf(w, "thumbnail: %s\n", bp.ThumbnailPath)
	} else {
		fmt.Fprintln(w, "thumbnail: none")
	}
	for i, def := range bp.Document.ShipBlueprints {
		fmt.Fprintf(w, "definition %d: %s %q\n", i, def.Type, deref(def.DisplayName))
		for j, g := range def.CubeGrids {
			fmt.Fprintf(w, "  grid %d: %s, %d blocks\n", j, deref(g.GridSizeEnum), len(g.CubeBlocks))
		}
	}
	fields, records := 0, 0
	s.Walk(bp.Document, func(_ blueprint.PathRef, r blueprint.Record) {
		if n := blueprint.Unmapped(r).Len(); n > 0 {
			fields += n
			records++
		}
	})
	fmt.Fprintf(w, "unmapped:  %d fields in %d records\n", fields, records)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
