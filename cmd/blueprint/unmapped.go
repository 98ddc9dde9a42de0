package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/reoring/blueprint"
)

var unmappedCmd = &cobra.Command{
	Use:   "unmapped DIR",
	Short: "List fields that are kept outside the registries",
	Long: `Lists every element the registries do not know, by record path. These
fields are preserved on encode; adding them to a registry (codec.extensions
in the config file) decodes them into typed values instead.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var found []blueprint.Issue
		sink := func(it blueprint.Issue) {
			if it.Code == blueprint.CodeUnknownKey {
				found = append(found, it)
			}
		}
		if _, _, err := load(cmd.Context(), args[0], sink); err != nil {
			return err
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "PATH\tVALUE")
		for _, it := range found {
			fmt.Fprintf(tw, "%s\t%s\n", it.Path, preview(fmt.Sprint(it.Params["value"])))
		}
		return tw.Flush()
	},
}

func init() {
	rootCmd.AddCommand(unmappedCmd)
}

// preview shortens long markup to one readable cell.
func preview(s string) string {
	const limit = 60
	r := []rune(s)
	if len(r) <= limit {
		return s
	}
	return string(r[:limit-3]) + "..."
}
