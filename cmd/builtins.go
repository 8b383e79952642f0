package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tinyshell/tinysh/commands"
)

// builtinsCmd lists every registered command and how it executes.
var builtinsCmd = &cobra.Command{
	Use:   "builtins",
	Short: "List the shell's built-in commands",
	Run: func(cmd *cobra.Command, args []string) {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 8, 8, 4, ' ', 0)
		defer tw.Flush()

		fmt.Fprintln(tw, "NAME\tEXECUTION")
		for _, entry := range commands.All() {
			mode := "isolated"
			if !entry.Isolated {
				mode = "in-shell"
			}
			fmt.Fprintf(tw, "%s\t%s\n", entry.Name, mode)
		}
	},
}

func init() {
	rootCmd.AddCommand(builtinsCmd)
}
