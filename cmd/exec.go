package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinyshell/tinysh/commands"
	"github.com/tinyshell/tinysh/core/shell"
	"github.com/tinyshell/tinysh/core/sys"
)

// execCmd is the re-entry point for isolated builtins. The shell's
// supervisor spawns `tinysh exec -- NAME [ARG...]`; the child runs the
// entrypoint against the real OS and exits with its status, which the
// parent translates back into a loop-visible exit code.
var execCmd = &cobra.Command{
	Use:    shell.ChildCommandName + " NAME [ARG...]",
	Short:  "Run a single builtin and exit with its status",
	Hidden: true,
	Args:   cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		configuration, err := loadConfig()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		entry, ok := commands.Lookup(args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "%s: command not found\n", args[0])
			os.Exit(127)
		}

		os.Exit(entry.Main(&sys.Proc{
			Argv:   args,
			Sys:    sys.OSSystem{},
			FS:     afero.NewOsFs(),
			Uname:  configuration.Uname,
			Stdin:  os.Stdin,
			Stdout: os.Stdout,
			Stderr: os.Stderr,
		}))
	},
}

func init() {
	rootCmd.AddCommand(execCmd)
}
