package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Help lists the registered commands.
func Help(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "help",
		Short: "List available commands.",
	}

	return cmd.Run(p, func() int {
		fmt.Fprintln(p.Stdout, "Available commands are:")
		for _, entry := range All() {
			fmt.Fprintf(p.Stdout, "  %s\n", entry.Name)
		}
		return 0
	})
}

func init() {
	mustRegister("help", Help, true)
}
