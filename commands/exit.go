package commands

import (
	"fmt"
	"strconv"

	"github.com/tinyshell/tinysh/core/sys"
)

// Exit requests shell termination through the control handle rather than
// killing the process, since it executes inside the shell itself.
func Exit(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "exit [STATUS]",
		Short: "Exit the shell.",
	}

	return cmd.Run(p, func() int {
		code := 0
		if args := cmd.Flags().Args(); len(args) > 0 {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				fmt.Fprintf(p.Stderr, "exit: %s: numeric argument required\n", args[0])
				n = 2
			}
			code = n & 0xff
		}

		if p.Shell != nil {
			p.Shell.RequestExit(code)
		}
		return code
	})
}

func init() {
	mustRegister("exit", Exit, false)
}
