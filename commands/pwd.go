package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Pwd prints the working directory.
func Pwd(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the current working directory.",
	}

	return cmd.Run(p, func() int {
		wd, err := p.Sys.Getwd()
		if err != nil {
			fmt.Fprintf(p.Stderr, "pwd: %v\n", err)
			return 1
		}
		fmt.Fprintln(p.Stdout, wd)
		return 0
	})
}

func init() {
	mustRegister("pwd", Pwd, true)
}
