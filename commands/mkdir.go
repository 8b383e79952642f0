package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Mkdir creates directories.
func Mkdir(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] DIR...",
		Short: "Create directories.",
	}

	opts := cmd.Flags()
	parents := opts.Bool('p', "make parent directories as needed")

	return cmd.Run(p, func() int {
		args := opts.Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "mkdir: missing operand")
			return 1
		}

		status := 0
		for _, dir := range args {
			var err error
			if *parents {
				err = p.FS.MkdirAll(dir, 0755)
			} else {
				err = p.FS.Mkdir(dir, 0755)
			}
			if err != nil {
				fmt.Fprintf(p.Stderr, "mkdir: %v\n", err)
				status = 1
			}
		}
		return status
	})
}

func init() {
	mustRegister("mkdir", Mkdir, true)
}
