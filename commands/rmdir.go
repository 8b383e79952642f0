package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Rmdir removes empty directories.
func Rmdir(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "rmdir DIR...",
		Short: "Remove empty directories.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "rmdir: missing operand")
			return 1
		}

		status := 0
		for _, dir := range args {
			info, err := p.FS.Stat(dir)
			switch {
			case err != nil:
				fmt.Fprintf(p.Stderr, "rmdir: %v\n", err)
				status = 1
			case !info.IsDir():
				fmt.Fprintf(p.Stderr, "rmdir: %s: not a directory\n", dir)
				status = 1
			default:
				if err := p.FS.Remove(dir); err != nil {
					fmt.Fprintf(p.Stderr, "rmdir: %v\n", err)
					status = 1
				}
			}
		}
		return status
	})
}

func init() {
	mustRegister("rmdir", Rmdir, true)
}
