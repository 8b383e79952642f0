package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Stat prints file metadata.
func Stat(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "stat FILE...",
		Short: "Display file status.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "stat: missing operand")
			return 1
		}

		status := 0
		for _, name := range args {
			info, err := p.FS.Stat(name)
			if err != nil {
				fmt.Fprintf(p.Stderr, "stat: %v\n", err)
				status = 1
				continue
			}

			kind := "regular file"
			if info.IsDir() {
				kind = "directory"
			}
			fmt.Fprintf(p.Stdout, "  File: %s\n", info.Name())
			fmt.Fprintf(p.Stdout, "  Size: %d\t%s\n", info.Size(), kind)
			fmt.Fprintf(p.Stdout, "  Mode: %s\n", info.Mode())
			fmt.Fprintf(p.Stdout, "Modify: %s\n", info.ModTime().Format("2006-01-02 15:04:05"))
		}
		return status
	})
}

func init() {
	mustRegister("stat", Stat, true)
}
