package commands

import (
	"fmt"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

// Dmesg prints the kernel log when it is readable.
func Dmesg(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "dmesg",
		Short: "Print the kernel ring buffer.",
	}

	return cmd.Run(p, func() int {
		data, err := afero.ReadFile(p.FS, "/var/log/dmesg")
		if err != nil {
			fmt.Fprintln(p.Stderr, "dmesg: read kernel buffer failed: Operation not permitted")
			return 1
		}

		p.Stdout.Write(data)
		return 0
	})
}

func init() {
	mustRegister("dmesg", Dmesg, true)
}
