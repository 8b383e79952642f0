package commands

import (
	"fmt"

	"github.com/tinyshell/tinysh/core/sys"
)

// Uname prints the configured system identity.
func Uname(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "uname [OPTIONS...]",
		Short: "Display system information.",
	}

	opts := cmd.Flags()
	showAll := opts.BoolLong("all", 'a', "print all information")
	showKernelName := opts.BoolLong("kernel-name", 's', "print the kernel name")
	showNodename := opts.BoolLong("nodename", 'n', "print the network node name")
	showRelease := opts.BoolLong("kernel-release", 'r', "print the kernel release")
	showVersion := opts.BoolLong("kernel-version", 'v', "print the kernel version")
	showMachine := opts.BoolLong("machine", 'm', "print the machine name")

	return cmd.Run(p, func() int {
		w := p.Stdout

		anyPrinted := false
		for _, entry := range []struct {
			flag     *bool
			property string
		}{
			{showKernelName, p.Uname.KernelName},
			{showNodename, p.Uname.Nodename},
			{showRelease, p.Uname.KernelRelease},
			{showVersion, p.Uname.KernelVersion},
			{showMachine, p.Uname.HardwarePlatform},
		} {
			if *entry.flag || *showAll {
				if anyPrinted {
					fmt.Fprint(w, " ")
				}
				fmt.Fprint(w, entry.property)
				anyPrinted = true
			}
		}

		if !anyPrinted {
			fmt.Fprint(w, p.Uname.KernelName)
		}

		fmt.Fprintln(w)

		return 0
	})
}

func init() {
	mustRegister("uname", Uname, true)
}
