package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

// Mount lists mounted filesystems. Actually mounting needs privileges this
// shell does not escalate to, so that path reports an error.
func Mount(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "mount [DEVICE DIR]",
		Short: "List mounted filesystems.",
	}

	return cmd.Run(p, func() int {
		if len(cmd.Flags().Args()) > 0 {
			fmt.Fprintln(p.Stderr, "mount: permission denied")
			return 1
		}

		mounts, err := afero.ReadFile(p.FS, "/proc/mounts")
		if err != nil {
			fmt.Fprintf(p.Stderr, "mount: %v\n", err)
			return 1
		}

		for _, line := range strings.Split(strings.TrimRight(string(mounts), "\n"), "\n") {
			// device mountpoint type options dump pass
			fields := strings.Fields(line)
			if len(fields) < 4 {
				continue
			}
			fmt.Fprintf(p.Stdout, "%s on %s type %s (%s)\n", fields[0], fields[1], fields[2], fields[3])
		}
		return 0
	})
}

func init() {
	mustRegister("mount", Mount, true)
}
