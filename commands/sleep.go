package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/tinyshell/tinysh/core/sys"
)

// Sleep pauses for a number of seconds. It is isolated, so the parent
// simply blocks on the child for the duration.
func Sleep(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "sleep SECONDS",
		Short: "Pause for a number of seconds.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) != 1 {
			fmt.Fprintln(p.Stderr, "sleep: missing operand")
			return 1
		}

		seconds, err := strconv.ParseFloat(args[0], 64)
		if err != nil || seconds < 0 {
			fmt.Fprintf(p.Stderr, "sleep: invalid time interval '%s'\n", args[0])
			return 1
		}

		time.Sleep(time.Duration(seconds * float64(time.Second)))
		return 0
	})
}

func init() {
	mustRegister("sleep", Sleep, true)
}
