package commands

import (
	"fmt"
	"strconv"
	"strings"
	"syscall"

	"github.com/tinyshell/tinysh/core/sys"
)

var signalsByName = map[string]syscall.Signal{
	"HUP":  syscall.SIGHUP,
	"INT":  syscall.SIGINT,
	"QUIT": syscall.SIGQUIT,
	"KILL": syscall.SIGKILL,
	"USR1": syscall.SIGUSR1,
	"USR2": syscall.SIGUSR2,
	"TERM": syscall.SIGTERM,
}

func parseSignal(spec string) (syscall.Signal, error) {
	if n, err := strconv.Atoi(spec); err == nil {
		return syscall.Signal(n), nil
	}
	name := strings.TrimPrefix(strings.ToUpper(spec), "SIG")
	if sig, ok := signalsByName[name]; ok {
		return sig, nil
	}
	return 0, fmt.Errorf("invalid signal specification '%s'", spec)
}

// Kill sends a signal to processes by pid.
func Kill(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "kill [-s SIGNAL] PID...",
		Short: "Send a signal to a process.",
	}

	opts := cmd.Flags()
	sigSpec := opts.String('s', "TERM", "signal name or number to send")

	return cmd.Run(p, func() int {
		args := opts.Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "kill: missing operand")
			return 1
		}

		sig, err := parseSignal(*sigSpec)
		if err != nil {
			fmt.Fprintf(p.Stderr, "kill: %v\n", err)
			return 1
		}

		status := 0
		for _, arg := range args {
			pid, err := strconv.Atoi(arg)
			if err != nil {
				fmt.Fprintf(p.Stderr, "kill: %s: arguments must be process ids\n", arg)
				status = 1
				continue
			}
			if err := syscall.Kill(pid, sig); err != nil {
				fmt.Fprintf(p.Stderr, "kill: (%d): %v\n", pid, err)
				status = 1
			}
		}
		return status
	})
}

func init() {
	mustRegister("kill", Kill, true)
}
