package commands

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tinyshell/tinysh/core/sys"
)

// Env prints the environment, or with NAME=VALUE arguments mutates it.
// The latter is why it runs non-isolated: a child's environment dies with
// the child.
func Env(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "env [NAME=VALUE]...",
		Short: "Print or set environment variables.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()

		if len(args) == 0 {
			env := p.Sys.Environ()
			sort.Strings(env)
			for _, envDef := range env {
				fmt.Fprintln(p.Stdout, envDef)
			}
			return 0
		}

		for _, arg := range args {
			name, value, ok := strings.Cut(arg, "=")
			if !ok || name == "" {
				fmt.Fprintf(p.Stderr, "env: %s: not a NAME=VALUE pair\n", arg)
				return 1
			}
			p.Sys.Setenv(name, value)
		}
		return 0
	})
}

func init() {
	mustRegister("env", Env, false)
}
