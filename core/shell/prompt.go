package shell

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/tinyshell/tinysh/core/sys"
)

var promptColor = color.New(color.FgCyan, color.Bold)

// writePrompt renders "<cwd>$ " with no trailing newline. The working
// directory comes from $PWD, then the OS-reported directory, then the
// literal "(null)". An empty $PWD is still a value and renders as-is.
// Rendering never fails.
func (s *Shell) writePrompt() {
	cwd, ok := s.Sys.LookupEnv(sys.EnvPWD)
	if !ok {
		var err error
		if cwd, err = s.Sys.Getwd(); err != nil {
			cwd = "(null)"
		}
	}

	if s.Config.ColorPrompt {
		cwd = promptColor.Sprint(cwd)
	}

	fmt.Fprintf(s.out, "%s$ ", cwd)
}
