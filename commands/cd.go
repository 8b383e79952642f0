package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/sys"
)

// Cd implements the cd builtin. It runs inside the shell process so the
// directory change survives the command.
func Cd(p *sys.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cd [DIR]",
		Short: "Change the working directory.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()

		var dir string
		switch len(args) {
		case 0:
			dir = p.Sys.Getenv(sys.EnvHome)
		case 1:
			dir = args[0]
		default:
			fmt.Fprintf(p.Stderr, "%s: too many arguments\n", p.Argv[0])
			return 1
		}

		if !filepath.IsAbs(dir) {
			if wd, err := p.Sys.Getwd(); err == nil {
				dir = filepath.Join(wd, dir)
			}
		}
		dir = filepath.Clean(dir)

		if ok, err := afero.DirExists(p.FS, dir); err != nil || !ok {
			fmt.Fprintf(p.Stderr, "%s: %s: no such directory\n", p.Argv[0], dir)
			return 1
		}
		if err := p.Sys.Chdir(dir); err != nil {
			fmt.Fprintf(p.Stderr, "%s: %v\n", p.Argv[0], err)
			return 1
		}
		p.Sys.Setenv(sys.EnvPWD, dir)

		return 0
	})
}

func init() {
	mustRegister("cd", Cd, false)
}
