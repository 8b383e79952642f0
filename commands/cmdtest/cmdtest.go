// Package cmdtest runs builtin commands against a deterministic in-memory
// environment and filesystem for testing.
package cmdtest

import (
	"bytes"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/sys"
)

// Uname is the fixed system identity commands see under test.
var Uname = config.Uname{
	KernelName:       "Linux",
	Nodename:         "testhost",
	KernelRelease:    "5.15.0-56-generic",
	KernelVersion:    "#62-Ubuntu SMP Tue Nov 22 19:54:14 UTC 2022",
	HardwarePlatform: "x86_64",
}

// Cmd runs a single builtin the way the shell's supervisor would, but
// in-process and against an afero MemMapFs.
type Cmd struct {
	// Main is the builtin under test.
	Main sys.ProcessFunc
	// Argv is the full argument vector; Argv[0] is the command name.
	Argv []string

	Stdin io.Reader

	Sys *sys.SessionSystem
	FS  afero.Fs

	// Shell receives exit requests from non-isolated commands.
	Shell sys.ShellControl

	ExitStatus int
}

func Command(main sys.ProcessFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Main: main,
		Argv: append([]string{name}, arg...),
		Sys:  sys.NewSessionSystem("/"),
		FS:   afero.NewMemMapFs(),
	}
}

// CombinedOutput runs the command and returns everything it wrote to
// stdout and stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.run(buf, buf)
	return buf.Bytes(), nil
}

// Run executes the command, discarding output.
func (c *Cmd) Run() error {
	c.run(io.Discard, io.Discard)
	return nil
}

func (c *Cmd) run(stdout, stderr io.Writer) {
	stdin := c.Stdin
	if stdin == nil {
		stdin = strings.NewReader("")
	}

	c.ExitStatus = c.Main(&sys.Proc{
		Argv:   c.Argv,
		Sys:    c.Sys,
		FS:     c.FS,
		Uname:  Uname,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Shell:  c.Shell,
	})
}
