package sys

import (
	"io"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/core/config"
)

// System couples an environment with a working directory. The shell and all
// non-isolated builtins share a single System for the life of a session.
type System interface {
	Env

	Getwd() (string, error)
	Chdir(dir string) error
}

// OSSystem binds a session to the real process environment and working
// directory, so spawned children inherit both.
type OSSystem struct {
	OSEnv
}

var _ System = OSSystem{}

func (OSSystem) Getwd() (string, error) { return os.Getwd() }

func (OSSystem) Chdir(dir string) error { return os.Chdir(dir) }

// SessionSystem is a System detached from the process: a map-backed
// environment plus a virtual working directory. Each SSH session gets its
// own so sessions cannot see each other's state; tests use it for
// determinism.
type SessionSystem struct {
	MapEnv

	mu sync.Mutex
	wd string
}

var _ System = (*SessionSystem)(nil)

func NewSessionSystem(wd string) *SessionSystem {
	return &SessionSystem{wd: filepath.Clean(wd)}
}

func (s *SessionSystem) Getwd() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wd, nil
}

// Chdir updates the virtual working directory. Relative paths resolve
// against the current one; existence checks are the caller's concern.
func (s *SessionSystem) Chdir(dir string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !filepath.IsAbs(dir) {
		dir = filepath.Join(s.wd, dir)
	}
	s.wd = filepath.Clean(dir)
	return nil
}

// ShellControl lets non-isolated commands drive the shell that invoked
// them. Isolated commands never get one; a child cannot stop the parent.
type ShellControl interface {
	// RequestExit stops the shell loop after the current iteration with the
	// given status.
	RequestExit(code int)
}

// ProcessFunc is the uniform entrypoint of every builtin command. Argv[0]
// is the command name and the return value is an OS style exit status
// (0 = success).
type ProcessFunc func(p *Proc) int

// Proc is the execution context a builtin runs with. For isolated commands
// it is constructed inside the spawned child; for non-isolated commands it
// borrows the shell's own System and stdio.
type Proc struct {
	// Argv holds the full argument vector including the command name.
	Argv []string

	Sys System
	FS  afero.Fs

	// Uname is the configured system identity reported by commands like
	// uname.
	Uname config.Uname

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Shell is non-nil only for commands running inside the shell process.
	Shell ShellControl
}
