package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/commands"
	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/sys"
)

// ChildCommandName is the hidden subcommand isolated children re-enter
// through: the supervisor spawns `tinysh exec -- NAME [ARG...]` and the
// child exits with the builtin's status.
const ChildCommandName = "exec"

// Outcome classifies how an isolated child terminated.
type Outcome struct {
	Code     int
	Signal   syscall.Signal
	Signaled bool
}

// ExitCode maps the outcome to the loop-visible status. A child killed by
// a signal reports 128+signal, the usual shell convention, since it has no
// meaningful exit code of its own.
func (o Outcome) ExitCode() int {
	if o.Signaled {
		return 128 + int(o.Signal)
	}
	return o.Code
}

// Supervisor executes registry entries: isolated commands in a spawned
// child process, non-isolated commands synchronously in the current one.
type Supervisor struct {
	Sys   sys.System
	FS    afero.Fs
	Uname config.Uname

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Shell is handed to non-isolated entrypoints so they can mutate the
	// owning loop.
	Shell sys.ShellControl
}

// Dispatch runs cmd with argv, where argv[0] is the command name, and
// returns its exit status. Spawn failures are diagnosed on stderr and
// reported as a failing status; they are never fatal to the caller.
func (sv *Supervisor) Dispatch(cmd commands.Entry, argv []string) int {
	if !cmd.Isolated {
		return cmd.Main(&sys.Proc{
			Argv:   argv,
			Sys:    sv.Sys,
			FS:     sv.FS,
			Uname:  sv.Uname,
			Stdin:  sv.Stdin,
			Stdout: sv.Stdout,
			Stderr: sv.Stderr,
			Shell:  sv.Shell,
		})
	}

	outcome, err := sv.spawn(argv)
	if err != nil {
		fmt.Fprintf(sv.Stderr, "%s: %v\n", argv[0], err)
		return 1
	}
	return outcome.ExitCode()
}

// newChildCommand builds the re-exec invocation for an isolated command.
// Tests swap it out to re-enter the test binary instead.
var newChildCommand = func(argv []string) (*exec.Cmd, error) {
	exe, err := os.Executable()
	if err != nil {
		return nil, err
	}
	return exec.Command(exe, append([]string{ChildCommandName, "--"}, argv...)...), nil
}

// spawn re-executes the current binary into the child subcommand and blocks
// until the child reaches a terminal state.
func (sv *Supervisor) spawn(argv []string) (Outcome, error) {
	child, err := newChildCommand(argv)
	if err != nil {
		return Outcome{}, err
	}

	// Only a real file descriptor is handed to the child. Any other reader
	// exec.Cmd would bridge through a pipe, and Wait then blocks on the
	// copy goroutine until the next read completes, so an idle stream
	// (an SSH session between keystrokes) would pin the whole session after
	// every isolated command. Such children run with empty stdin; no
	// isolated builtin reads it.
	if f, ok := sv.Stdin.(*os.File); ok {
		child.Stdin = f
	}
	child.Stdout = sv.Stdout
	child.Stderr = sv.Stderr
	child.Env = sv.Sys.Environ()
	if wd, err := sv.Sys.Getwd(); err == nil {
		child.Dir = wd
	}

	if err := child.Start(); err != nil {
		return Outcome{}, err
	}

	// Wait absorbs retryable interrupts internally; anything else that is
	// not a terminated child is surfaced as an error.
	err = child.Wait()
	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Outcome{Code: 0}, nil
	case errors.As(err, &exitErr):
		return outcomeOf(exitErr.ProcessState), nil
	default:
		return Outcome{}, err
	}
}

func outcomeOf(state *os.ProcessState) Outcome {
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return Outcome{Signaled: true, Signal: ws.Signal()}
	}
	return Outcome{Code: state.ExitCode()}
}
