package shell

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/tinyshell/tinysh/commands"
	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/sys"
)

// Shell owns the read-tokenize-dispatch loop and its per-iteration
// buffers. The only state that survives an iteration lives in Sys (the
// environment and working directory) and the exit flag.
type Shell struct {
	Config *config.Configuration
	Sys    sys.System

	reader *LineReader
	out    *bufio.Writer
	sup    *Supervisor

	quit     bool
	exitCode int
}

// New assembles a shell around the given system and stdio. Prompt and
// diagnostic output is buffered and flushed once per loop phase; command
// output goes straight to stdout so children stay ordered with it.
func New(cfg *config.Configuration, system sys.System, fsys afero.Fs, stdin io.Reader, stdout, stderr io.Writer) *Shell {
	s := &Shell{
		Config: cfg,
		Sys:    system,
		reader: NewLineReader(stdin),
		out:    bufio.NewWriter(stdout),
	}
	s.sup = &Supervisor{
		Sys:    system,
		FS:     fsys,
		Uname:  cfg.Uname,
		Stdin:  stdin,
		Stdout: stdout,
		Stderr: stderr,
		Shell:  s,
	}
	return s
}

var _ sys.ShellControl = (*Shell)(nil)

// RequestExit stops the loop once the current iteration completes. Only the
// exit builtin calls this; no error path does.
func (s *Shell) RequestExit(code int) {
	s.quit = true
	s.exitCode = code
}

// Run drives the shell until exit is requested or input ends. The return
// value is the status passed to RequestExit, or 0.
func (s *Shell) Run() int {
	s.initEnv()

	if motd := strings.TrimRight(s.Config.Motd, "\n"); motd != "" {
		fmt.Fprintf(s.out, "\n%s\n\n", motd)
	}

	for !s.quit {
		s.writePrompt()
		s.out.Flush()

		line, err := s.reader.ReadLine()
		if err == io.EOF {
			// Input is gone for good: stop instead of re-prompting forever.
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			continue
		}

		if tokens := SplitLine(line); len(tokens) > 0 {
			s.dispatch(tokens)
		}

		s.out.Flush()
	}

	s.out.Flush()
	return s.exitCode
}

// initEnv defaults HOME and PWD when the surrounding environment didn't
// provide them.
func (s *Shell) initEnv() {
	if _, ok := s.Sys.LookupEnv(sys.EnvHome); !ok {
		s.Sys.Setenv(sys.EnvHome, s.Config.DefaultHome)
	}
	if _, ok := s.Sys.LookupEnv(sys.EnvPWD); !ok {
		wd, err := s.Sys.Getwd()
		if err != nil {
			wd = s.Config.DefaultHome
		}
		s.Sys.Setenv(sys.EnvPWD, wd)
	}
}

// dispatch resolves tokens[0] in the registry and hands the command to the
// supervisor. Tokens alias the line buffer, so they are copied into owned
// strings here, before the buffer is released.
func (s *Shell) dispatch(tokens [][]byte) {
	argv := make([]string, len(tokens))
	for i, tok := range tokens {
		argv[i] = string(tok)
	}

	entry, ok := commands.Lookup(argv[0])
	if !ok {
		fmt.Fprintf(s.out, "%s: command not found\n", argv[0])
		return
	}

	// Prompt-era bytes must reach the terminal before a child writes.
	s.out.Flush()
	s.sup.Dispatch(entry, argv)
}
