// Package sshserve serves the interactive shell over SSH, one shell per
// session.
package sshserve

import (
	"crypto/ed25519"
	"crypto/rand"
	"fmt"
	"log"
	"os"

	"github.com/gliderlabs/ssh"
	"github.com/juju/ratelimit"
	"github.com/spf13/afero"
	gossh "golang.org/x/crypto/ssh"

	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/shell"
	"github.com/tinyshell/tinysh/core/sys"
)

// outputRate caps per-session output bandwidth (bytes/sec) so a runaway
// command cannot saturate the link.
const outputRate = 256 * 1024

type Server struct {
	Config *config.Configuration

	// HostKeyPem holds the PEM encoded host key; when empty an ephemeral
	// key is generated at startup.
	HostKeyPem []byte
}

func (s *Server) ListenAndServe() error {
	signer, err := s.signer()
	if err != nil {
		return err
	}

	srv := &ssh.Server{
		Addr:    fmt.Sprintf(":%d", s.Config.SSHPort),
		Handler: s.handle,
	}
	srv.AddHostKey(signer)

	log.Printf("serving shell on %s", srv.Addr)
	return srv.ListenAndServe()
}

func (s *Server) signer() (ssh.Signer, error) {
	if len(s.HostKeyPem) > 0 {
		return gossh.ParsePrivateKey(s.HostKeyPem)
	}

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}
	return gossh.NewSignerFromKey(priv)
}

// handle runs one shell per session. Each session gets its own
// SessionSystem so environments and working directories never leak between
// connections; isolated commands spawned from the session inherit both
// through the supervisor.
func (s *Server) handle(sess ssh.Session) {
	system := sys.NewSessionSystem(s.Config.DefaultHome)
	if err := sys.CopyEnv(system, sess.Environ()); err != nil {
		log.Printf("session env: %v", err)
	}
	system.Setenv(sys.EnvUser, sess.User())
	if cfgDir := os.Getenv(config.EnvConfigPath); cfgDir != "" {
		system.Setenv(config.EnvConfigPath, cfgDir)
	}

	out := ratelimit.Writer(sess, ratelimit.NewBucketWithRate(outputRate, outputRate))

	sh := shell.New(s.Config, system, afero.NewOsFs(), sess, out, sess.Stderr())
	sess.Exit(sh.Run())
}
