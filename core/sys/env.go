package sys

import (
	"fmt"
	"os"
	"strings"
	"sync"
)

// Well-known environment variables the shell itself reads or writes.
const (
	EnvHome = "HOME"
	EnvPWD  = "PWD"
	EnvUser = "USER"
)

// Env is the mutable key/value environment a shell session runs against.
type Env interface {
	Getenv(key string) string
	LookupEnv(key string) (string, bool)
	Setenv(key, value string) error
	Unsetenv(key string) error
	Environ() []string
	ExpandEnv(s string) string
}

// CopyEnv copies KEY=VALUE entries into dst.
func CopyEnv(dst Env, environ []string) error {
	for _, e := range environ {
		split := strings.SplitN(e, "=", 2)
		key, value := split[0], ""
		if len(split) > 1 {
			value = split[1]
		}
		if err := dst.Setenv(key, value); err != nil {
			return err
		}
	}

	return nil
}

// OSEnv is an Env backed by the real process environment. Mutations are
// visible to every subsequently spawned child.
type OSEnv struct{}

var _ Env = OSEnv{}

func (OSEnv) Getenv(key string) string { return os.Getenv(key) }

func (OSEnv) LookupEnv(key string) (string, bool) { return os.LookupEnv(key) }

func (OSEnv) Setenv(key, value string) error { return os.Setenv(key, value) }

func (OSEnv) Unsetenv(key string) error { return os.Unsetenv(key) }

func (OSEnv) Environ() []string { return os.Environ() }

func (OSEnv) ExpandEnv(s string) string { return os.ExpandEnv(s) }

// NewMapEnv creates a new empty environment backed by a map.
func NewMapEnv() *MapEnv {
	return &MapEnv{}
}

// MapEnv implements an in-memory Env.
type MapEnv struct {
	rw  sync.RWMutex
	env map[string]string
}

var _ Env = (*MapEnv)(nil)

// Setenv implements Env.Setenv.
func (m *MapEnv) Setenv(key, value string) error {
	m.rw.Lock()
	defer m.rw.Unlock()

	if m.env == nil {
		m.env = make(map[string]string)
	}
	m.env[key] = value
	return nil
}

// Unsetenv implements Env.Unsetenv.
func (m *MapEnv) Unsetenv(key string) error {
	m.rw.Lock()
	defer m.rw.Unlock()
	if m.env != nil {
		delete(m.env, key)
	}
	return nil
}

// LookupEnv implements Env.LookupEnv.
func (m *MapEnv) LookupEnv(key string) (string, bool) {
	m.rw.RLock()
	defer m.rw.RUnlock()

	val, ok := m.env[key]
	return val, ok
}

// Getenv implements Env.Getenv.
func (m *MapEnv) Getenv(key string) string {
	val, _ := m.LookupEnv(key)
	return val
}

// ExpandEnv implements Env.ExpandEnv.
func (m *MapEnv) ExpandEnv(s string) string {
	return os.Expand(s, m.Getenv)
}

// Environ implements Env.Environ.
func (m *MapEnv) Environ() []string {
	m.rw.RLock()
	defer m.rw.RUnlock()

	var env []string
	for k, v := range m.env {
		env = append(env, fmt.Sprintf("%s=%s", k, v))
	}

	return env
}
