package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyshell/tinysh/commands/cmdtest"
	"github.com/tinyshell/tinysh/core/sys"
)

func TestCd(t *testing.T) {
	cmd := cmdtest.Command(Cd, "cd", "/srv/data")
	require.NoError(t, cmd.FS.MkdirAll("/srv/data", 0755))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	wd, _ := cmd.Sys.Getwd()
	assert.Equal(t, "/srv/data", wd)
	assert.Equal(t, "/srv/data", cmd.Sys.Getenv(sys.EnvPWD))
}

func TestCd_relative(t *testing.T) {
	cmd := cmdtest.Command(Cd, "cd", "opt")
	require.NoError(t, cmd.FS.MkdirAll("/opt", 0755))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "/opt", cmd.Sys.Getenv(sys.EnvPWD))
}

func TestCd_home(t *testing.T) {
	cmd := cmdtest.Command(Cd, "cd")
	cmd.Sys.Setenv(sys.EnvHome, "/home/user")
	require.NoError(t, cmd.FS.MkdirAll("/home/user", 0755))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "/home/user", cmd.Sys.Getenv(sys.EnvPWD))
}

func TestCd_missing(t *testing.T) {
	cmd := cmdtest.Command(Cd, "cd", "/does/not/exist")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
	wd, _ := cmd.Sys.Getwd()
	assert.Equal(t, "/", wd, "failed cd must not change the working directory")
}
