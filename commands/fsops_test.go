package commands

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tinyshell/tinysh/commands/cmdtest"
)

func TestMkdir(t *testing.T) {
	cmd := cmdtest.Command(Mkdir, "mkdir", "/one")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	exists, _ := afero.DirExists(cmd.FS, "/one")
	assert.True(t, exists)
}

func TestMkdir_parents(t *testing.T) {
	cmd := cmdtest.Command(Mkdir, "mkdir", "-p", "/a/b/c")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	exists, _ := afero.DirExists(cmd.FS, "/a/b/c")
	assert.True(t, exists)
}

func TestMkdir_missingOperand(t *testing.T) {
	cmd := cmdtest.Command(Mkdir, "mkdir")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestRmdir(t *testing.T) {
	cmd := cmdtest.Command(Rmdir, "rmdir", "/gone")
	require.NoError(t, cmd.FS.MkdirAll("/gone", 0755))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	exists, _ := afero.DirExists(cmd.FS, "/gone")
	assert.False(t, exists)
}

func TestRmdir_notADirectory(t *testing.T) {
	cmd := cmdtest.Command(Rmdir, "rmdir", "/file.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/file.txt", []byte("x"), 0644))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestCp(t *testing.T) {
	cmd := cmdtest.Command(Cp, "cp", "/src.txt", "/dst.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/src.txt", []byte("payload"), 0644))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	data, err := afero.ReadFile(cmd.FS, "/dst.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCp_intoDirectory(t *testing.T) {
	cmd := cmdtest.Command(Cp, "cp", "/src.txt", "/dir")
	require.NoError(t, afero.WriteFile(cmd.FS, "/src.txt", []byte("payload"), 0644))
	require.NoError(t, cmd.FS.MkdirAll("/dir", 0755))

	require.NoError(t, cmd.Run())

	assert.Equal(t, 0, cmd.ExitStatus)
	data, err := afero.ReadFile(cmd.FS, "/dir/src.txt")
	require.NoError(t, err)
	assert.Equal(t, "payload", string(data))
}

func TestCp_missingSource(t *testing.T) {
	cmd := cmdtest.Command(Cp, "cp", "/nope", "/dst")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestStat(t *testing.T) {
	cmd := cmdtest.Command(Stat, "stat", "/file.txt")
	require.NoError(t, afero.WriteFile(cmd.FS, "/file.txt", []byte("abc"), 0644))

	out, err := cmd.CombinedOutput()
	require.NoError(t, err)

	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "file.txt")
	assert.Contains(t, string(out), "regular file")
}

func TestStat_missing(t *testing.T) {
	cmd := cmdtest.Command(Stat, "stat", "/nope")
	require.NoError(t, cmd.Run())

	assert.Equal(t, 1, cmd.ExitStatus)
}
