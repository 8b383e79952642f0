package sys

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapEnv(t *testing.T) {
	env := NewMapEnv()

	require.NoError(t, env.Setenv("FOO", "bar"))
	assert.Equal(t, "bar", env.Getenv("FOO"))

	val, ok := env.LookupEnv("FOO")
	assert.True(t, ok)
	assert.Equal(t, "bar", val)

	_, ok = env.LookupEnv("MISSING")
	assert.False(t, ok)
	assert.Equal(t, "", env.Getenv("MISSING"))

	require.NoError(t, env.Unsetenv("FOO"))
	_, ok = env.LookupEnv("FOO")
	assert.False(t, ok)
}

func TestMapEnv_environ(t *testing.T) {
	env := NewMapEnv()
	env.Setenv("A", "1")
	env.Setenv("B", "two=three")

	environ := env.Environ()
	sort.Strings(environ)
	assert.Equal(t, []string{"A=1", "B=two=three"}, environ)
}

func TestMapEnv_expand(t *testing.T) {
	env := NewMapEnv()
	env.Setenv("NAME", "world")

	assert.Equal(t, "hello world", env.ExpandEnv("hello $NAME"))
}

func TestCopyEnv(t *testing.T) {
	env := NewMapEnv()
	require.NoError(t, CopyEnv(env, []string{"A=1", "B=", "C"}))

	assert.Equal(t, "1", env.Getenv("A"))

	val, ok := env.LookupEnv("B")
	assert.True(t, ok)
	assert.Equal(t, "", val)

	_, ok = env.LookupEnv("C")
	assert.True(t, ok, "a bare key still defines the variable")
}

func TestSessionSystem_chdir(t *testing.T) {
	system := NewSessionSystem("/start")

	wd, err := system.Getwd()
	require.NoError(t, err)
	assert.Equal(t, "/start", wd)

	require.NoError(t, system.Chdir("/abs"))
	wd, _ = system.Getwd()
	assert.Equal(t, "/abs", wd)

	require.NoError(t, system.Chdir("rel"))
	wd, _ = system.Getwd()
	assert.Equal(t, "/abs/rel", wd)

	require.NoError(t, system.Chdir(".."))
	wd, _ = system.Getwd()
	assert.Equal(t, "/abs", wd)
}
