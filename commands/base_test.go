package commands

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	entry, ok := Lookup("ls")
	require.True(t, ok)
	assert.Equal(t, "ls", entry.Name)
	assert.True(t, entry.Isolated)
	assert.NotNil(t, entry.Main)

	_, ok = Lookup("LS")
	assert.False(t, ok, "lookup must be case-sensitive")

	_, ok = Lookup("doesnotexist")
	assert.False(t, ok)
}

func TestLookup_isolationFlags(t *testing.T) {
	// Only commands that must mutate shell state run in-process.
	for name, isolated := range map[string]bool{
		"cd":    false,
		"env":   false,
		"exit":  false,
		"cp":    true,
		"help":  true,
		"pwd":   true,
		"uname": true,
	} {
		entry, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, isolated, entry.Isolated, name)
	}
}

func TestAll(t *testing.T) {
	all := All()
	assert.Len(t, all, 16)

	names := make([]string, len(all))
	for i, entry := range all {
		require.NotNil(t, entry.Main, "nil command %q", entry.Name)
		names[i] = entry.Name
	}
	assert.True(t, sort.StringsAreSorted(names))
}
