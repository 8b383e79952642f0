package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, fsys.MkdirAll("/etc/tinysh", 0700))
	require.NoError(t, afero.WriteFile(fsys, "/etc/tinysh/config.yaml", defaultConfigData, 0600))

	cfg, err := Load(fsys, "/etc/tinysh")
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.DefaultHome)

	// Pointing at the file directly also works.
	cfg, err = Load(fsys, "/etc/tinysh/config.yaml")
	require.NoError(t, err)
	assert.Equal(t, 2222, cfg.SSHPort)
}

func TestLoad_missing(t *testing.T) {
	_, err := Load(afero.NewMemMapFs(), "/nowhere")
	assert.Error(t, err)
}

func TestLoad_rejectsUnknownFields(t *testing.T) {
	fsys := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fsys, "/cfg/config.yaml", []byte("bogus_key: 1\n"), 0600))

	_, err := Load(fsys, "/cfg")
	assert.Error(t, err)
}
