package config

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/x509"
	"encoding/pem"
	"path/filepath"

	"github.com/spf13/afero"
)

// Initialize writes the default config.yaml and a fresh SSH host key into
// dir. Existing files are left alone so re-running init is safe.
func Initialize(fsys afero.Fs, dir string) error {
	if err := fsys.MkdirAll(dir, 0700); err != nil {
		return err
	}

	configPath := filepath.Join(dir, ConfigurationName)
	if exists, err := afero.Exists(fsys, configPath); err != nil {
		return err
	} else if !exists {
		if err := afero.WriteFile(fsys, configPath, defaultConfigData, 0600); err != nil {
			return err
		}
	}

	keyPath := filepath.Join(dir, HostKeyName)
	if exists, err := afero.Exists(fsys, keyPath); err != nil {
		return err
	} else if !exists {
		keyPem, err := generateHostKey()
		if err != nil {
			return err
		}
		if err := afero.WriteFile(fsys, keyPath, keyPem, 0600); err != nil {
			return err
		}
	}

	return nil
}

// generateHostKey produces an ed25519 key as a PKCS#8 PEM block, the format
// x/crypto/ssh can parse back into a signer.
func generateHostKey() ([]byte, error) {
	_, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, err
	}

	der, err := x509.MarshalPKCS8PrivateKey(priv)
	if err != nil {
		return nil, err
	}

	return pem.EncodeToMemory(&pem.Block{Type: "PRIVATE KEY", Bytes: der}), nil
}
