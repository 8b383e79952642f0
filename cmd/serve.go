package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/sshserve"
)

// serveCmd exposes the shell over SSH.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the shell over SSH",
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := loadConfig()
		if err != nil {
			return err
		}
		os.Setenv(config.EnvConfigPath, cfgPath)

		keyPem, err := config.LoadHostKey(afero.NewOsFs(), cfgPath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}

		srv := &sshserve.Server{
			Config:     configuration,
			HostKeyPem: keyPem,
		}
		return srv.ListenAndServe()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
