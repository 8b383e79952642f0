package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinyshell/tinysh/core/config"
)

// initCmd writes the default configuration and an SSH host key into the
// config directory.
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration directory",
	RunE: func(cmd *cobra.Command, args []string) error {
		return config.Initialize(afero.NewOsFs(), cfgPath)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
