package cmd

import (
	"errors"
	"io/fs"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/tinyshell/tinysh/core/config"
	"github.com/tinyshell/tinysh/core/shell"
	"github.com/tinyshell/tinysh/core/sys"
)

var cfgPath string

// loadConfig loads the configuration directory, falling back to the
// embedded defaults when no config.yaml exists.
func loadConfig() (*config.Configuration, error) {
	configuration, err := config.Load(afero.NewOsFs(), cfgPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		configuration = config.Default()
	case err != nil:
		return nil, err
	}
	if err := configuration.Validate(); err != nil {
		return nil, err
	}
	return configuration, nil
}

// rootCmd represents the base command when called without any subcommands:
// it runs the interactive shell on the process stdio.
var rootCmd = &cobra.Command{
	Use:   "tinysh",
	Short: "A tiny console shell",
	Long:  `An interactive shell with a fixed table of built-in commands for constrained console environments.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := loadConfig()
		if err != nil {
			return err
		}
		os.Setenv(config.EnvConfigPath, cfgPath)

		sh := shell.New(configuration, sys.OSSystem{}, afero.NewOsFs(), os.Stdin, os.Stdout, os.Stderr)
		os.Exit(sh.Run())
		return nil
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	defaultPath := os.Getenv(config.EnvConfigPath)
	if defaultPath == "" {
		defaultPath = "."
	}
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", defaultPath, "config path")
}
