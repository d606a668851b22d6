package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// Execute builds the command tree, wires --verbose and --config, and runs the
// command named by the process arguments.
func Execute(ctx context.Context) error {
	var (
		verbose    bool
		configFile string
	)

	c := New(os.Stderr, LogInfo)
	root := c.RootCommand()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/shapeboard/config.toml)")

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := LogInfo
		if verbose {
			level = LogDebug
		}
		c.SetLogLevel(level)

		path, required := configFile, configFile != ""
		if path == "" {
			p, err := configPath()
			if err != nil {
				return nil
			}
			path = p
		}
		cfg, err := LoadConfig(path, required)
		if err != nil {
			return err
		}
		c.Config = cfg
		c.Logger.Debug("configuration loaded", "path", path)
		return nil
	}

	return root.ExecuteContext(ctx)
}
