package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/conchshell/conch/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		data, err := yaml.Marshal(app.Config)
		if err != nil {
			return err
		}
		app.Log.Status(strings.TrimRight(string(data), "\n"), false, true)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		app := appFrom(cmd)
		path := config.DefaultPath()
		if path == "" {
			return fmt.Errorf("cannot determine config path")
		}
		if err := config.DefaultConfig().Save(path); err != nil {
			return fmt.Errorf("write config: %w", err)
		}
		app.Log.Status(fmt.Sprintf("wrote %s", path), false, true)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
