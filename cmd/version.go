package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version is set during build time
	Version = "dev"
	// GitCommit is set during build time
	GitCommit = "unknown"
	// BuildDate is set during build time
	BuildDate = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		app := appFrom(cmd)
		app.Log.Status(fmt.Sprintf("conch %s", Version), true, true)
		app.Log.Status(fmt.Sprintf("commit: %s", GitCommit), false, true)
		app.Log.Status(fmt.Sprintf("built:  %s", BuildDate), false, true)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
