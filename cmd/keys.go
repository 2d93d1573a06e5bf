package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Echo decoded keystrokes",
	Long: `Keys switches the input stream to single-character mode and prints
each decoded key as it arrives, including function keys such as F1, F5, and
F10. Press q to quit.`,
	RunE: runKeys,
}

func init() {
	rootCmd.AddCommand(keysCmd)
}

func runKeys(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)

	if err := app.Term.SetSingleCharMode(true); err != nil {
		return fmt.Errorf("enable single-character input: %w", err)
	}
	defer app.Term.SetSingleCharMode(false)

	app.Log.Status("Press keys to see their decoding; q quits.", true, true)
	for key := range app.Term.Keys() {
		// ctrl-c arrives as a raw byte in single-character mode
		if key == "q" || key == "\x03" {
			break
		}
		app.Log.Status(fmt.Sprintf("%-6s %q\r", key.Name(), string(key)), false, true)
	}
	return nil
}
