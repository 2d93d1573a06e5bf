package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/conchshell/conch/internal/terminal"
	"github.com/conchshell/conch/internal/ui"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Inspect terminal capabilities",
	Long: `Doctor reports what conch detected about the current terminal:
the TERM type, ANSI color support, interactivity, and window size.

With --deep it additionally runs rendering probes under a progress spinner.`,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().Bool("deep", false, "run rendering probes")
	doctorCmd.Flags().Bool("clear", false, "clear the screen before reporting")
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	app := appFrom(cmd)

	if clear, _ := cmd.Flags().GetBool("clear"); clear {
		fmt.Fprint(os.Stdout, app.Term.Clear())
	}

	report := &ui.Report{
		TermType:      os.Getenv("TERM"),
		SupportsColor: app.Term.SupportsColor(),
		Interactive:   terminal.IsTerminalOutput(),
	}
	if w, h, err := terminal.Size(); err == nil {
		report.Width, report.Height = w, h
	}

	if deep, _ := cmd.Flags().GetBool("deep"); deep {
		err := ui.RunSpinner(cmd.Context(), "Probing terminal", func() error {
			report.Checks = runProbes(app)
			return nil
		})
		if err != nil {
			return fmt.Errorf("deep probe: %w", err)
		}
	}

	app.Log.Status(ui.RenderReport(report), false, false)
	return nil
}

// runProbes exercises the capability helpers and records what they produced.
func runProbes(app *App) []ui.Check {
	var checks []ui.Check

	bolded := app.Term.Bold("x")
	checks = append(checks, ui.Check{
		Name:   "bold render",
		OK:     (bolded != "x") == app.Term.SupportsColor(),
		Detail: fmt.Sprintf("%q", bolded),
	})
	checks = append(checks, ui.Check{
		Name:   "clear render",
		OK:     true,
		Detail: fmt.Sprintf("%q", app.Term.Clear()),
	})
	checks = append(checks, ui.Check{
		Name: "raw input",
		OK:   term.IsTerminal(int(os.Stdin.Fd())),
	})
	return checks
}
