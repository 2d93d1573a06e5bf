package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/conchshell/conch/internal/config"
	"github.com/conchshell/conch/internal/logger"
	"github.com/conchshell/conch/internal/terminal"
)

// Context key for the shared application state
const AppKey = "app"

// App holds the shared dependencies threaded through every command: the
// process-wide terminal capability object, the logger variant selected at
// startup, and the loaded configuration.
type App struct {
	Term   *terminal.Terminal
	Log    logger.Logger
	Config *config.Config
}

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "conch",
	Short: "Terminal capability diagnostics",
	Long: `Conch inspects what the current terminal can do: ANSI color support,
window size, keystroke decoding, and rendering behavior.

Output modes mirror what larger tools need from a console layer: immediate
interleaved output, a quiet mode, and a verbose trace mode that annotates
every message with how long the preceding work took.`,
	Version:           Version,
	PersistentPreRunE: initApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app := appFrom(cmd); app != nil {
			app.Log.Flush()
		}
	},
}

// initApp builds the App from config and flags after flag parsing, and makes
// it available to subcommands through the command context.
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return err
	}

	term := terminal.New()
	colorMode, _ := cmd.Flags().GetString("color")
	if colorMode == "" {
		colorMode = cfg.Output.Color
	}
	switch colorMode {
	case config.ColorAlways:
		term.SetSupportsColor(true)
	case config.ColorNever:
		term.SetSupportsColor(false)
	case config.ColorAuto:
		if !terminal.IsTerminalOutput() {
			term.SetSupportsColor(false)
		}
	default:
		return fmt.Errorf("invalid color mode %q (want auto, always, or never)", colorMode)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")

	var log logger.Logger
	if verbose || cfg.Output.Verbose {
		log = logger.NewVerbose(term)
	} else {
		log = logger.NewStandard(term)
	}
	log.SetQuiet(quiet || cfg.Output.Quiet)

	app := &App{Term: term, Log: log, Config: cfg}
	cmd.SetContext(context.WithValue(cmd.Context(), AppKey, app))
	return nil
}

func appFrom(cmd *cobra.Command) *App {
	app, _ := cmd.Context().Value(AppKey).(*App)
	return app
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "annotate output with elapsed times")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress status output")
	rootCmd.PersistentFlags().String("color", "", "color mode (auto, always, never)")
}
