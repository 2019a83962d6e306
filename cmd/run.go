package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/abhisek/mindset/internal/app"
)

var errNoTerminal = errors.New("the dashboard needs an interactive terminal; try `mindset quote` instead")

// runApp loads the configuration, opens the log file and launches the TUI.
func runApp(cmd *cobra.Command) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNoTerminal
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger, closer, err := cfg.NewLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	return app.Run(cmd.Context(), app.Options{
		Config: cfg,
		Logger: logger,
	})
}
