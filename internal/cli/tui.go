package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/genvault/genvault-go/internal/config"
	"github.com/genvault/genvault-go/internal/tui"
	"github.com/spf13/cobra"
)

func newTUICmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tui <userId>",
		Short: "Open the interactive vault page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := tuiLogger(o.cfg.LogFile, o.verbose)
			if err != nil {
				return err
			}
			defer closeLog()

			return tui.Run(cmd.Context(), o.newViewModel(logger), args[0])
		},
	}

	cmd.Flags().String(config.KeyLogFile, "", "append logs to this file while the page is open")
	_ = o.v.BindPFlag(config.KeyLogFile, cmd.Flags().Lookup(config.KeyLogFile))

	return cmd
}

// tuiLogger keeps log output off the terminal the page is drawn on.
func tuiLogger(path string, verbose bool) (*slog.Logger, func(), error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level}))
	return logger, func() { f.Close() }, nil
}
