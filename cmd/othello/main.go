// othello plays the disc-capture board game in the terminal.
//
// Usage:
//
//	othello play     - Play a local game against the computer or a friend
//	othello serve    - Start SSH server; every connection plays its own game
//	othello config   - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config YAML (default search: ~/.othello/config.yaml, ./configs/othello.yaml)
//	--fps <rate>        - Redraw rate while discs move
//	--log-file <path>   - Write logs to a file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "othello",
	Short: "Othello - the disc-capture board game in your terminal",
	Long: `Othello is a terminal version of the classic disc-capture game.
Place a disc so that it closes a line of your opponent's discs and
they flip to your colour. The board full, the larger colour wins.

Available commands:
  play     - Play locally
  serve    - Start SSH server for remote play
  config   - Print the effective configuration

Examples:
  othello play
  othello play --opponent human
  othello serve --ssh :2324
  OTHELLO_MOVE_DURATION=1s othello play`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Redraw rate while discs move (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadConfig loads the config and applies global flag overrides.
func loadConfig(cmd *cobra.Command) (config.OthelloConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("fps") {
		cfg.TUI.FPS = flagFPS
	}
	if flags.Changed("log-file") {
		cfg.Log.File = flagLogFile
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger builds the process logger. Logs go to cfg.Log.File when set and
// to fallback otherwise. An unusable log file falls back too.
// The returned function closes the file.
func newLogger(cfg config.OthelloConfig, fallback io.Writer, prefix string) (*log.Logger, func()) {
	w := fallback
	closeFn := func() {}

	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			//nolint:errcheck // Best-effort close on exit
			closeFn = func() { f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           cfg.LogLevel(),
	})
	return logger, closeFn
}
