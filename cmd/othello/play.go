package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-othello/internal/core"
	"github.com/vovakirdan/tui-othello/internal/platform/tui"
)

var (
	flagOpponent string
	flagComputer string
	flagFirst    string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a local game",
	Long: `Start a local game.

Controls:
  Arrows/hjkl  - Move cursor
  Enter/Space  - Place disc (starts a new game once one is decided)
  Mouse click  - Place disc
  R            - New game
  ?            - Help
  Q/Ctrl+C     - Quit

Examples:
  othello play
  othello play --opponent human
  othello play --computer white --first black
  othello play --log-file othello.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagOpponent, "opponent", "", "cpu or human (overrides config)")
	playCmd.Flags().StringVar(&flagComputer, "computer", "", "Team played by the computer: black or white")
	playCmd.Flags().StringVar(&flagFirst, "first", "", "Team that opens: black or white")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("opponent") {
		cfg.Game.Opponent = flagOpponent
	}
	if flags.Changed("computer") {
		cfg.Game.ComputerTeam = flagComputer
	}
	if flags.Changed("first") {
		cfg.Game.FirstTurn = flagFirst
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	// The terminal is in alt-screen mode; logs only go to a file.
	logger, closeLog := newLogger(cfg, io.Discard, "othello")
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.TUI.FPS,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := tui.Run(ctx, rc, tui.GameOptions{
		Settings:          settings,
		SchedulerInterval: cfg.SchedulerInterval(),
		Logger:            logger,
	}); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
