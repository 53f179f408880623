package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the othello SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own game against the configured opponent.
Games are independent: connections never see each other's boards.

Host key handling:
  - If --host-key or ssh.host_key_path is set, uses that key file
  - Otherwise, auto-generates a key at ~/.othello/host_key

Examples:
  othello serve                           # Listen on the configured address
  othello serve --ssh :2222               # Listen on port 2222
  othello serve --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh localhost -p 2324`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("ssh") {
		cfg.SSH.Addr = flagSSHAddr
	}
	if flags.Changed("host-key") {
		cfg.SSH.HostKeyPath = flagHostKey
	}
	if flags.Changed("idle-timeout") {
		cfg.SSH.IdleTimeout = flagIdleTimeout
	}

	settings, err := cfg.Settings()
	if err != nil {
		return err
	}

	logger, closeLog := newLogger(cfg, os.Stderr, "othello-ssh")
	defer closeLog()

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     cfg.SSH.Addr,
		HostKeyPath: cfg.SSH.HostKeyPath,
		IdleTimeout: cfg.SSH.IdleTimeout,
		MaxTimeout:  cfg.SSH.MaxTimeout,
		FPS:         cfg.TUI.FPS,
		Game: tui.GameOptions{
			Settings:          settings,
			SchedulerInterval: cfg.SchedulerInterval(),
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	fmt.Printf("Starting othello SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.ListenAndServe(ctx)
}
