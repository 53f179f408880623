package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/othello.yaml
var defaultOthelloYAML []byte

// DefaultOthelloConfig returns the built-in configuration. It mirrors the
// embedded defaults/othello.yaml and is used if that file fails to parse.
func DefaultOthelloConfig() OthelloConfig {
	return OthelloConfig{
		Game: GameConfig{
			Opponent:     OpponentCPU,
			ComputerTeam: "black",
			FirstTurn:    "white",
		},
		Animation: AnimationConfig{
			MoveDuration:   275 * time.Millisecond,
			CaptureStagger: 45 * time.Millisecond,
			SchedulerHz:    120,
		},
		TUI: TUIConfig{
			FPS: 60,
		},
		SSH: SSHConfig{
			Addr:        ":2324",
			HostKeyPath: ".ssh/othello_ed25519",
			IdleTimeout: 30 * time.Minute,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
