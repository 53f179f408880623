// Package config provides YAML-based configuration loading, environment
// overrides and validation for othello.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-othello/internal/othello"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Opponent modes.
const (
	OpponentCPU   = "cpu"
	OpponentHuman = "human"
)

// OthelloConfig contains all configuration for the game and its frontends.
type OthelloConfig struct {
	Game      GameConfig      `yaml:"game"`
	Animation AnimationConfig `yaml:"animation"`
	TUI       TUIConfig       `yaml:"tui"`
	SSH       SSHConfig       `yaml:"ssh"`
	Log       LogConfig       `yaml:"log"`
}

// GameConfig defines who plays and who opens.
type GameConfig struct {
	Opponent     string `yaml:"opponent" env:"OTHELLO_OPPONENT"`           // "cpu" or "human"
	ComputerTeam string `yaml:"computer_team" env:"OTHELLO_COMPUTER_TEAM"` // "black" or "white"
	FirstTurn    string `yaml:"first_turn" env:"OTHELLO_FIRST_TURN"`
}

// AnimationConfig defines disc animation timing and the scheduler rate.
type AnimationConfig struct {
	MoveDuration   time.Duration `yaml:"move_duration" env:"OTHELLO_MOVE_DURATION"`
	CaptureStagger time.Duration `yaml:"capture_stagger" env:"OTHELLO_CAPTURE_STAGGER"`
	SchedulerHz    int           `yaml:"scheduler_hz" env:"OTHELLO_SCHEDULER_HZ"`
}

// TUIConfig defines terminal frontend parameters.
type TUIConfig struct {
	FPS int `yaml:"fps" env:"OTHELLO_FPS"`
}

// SSHConfig defines the SSH server used by the serve command.
type SSHConfig struct {
	Addr        string        `yaml:"addr" env:"OTHELLO_SSH_ADDR"`
	HostKeyPath string        `yaml:"host_key_path" env:"OTHELLO_SSH_HOST_KEY"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"OTHELLO_SSH_IDLE_TIMEOUT"`
	MaxTimeout  time.Duration `yaml:"max_timeout" env:"OTHELLO_SSH_MAX_TIMEOUT"` // 0 = unlimited
}

// LogConfig defines logging.
type LogConfig struct {
	Level string `yaml:"level" env:"OTHELLO_LOG_LEVEL"`
	File  string `yaml:"file" env:"OTHELLO_LOG_FILE"`
}

// Validate checks field ranges and enumerations.
func (c OthelloConfig) Validate() error {
	var errs []error

	switch strings.ToLower(c.Game.Opponent) {
	case OpponentCPU, OpponentHuman:
	default:
		errs = append(errs, fmt.Errorf("game.opponent %q: want %q or %q", c.Game.Opponent, OpponentCPU, OpponentHuman))
	}
	if team, err := othello.ParseTeam(c.Game.ComputerTeam); err != nil || (team == othello.NoTeam && c.IsVersusComputer()) {
		errs = append(errs, fmt.Errorf("game.computer_team %q: want black or white", c.Game.ComputerTeam))
	}
	if team, err := othello.ParseTeam(c.Game.FirstTurn); err != nil || team == othello.NoTeam {
		errs = append(errs, fmt.Errorf("game.first_turn %q: want black or white", c.Game.FirstTurn))
	}
	if c.Animation.MoveDuration < 0 {
		errs = append(errs, fmt.Errorf("animation.move_duration %v: must not be negative", c.Animation.MoveDuration))
	}
	if c.Animation.CaptureStagger < 0 {
		errs = append(errs, fmt.Errorf("animation.capture_stagger %v: must not be negative", c.Animation.CaptureStagger))
	}
	if c.Animation.SchedulerHz < 1 || c.Animation.SchedulerHz > 1000 {
		errs = append(errs, fmt.Errorf("animation.scheduler_hz %d: want 1..1000", c.Animation.SchedulerHz))
	}
	if c.TUI.FPS < 1 || c.TUI.FPS > 240 {
		errs = append(errs, fmt.Errorf("tui.fps %d: want 1..240", c.TUI.FPS))
	}
	if c.SSH.IdleTimeout < 0 || c.SSH.MaxTimeout < 0 {
		errs = append(errs, errors.New("ssh timeouts must not be negative"))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q: %w", c.Log.Level, err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// IsVersusComputer reports whether one team is played by the computer.
func (c OthelloConfig) IsVersusComputer() bool {
	return strings.ToLower(c.Game.Opponent) != OpponentHuman
}

// Settings converts the configuration into engine settings.
func (c OthelloConfig) Settings() (othello.Settings, error) {
	first, err := othello.ParseTeam(c.Game.FirstTurn)
	if err != nil {
		return othello.Settings{}, fmt.Errorf("game.first_turn: %w", err)
	}
	ai := othello.NoTeam
	if c.IsVersusComputer() {
		if ai, err = othello.ParseTeam(c.Game.ComputerTeam); err != nil {
			return othello.Settings{}, fmt.Errorf("game.computer_team: %w", err)
		}
	}
	return othello.Settings{
		StartingTurn:   first,
		AITeam:         ai,
		MoveDuration:   c.Animation.MoveDuration,
		CaptureStagger: c.Animation.CaptureStagger,
	}, nil
}

// SchedulerInterval returns the animation tick period.
func (c OthelloConfig) SchedulerInterval() time.Duration {
	if c.Animation.SchedulerHz <= 0 {
		return time.Second / 120
	}
	return time.Second / time.Duration(c.Animation.SchedulerHz)
}

// LogLevel returns the parsed log level, info if unparseable.
func (c OthelloConfig) LogLevel() log.Level {
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return log.InfoLevel
	}
	return lvl
}
