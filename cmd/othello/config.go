package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-othello/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after applying the config file, OTHELLO_*
environment variables and global flags, as YAML.

Examples:
  othello config > ~/.othello/config.yaml
  OTHELLO_OPPONENT=human othello config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
