package main

import (
	"event-voting/config"
	"event-voting/pkg/logger"
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "votingd",
	Short:         "Event voting API server",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// loadConfig 讀取設定並套用 log 等級
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
	}
	return cfg, nil
}
