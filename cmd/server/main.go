package main

import (
	"event-voting/pkg/logger"
	"os"
)

func main() {
	defer logger.Sync()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
