// Package main is the entry point for the globe viewer.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/globe/internal/app"
	"github.com/Faultbox/globe/internal/config"
	"github.com/Faultbox/globe/internal/logger"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if config.InitConfig() {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", config.UserConfigPath())
		return
	}

	if path := config.SaveConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			fmt.Fprintf(os.Stderr, "Saving config: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Config written to %s\n", path)
		return
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}

	os.Exit(run(cfg))
}

// run returns the process exit code so deferred cleanup happens first.
func run(cfg *config.Config) int {
	defer logger.Sync()

	logger.Info("=== Globe ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	a, err := app.New(cfg)
	if err != nil {
		logger.Error("failed to start viewer", zap.Error(err))
		return 1
	}
	defer a.Close()

	if err := a.Run(); err != nil {
		logger.Error("viewer stopped", zap.Error(err))
		return 1
	}

	logger.Info("viewer closed normally")
	return 0
}
