package app

import (
	"fmt"

	"go.uber.org/zap"
)

// initLogger создает и настраивает логгер.
// "production" включает JSON логгер уровня info, остальные значения
// задают уровень development логгера.
func initLogger(logLevel string) (*zap.Logger, error) {
	if logLevel == "production" {
		logger, err := zap.NewProduction()
		if err != nil {
			return nil, fmt.Errorf("failed to init logger: %w", err)
		}
		return logger, nil
	}

	level, err := zap.ParseAtomicLevel(logLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level %q: %w", logLevel, err)
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = level

	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to init logger: %w", err)
	}

	return logger, nil
}
