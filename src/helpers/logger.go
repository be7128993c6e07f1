package helpers

import (
	"fmt"
	"time"

	"github.com/obraunsdorf/playbook-creator/src/settings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger builds the process logger from args and installs it as the zap
// global. Debug selects the development config, otherwise production.
// When LogDir is set, output also goes to a timestamped file there.
func NewLogger(args *settings.Arguments) (*zap.SugaredLogger, error) {
	var config zap.Config
	if args.Debug {
		config = zap.NewDevelopmentConfig()
	} else {
		config = zap.NewProductionConfig()
	}

	if args.Verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	outputs := []string{}
	if args.PrintToScreen || args.LogDir == "" {
		outputs = append(outputs, "stdout")
	}
	if args.LogDir != "" {
		if err := EnsureDir(args.LogDir); err != nil {
			return nil, fmt.Errorf("failed to prepare log directory: %w", err)
		}
		outputs = append(outputs, LogFilePath(args.LogDir, args.Host, time.Now()))
	}
	config.OutputPaths = outputs

	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	zap.ReplaceGlobals(logger)
	return logger.Sugar(), nil
}
