package config

import (
	"go.uber.org/zap"
)

// Log is the process-wide sugared logger. It is a no-op until InitLogger runs,
// so packages can log from tests without setup.
var Log = zap.NewNop().Sugar()

// InitLogger builds the zap logger for the given environment.
func InitLogger(env string) error {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		return err
	}
	Log = logger.Sugar()
	return nil
}

// SyncLogger flushes buffered log entries.
func SyncLogger() {
	_ = Log.Sync()
}
