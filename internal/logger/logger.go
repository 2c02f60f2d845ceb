package logger

import (
	"fmt"

	"go.uber.org/zap"
)

// Init builds the process wide logger for the environment and installs it
// as zap's global, so packages log through zap.L().
func Init(environment string) error {
	var (
		l   *zap.Logger
		err error
	)

	switch environment {
	case "production":
		l, err = zap.NewProduction()
	case "test":
		l = zap.NewNop()
	default:
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		return fmt.Errorf("failed to build %s logger -> %w", environment, err)
	}

	zap.ReplaceGlobals(l.With(zap.String("env", environment)))

	return nil
}
