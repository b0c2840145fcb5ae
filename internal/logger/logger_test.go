package logger_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/crichub/cricket-stats-service/internal/logger"
)

func TestNew_DefaultsAreValid(t *testing.T) {
	cfg := &logger.Config{}
	_, err := logger.New(cfg)
	require.NoError(t, err)
	require.Equal(t, "prod", cfg.Env)
	require.Equal(t, "info", cfg.Level)
	require.Equal(t, "json", cfg.Format)
}

func TestNew_DevDefaultsToConsole(t *testing.T) {
	cfg := &logger.Config{Env: "dev"}
	_, err := logger.New(cfg)
	require.NoError(t, err)
	require.Equal(t, "debug", cfg.Level)
	require.Equal(t, "console", cfg.Format)
	require.True(t, cfg.WithCaller)
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	cfg := &logger.Config{Level: "loud"}
	_, err := logger.New(cfg)
	require.Error(t, err)
}

func TestNew_RejectsUnknownFormat(t *testing.T) {
	cfg := &logger.Config{Format: "xml"}
	_, err := logger.New(cfg)
	require.Error(t, err)
}
