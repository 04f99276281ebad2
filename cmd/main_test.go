package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"

	"UMS_TALENTA_BACK-END/internal/config"
)

func TestLoggerConfig(t *testing.T) {
	zc, err := loggerConfig(config.LogConfig{Level: "info", Format: "prod"})
	require.NoError(t, err)
	assert.Equal(t, "json", zc.Encoding)
	assert.Equal(t, zapcore.InfoLevel, zc.Level.Level())

	zc, err = loggerConfig(config.LogConfig{Level: "debug", Format: "dev"})
	require.NoError(t, err)
	assert.Equal(t, "console", zc.Encoding)
	assert.Equal(t, zapcore.DebugLevel, zc.Level.Level())

	_, err = loggerConfig(config.LogConfig{Level: "loud", Format: "dev"})
	assert.Error(t, err)
}
