// Package logger_test contains tests for the logger package
package logger_test

import (
	"log/slog"
	"strings"
	"testing"

	"github.com/phrazzld/knesset/internal/config"
	"github.com/phrazzld/knesset/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// restoreDefault resets the slog default after a test that calls Setup.
func restoreDefault(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })
}

func TestSetupJSONLevels(t *testing.T) {
	restoreDefault(t)

	testCases := []struct {
		level        string
		debugVisible bool
		infoVisible  bool
		warnVisible  bool
	}{
		{"debug", true, true, true},
		{"info", false, true, true},
		{"INFO", false, true, true},
		{"warn", false, false, true},
		{"error", false, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			buf := &logger.TestLogBuffer{}
			l, err := logger.SetupWithWriter(config.LogConfig{Level: tc.level, Format: "json"}, buf)
			require.NoError(t, err)
			require.NotNil(t, l)

			l.Debug("debug message")
			l.Info("info message")
			l.Warn("warn message")

			logs := buf.String()
			assert.Equal(t, tc.debugVisible, strings.Contains(logs, "debug message"))
			assert.Equal(t, tc.infoVisible, strings.Contains(logs, "info message"))
			assert.Equal(t, tc.warnVisible, strings.Contains(logs, "warn message"))
		})
	}
}

func TestSetupInvalidLevelFallsBackToInfo(t *testing.T) {
	restoreDefault(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "verbose", Format: "json"}, buf)
	require.NoError(t, err)

	logger.AssertLogContains(t, buf, "invalid log level configured")
	buf.Reset()

	l.Debug("hidden")
	l.Info("shown")
	assert.NotContains(t, buf.String(), "hidden")
	logger.AssertLogField(t, buf, "msg", "shown")
}

func TestSetupInstallsDefault(t *testing.T) {
	restoreDefault(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "info", Format: "json"}, buf)
	require.NoError(t, err)

	assert.Same(t, l, slog.Default())

	slog.Info("through default", "law_id", 3)
	logger.AssertLogField(t, buf, "law_id", float64(3))
}

func TestSetupTextFormat(t *testing.T) {
	restoreDefault(t)

	buf := &logger.TestLogBuffer{}
	l, err := logger.SetupWithWriter(config.LogConfig{Level: "info", Format: "text"}, buf)
	require.NoError(t, err)

	l.Info("support accepted", "member", "Knesset Member A B")

	logs := buf.String()
	assert.Contains(t, logs, "support accepted")
	assert.Contains(t, logs, "Knesset Member A B")
	_, err = buf.GetLogEntries()
	assert.Error(t, err, "text output is not JSON")
}

func TestGetTestLogger(t *testing.T) {
	l, buf := logger.GetTestLogger(t)

	l.Debug("captured", "member_id", 0)

	entries, err := buf.GetLogEntries()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "captured", entries[0]["msg"])
	assert.Equal(t, float64(0), entries[0]["member_id"])
}
