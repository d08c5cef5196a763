package logging_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jroosing/proxypanel/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigure_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "WARN", Output: &buf})

	logger.Info("hidden")
	logger.Warn("shown")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown")
}

func TestConfigure_CaseInsensitiveLevel(t *testing.T) {
	for _, level := range []string{"debug", "Debug", "DEBUG", "DeBuG"} {
		t.Run(level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := logging.Configure(logging.Config{Level: level, Output: &buf})
			logger.Debug("visible at debug")
			assert.Contains(t, buf.String(), "visible at debug")
		})
	}
}

func TestConfigure_InvalidLevelDefaultsToInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "INVALID", Output: &buf})

	logger.Debug("hidden")
	logger.Info("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestConfigure_StructuredJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{
		Level:            "INFO",
		Structured:       true,
		StructuredFormat: "json",
		Output:           &buf,
	})

	logger.Info("hello")
	line := strings.TrimSpace(buf.String())
	require.NotEmpty(t, line)
	assert.True(t, strings.HasPrefix(line, "{"), "expected JSON output, got %q", line)
}

func TestConfigure_ExtraFields(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{
		Level:       "INFO",
		ExtraFields: map[string]string{"app": "proxypanel"},
		Output:      &buf,
	})

	logger.Info("tagged")
	assert.Contains(t, buf.String(), "proxypanel")
}

func TestConfigure_IncludePID(t *testing.T) {
	var buf bytes.Buffer
	logger := logging.Configure(logging.Config{Level: "INFO", IncludePID: true, Output: &buf})

	logger.Info("with pid")
	assert.Contains(t, buf.String(), "pid")
}
