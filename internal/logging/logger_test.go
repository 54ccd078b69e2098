package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/example/sales-analyzer/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSON(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.LoggingConfig{Level: "info", Format: "json"})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("chart saved", "panels", 6)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "chart saved", entry["msg"])
	assert.Equal(t, float64(6), entry["panels"])
	assert.NotContains(t, buf.String(), "hidden")
}

func TestNew_Text(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(&buf, config.LoggingConfig{Level: "debug", Format: "text"})
	require.NoError(t, err)

	logger.Debug("loading transactions", "path", "ventas.csv")
	assert.Contains(t, buf.String(), "loading transactions")
	assert.Contains(t, buf.String(), "ventas.csv")
}

func TestNew_Invalid(t *testing.T) {
	_, err := New(&bytes.Buffer{}, config.LoggingConfig{Level: "loud", Format: "text"})
	assert.Error(t, err)

	_, err = New(&bytes.Buffer{}, config.LoggingConfig{Level: "info", Format: "xml"})
	assert.ErrorContains(t, err, "invalid log format")
}
