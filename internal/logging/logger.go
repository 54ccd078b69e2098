// Package logging builds the leveled stderr logger used by the command.
package logging

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/example/sales-analyzer/internal/config"
)

// New returns a logger writing to w at the level and format in cfg.
func New(w io.Writer, cfg config.LoggingConfig) (*log.Logger, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	var formatter log.Formatter
	switch cfg.Format {
	case "text", "":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	default:
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}

	return log.NewWithOptions(w, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		Prefix:          "sales-analyzer",
	}), nil
}
