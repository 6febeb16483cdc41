package app

import (
	"fmt"
	"io"
	"os"

	"ringjump/internal/log"
)

// OpenLogger builds the logger described by LogLevel and LogFile. When no
// file is configured it writes to fallback. The returned closer is never nil.
func (c *Config) OpenLogger(fallback io.Writer) (*log.Logger, io.Closer, error) {
	level := log.LevelFromString(c.LogLevel)
	if c.LogFile == "" {
		return log.New(fallback, level), io.NopCloser(nil), nil
	}
	f, err := os.OpenFile(c.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, io.NopCloser(nil), fmt.Errorf("open log file: %w", err)
	}
	return log.New(f, level), f, nil
}
