package cmd

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/f3rmion/speedread/internal/config"
)

// setupLogging routes the default logger. The TUI owns the terminal, so
// verbose logs go to a file in dir and everything else is discarded.
func setupLogging(dir string, verbose bool) (func() error, error) {
	if !verbose {
		log.SetOutput(io.Discard)
		log.SetLevel(log.InfoLevel)
		return func() error { return nil }, nil
	}

	if err := config.EnsureConfigDir(dir); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, config.LogFile)
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	log.SetReportTimestamp(true)
	log.Debug("Logging initialized", "path", path)

	return f.Close, nil
}
