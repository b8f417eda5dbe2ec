package application

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/eugenenazirov/milligrep/internal/config"
	"github.com/eugenenazirov/milligrep/internal/search"
	"github.com/eugenenazirov/milligrep/internal/storage"
)

// App encapsulates the dependencies of a search run.
type App struct {
	reader storage.Reader
	stdout io.Writer
	logger *zap.Logger
}

// New initializes the application. A nil logger disables diagnostics.
func New(reader storage.Reader, stdout io.Writer, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &App{
		reader: reader,
		stdout: stdout,
		logger: logger,
	}
}

// Run loads cfg.Filename, searches it for cfg.Query and writes each matching
// line to stdout. A read failure is returned as *storage.FileReadError before
// anything is written. A write failure stops the run; lines already written
// stay written.
func (a *App) Run(cfg config.Config) error {
	contents, err := a.reader.ReadText(cfg.Filename)
	if err != nil {
		return err
	}

	a.logger.Debug("file loaded",
		zap.String("file", cfg.Filename),
		zap.Int("bytes", len(contents)),
	)

	matches := search.New(cfg.CaseSensitive).Search(cfg.Query, contents)

	a.logger.Debug("search finished",
		zap.String("query", cfg.Query),
		zap.Bool("case_sensitive", cfg.CaseSensitive),
		zap.Int("matches", len(matches)),
	)

	for _, line := range matches {
		if _, err := io.WriteString(a.stdout, line+"\n"); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	return nil
}
