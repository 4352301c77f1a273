package pkg

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
)

const (
	DefaultSource      = "README.md"
	DefaultDestination = "README.html"
)

var (
	ErrReadSource       = errors.New("failed to read source")
	ErrWriteDestination = errors.New("failed to write destination")
)

// Convert reads markdown from sourcePath and writes the rendered HTML to destinationPath.
// An existing destination is truncated. Nothing is written, if source can't be read.
func Convert(sourcePath, destinationPath string, opts Options) error {
	source, err := os.ReadFile(sourcePath)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrReadSource, sourcePath, err)
	}
	slog.Debug("read source", "path", sourcePath, "bytes", len(source))
	html, err := Render(source, opts)
	if err != nil {
		return fmt.Errorf("convert %s: %w", sourcePath, err)
	}
	if err = os.WriteFile(destinationPath, html, 0o644); err != nil {
		return fmt.Errorf("%w %s: %w", ErrWriteDestination, destinationPath, err)
	}
	slog.Debug("wrote destination", "path", destinationPath, "bytes", len(html))
	return nil
}

// IsIOError tells if err came from reading the source or writing the destination.
func IsIOError(err error) bool {
	return errors.Is(err, ErrReadSource) || errors.Is(err, ErrWriteDestination)
}
