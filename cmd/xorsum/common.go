package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/Redundancy/go-xorsum/blocks"
	"github.com/Redundancy/go-xorsum/filechecksum"
	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"
)

const (
	exitSuccess          = 0
	exitInvalidParameter = 1
	exitFileProcessing   = 2
	exitIncorrectFile    = 3
)

func usageError(message string) error {
	return cli.Exit(
		fmt.Sprintf("%v\nUSAGE: %v", message, usage),
		exitInvalidParameter,
	)
}

// exitCode maps errors from filechecksum onto the process exit code
func exitCode(err error) int {
	switch filechecksum.OutcomeOf(err) {
	case filechecksum.Success:
		return exitSuccess
	case filechecksum.ContentMismatch:
		return exitIncorrectFile
	case filechecksum.SizeMismatch:
		var sizeErr *filechecksum.SizeMismatchError
		if errors.As(err, &sizeErr) && sizeErr.Internal {
			return exitFileProcessing
		}
		return exitIncorrectFile
	default:
		return exitFileProcessing
	}
}

func formatFileError(filename string, err error) error {
	switch {
	case errors.Is(err, blocks.ErrEmptyPath):
		return err
	case os.IsNotExist(err):
		return fmt.Errorf("Could not find %v: %v", filename, err)
	case os.IsPermission(err):
		return fmt.Errorf("Could not open %v (permission denied): %v", filename, err)
	default:
		return fmt.Errorf("Unable to process %v: %v", filename, err)
	}
}

// processingError converts an error from filechecksum into an exit error,
// giving file errors the same descriptions as the rest of the tool
func processingError(filename string, err error) error {
	message := err.Error()

	var loadErr *filechecksum.LoadError
	if errors.As(err, &loadErr) {
		message = formatFileError(filename, loadErr.Err).Error()
	}

	return cli.Exit(message, exitCode(err))
}

// openInput opens filename for reading, and returns its size.
// Failures are returned as *filechecksum.LoadError.
func openInput(filename string) (*os.File, int64, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, 0, &filechecksum.LoadError{Path: filename, Err: err}
	}

	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, 0, &filechecksum.LoadError{Path: filename, Err: err}
	}

	return f, info.Size(), nil
}

// logCompletion reports how long processing took, and how much was read.
// size is negative when the file could not be opened.
func logCompletion(filename string, start time.Time, size int64, err error) {
	attrs := []any{
		slog.String("path", filename),
		slog.Duration("elapsed", time.Since(start)),
		slog.String("outcome", filechecksum.OutcomeOf(err).String()),
	}

	if size >= 0 {
		attrs = append(
			attrs,
			slog.String("size", humanize.Bytes(uint64(size))),
			slog.String("blocks", humanize.Comma(blocks.Count(size))),
		)
	}

	logger.Info("processing completed", attrs...)
}
