/*
Package filechecksum generates and verifies the checking data of a file: the XOR fold of all of its blocks,
encoded as an uppercase hex string of fingerprint.Size characters.

Checking data is an integrity check for accidental corruption. It is not a cryptographic hash, and verification
is a plain string comparison rather than a constant time one.

Failures are returned as errors of the types in errors.go, use OutcomeOf to classify them.
*/
package filechecksum

import (
	"io"
	"log/slog"
	"os"

	"github.com/Redundancy/go-xorsum/blocks"
	"github.com/Redundancy/go-xorsum/fingerprint"
	"github.com/Redundancy/go-xorsum/xorfold"
)

// Files larger than this are folded as they are read, rather than
// loading the whole block sequence first. Both give the same result.
const DefaultFoldInPlaceSize = 64 * 1024 * 1024

// NewFileChecksumGenerator returns a generator that logs to logger.
// A nil logger discards everything.
func NewFileChecksumGenerator(logger *slog.Logger) *FileChecksumGenerator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	return &FileChecksumGenerator{
		Logger:          logger,
		FoldInPlaceSize: DefaultFoldInPlaceSize,
	}
}

// FileChecksumGenerator holds no per-file state, and can be used for several
// files concurrently.
type FileChecksumGenerator struct {
	Logger *slog.Logger

	// See DefaultFoldInPlaceSize. Zero or less folds every file as it is read.
	FoldInPlaceSize int64
}

// Generate returns the checking data for filename
func (check *FileChecksumGenerator) Generate(filename string) (string, error) {
	if filename == "" {
		return "", &LoadError{Path: filename, Err: blocks.ErrEmptyPath}
	}

	f, err := os.Open(filename)
	if err != nil {
		return "", &LoadError{Path: filename, Err: err}
	}
	defer f.Close()

	return check.GenerateFile(f)
}

// GenerateFile returns the checking data for an open file, read from its
// current offset. The caller remains responsible for closing f.
func (check *FileChecksumGenerator) GenerateFile(f *os.File) (string, error) {
	info, err := f.Stat()
	if err != nil {
		return "", &LoadError{Path: f.Name(), Err: err}
	}

	return check.GenerateSized(f.Name(), f, info.Size())
}

// GenerateSized returns the checking data for size bytes read from r. Inputs
// larger than FoldInPlaceSize are folded as they are read, smaller ones are
// loaded into a block sequence first. name is only used in errors and logs.
func (check *FileChecksumGenerator) GenerateSized(name string, r io.Reader, size int64) (string, error) {
	if size > check.FoldInPlaceSize {
		return check.GenerateFromReader(name, r)
	}

	sequence, err := blocks.Load(r)
	if err != nil {
		return "", &LoadError{Path: name, Err: err}
	}

	check.Logger.Debug(
		"loaded file blocks",
		slog.String("path", name),
		slog.Int("blocks", len(sequence)),
		slog.Int64("bytes", size),
	)

	return check.encode(name, xorfold.Fold(sequence))
}

// GenerateFromReader returns the checking data for the content of r, folding
// each block as soon as it has been read. name is only used in errors and logs.
func (check *FileChecksumGenerator) GenerateFromReader(name string, r io.Reader) (string, error) {
	folder := xorfold.New()

	err := blocks.Scan(r, func(b blocks.Block) error {
		folder.AddBlock(b)
		return nil
	})

	if err != nil {
		return "", &LoadError{Path: name, Err: err}
	}

	check.Logger.Debug(
		"folded file blocks",
		slog.String("path", name),
		slog.Int("blocks", folder.Folded()),
	)

	return check.encode(name, folder.Result())
}

func (check *FileChecksumGenerator) encode(name string, result []byte) (string, error) {
	if len(result) != blocks.BlockSize {
		return "", &SizeMismatchError{
			Path:     name,
			Got:      len(result),
			Want:     blocks.BlockSize,
			Internal: true,
		}
	}

	return fingerprint.Encode(result), nil
}

var defaultGenerator = NewFileChecksumGenerator(nil)

// Generate uses a generator that does not log
func Generate(filename string) (string, error) {
	return defaultGenerator.Generate(filename)
}

// Verify uses a generator that does not log
func Verify(filename string, checkingData string) error {
	return defaultGenerator.Verify(filename, checkingData)
}
