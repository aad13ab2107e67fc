package filechecksum

import (
	"io"
	"log/slog"
	"strings"
)

// Verify generates the checking data for filename and compares it with checkingData.
// A failure to generate is returned unchanged. Otherwise the result is nil,
// a *SizeMismatchError when the lengths differ, or a *ContentMismatchError.
func (check *FileChecksumGenerator) Verify(filename string, checkingData string) error {
	generated, err := check.Generate(filename)
	if err != nil {
		return err
	}

	return check.compare(filename, generated, checkingData)
}

// VerifySized is Verify for size bytes read from r, see GenerateSized
func (check *FileChecksumGenerator) VerifySized(name string, r io.Reader, size int64, checkingData string) error {
	generated, err := check.GenerateSized(name, r, size)
	if err != nil {
		return err
	}

	return check.compare(name, generated, checkingData)
}

func (check *FileChecksumGenerator) compare(name string, generated string, checkingData string) error {
	if len(generated) != len(checkingData) {
		check.Logger.Info(
			"checking data size differs from result size",
			slog.String("path", name),
			slog.Int("checking_data_size", len(checkingData)),
			slog.Int("result_size", len(generated)),
		)

		return &SizeMismatchError{
			Path: name,
			Got:  len(checkingData),
			Want: len(generated),
		}
	}

	if strings.Compare(generated, checkingData) != 0 {
		check.Logger.Info("data file differs from checking data", slog.String("path", name))
		return &ContentMismatchError{Path: name}
	}

	check.Logger.Debug("data file is equal to the checking data", slog.String("path", name))

	return nil
}
