package filechecksum

import (
	"errors"
	"fmt"
)

// Outcome classifies the result of generating or verifying checking data
type Outcome int

const (
	Success Outcome = iota
	LoadFailure
	SizeMismatch
	ContentMismatch
)

func (o Outcome) String() string {
	switch o {
	case Success:
		return "success"
	case LoadFailure:
		return "load failure"
	case SizeMismatch:
		return "size mismatch"
	case ContentMismatch:
		return "content mismatch"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// LoadError is returned when the file could not be opened or read
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load %v: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// SizeMismatchError reports a length that is not the one required.
// Internal is set when the folded block itself has the wrong size, rather
// than the checking data supplied by the caller.
type SizeMismatchError struct {
	Path     string
	Got      int
	Want     int
	Internal bool
}

func (e *SizeMismatchError) Error() string {
	if e.Internal {
		return fmt.Sprintf(
			"incorrect result block size %v has been created for %v (expected %v)",
			e.Got,
			e.Path,
			e.Want,
		)
	}

	return fmt.Sprintf(
		"checking data size %v differs from result size %v for %v",
		e.Got,
		e.Want,
		e.Path,
	)
}

// ContentMismatchError is returned when the checking data has the right size,
// but does not match the content of the file
type ContentMismatchError struct {
	Path string
}

func (e *ContentMismatchError) Error() string {
	return fmt.Sprintf("%v differs from the checking data", e.Path)
}

// OutcomeOf maps an error returned from this package to its Outcome.
// Errors of any other kind are treated as load failures.
func OutcomeOf(err error) Outcome {
	var (
		sizeErr    *SizeMismatchError
		contentErr *ContentMismatchError
	)

	switch {
	case err == nil:
		return Success
	case errors.As(err, &sizeErr):
		return SizeMismatch
	case errors.As(err, &contentErr):
		return ContentMismatch
	default:
		return LoadFailure
	}
}
