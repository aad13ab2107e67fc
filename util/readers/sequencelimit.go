package readers

import (
	"io"
)

// SequenceLimit reads from 'readers' in sequence up to a limit of 'size'
func SequenceLimit(size int64, readers ...io.Reader) io.Reader {
	return io.LimitReader(
		io.MultiReader(readers...),
		size)
}

// ReplacedReader reads base, but with the bytes from offset onwards overwritten
// by the content of replacement. The total length is unchanged unless the
// replacement runs past the end of base.
func ReplacedReader(offset int64, base io.Reader, replacement []byte) io.Reader {
	return io.MultiReader(
		io.LimitReader(base, offset),
		&skipReader{
			replacement: replacement,
			base:        base,
			skip:        int64(len(replacement)),
		},
	)
}

type skipReader struct {
	replacement []byte
	base        io.Reader
	skip        int64
}

func (s *skipReader) Read(p []byte) (int, error) {
	if len(s.replacement) > 0 {
		n := copy(p, s.replacement)
		s.replacement = s.replacement[n:]
		return n, nil
	}

	if s.skip > 0 {
		skipped, err := io.CopyN(io.Discard, s.base, s.skip)
		s.skip -= skipped
		if err != nil {
			return 0, err
		}
	}

	return s.base.Read(p)
}
