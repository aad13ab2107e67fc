package readers

import (
	"io"
)

type failingReader struct {
	r   io.Reader
	err error
}

func (f *failingReader) Read(p []byte) (n int, err error) {
	n, err = f.r.Read(p)
	if err == io.EOF {
		err = f.err
	}
	return n, err
}

// ErrorAfter returns the first length bytes of base, then fails every
// subsequent read with err instead of io.EOF
func ErrorAfter(length int64, base io.Reader, err error) io.Reader {
	return &failingReader{
		r:   io.LimitReader(base, length),
		err: err,
	}
}

type byteAtATimeReader struct {
	r io.Reader
}

func (b byteAtATimeReader) Read(p []byte) (int, error) {
	if len(p) > 1 {
		p = p[:1]
	}
	return b.r.Read(p)
}

// ByteAtATime never returns more than a single byte from one Read call
func ByteAtATime(base io.Reader) io.Reader {
	return byteAtATimeReader{base}
}
