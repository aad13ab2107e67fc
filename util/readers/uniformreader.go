package readers

import (
	"io"
)

// Reads a continuous stream of bytes with the same value, up to length.
// The final chunk is returned together with io.EOF, which io.Reader allows and
// which consumers of the stream have to cope with.
type uniformReader struct {
	value  byte
	length int
	read   int
}

func (r *uniformReader) Read(p []byte) (n int, err error) {
	readable := r.length - r.read
	read := len(p)

	if readable < read {
		read = readable
	}

	if read == 0 {
		return 0, io.EOF
	}

	for i := 0; i < read; i++ {
		p[i] = r.value
	}

	r.read += read

	if read == readable {
		return read, io.EOF
	}

	return read, nil
}

func UniformReader(value byte, length int) io.Reader {
	return &uniformReader{
		value:  value,
		length: length,
	}
}

func ZeroReader(length int) io.Reader {
	return UniformReader(0, length)
}

func OneReader(length int) io.Reader {
	return UniformReader(1, length)
}
