/*
Package blocks splits the content of a file into fixed size blocks. It is the input side of the xorsum
pipeline: every other package works in terms of the Block values produced here.

A final partial block is padded on the right with PadByte. Input of zero length still produces exactly one
block (made entirely of PadByte), but input that is an exact multiple of BlockSize is never followed by an
extra padding block.
*/
package blocks

import (
	"errors"
	"io"
	"os"
)

const (
	// BlockSize is the number of bytes in every block that Scan produces
	BlockSize = 64

	// PadByte fills the tail of a short final block, and seeds the fold
	PadByte byte = '#'
)

var ErrEmptyPath = errors.New("no file name was given")

// A Block is a BlockSize run of file content.
// Blocks handed out by Scan are never modified afterwards.
type Block []byte

// PadBlock returns a new block made entirely of PadByte
func PadBlock() Block {
	b := make(Block, BlockSize)
	for i := range b {
		b[i] = PadByte
	}
	return b
}

// Pad copies partial into a new block, filling the remainder with PadByte.
// partial is truncated if it is longer than BlockSize.
func Pad(partial []byte) Block {
	b := PadBlock()
	copy(b, partial)
	return b
}

// Scan reads r one block at a time, and calls fn for every block in order.
// An error returned from fn stops the scan and is returned unchanged, as is
// any read error other than the end of input.
func Scan(r io.Reader, fn func(Block) error) error {
	buffer := make([]byte, BlockSize)
	emitted := 0

	for {
		n, err := io.ReadFull(r, buffer)

		switch {
		case err == io.EOF:
			// nothing more to read, and nothing left in the buffer
			if emitted == 0 {
				return fn(PadBlock())
			}
			return nil

		case err == io.ErrUnexpectedEOF:
			return fn(Pad(buffer[:n]))

		case err != nil:
			return err
		}

		block := make(Block, BlockSize)
		copy(block, buffer)

		if err = fn(block); err != nil {
			return err
		}

		emitted++
	}
}

// Load reads all of r into a Block sequence in input order.
// Nothing is returned alongside an error.
func Load(r io.Reader) ([]Block, error) {
	result := make([]Block, 0, 20)

	err := Scan(r, func(b Block) error {
		result = append(result, b)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return result, nil
}

// LoadFile opens filename read-only and loads its blocks.
// The file is always closed before returning.
func LoadFile(filename string) ([]Block, error) {
	if filename == "" {
		return nil, ErrEmptyPath
	}

	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Load(f)
}

// Count is the number of blocks Scan produces for size bytes of input
func Count(size int64) int64 {
	if size <= 0 {
		return 1
	}
	return (size + BlockSize - 1) / BlockSize
}
