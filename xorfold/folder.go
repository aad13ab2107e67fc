package xorfold

import (
	"hash"

	"github.com/Redundancy/go-xorsum/blocks"
)

var _ hash.Hash = (*Folder)(nil)

// New returns a Folder ready to accept blocks or bytes
func New() *Folder {
	f := &Folder{}
	f.Reset()
	return f
}

// Folder is an incremental version of Fold, which does not need the whole
// block sequence in memory. It implements hash.Hash, padding any partial block
// that has been written when Sum is called.
//
// Folding through AddBlock and Write can be mixed, but AddBlock must only be
// called when no partial block is pending.
//
// A Folder is not safe for concurrent use.
type Folder struct {
	acc     []byte
	pending []byte
	folded  int
}

// AddBlock folds one complete block into the accumulator
func (f *Folder) AddBlock(b blocks.Block) {
	f.acc = XOR(f.acc, b)
	f.folded++
}

// Folded is the number of blocks that have been folded so far
func (f *Folder) Folded() int {
	return f.folded
}

// cannot be called concurrently
func (f *Folder) Write(p []byte) (n int, err error) {
	n = len(p)

	if len(f.pending) > 0 {
		take := blocks.BlockSize - len(f.pending)
		if take > len(p) {
			take = len(p)
		}

		f.pending = append(f.pending, p[:take]...)
		p = p[take:]

		if len(f.pending) < blocks.BlockSize {
			return n, nil
		}

		f.AddBlock(f.pending)
		f.pending = f.pending[:0]
	}

	for len(p) >= blocks.BlockSize {
		f.AddBlock(p[:blocks.BlockSize])
		p = p[blocks.BlockSize:]
	}

	f.pending = append(f.pending, p...)

	return n, nil
}

// Result returns the folded block for everything added so far.
// It does not change the underlying state.
func (f *Folder) Result() []byte {
	switch {
	case len(f.pending) > 0:
		return XOR(f.acc, blocks.Pad(f.pending))
	case f.folded == 0:
		// empty input still counts as a single padding block
		return XOR(f.acc, blocks.PadBlock())
	}

	result := make([]byte, len(f.acc))
	copy(result, f.acc)
	return result
}

// Sum appends the current result to b and returns the resulting slice.
// It does not change the underlying hash state.
func (f *Folder) Sum(b []byte) []byte {
	return append(b, f.Result()...)
}

func (f *Folder) Reset() {
	f.acc = blocks.PadBlock()
	f.pending = make([]byte, 0, blocks.BlockSize)
	f.folded = 0
}

// the number of bytes
func (f *Folder) Size() int {
	return blocks.BlockSize
}

// The most efficient byte length to call Write with
func (f *Folder) BlockSize() int {
	return blocks.BlockSize
}
