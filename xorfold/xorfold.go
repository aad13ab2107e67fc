/*
Package xorfold combines a sequence of blocks into a single block with a byte-wise XOR.

The accumulator starts out as a block of blocks.PadByte rather than zeros, so the seed takes part in the
result like any other block. XOR is associative and commutative: the order of the blocks does not change the
result, but every block must be folded exactly once.

The fold is not collision resistant. Changes that cancel out across blocks (the same bit flipped at the same
offset in two different blocks) are not detected.
*/
package xorfold

import (
	"github.com/Redundancy/go-xorsum/blocks"
)

// XOR returns a new slice holding a[i] ^ b[i].
// When the lengths differ, the result is as long as the shorter of the two.
func XOR(a, b []byte) []byte {
	size := len(a)
	if len(b) < size {
		size = len(b)
	}

	result := make([]byte, size)
	for i := 0; i < size; i++ {
		result[i] = a[i] ^ b[i]
	}

	return result
}

// Fold XORs every block in the sequence into a pad-seeded accumulator.
// A malformed (short) block shrinks the result, which callers are expected to check.
func Fold(sequence []blocks.Block) []byte {
	result := []byte(blocks.PadBlock())

	for _, block := range sequence {
		result = XOR(result, block)
	}

	return result
}
