// Package fingerprint renders a folded block as the text handed to, and checked for, users.
package fingerprint

import (
	"encoding/hex"
	"fmt"

	"github.com/Redundancy/go-xorsum/blocks"
)

// Size is the length of an encoded fingerprint of a full block
const Size = 2 * blocks.BlockSize

const upperHex = "0123456789ABCDEF"

// Encode writes two uppercase hex characters per byte, with no separators
func Encode(b []byte) string {
	output := make([]byte, 0, 2*len(b))

	for _, c := range b {
		output = append(output, upperHex[c>>4], upperHex[c&0x0F])
	}

	return string(output)
}

// Decode parses hex in either case back into the folded block
func Decode(s string) ([]byte, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid fingerprint %q: %w", s, err)
	}
	return b, nil
}
