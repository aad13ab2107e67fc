package blocks

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/Redundancy/go-xorsum/util/readers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadBlock(t *testing.T) {
	b := PadBlock()

	require.Len(t, b, BlockSize)
	assert.Equal(t, bytes.Repeat([]byte{'#'}, BlockSize), []byte(b))
}

func TestPadShortInput(t *testing.T) {
	b := Pad([]byte{0xFF, 0x01})

	require.Len(t, b, BlockSize)
	assert.Equal(t, byte(0xFF), b[0])
	assert.Equal(t, byte(0x01), b[1])

	for i := 2; i < BlockSize; i++ {
		assert.Equal(t, PadByte, b[i], "byte %v", i)
	}
}

func TestLoadEmptyInputIsOnePadBlock(t *testing.T) {
	result, err := Load(bytes.NewReader(nil))

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, PadBlock(), result[0])
}

func TestLoadExactMultipleHasNoPaddingBlock(t *testing.T) {
	const BLOCK_COUNT = 3

	result, err := Load(readers.ZeroReader(BLOCK_COUNT * BlockSize))

	require.NoError(t, err)
	require.Len(t, result, BLOCK_COUNT)

	for i, b := range result {
		assert.Equal(t, make(Block, BlockSize), b, "block %v", i)
	}
}

func TestLoadPartialBlockAtEnd(t *testing.T) {
	input := readers.SequenceLimit(
		BlockSize+1,
		readers.ZeroReader(BlockSize),
		readers.UniformReader(0xFF, 1),
	)

	result, err := Load(input)

	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, make(Block, BlockSize), result[0])
	assert.Equal(t, Pad([]byte{0xFF}), result[1])
}

func TestLoadPreservesOrder(t *testing.T) {
	const SIZE = 10*BlockSize + 17

	content, err := io.ReadAll(readers.NewSizedNonRepeatingSequence(0, SIZE))
	require.NoError(t, err)

	result, err := Load(bytes.NewReader(content))
	require.NoError(t, err)
	require.Len(t, result, 11)

	var joined []byte
	for _, b := range result {
		require.Len(t, b, BlockSize)
		joined = append(joined, b...)
	}

	assert.Equal(t, content, joined[:SIZE])
	assert.Equal(t, bytes.Repeat([]byte{PadByte}, len(joined)-SIZE), joined[SIZE:])
}

func TestLoadHandlesShortReads(t *testing.T) {
	const SIZE = 3*BlockSize + 5

	whole, err := Load(readers.OneReader(SIZE))
	require.NoError(t, err)

	trickled, err := Load(readers.ByteAtATime(readers.OneReader(SIZE)))
	require.NoError(t, err)

	assert.Equal(t, whole, trickled)
}

func TestLoadReadFailureReturnsNothing(t *testing.T) {
	failure := errors.New("read failed")

	result, err := Load(readers.ErrorAfter(2*BlockSize+3, readers.OneReader(1000), failure))

	assert.Nil(t, result)
	assert.ErrorIs(t, err, failure)
}

func TestScanStopsOnCallbackError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0

	err := Scan(readers.ZeroReader(5*BlockSize), func(Block) error {
		calls++
		if calls == 2 {
			return stop
		}
		return nil
	})

	assert.Equal(t, stop, err)
	assert.Equal(t, 2, calls)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.bin")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0o644))

	result, err := LoadFile(path)

	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, Pad([]byte("hello")), result[0])
}

func TestLoadFileMissing(t *testing.T) {
	result, err := LoadFile(filepath.Join(t.TempDir(), "missing"))

	assert.Nil(t, result)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestLoadFileEmptyPath(t *testing.T) {
	_, err := LoadFile("")
	assert.Equal(t, ErrEmptyPath, err)
}

func TestCount(t *testing.T) {
	cases := []struct {
		size     int64
		expected int64
	}{
		{0, 1},
		{1, 1},
		{BlockSize, 1},
		{BlockSize + 1, 2},
		{10 * BlockSize, 10},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, Count(c.size), "size %v", c.size)
	}
}
