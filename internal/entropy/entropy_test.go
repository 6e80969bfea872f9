package entropy

import (
	"bytes"
	"errors"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderFill(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9}))

	buf := make([]byte, 4)
	require.NoError(t, r.Fill(buf))
	assert.Equal(t, []byte{1, 2, 3, 4}, buf)

	require.NoError(t, r.Fill(buf))
	assert.Equal(t, []byte{5, 6, 7, 8}, buf)

	err := r.Fill(buf)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestReaderFillShortReads(t *testing.T) {
	// OneByteReader forces Fill to loop until the buffer is full.
	r := NewReader(iotest.OneByteReader(bytes.NewReader([]byte{9, 8, 7, 6})))
	buf := make([]byte, 4)
	require.NoError(t, r.Fill(buf))
	assert.Equal(t, []byte{9, 8, 7, 6}, buf)
}

func TestReaderSeed(t *testing.T) {
	r := NewReader(bytes.NewReader([]byte{1, 0, 0, 0, 0, 0, 0, 0}))
	seed, err := r.Seed()
	require.NoError(t, err)
	assert.Equal(t, int64(1), seed)

	r = NewReader(iotest.ErrReader(errors.New("device gone")))
	_, err = r.Seed()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.Contains(t, err.Error(), "device gone")
}

func TestSystemSource(t *testing.T) {
	a := make([]byte, 32)
	b := make([]byte, 32)
	require.NoError(t, Fill(a))
	require.NoError(t, Fill(b))
	assert.NotEqual(t, a, b)

	_, err := Seed()
	require.NoError(t, err)
}
