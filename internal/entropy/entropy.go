// Package entropy reads true-random bytes from the operating system. It is
// only used to pick seeds; generated streams never consult it.
package entropy

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sync"
)

// ErrUnavailable is returned when the underlying entropy source cannot be read.
var ErrUnavailable = errors.New("entropy: source unavailable")

// Reader fills buffers from an entropy source. It is safe for concurrent use.
type Reader struct {
	mu sync.Mutex
	r  io.Reader
}

// NewReader returns a Reader over r. A nil r reads from crypto/rand.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		r = rand.Reader
	}
	return &Reader{r: r}
}

// Fill reads exactly len(buf) bytes into buf.
func (e *Reader) Fill(buf []byte) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, err := io.ReadFull(e.r, buf); err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

// Seed returns a seed decoded from 8 bytes of entropy.
func (e *Reader) Seed() (int64, error) {
	var buf [8]byte
	if err := e.Fill(buf[:]); err != nil {
		return 0, err
	}
	return int64(binary.LittleEndian.Uint64(buf[:])), nil
}

var system = NewReader(nil)

// Fill reads len(buf) bytes from the operating system.
func Fill(buf []byte) error {
	return system.Fill(buf)
}

// Seed returns a seed drawn from the operating system.
func Seed() (int64, error) {
	return system.Seed()
}
