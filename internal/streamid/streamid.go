// Package streamid names server streams with time-sortable identifiers:
// a UUIDv7 encoded as 26 characters of Crockford base32.
package streamid

import (
	"fmt"
	"io"
	"strings"

	"github.com/coder/quartz"

	"github.com/lox/taprand/internal/entropy"
)

// Base32 alphabet used by TypeID (Crockford's base32)
const alphabet = "0123456789abcdefghjkmnpqrstvwxyz"

// Len is the length of an encoded ID.
const Len = 26

// Generator creates IDs from a clock and a source of random bytes.
type Generator struct {
	clock   quartz.Clock
	entropy *entropy.Reader
}

// NewGenerator returns a Generator. A nil reader uses operating system
// entropy.
func NewGenerator(clock quartz.Clock, r io.Reader) *Generator {
	return &Generator{clock: clock, entropy: entropy.NewReader(r)}
}

// New returns a fresh ID.
func (g *Generator) New() (string, error) {
	var uuid [16]byte

	// 48-bit millisecond timestamp, then 80 random bits with the version
	// and variant fields overwritten.
	ms := uint64(g.clock.Now().UnixMilli())
	for i := 0; i < 6; i++ {
		uuid[i] = byte(ms >> (40 - 8*i))
	}
	if err := g.entropy.Fill(uuid[6:]); err != nil {
		return "", err
	}
	uuid[6] = (uuid[6] & 0x0f) | 0x70
	uuid[8] = (uuid[8] & 0x3f) | 0x80

	return encode(uuid), nil
}

// encode writes the 128 bits as a 130-bit big-endian number with two
// leading zero bits, five bits per character.
func encode(uuid [16]byte) string {
	var hi, lo uint64
	for i := 0; i < 8; i++ {
		hi = hi<<8 | uint64(uuid[i])
		lo = lo<<8 | uint64(uuid[8+i])
	}

	out := make([]byte, Len)
	for i := range out {
		shift := uint(130 - 5*(i+1))
		var v uint64
		switch {
		case shift >= 64:
			v = hi >> (shift - 64)
		case shift == 0:
			v = lo
		default:
			v = lo>>shift | hi<<(64-shift)
		}
		out[i] = alphabet[v&0x1f]
	}
	return string(out)
}

// Validate checks that id could have been produced by a Generator.
func Validate(id string) error {
	if len(id) != Len {
		return fmt.Errorf("stream ID must be exactly %d characters, got %d", Len, len(id))
	}
	if id[0] > '7' {
		return fmt.Errorf("stream ID first character must be 0-7, got %c", id[0])
	}
	for i, c := range id {
		if !strings.ContainsRune(alphabet, c) {
			return fmt.Errorf("invalid character %c at position %d", c, i)
		}
	}
	return nil
}
