// Package rng provides the seeded random stream that drives level generation
// and every later spawn decision of a session.
package rng

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// Source produces a sequence of unsigned 32-bit draws.
// Level generation and spawn placement depend on this rather than on a
// concrete generator so tests can feed fixed sequences.
type Source interface {
	Uint32() uint32
}

// blockSize is the size of one ChaCha20 keystream block in bytes.
const blockSize = 64

// Stream is a ChaCha20 keystream keyed by a Seed with an all-zero nonce.
// Each draw consumes the next little-endian 32-bit word of the keystream.
// A Stream is not safe for concurrent use.
type Stream struct {
	cipher *chacha20.Cipher
	block  [blockSize]byte
	offset int
	draws  uint64
}

// NewStream creates a stream positioned at the first word of the keystream.
func NewStream(seed Seed) *Stream {
	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce[:])
	if err != nil {
		// Key and nonce sizes are fixed by the types above.
		panic(err)
	}
	return &Stream{cipher: c, offset: blockSize}
}

// Uint32 returns the next draw and advances the stream.
func (s *Stream) Uint32() uint32 {
	if s.offset == blockSize {
		clear(s.block[:])
		s.cipher.XORKeyStream(s.block[:], s.block[:])
		s.offset = 0
	}
	v := binary.LittleEndian.Uint32(s.block[s.offset:])
	s.offset += 4
	s.draws++
	return v
}

// Draws returns how many values have been drawn so far.
func (s *Stream) Draws() uint64 {
	return s.draws
}

// Intn returns a draw reduced modulo n, the way every spawn decision samples
// from a candidate list. n must be positive.
func Intn(src Source, n int) int {
	if n <= 0 {
		panic("rng: Intn called with non-positive n")
	}
	return int(src.Uint32() % uint32(n))
}

// Sequence replays a fixed list of draws, wrapping around at the end.
type Sequence struct {
	values []uint32
	next   int
}

// NewSequence returns a Source that yields values in order, forever.
func NewSequence(values ...uint32) *Sequence {
	if len(values) == 0 {
		values = []uint32{0}
	}
	return &Sequence{values: values}
}

// Uint32 returns the next value of the sequence.
func (s *Sequence) Uint32() uint32 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
