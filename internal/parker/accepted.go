package parker

import "sync/atomic"

// acceptedWords is the reader/integrator hand-off area: a fixed-capacity,
// preallocated pair of parallel arrays indexed by a stable "position" that
// readers hand out via atomic fetch-and-add.
//
// text holds the packed WordLen-byte spelling of each accepted word.
// staging holds each word's Mask, published with a release store once the
// text has been written; a zero entry means "reserved but not yet
// published" and the integrator busy-polls it (see integrator.go). No
// accepted word ever has a zero Mask (popcount is always WordLen), so zero
// is an unambiguous "not yet written" sentinel.
type acceptedWords struct {
	count   atomic.Uint32
	text    []byte
	staging []atomic.Uint32
}

// newAcceptedWords allocates room for up to capacity accepted words,
// including duplicate spellings and anagrams that the integrator will
// later collapse.
func newAcceptedWords(capacity int) *acceptedWords {
	return &acceptedWords{
		text:    make([]byte, capacity*WordLen),
		staging: make([]atomic.Uint32, capacity),
	}
}

// reserve atomically claims the next free position.
func (a *acceptedWords) reserve() uint32 {
	return a.count.Add(1) - 1
}

// publish writes word's bytes at pos and then releases its mask into the
// staging slot, making both visible to the integrator. word must be
// exactly WordLen bytes.
func (a *acceptedWords) publish(pos uint32, word []byte, key Mask) {
	copy(a.text[int(pos)*WordLen:], word)
	a.staging[pos].Store(uint32(key))
}

// maskAt returns the mask published at pos, or 0 if not yet published.
func (a *acceptedWords) maskAt(pos uint32) Mask {
	return Mask(a.staging[pos].Load())
}

// textAt returns the WordLen-byte spelling stored at pos.
func (a *acceptedWords) textAt(pos uint32) []byte {
	return a.text[int(pos)*WordLen : int(pos)*WordLen+WordLen]
}

// reservedCount returns the number of positions reserved so far. Because
// reservation (count) and publication (staging) are independent steps, a
// position below reservedCount() may still read as unpublished briefly.
func (a *acceptedWords) reservedCount() uint32 {
	return a.count.Load()
}
