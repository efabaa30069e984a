package parker

import "math/bits"

// WordLen is the only word length this solver understands. The Parker 5x5
// puzzle is defined in terms of five-letter words; the design deliberately
// does not generalize to other lengths.
const WordLen = 5

// Letters is the size of the alphabet a Mask can represent.
const Letters = 26

// Mask is a 26-bit representation of a set of lowercase letters: bit i is
// set iff the letter 'a'+i is present. A word with five distinct letters
// has Mask.Popcount() == WordLen.
type Mask uint32

// letterMask returns the single-bit Mask for the letter at ordinal i.
func letterMask(i int) Mask {
	return 1 << Mask(i)
}

// keyOf computes the Mask for a WordLen-byte slice of lowercase letters.
// The caller must have already validated that w consists of exactly
// WordLen bytes in ['a','z']; keyOf does no bounds or range checking.
func keyOf(w []byte) Mask {
	var m Mask
	for _, c := range w {
		m |= Mask(1) << Mask(c-'a')
	}
	return m
}

// Popcount reports how many letters are set in m.
func (m Mask) Popcount() int {
	return bits.OnesCount32(uint32(m))
}

// valid reports whether m could be the mask of an accepted word: exactly
// WordLen distinct letters.
func (m Mask) valid() bool {
	return m.Popcount() == WordLen
}

// has reports whether m contains every letter set in sub.
func (m Mask) has(sub Mask) bool {
	return m&sub == sub
}

// disjoint reports whether m and other share no letters.
func (m Mask) disjoint(other Mask) bool {
	return m&other == 0
}
