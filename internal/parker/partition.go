package parker

import (
	"math/bits"
	"sort"
	"sync/atomic"
)

// bucket is one letter's partition of the unique-keys array, as built by
// partitionIntoBuckets: every key in keys contains this bucket's letter
// and, by construction of the partitioning pass, no letter belonging to
// any earlier bucket. Unlike the source design's 0-terminated arrays
// sharing one backing array via raw pointers, keys is an exact-length Go
// slice — a slice already carries the (array, start, length) triple the
// design's DESIGN NOTES call out as an acceptable substitute for pointer
// arithmetic.
type bucket struct {
	mask       Mask
	tierMask   Mask
	keys       []Mask
	tierOffset int
	cursor     atomic.Int32
}

// length reports how many keys this bucket holds.
func (b *bucket) length() int {
	return len(b.keys)
}

// tier returns the slice of keys the solver should search first given the
// current running mask: once tierMask's letter has been used, only keys
// that do NOT also contain it are worth trying (the other tier is
// unreachable), so the search starts past tierOffset; otherwise it starts
// at 0, where the tierMask-containing keys are preferred because choosing
// one first retires the rarest letter earliest.
func (b *bucket) tier(used Mask) []Mask {
	if used&b.tierMask != 0 {
		return b.keys[b.tierOffset:]
	}
	return b.keys[:]
}

// partitionIntoBuckets implements the Frequency Partitioner (SPEC_FULL.md
// §4.3). It reorders keys in place and returns the 26 letter buckets plus
// the solver's minimum search depth frontier.
func partitionIntoBuckets(keys []Mask, freq [Letters]int) (buckets [Letters]bucket, minSearchDepth int) {
	order := ascendingFrequencyOrder(freq)
	tierMask := letterMask(order[Letters-1])

	take := 0
	for i := 0; i < Letters; i++ {
		if i == 6 {
			rescanDescending(order[6:], keys[take:])
		}

		letter := order[i]
		m := letterMask(letter)
		start := take
		j := take
		for k := take; k < len(keys); k++ {
			if keys[k]&m != 0 {
				keys[j], keys[k] = keys[k], keys[j]
				j++
			}
		}
		take = j

		buckets[i] = bucket{mask: m, tierMask: tierMask, keys: keys[start:take:take]}
		if take > start {
			minSearchDepth = i - 3
		}
	}

	for i := range buckets {
		b := &buckets[i]
		j := 0
		for k := 0; k < len(b.keys); k++ {
			if b.keys[k]&b.tierMask != 0 {
				b.keys[j], b.keys[k] = b.keys[k], b.keys[j]
				j++
			}
		}
		b.tierOffset = j
	}

	return buckets, minSearchDepth
}

// ascendingFrequencyOrder returns the 26 letter ordinals sorted by
// ascending freq, with a frequency of 0 (an unused letter) treated as
// larger than any observed frequency so unused letters sort last.
func ascendingFrequencyOrder(freq [Letters]int) []int {
	order := make([]int, Letters)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		fa, fb := freq[order[a]], freq[order[b]]
		switch {
		case fa == fb:
			return false
		case fa == 0:
			return false
		case fb == 0:
			return true
		default:
			return fa < fb
		}
	})
	return order
}

// rescanDescending recomputes frequency for the letters named in order
// using only the keys remaining in tail, then sorts order by descending
// frequency in place. This is the one-time mid-pass rescan in
// SPEC_FULL.md §4.3: once the rarest six letters have been carved into
// their own buckets, the residual distribution looks different, and
// descending order proves more selective for the buckets that follow.
func rescanDescending(order []int, tail []Mask) {
	var freq [Letters]int
	for _, key := range tail {
		m := uint32(key)
		for m != 0 {
			letter := bits.TrailingZeros32(m)
			freq[letter]++
			m &= m - 1
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return freq[order[a]] > freq[order[b]]
	})
}
