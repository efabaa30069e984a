package parker

// hashTable is the Word Hash Map: a small fixed-capacity open-addressed
// table mapping a word's Mask to its position among accepted words. It
// exists only to let the solver recover a word's text when it emits a
// solution built entirely out of masks.
//
// Position 0 is reserved to mean "empty slot" internally, so stored
// positions are kept 1-based (pos+1) and translated back on lookup. A
// Mask of 0 can never occur for an accepted word (every accepted word has
// popcount 5), so the zero value of a slot is unambiguous.
type hashTable struct {
	slots      []hashSlot
	collisions uint64 // probe distance summed across inserts of new keys, for metrics only
}

type hashSlot struct {
	key Mask
	pos uint32 // 1-based; 0 means the slot is empty
}

// newHashTable allocates a table with the given capacity, which must be
// comfortably larger (the design suggests ~3x) than the expected number of
// unique word masks, and ideally prime, to keep probe chains short.
func newHashTable(capacity int) *hashTable {
	return &hashTable{slots: make([]hashSlot, capacity)}
}

// index computes the home slot for key using the same multiplicative
// scheme as the source design: shift the key up into the high bits before
// reducing modulo the table size, which spreads the low-order 26 mask bits
// across the whole table instead of clustering them in its low indices.
func (h *hashTable) index(key Mask) int {
	return int((uint64(key) << 26) % uint64(len(h.slots)))
}

// insert attempts to record key at position pos (0-based). It reports
// true if key was new, false if key was already present (an anagram of an
// earlier word, discarded per the design's "first insert wins" rule).
//
// insert panics if it probes the entire table without finding key or a
// free slot; the table must be sized so this can never happen on real
// input, and a panic here indicates a sizing bug, not bad user input.
func (h *hashTable) insert(key Mask, pos uint32) bool {
	n := len(h.slots)
	i := h.index(key)
	for probes := 0; probes < n; probes++ {
		s := &h.slots[i]
		if s.pos == 0 {
			s.key = key
			s.pos = pos + 1
			h.collisions += uint64(probes)
			return true
		}
		if s.key == key {
			return false
		}
		i++
		if i == n {
			i = 0
		}
	}
	panic("parker: word hash table capacity exceeded")
}

// lookup returns the position stored for key, or (0, false) if absent.
func (h *hashTable) lookup(key Mask) (uint32, bool) {
	n := len(h.slots)
	i := h.index(key)
	for probes := 0; probes < n; probes++ {
		s := &h.slots[i]
		if s.pos == 0 {
			return 0, false
		}
		if s.key == key {
			return s.pos - 1, true
		}
		i++
		if i == n {
			i = 0
		}
	}
	return 0, false
}
