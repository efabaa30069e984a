package parker

// searchState carries everything one worker goroutine's recursive search
// needs so the hot path never allocates: a private solution scratch
// array, and read-only references to the partitioned buckets and the
// structures needed to emit a completed solution.
type searchState struct {
	solution       [5]Mask
	buckets        *[Letters]bucket
	minSearchDepth int
	buf            *solutionBuffer
	table          *hashTable
	words          *acceptedWords
}

// search implements the Solver Core's depth-first enumeration
// (SPEC_FULL.md §4.4). depth is 1-based (the number of words chosen so
// far, including the one passed in key); f is the next bucket index
// eligible to contribute a word; mask is the bitwise OR of the keys
// chosen at shallower depths; key is the word just chosen at this depth;
// skipped reports whether some bucket has already been passed over
// without contributing a word on this root-to-here path — at most one
// such skip is ever allowed.
func (st *searchState) search(depth, f int, mask, key Mask, skipped bool) {
	st.solution[depth-1] = key
	if depth == 5 {
		addSolution(st.buf, st.table, st.words, st.solution)
		return
	}
	mask |= key

	limit := st.minSearchDepth + depth
	if limit > Letters {
		limit = Letters
	}

	for ; f < limit; f++ {
		b := &st.buckets[f]
		if mask&b.mask != 0 {
			continue
		}

		for _, k := range b.tier(mask) {
			if mask&k == 0 {
				st.search(depth+1, f+1, mask, k, skipped)
			}
		}

		if skipped {
			return
		}
		skipped = true
	}
}

// solveWork is what each worker goroutine runs once the reader phase has
// completed and solving has been signalled to start. It implements the
// two top-level phases from SPEC_FULL.md §4.4: phase A claims words from
// bucket 0 and never skips it; phase B runs only after bucket 0 is
// exhausted, claims words from bucket 1, and always starts already having
// used its one allowed skip (of bucket 0).
func solveWork(buckets *[Letters]bucket, minSearchDepth int, buf *solutionBuffer, table *hashTable, words *acceptedWords) {
	st := &searchState{
		buckets:        buckets,
		minSearchDepth: minSearchDepth,
		buf:            buf,
		table:          table,
		words:          words,
	}

	b0 := &buckets[0]
	for {
		pos := int(b0.cursor.Add(1)) - 1
		if pos >= len(b0.keys) {
			break
		}
		st.search(1, 1, 0, b0.keys[pos], false)
	}

	b1 := &buckets[1]
	for {
		pos := int(b1.cursor.Add(1)) - 1
		if pos >= len(b1.keys) {
			break
		}
		st.search(1, 2, 0, b1.keys[pos], true)
	}
}
