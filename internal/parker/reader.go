package parker

import "sync/atomic"

// chunkClaim hands out fixed-size byte ranges of a single shared dictionary
// buffer via an atomic fetch-and-add cursor. Every reader goroutine races
// on the same cursor, regardless of how many readers are running: there is
// one logical stream of chunks, not one disjoint range per reader.
type chunkClaim struct {
	pos       atomic.Int64
	chunkSize int
	end       int
}

// next claims the next chunk, returning its [start, end) span within the
// shared buffer. The returned end is widened by one byte past the nominal
// chunk boundary (clamped to the buffer length) so that a word beginning
// on the first byte of the following chunk, which that chunk's reader
// skips as part of its leading partial line, is still started by the
// reader of this chunk; see findWords for how a started candidate is then
// allowed to read on past end when necessary.
func (c *chunkClaim) next() (start, end int, ok bool) {
	start = int(c.pos.Add(int64(c.chunkSize))) - c.chunkSize
	if start > c.end {
		return 0, 0, false
	}
	end = start + c.chunkSize + 1
	if end > c.end {
		end = c.end
	}
	return start, end, true
}

// runReader drains chunks from claim, extracting five-letter words with
// five distinct letters out of data[start:] (a chunk may read past its
// nominal end to finish a word that straddles the boundary, stopping only
// at the end of data), and accumulates observed letter frequencies into
// freq. Accepted words are published into words via an atomic position
// reservation.
func runReader(data []byte, claim *chunkClaim, words *acceptedWords, freq *[Letters]int) {
	for {
		start, end, ok := claim.next()
		if !ok {
			return
		}

		s := start
		// Every chunk except the one starting at true offset 0 must
		// skip past its first newline before scanning for words, so
		// that a word straddling this chunk's start boundary — which
		// the previous chunk's reader already consumed by reading past
		// its own nominal end — is not double-counted.
		if start > 0 {
			for s < len(data) && data[s] != '\n' {
				s++
			}
			if s < len(data) {
				s++ // step over the newline itself
			}
		}

		findWords(data, s, end, words, freq)
	}
}

// findWords scans data starting at pos for tokens of exactly WordLen
// lowercase ASCII letters followed by a non-letter terminator (or end of
// data), accepting each one whose letters are all distinct (popcount 5)
// and silently skipping the rest. New candidate tokens are only started
// while pos < limit, but once a candidate's five letters have all matched,
// reading its terminator byte may run past limit up to the true end of
// data — this is what lets the reader that reaches a chunk boundary mid
// word finish reading it.
func findWords(data []byte, pos, limit int, words *acceptedWords, freq *[Letters]int) {
	var w [WordLen]byte
	for pos < limit {
		n := 0
		for n < WordLen && pos < len(data) {
			c := data[pos]
			pos++
			if !isLower(c) {
				n = 0
				continue
			}
			w[n] = c
			n++
		}
		if n < WordLen {
			return
		}

		terminated := pos >= len(data) || !isLower(data[pos])
		if terminated {
			key := keyOf(w[:])
			if key.valid() {
				p := words.reserve()
				words.publish(p, w[:], key)
				for _, c := range w {
					freq[c-'a']++
				}
			}
		}

		if pos < len(data) && data[pos] == '\n' {
			pos++
			continue
		}
		for pos < len(data) && data[pos] != '\n' {
			pos++
		}
		if pos < len(data) {
			pos++
		}
	}
}

func isLower(c byte) bool {
	return c >= 'a' && c <= 'z'
}
