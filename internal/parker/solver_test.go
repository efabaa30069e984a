package parker

import (
	"strings"
	"testing"
)

// buildFixture accepts spellings into a fresh acceptedWords/hashTable pair
// and returns their keys alongside the structures solveWork needs to look
// text back up when it emits a solution.
func buildFixture(spellings []string) (keys []Mask, words *acceptedWords, table *hashTable) {
	words = newAcceptedWords(len(spellings))
	table = newHashTable(hashCapacity)
	for _, w := range spellings {
		pos := words.reserve()
		key := keyOf([]byte(w))
		words.publish(pos, []byte(w), key)
		if table.insert(key, pos) {
			keys = append(keys, key)
		}
	}
	return keys, words, table
}

// oneKeyPerBucket places each of keys into its own single-letter bucket
// indexed by its lowest set bit, bypassing partitionIntoBuckets' frequency
// heuristic (which only pays off at dictionary scale). This isolates the
// Solver Core's DFS from the Frequency Partitioner's bucket-sizing logic.
func oneKeyPerBucket(keys []Mask) *[Letters]bucket {
	var buckets [Letters]bucket
	for i := range buckets {
		buckets[i].mask = letterMask(i)
	}
	for _, k := range keys {
		for i := 0; i < Letters; i++ {
			if k&letterMask(i) != 0 {
				buckets[i].keys = append(buckets[i].keys, k)
				break
			}
		}
	}
	return &buckets
}

func TestSolveWorkFindsThePangramSet(t *testing.T) {
	spellings := []string{"abcde", "fghij", "klmno", "pqrst", "uvwxy"} // covers a..y
	keys, words, table := buildFixture(spellings)
	buckets := oneKeyPerBucket(keys)
	buf := newSolutionBuffer(8)

	solveWork(buckets, Letters, buf, table, words)

	if buf.len() != 1 {
		t.Fatalf("solveWork found %d solutions, want 1", buf.len())
	}

	rec := string(buf.record(0))
	for _, w := range spellings {
		if !strings.Contains(rec, w) {
			t.Errorf("solution record %q missing expected word %q", rec, w)
		}
	}
}

func TestSolveWorkNoSolutionWhenWordsConflict(t *testing.T) {
	// Only 5 words are available and two of them share letters, so no
	// 5-word disjoint cover exists: solveWork must report zero solutions
	// rather than one built from fewer than 5 distinct words.
	spellings := []string{"abcde", "abfgh", "ijklm", "nopqr", "stuvw"} // "abcde"/"abfgh" share a,b
	keys, words, table := buildFixture(spellings)
	buckets := oneKeyPerBucket(keys)
	buf := newSolutionBuffer(8)

	solveWork(buckets, Letters, buf, table, words)

	if buf.len() != 0 {
		t.Errorf("solveWork found %d solutions, want 0 (no valid 5-word cover exists)", buf.len())
	}
}

func TestSolveWorkFindsMultipleDisjointSolutions(t *testing.T) {
	// Six distinct 5-word covers exist in this fixture: the two runs
	// abcde..uvwxy (no z) and abcdf..vwxyz (no e) sharing no words, plus
	// four mixes of them (missing u, p, k and f respectively). Each must
	// be found exactly once, and every record must name exactly 5 words.
	spellings := []string{
		"abcde", "fghij", "klmno", "pqrst", "uvwxy",
		"abcdf", "ghijk", "lmnop", "qrstu", "vwxyz",
	}
	keys, words, table := buildFixture(spellings)
	buckets := oneKeyPerBucket(keys)
	buf := newSolutionBuffer(8)

	solveWork(buckets, Letters, buf, table, words)

	if buf.len() != 6 {
		t.Fatalf("solveWork found %d solutions, want 6", buf.len())
	}
	for i := 0; i < buf.len(); i++ {
		rec := string(buf.record(i))
		if strings.Count(rec, "\t")+1 != 5 {
			t.Errorf("solution record %q does not name exactly 5 words", rec)
		}
	}
}
