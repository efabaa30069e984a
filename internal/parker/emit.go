package parker

import (
	"fmt"
	"os"
	"sync/atomic"
)

// solutionBuffer is the preallocated, append-only text buffer solver
// goroutines write completed solutions into. Each record is exactly
// solutionRecordLen bytes: five WordLen-letter words separated by tabs
// and terminated by a newline.
type solutionBuffer struct {
	count atomic.Int32
	data  []byte
}

func newSolutionBuffer(capacity int) *solutionBuffer {
	return &solutionBuffer{data: make([]byte, capacity*solutionRecordLen)}
}

// reserve atomically claims the next record slot and returns its index.
func (s *solutionBuffer) reserve() int {
	return int(s.count.Add(1)) - 1
}

// record returns the byte range reserved for solution index i. Callers
// must have reserved i themselves.
func (s *solutionBuffer) record(i int) []byte {
	if i*solutionRecordLen >= len(s.data) {
		panic("parker: solution buffer capacity exceeded")
	}
	return s.data[i*solutionRecordLen : (i+1)*solutionRecordLen]
}

// len reports how many solutions have been reserved.
func (s *solutionBuffer) len() int {
	return int(s.count.Load())
}

// bytes returns the written prefix of the buffer: len() complete records.
func (s *solutionBuffer) bytes() []byte {
	return s.data[:s.len()*solutionRecordLen]
}

// addSolution reserves the next record slot and writes the five words of
// solution into it, tab-separated and newline-terminated, looking each
// word's spelling up via table and words.
func addSolution(buf *solutionBuffer, table *hashTable, words *acceptedWords, solution [5]Mask) {
	idx := buf.reserve()
	rec := buf.record(idx)

	off := 0
	for i, key := range solution {
		pos, ok := table.lookup(key)
		if !ok {
			panic("parker: solution references a key absent from the word hash table")
		}
		off += copy(rec[off:], words.textAt(pos))
		if i < len(solution)-1 {
			rec[off] = '\t'
		} else {
			rec[off] = '\n'
		}
		off++
	}
}

// writeSolutionFile dumps buf's written prefix to path, truncating any
// pre-existing, larger file down to the new content's length and
// retrying on short writes until the whole buffer is flushed or a hard
// error occurs.
func writeSolutionFile(path string, buf *solutionBuffer) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("parker: open %s for writing: %w", path, err)
	}
	defer f.Close()

	content := buf.bytes()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("parker: stat %s: %w", path, err)
	}
	if info.Size() > int64(len(content)) {
		if err := f.Truncate(int64(len(content))); err != nil {
			return fmt.Errorf("parker: truncate %s: %w", path, err)
		}
	}

	for written := 0; written < len(content); {
		n, err := f.Write(content[written:])
		if err != nil {
			return fmt.Errorf("parker: write %s: %w", path, err)
		}
		written += n
	}
	return nil
}
