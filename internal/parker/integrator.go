package parker

import (
	"runtime"
	"sync/atomic"
)

// integrate runs on the coordinator goroutine while readers are still
// active. It walks the staging array from position 0 upward, inserting
// each published mask into table and appending newly-seen masks to the
// returned unique-key slice (anagrams collapse onto the first occurrence).
//
// readersDone must reach readerCount before integrate will treat reaching
// the current reservation count as end of input rather than waiting for
// more reservations. A reserved but unpublished slot is always
// spin-polled until its reader publishes it.
func integrate(words *acceptedWords, table *hashTable, readersDone *atomic.Int32, readerCount int) []Mask {
	keys := make([]Mask, 0, maxUniqueWords)
	spins := 0

	for pos := uint32(0); ; {
		count := words.reservedCount()
		if pos >= count {
			if int(readersDone.Load()) < readerCount {
				spins++
				if spins&0xff == 0 {
					runtime.Gosched()
				}
				continue
			}
			// All readers are done and we've drained every reserved
			// position: integration is complete.
			if pos >= words.reservedCount() {
				return keys
			}
			continue
		}

		key := words.maskAt(pos)
		if key == 0 {
			// Reserved but not yet published; the writing reader is
			// still in flight. Busy-poll until it becomes visible.
			spins++
			if spins&0xff == 0 {
				runtime.Gosched()
			}
			continue
		}

		if table.insert(key, pos) {
			keys = append(keys, key)
		}
		pos++
	}
}
