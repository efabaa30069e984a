package parker

import (
	"runtime"
	"sync"
)

// workerCounts derives the reader and worker goroutine counts for a run,
// following SPEC_FULL.md §4.5: the reader count scales with how much
// dictionary there is to read (more chunks than readers would leave
// readers starved; more readers than chunks wastes goroutines), and both
// counts are clamped to sane ceilings regardless of what the caller or
// the hardware suggest.
func workerCounts(requested, fileSize int) (workers, readers int) {
	workers = requested
	if workers < 1 {
		workers = 1
	}
	if workers > maxWorkers {
		workers = maxWorkers
	}

	chunks := (fileSize + 8*defaultChunkSize - 1) / (8 * defaultChunkSize)
	readers = chunks
	if readers < 1 {
		readers = 1
	}
	if readers > maxReaders {
		readers = maxReaders
	}
	if readers > workers {
		readers = workers
	}
	return workers, readers
}

// readDictionary runs the Parallel Reader phase (SPEC_FULL.md §4.1). It
// launches readerCount-1 reader goroutines plus workerCount-readerCount
// solver-only goroutines up front — the latter have nothing to read, so
// they head straight into waitForSolve and sit there until solving is
// signalled, which is what lets every worker, not just the ones that
// happened to read, contribute to the search. The calling goroutine
// itself fills the remaining reader slot and then runs the Word
// Integrator concurrently with whichever reader goroutines are still
// working, exactly as SPEC_FULL.md describes.
func (p *Pipeline) readDictionary() {
	p.readerFreq = make([][Letters]int, p.readerCount)

	var readers sync.WaitGroup
	for i := 1; i < p.readerCount; i++ {
		readers.Add(1)
		go func(i int) {
			defer readers.Done()
			runReader(p.data, p.claim, p.words, &p.readerFreq[i])
			p.readersDone.Add(1)
			p.waitForSolve()
			p.solve()
		}(i)
	}

	for i := p.readerCount; i < p.workerCount; i++ {
		go func() {
			p.waitForSolve()
			p.solve()
		}()
	}

	runReader(p.data, p.claim, p.words, &p.readerFreq[0])
	p.readersDone.Add(1)

	p.keys = integrate(p.words, p.table, &p.readersDone, p.readerCount)

	readers.Wait()
	for _, freq := range p.readerFreq {
		for letter, n := range freq {
			p.wordFreq[letter] += n
		}
	}
}

// partition runs the Frequency Partitioner (SPEC_FULL.md §4.3) over the
// integrated unique-key set.
func (p *Pipeline) partition() {
	p.buckets, p.minSearchDepth = partitionIntoBuckets(p.keys, p.wordFreq)
}

// runSolvers signals every waiting worker goroutine to begin searching,
// runs the Solver Core on the calling goroutine too, and blocks until all
// workerCount goroutines (including this one) have finished.
func (p *Pipeline) runSolvers() {
	p.goSolve.Store(true)
	p.solve()
	for int(p.solversDone.Load()) < p.workerCount {
		runtime.Gosched()
	}
}

// waitForSolve busy-waits, yielding between checks, until runSolvers has
// signalled that the partitioned buckets are ready to search. This is the
// Go-idiomatic analogue of the source design's spin on a shared flag
// (see SPEC_FULL.md's DESIGN NOTES on busy-waiting versus blocking sync).
func (p *Pipeline) waitForSolve() {
	for !p.goSolve.Load() {
		runtime.Gosched()
	}
}

// solve runs the Solver Core to completion on the calling goroutine and
// records that one more of workerCount solvers has finished.
func (p *Pipeline) solve() {
	solveWork(&p.buckets, p.minSearchDepth, p.buf, p.table, p.words)
	p.solversDone.Add(1)
}
