package parker

import (
	"fmt"
	"os"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/edsrzf/mmap-go"
	"github.com/sirupsen/logrus"
)

// MaxProcs and NumCPU mirror the teacher's package-level hardware
// parallelism hints, read once at package init. defaultWorkerCount derives
// its hardware-driven default from NumCPU; MaxProcs is not read within
// this package.
var (
	MaxProcs = runtime.GOMAXPROCS(0)
	NumCPU   = runtime.NumCPU()
)

// Config controls one run of the solver pipeline.
type Config struct {
	// DictPath is the dictionary file to read words from. Defaults to
	// "words_alpha.txt".
	DictPath string
	// OutPath is the solutions file to write. Defaults to "solutions.txt".
	OutPath string
	// Workers requests a worker count; clamped to [1, 64]. Zero selects
	// a hardware-driven default.
	Workers int
}

func (c Config) dictPath() string {
	if c.DictPath == "" {
		return "words_alpha.txt"
	}
	return c.DictPath
}

func (c Config) outPath() string {
	if c.OutPath == "" {
		return "solutions.txt"
	}
	return c.OutPath
}

// defaultWorkerCount mirrors the source design's get_nthreads() hardware
// sizing heuristic: machines with up to 4 CPUs use every CPU, 5 to 8 CPUs
// hold back one for the OS, larger ones hold back two, and nothing beyond
// 20 is worth the extra coordination overhead.
func defaultWorkerCount() int {
	n := NumCPU
	switch {
	case n < 2:
		return 1
	case n < 5:
		return n
	case n < 9:
		return n - 1
	}
	if n-2 > 20 {
		return 20
	}
	return n - 2
}

// Metrics records phase durations and solver statistics, filled in during
// Run for callers (typically the CLI's -v flag) that want to report them.
type Metrics struct {
	Workers        int
	Readers        int
	UniqueWords    int
	HashCollisions uint64
	Solutions      int
	MinSearchDepth int
	BucketLengths  [Letters]int
	BucketTierOff  [Letters]int

	// Phases holds one Meter reading per pipeline phase ("file_load",
	// "partition", "solve", "emit"), keyed the way they're logged by the
	// CLI's -v flag: wall-clock, CPU, and RSS deltas gathered the same way
	// the source design measures its phases (see Meter).
	Phases map[string]logrus.Fields
	Total  time.Duration
}

// Result is everything Run produces.
type Result struct {
	Metrics Metrics
}

// Pipeline is the single shared computation context every goroutine in a
// run operates on, replacing the source design's process-wide globals
// (see SPEC_FULL.md's DESIGN NOTES). A fresh Pipeline is built for every
// Run call, which is what makes the solver's invariants independently
// testable instead of relying on whole-process state.
type Pipeline struct {
	data  []byte
	claim *chunkClaim

	words *acceptedWords
	table *hashTable
	keys  []Mask

	readerFreq  [][Letters]int
	wordFreq    [Letters]int
	readersDone atomic.Int32
	goSolve     atomic.Bool
	solversDone atomic.Int32

	workerCount int
	readerCount int

	buckets        [Letters]bucket
	minSearchDepth int
	buf            *solutionBuffer
}

// Run executes the full pipeline end to end: it maps the dictionary,
// reads and integrates words in parallel, partitions them into frequency
// buckets, solves, and writes solutions.txt (or cfg.OutPath). It returns
// a populated Result even on success with zero solutions.
func Run(cfg Config) (*Result, error) {
	start := time.Now()
	var metrics Metrics
	metrics.Phases = make(map[string]logrus.Fields, 4)

	f, err := os.Open(cfg.dictPath())
	if err != nil {
		return nil, fmt.Errorf("parker: open dictionary: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("parker: stat dictionary: %w", err)
	}

	if info.Size() == 0 {
		// An empty dictionary yields an empty result without needing to
		// map zero bytes (mmap.Map rejects a zero-length mapping).
		p := newPipelineForWorkerCount(cfg, 0)
		if err := writeSolutionFile(cfg.outPath(), p.buf); err != nil {
			return nil, err
		}
		return finish(p, metrics, start), nil
	}

	m, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("parker: mmap dictionary: %w", err)
	}
	// No explicit Unmap: the mapping lives for the process's remaining
	// lifetime and is released implicitly at exit, matching the source
	// design's deliberate avoidance of a (possibly slow) unmap call on
	// the hot exit path.

	meter := NewMeter()
	p := newPipelineForWorkerCount(cfg, len(m))
	p.data = []byte(m)
	p.readDictionary()
	meter.SetWork(float64(len(p.keys)))
	metrics.Phases["file_load"] = meter.Fields()

	p.partition()
	metrics.Phases["partition"] = meter.Fields()

	p.runSolvers()
	meter.SetWork(float64(p.buf.len()))
	metrics.Phases["solve"] = meter.Fields()

	if err := writeSolutionFile(cfg.outPath(), p.buf); err != nil {
		return nil, err
	}
	metrics.Phases["emit"] = meter.Fields()

	return finish(p, metrics, start), nil
}

func finish(p *Pipeline, metrics Metrics, start time.Time) *Result {
	metrics.Workers = p.workerCount
	metrics.Readers = p.readerCount
	metrics.Solutions = p.buf.len()
	metrics.MinSearchDepth = p.minSearchDepth
	metrics.HashCollisions = p.table.collisions
	for i := range p.buckets {
		metrics.BucketLengths[i] = p.buckets[i].length()
		metrics.BucketTierOff[i] = p.buckets[i].tierOffset
	}
	metrics.UniqueWords = metrics.BucketLengths[0]
	for i := 1; i < Letters; i++ {
		metrics.UniqueWords += metrics.BucketLengths[i]
	}
	metrics.Total = time.Since(start)
	return &Result{Metrics: metrics}
}

func newPipelineForWorkerCount(cfg Config, fileSize int) *Pipeline {
	requested := cfg.Workers
	if requested <= 0 {
		requested = defaultWorkerCount()
	}
	workers, readers := workerCounts(requested, fileSize)

	p := &Pipeline{
		words:       newAcceptedWords(maxAcceptedWords),
		table:       newHashTable(hashCapacity),
		buf:         newSolutionBuffer(maxSolutions),
		workerCount: workers,
		readerCount: readers,
		claim: &chunkClaim{
			chunkSize: defaultChunkSize,
			end:       fileSize,
		},
	}
	return p
}
