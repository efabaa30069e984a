package parker

import "testing"

func TestWorkerCountsClampsToCeilings(t *testing.T) {
	workers, readers := workerCounts(1000, 100*1024*1024)
	if workers != maxWorkers {
		t.Errorf("workers = %d, want %d", workers, maxWorkers)
	}
	if readers > maxReaders {
		t.Errorf("readers = %d, want <= %d", readers, maxReaders)
	}
}

func TestWorkerCountsNeverExceedsWorkers(t *testing.T) {
	workers, readers := workerCounts(2, 100*1024*1024)
	if readers > workers {
		t.Errorf("readers (%d) should never exceed workers (%d)", readers, workers)
	}
}

func TestWorkerCountsFloorsAtOne(t *testing.T) {
	workers, readers := workerCounts(0, 0)
	if workers < 1 || readers < 1 {
		t.Errorf("workerCounts(0, 0) = (%d, %d), want both >= 1", workers, readers)
	}
}

func TestWorkerCountsSmallFileUsesOneReader(t *testing.T) {
	_, readers := workerCounts(8, defaultChunkSize/2)
	if readers != 1 {
		t.Errorf("readers = %d, want 1 for a file smaller than one chunk", readers)
	}
}
