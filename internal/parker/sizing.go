package parker

// Fixed capacities for the preallocated structures the design calls for.
// These mirror the source implementation's sizing: generous enough for
// the full words_alpha.txt-class dictionary with headroom to spare, never
// grown at run time. Exceeding one of these on real input is a sizing
// bug, not a user error, and is reported as a panic (see hashmap.go and
// emit.go).
const (
	// maxUniqueWords bounds the number of distinct (post-anagram-dedup)
	// five-distinct-letter words the solver can hold.
	maxUniqueWords = 8192

	// maxAcceptedWords bounds the raw number of accepted tokens readers
	// may publish before deduplication, including anagrams of words
	// already seen. Real dictionaries carry far fewer anagram
	// collisions than this; 3x maxUniqueWords matches the headroom the
	// source design budgets.
	maxAcceptedWords = maxUniqueWords * 3

	// hashCapacity is the Word Hash Map's slot count: comfortably above 3x
	// maxUniqueWords so linear-probe chains stay short. It is not prime
	// (39009 = 3 * 13003).
	hashCapacity = 39009

	// maxSolutions bounds how many solution records the preallocated
	// output buffer can hold.
	maxSolutions = 8192

	// solutionRecordLen is the fixed width of one emitted solution line:
	// 5 words * 5 letters + 4 separating tabs + 1 trailing newline.
	solutionRecordLen = WordLen*5 + 4 + 1

	// defaultChunkSize is the byte size of one reader chunk claim.
	defaultChunkSize = 10 * 1024

	// maxReaders caps how many goroutines are given the reader role;
	// virtual/oversubscribed hosts don't benefit from more.
	maxReaders = 14

	// maxWorkers caps the total worker pool size regardless of what the
	// -t flag or hardware parallelism suggest.
	maxWorkers = 64
)
