package dat

import "errors"

// Batch errors
var (
	// ErrEmptyBatch indicates that a batch was started for zero words.
	ErrEmptyBatch = errors.New("batch must hold at least one word")

	// ErrInvalidIndex indicates an input index outside of the batch.
	ErrInvalidIndex = errors.New("input index out of range")

	// ErrEmptyWord indicates an input word of length 0.
	ErrEmptyWord = errors.New("empty word")

	// ErrZeroCodeUnit indicates an input word containing code unit 0.
	ErrZeroCodeUnit = errors.New("word contains code unit 0")

	// ErrMissingInput indicates that a batch was completed with unset inputs.
	ErrMissingInput = errors.New("batch input not set")

	// ErrWrongPhase indicates that a build batch was used for insertion or
	// vice versa.
	ErrWrongPhase = errors.New("batch used in wrong phase")

	// ErrBatchClosed indicates use of a batch which has already been completed.
	ErrBatchClosed = errors.New("batch already completed")

	// ErrNilTrie indicates an insertion into a nil trie.
	ErrNilTrie = errors.New("trie is nil")
)

// Serialization errors
var (
	// ErrShortBuffer indicates that a buffer is too small for the serialized trie.
	ErrShortBuffer = errors.New("buffer too small for serialized trie")

	// ErrMalformed indicates a serialized trie which fails validation.
	ErrMalformed = errors.New("malformed serialized trie")
)
