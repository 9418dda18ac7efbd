package markov

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
)

// AlphabetSize is the number of distinct symbol values a corpus may
// contain. All dense per-symbol structures are sized by this constant,
// matching the 7-bit character range.
const AlphabetSize = 128

var (
	// ErrUnseenState reports a query for a k-gram that was never
	// observed as a window in the training corpus.
	ErrUnseenState = errors.New("k-gram not observed in training corpus")

	// ErrNoSuccessors reports a state whose recorded successor weights
	// sum to zero, so no next symbol can be sampled.
	ErrNoSuccessors = errors.New("state has no recorded successors")

	// ErrInvalidParams reports parameters that are rejected before any
	// model construction or generation takes place.
	ErrInvalidParams = errors.New("invalid parameters")
)

// Model is the query contract shared by both representations of the
// k-gram statistics. Callers hold this interface rather than a concrete
// model type. String renders the canonical listing of every observed
// k-gram with its successor counts.
type Model interface {
	fmt.Stringer

	// Order returns the model order k, the number of preceding symbols
	// used as context.
	Order() int

	// KFreq returns how many times the k-gram was observed as a window
	// in the training corpus.
	KFreq(kgram string) (int, error)

	// KFollowFreq returns how many times symbol c immediately followed
	// the k-gram in the training corpus. The k-gram must have been
	// observed; a known state that never saw c reports zero.
	KFollowFreq(kgram string, c byte) (int, error)

	// NextChar samples a successor symbol for the k-gram, weighted by
	// the observed successor counts.
	NextChar(kgram string) (byte, error)
}

// modelOptions holds construction-time settings shared by both model
// representations.
type modelOptions struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// ModelOption configures a model at construction time.
type ModelOption func(*modelOptions)

// WithRand sets the randomness source used for successor sampling.
// Supplying a seeded source makes generation reproducible.
func WithRand(r *rand.Rand) ModelOption {
	return func(o *modelOptions) {
		if r != nil {
			o.rng = r
		}
	}
}

// WithLogger sets the logger used during construction and sampling.
// By default all logs are discarded.
func WithLogger(logger *slog.Logger) ModelOption {
	return func(o *modelOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func newModelOptions(opts []ModelOption) *modelOptions {
	o := &modelOptions{
		rng:    rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// validateCorpus rejects parameter combinations that would produce
// degenerate windows: a non-positive order, an empty corpus, an order
// that is not smaller than the corpus, or symbols outside the alphabet.
func validateCorpus(text string, order int) error {
	if order < 1 {
		return fmt.Errorf("%w: order %d, must be at least 1", ErrInvalidParams, order)
	}
	if len(text) == 0 {
		return fmt.Errorf("%w: empty corpus", ErrInvalidParams)
	}
	if order >= len(text) {
		return fmt.Errorf("%w: order %d must be smaller than corpus length %d", ErrInvalidParams, order, len(text))
	}
	for i := 0; i < len(text); i++ {
		if text[i] >= AlphabetSize {
			return fmt.Errorf("%w: symbol 0x%02x at offset %d is outside the %d-symbol alphabet", ErrInvalidParams, text[i], i, AlphabetSize)
		}
	}
	return nil
}

// cyclicWindow returns the window of n symbols starting at position
// start, wrapping around to the beginning of text when the window runs
// past the end. Requires n <= len(text) and start < len(text).
func cyclicWindow(text string, start, n int) string {
	end := start + n
	if end <= len(text) {
		return text[start:end]
	}
	return text[start:] + text[:end%len(text)]
}

// checkKGram validates the shape of a queried k-gram against the model
// order. Malformed queries are parameter errors, distinct from k-grams
// that are well-formed but unseen.
func checkKGram(kgram string, order int) error {
	if len(kgram) != order {
		return fmt.Errorf("%w: k-gram %q has length %d, want %d", ErrInvalidParams, kgram, len(kgram), order)
	}
	return nil
}

// checkSymbol validates that a queried successor symbol is inside the
// alphabet.
func checkSymbol(c byte) error {
	if c >= AlphabetSize {
		return fmt.Errorf("%w: symbol 0x%02x is outside the %d-symbol alphabet", ErrInvalidParams, c, AlphabetSize)
	}
	return nil
}
