package markov

import (
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Generator drives the random walk over a trained model. It owns the
// growing output and the sliding context window; the model is only
// queried, never mutated.
type Generator struct {
	model  Model
	logger *slog.Logger
}

// NewGenerator returns a Generator that walks the given model.
func NewGenerator(model Model) *Generator {
	return &Generator{
		model:  model,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// SetLogger sets the logger for the Generator. By default, all logs are
// discarded.
func (g *Generator) SetLogger(logger *slog.Logger) {
	if logger != nil {
		g.logger = logger
	}
}

// Generate synthesizes a trajectory of exactly length symbols. The walk
// is seeded with the first k symbols of the corpus; each step samples a
// successor for the current state, appends it, and slides the window by
// one. A state the model has never seen aborts the run with an error
// rather than producing a shorter trajectory.
func (g *Generator) Generate(corpus string, length int) (string, error) {
	k := g.model.Order()
	if length < k {
		return "", fmt.Errorf("%w: trajectory length %d is shorter than order %d", ErrInvalidParams, length, k)
	}
	if len(corpus) < k {
		return "", fmt.Errorf("%w: corpus length %d is shorter than order %d", ErrInvalidParams, len(corpus), k)
	}

	state := corpus[:k]

	var sb strings.Builder
	sb.Grow(length)
	sb.WriteString(state)

	for sb.Len() < length {
		c, err := g.model.NextChar(state)
		if err != nil {
			return "", fmt.Errorf("trajectory aborted after %d of %d symbols: %w", sb.Len(), length, err)
		}
		sb.WriteByte(c)
		state = state[1:] + string(c)
	}

	g.logger.Debug("trajectory generated",
		slog.Int("order", k),
		slog.Int("length", length),
	)
	return sb.String(), nil
}
