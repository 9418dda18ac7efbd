package markov

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"
)

// TableModel represents the k-gram statistics as two flat mappings: one
// from each observed k-gram to its total occurrence count, and one from
// each observed k-gram to a dense per-symbol successor-count array. It
// implements Model and reports the same statistics as TreeModel for the
// same corpus and order.
type TableModel struct {
	order      int
	total      map[string]int
	successors map[string]*[AlphabetSize]int
	keys       []string // k-grams in first-seen order, for the dump
	rng        *rand.Rand
	logger     *slog.Logger
}

// NewTableModel builds a table model of the given order from the
// corpus. Each cyclic (order+1)-window is split into a leading k-gram
// and a trailing successor symbol.
func NewTableModel(text string, order int, opts ...ModelOption) (*TableModel, error) {
	if err := validateCorpus(text, order); err != nil {
		return nil, err
	}
	o := newModelOptions(opts)

	m := &TableModel{
		order:      order,
		total:      make(map[string]int),
		successors: make(map[string]*[AlphabetSize]int),
		rng:        o.rng,
		logger:     o.logger,
	}
	for i := 0; i < len(text); i++ {
		window := cyclicWindow(text, i, order+1)
		kgram, next := window[:order], window[order]

		row, ok := m.successors[kgram]
		if !ok {
			row = new([AlphabetSize]int)
			m.successors[kgram] = row
			m.keys = append(m.keys, kgram)
		}
		m.total[kgram]++
		row[next]++
	}

	m.logger.Debug("table model built",
		slog.Int("order", order),
		slog.Int("corpus_length", len(text)),
		slog.Int("distinct_kgrams", len(m.keys)),
	)
	return m, nil
}

// Order returns the model order k.
func (m *TableModel) Order() int {
	return m.order
}

// KFreq looks up the total occurrence count of the k-gram.
func (m *TableModel) KFreq(kgram string) (int, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	count, ok := m.total[kgram]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnseenState, kgram)
	}
	return count, nil
}

// KFollowFreq looks up the successor count of c in the k-gram's dense
// row. A known state that never saw c reports zero.
func (m *TableModel) KFollowFreq(kgram string, c byte) (int, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	if err := checkSymbol(c); err != nil {
		return 0, err
	}
	row, ok := m.successors[kgram]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnseenState, kgram)
	}
	return row[c], nil
}

// NextChar samples directly over the k-gram's dense successor row; the
// sampled index is the successor symbol.
func (m *TableModel) NextChar(kgram string) (byte, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	row, ok := m.successors[kgram]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnseenState, kgram)
	}
	idx, err := Sample(m.rng, row[:])
	if err != nil {
		return 0, fmt.Errorf("state %q: %w", kgram, ErrNoSuccessors)
	}
	return byte(idx), nil
}

// String lists every observed k-gram with its non-zero successor
// counts, one line per k-gram, in first-seen order. The per-line format
// matches TreeModel's, so the two dumps differ only in line order.
func (m *TableModel) String() string {
	lines := make([]string, 0, len(m.keys))
	for _, kgram := range m.keys {
		row := m.successors[kgram]

		var sb strings.Builder
		sb.WriteString(kgram)
		sb.WriteByte(':')
		for c := 0; c < AlphabetSize; c++ {
			if row[c] != 0 {
				fmt.Fprintf(&sb, " %c %d", c, row[c])
			}
		}
		lines = append(lines, sb.String())
	}
	return strings.Join(lines, "\n")
}
