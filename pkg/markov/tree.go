package markov

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"sort"
	"strings"
)

// node is a vertex in the prefix tree. Each node exclusively owns its
// children, so the structure is a true tree with no sharing. counts[c]
// records how many times the path through this node was extended by c
// during training; a child for c exists exactly when counts[c] > 0.
type node struct {
	children map[byte]*node
	counts   map[byte]int
}

func newNode() *node {
	return &node{
		children: make(map[byte]*node),
		counts:   make(map[byte]int),
	}
}

// extend increments the count for c, creating the child on first sight,
// and returns the child for the next insertion step.
func (n *node) extend(c byte) *node {
	child, ok := n.children[c]
	if !ok {
		child = newNode()
		n.children[c] = child
	}
	n.counts[c]++
	return child
}

// TreeModel represents the k-gram statistics as a prefix tree of depth
// k+1: a path of k edges identifies a context and the final edge the
// observed successor. It implements Model.
type TreeModel struct {
	order  int
	root   *node
	rng    *rand.Rand
	logger *slog.Logger
}

// NewTreeModel builds a prefix-tree model of the given order from the
// corpus, inserting every cyclic (order+1)-window in a single pass.
func NewTreeModel(text string, order int, opts ...ModelOption) (*TreeModel, error) {
	if err := validateCorpus(text, order); err != nil {
		return nil, err
	}
	o := newModelOptions(opts)

	m := &TreeModel{
		order:  order,
		root:   newNode(),
		rng:    o.rng,
		logger: o.logger,
	}
	for i := 0; i < len(text); i++ {
		window := cyclicWindow(text, i, order+1)
		n := m.root
		for j := 0; j < len(window); j++ {
			n = n.extend(window[j])
		}
	}

	m.logger.Debug("tree model built",
		slog.Int("order", order),
		slog.Int("corpus_length", len(text)),
	)
	return m, nil
}

// Order returns the model order k.
func (m *TreeModel) Order() int {
	return m.order
}

// walk follows one edge per symbol of path from the root, failing on
// the first absent edge.
func (m *TreeModel) walk(path string) (*node, error) {
	n := m.root
	for i := 0; i < len(path); i++ {
		next, ok := n.children[path[i]]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnseenState, path)
		}
		n = next
	}
	return n, nil
}

// KFreq walks the first k-1 symbols and reads the final symbol's count
// at the resulting node.
func (m *TreeModel) KFreq(kgram string) (int, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	n, err := m.walk(kgram[:len(kgram)-1])
	if err != nil {
		return 0, err
	}
	return n.counts[kgram[len(kgram)-1]], nil
}

// KFollowFreq walks all k symbols and reads the count recorded for c at
// the resulting node. A node that exists but never saw c reports zero.
func (m *TreeModel) KFollowFreq(kgram string, c byte) (int, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	if err := checkSymbol(c); err != nil {
		return 0, err
	}
	n, err := m.walk(kgram)
	if err != nil {
		return 0, err
	}
	return n.counts[c], nil
}

// NextChar walks the k-gram, collects the successor counts of all
// children in ascending symbol order, and samples one successor with
// probability proportional to its count.
func (m *TreeModel) NextChar(kgram string) (byte, error) {
	if err := checkKGram(kgram, m.order); err != nil {
		return 0, err
	}
	n, err := m.walk(kgram)
	if err != nil {
		return 0, err
	}

	symbols := make([]byte, 0, len(n.counts))
	for c := range n.counts {
		symbols = append(symbols, c)
	}
	slices.Sort(symbols)

	weights := make([]int, len(symbols))
	for i, c := range symbols {
		weights[i] = n.counts[c]
	}

	idx, err := Sample(m.rng, weights)
	if err != nil {
		return 0, fmt.Errorf("state %q: %w", kgram, ErrNoSuccessors)
	}
	return symbols[idx], nil
}

// String lists every observed k-gram with its successor counts, one
// line per k-gram, sorted lexicographically. Each subtree contributes
// its own slice of lines and the results are merged upward, so no
// accumulator is shared across the traversal.
func (m *TreeModel) String() string {
	lines := collectLines(m.root, m.order, "")
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func collectLines(n *node, depth int, path string) []string {
	if depth == 0 {
		symbols := make([]byte, 0, len(n.counts))
		for c := range n.counts {
			symbols = append(symbols, c)
		}
		slices.Sort(symbols)

		var sb strings.Builder
		sb.WriteString(path)
		sb.WriteByte(':')
		for _, c := range symbols {
			fmt.Fprintf(&sb, " %c %d", c, n.counts[c])
		}
		return []string{sb.String()}
	}

	var lines []string
	for c, child := range n.children {
		lines = append(lines, collectLines(child, depth-1, path+string(c))...)
	}
	return lines
}
