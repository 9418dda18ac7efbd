package markov

// ModelStats holds aggregated statistics for a single trained model.
// The two representations of the same corpus and order report equal
// values.
type ModelStats struct {
	Order              int // The model order k.
	DistinctKGrams     int // The number of distinct k-grams observed as windows.
	TotalTransitions   int // The total number of recorded k-gram -> successor observations.
	DistinctSuccessors int // The number of distinct symbols observed as successors.
}

// Stats returns a snapshot of the model's statistical content, computed
// by a depth-first traversal to the context depth.
func (m *TreeModel) Stats() ModelStats {
	stats := ModelStats{Order: m.order}
	var seen [AlphabetSize]bool

	var visit func(n *node, depth int)
	visit = func(n *node, depth int) {
		if depth == m.order {
			stats.DistinctKGrams++
			for c, count := range n.counts {
				stats.TotalTransitions += count
				seen[c] = true
			}
			return
		}
		for _, child := range n.children {
			visit(child, depth+1)
		}
	}
	visit(m.root, 0)

	for _, s := range seen {
		if s {
			stats.DistinctSuccessors++
		}
	}
	return stats
}

// Stats returns a snapshot of the model's statistical content, read
// directly from the dense successor rows.
func (m *TableModel) Stats() ModelStats {
	stats := ModelStats{
		Order:          m.order,
		DistinctKGrams: len(m.keys),
	}
	var seen [AlphabetSize]bool

	for _, row := range m.successors {
		for c, count := range row {
			if count != 0 {
				stats.TotalTransitions += count
				seen[c] = true
			}
		}
	}
	for _, s := range seen {
		if s {
			stats.DistinctSuccessors++
		}
	}
	return stats
}
