package markov

import "testing"

func TestStatsKnownCorpus(t *testing.T) {
	tree, table := buildBoth(t, "abab", 1)

	want := ModelStats{
		Order:              1,
		DistinctKGrams:     2,
		TotalTransitions:   4,
		DistinctSuccessors: 2,
	}

	if got := tree.Stats(); got != want {
		t.Errorf("TreeModel.Stats() = %+v, want %+v", got, want)
	}
	if got := table.Stats(); got != want {
		t.Errorf("TableModel.Stats() = %+v, want %+v", got, want)
	}
}

func TestStatsAgreeAcrossModels(t *testing.T) {
	testCases := []struct {
		name   string
		corpus string
		order  int
	}{
		{name: "wrapping corpus", corpus: "abcde", order: 3},
		{name: "repetitive corpus", corpus: "gagggagaggcgagaaa", order: 2},
		{name: "prose", corpus: "one fish two fish. red fish blue fish.", order: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree, table := buildBoth(t, tc.corpus, tc.order)
			treeStats, tableStats := tree.Stats(), table.Stats()
			if treeStats != tableStats {
				t.Errorf("stats disagree: tree %+v, table %+v", treeStats, tableStats)
			}
			// Every corpus position contributes exactly one transition.
			if treeStats.TotalTransitions != len(tc.corpus) {
				t.Errorf("TotalTransitions = %d, want corpus length %d", treeStats.TotalTransitions, len(tc.corpus))
			}
		})
	}
}
