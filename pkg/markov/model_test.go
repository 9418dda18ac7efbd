package markov

import (
	"errors"
	"math/rand/v2"
	"testing"
)

// buildBoth constructs both model representations from the same corpus
// and order with deterministic randomness.
func buildBoth(t *testing.T, corpus string, order int) (*TreeModel, *TableModel) {
	t.Helper()
	tree, err := NewTreeModel(corpus, order, WithRand(rand.New(rand.NewPCG(1, 2))))
	if err != nil {
		t.Fatalf("NewTreeModel() error = %v", err)
	}
	table, err := NewTableModel(corpus, order, WithRand(rand.New(rand.NewPCG(3, 4))))
	if err != nil {
		t.Fatalf("NewTableModel() error = %v", err)
	}
	return tree, table
}

func TestCyclicWindow(t *testing.T) {
	testCases := []struct {
		name  string
		text  string
		start int
		n     int
		want  string
	}{
		{name: "interior window", text: "abcde", start: 0, n: 4, want: "abcd"},
		{name: "window ending at corpus end", text: "abcde", start: 1, n: 4, want: "bcde"},
		{name: "wrapping window", text: "abcde", start: 3, n: 3, want: "dea"},
		{name: "wrapping window of order 3 plus successor", text: "abcde", start: 3, n: 4, want: "deab"},
		{name: "last position wraps", text: "abcde", start: 4, n: 2, want: "ea"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cyclicWindow(tc.text, tc.start, tc.n); got != tc.want {
				t.Errorf("cyclicWindow(%q, %d, %d) = %q, want %q", tc.text, tc.start, tc.n, got, tc.want)
			}
		})
	}
}

func TestValidateCorpus(t *testing.T) {
	testCases := []struct {
		name    string
		text    string
		order   int
		wantErr bool
	}{
		{name: "valid", text: "abcde", order: 2},
		{name: "order below one", text: "abcde", order: 0, wantErr: true},
		{name: "empty corpus", text: "", order: 1, wantErr: true},
		{name: "order equals corpus length", text: "abc", order: 3, wantErr: true},
		{name: "order exceeds corpus length", text: "abc", order: 5, wantErr: true},
		{name: "symbol outside alphabet", text: "caf\xc3\xa9", order: 1, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateCorpus(tc.text, tc.order)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalidParams) {
					t.Errorf("validateCorpus(%q, %d) error = %v, want ErrInvalidParams", tc.text, tc.order, err)
				}
			} else if err != nil {
				t.Errorf("validateCorpus(%q, %d) unexpected error: %v", tc.text, tc.order, err)
			}
		})
	}
}

func TestCrossModelEquivalence(t *testing.T) {
	testCases := []struct {
		name   string
		corpus string
		order  int
	}{
		{name: "small alternating corpus", corpus: "abababab", order: 1},
		{name: "wrapping corpus", corpus: "abcde", order: 3},
		{name: "repetitive corpus", corpus: "gagggagaggcgagaaa", order: 2},
		{name: "prose with punctuation", corpus: "one fish two fish. red fish blue fish.", order: 4},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			tree, table := buildBoth(t, tc.corpus, tc.order)
			if err := VerifyEquivalence(tc.corpus, tree, table); err != nil {
				t.Errorf("VerifyEquivalence() error = %v", err)
			}
		})
	}
}

func TestVerifyEquivalenceOrderMismatch(t *testing.T) {
	tree, _ := buildBoth(t, "abcabc", 1)
	_, table := buildBoth(t, "abcabc", 2)

	err := VerifyEquivalence("abcabc", tree, table)
	if !errors.Is(err, ErrInvalidParams) {
		t.Errorf("VerifyEquivalence() error = %v, want ErrInvalidParams", err)
	}
}

func TestQueryDeterminism(t *testing.T) {
	tree, table := buildBoth(t, "abcabcabd", 2)

	for _, m := range []Model{tree, table} {
		first, err := m.KFreq("ab")
		if err != nil {
			t.Fatalf("KFreq() error = %v", err)
		}
		firstFollow, err := m.KFollowFreq("ab", 'c')
		if err != nil {
			t.Fatalf("KFollowFreq() error = %v", err)
		}
		for i := 0; i < 10; i++ {
			got, err := m.KFreq("ab")
			if err != nil || got != first {
				t.Errorf("repeated KFreq() = %d, %v; want %d, nil", got, err, first)
			}
			gotFollow, err := m.KFollowFreq("ab", 'c')
			if err != nil || gotFollow != firstFollow {
				t.Errorf("repeated KFollowFreq() = %d, %v; want %d, nil", gotFollow, err, firstFollow)
			}
		}
	}
}
