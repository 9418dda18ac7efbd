package markov

import "fmt"

// VerifyEquivalence checks that two models built from the same corpus
// and order report identical statistics for every k-gram observed in
// the corpus, and that each state's successor counts sum to its own
// frequency. It returns a descriptive error on the first disagreement.
func VerifyEquivalence(text string, a, b Model) error {
	if a.Order() != b.Order() {
		return fmt.Errorf("%w: model orders differ: %d vs %d", ErrInvalidParams, a.Order(), b.Order())
	}
	k := a.Order()
	if err := validateCorpus(text, k); err != nil {
		return err
	}

	checked := make(map[string]struct{})
	for i := 0; i < len(text); i++ {
		kgram := cyclicWindow(text, i, k)
		if _, ok := checked[kgram]; ok {
			continue
		}
		checked[kgram] = struct{}{}

		freqA, err := a.KFreq(kgram)
		if err != nil {
			return fmt.Errorf("state %q: first model: %w", kgram, err)
		}
		freqB, err := b.KFreq(kgram)
		if err != nil {
			return fmt.Errorf("state %q: second model: %w", kgram, err)
		}
		if freqA != freqB {
			return fmt.Errorf("state %q: frequency mismatch: %d vs %d", kgram, freqA, freqB)
		}

		var sum int
		for c := 0; c < AlphabetSize; c++ {
			followA, err := a.KFollowFreq(kgram, byte(c))
			if err != nil {
				return fmt.Errorf("state %q symbol %q: first model: %w", kgram, c, err)
			}
			followB, err := b.KFollowFreq(kgram, byte(c))
			if err != nil {
				return fmt.Errorf("state %q symbol %q: second model: %w", kgram, c, err)
			}
			if followA != followB {
				return fmt.Errorf("state %q symbol %q: successor count mismatch: %d vs %d", kgram, c, followA, followB)
			}
			sum += followA
		}
		if sum != freqA {
			return fmt.Errorf("state %q: successor counts sum to %d, want frequency %d", kgram, sum, freqA)
		}
	}
	return nil
}
