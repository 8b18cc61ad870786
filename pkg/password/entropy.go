package password

import (
	"math"
	"unicode/utf8"
)

// Classification is a password strength bucket derived from the 0-100 score.
type Classification int

const (
	// VeryWeak covers scores in [0, 20)
	VeryWeak Classification = iota

	// Weak covers scores in [20, 40)
	Weak

	// Moderate covers scores in [40, 60)
	Moderate

	// Strong covers scores in [60, 80)
	Strong

	// VeryStrong covers scores in [80, 100]
	VeryStrong
)

// String returns the human-readable bucket name.
func (c Classification) String() string {
	switch c {
	case VeryWeak:
		return "VeryWeak"
	case Weak:
		return "Weak"
	case Moderate:
		return "Moderate"
	case Strong:
		return "Strong"
	case VeryStrong:
		return "VeryStrong"
	}
	return "Unknown"
}

// MarshalJSON renders the bucket name as a JSON string.
func (c Classification) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

// ClassifyScore maps a 0-100 score onto its strength bucket. The buckets are
// fixed, non-overlapping, and exhaustive over [0, 100].
func ClassifyScore(score float64) Classification {
	switch {
	case score < 20:
		return VeryWeak
	case score < 40:
		return Weak
	case score < 60:
		return Moderate
	case score < 80:
		return Strong
	}
	return VeryStrong
}

// PoolSizes holds the alphabet size credited for each character class when
// estimating the search space.
type PoolSizes struct {
	Lower  int
	Upper  int
	Digit  int
	Symbol int
}

// DefaultPoolSizes returns the standard ASCII alphabet sizes.
func DefaultPoolSizes() PoolSizes {
	return PoolSizes{
		Lower:  len(LowercaseLetters),
		Upper:  len(UppercaseLetters),
		Digit:  len(Digits),
		Symbol: len(Symbols),
	}
}

// EntropyScorer estimates password strength from character-class diversity
// and length. It is immutable after construction.
type EntropyScorer struct {
	pools PoolSizes
}

// NewEntropyScorer creates a scorer with the given pool sizes. Zero or
// negative sizes fall back to the defaults.
func NewEntropyScorer(pools PoolSizes) *EntropyScorer {
	def := DefaultPoolSizes()
	if pools.Lower <= 0 {
		pools.Lower = def.Lower
	}
	if pools.Upper <= 0 {
		pools.Upper = def.Upper
	}
	if pools.Digit <= 0 {
		pools.Digit = def.Digit
	}
	if pools.Symbol <= 0 {
		pools.Symbol = def.Symbol
	}
	return &EntropyScorer{pools: pools}
}

// Score returns the entropy estimate in bits and the derived 0-100 score.
// Entropy is length * log2(pool), where pool is the summed alphabet size of
// the classes present, clamped to at least 2 for non-empty input. An empty
// password scores 0 bits. The bits-to-score mapping is fixed and monotonic.
func (s *EntropyScorer) Score(password string) (entropyBits, score float64) {
	length := utf8.RuneCountInString(password)
	if length == 0 {
		return 0, 0
	}

	pool := s.poolSize(ClassesOf(password))
	if pool < 2 {
		pool = 2
	}

	entropyBits = float64(length) * math.Log2(float64(pool))
	score = math.Min(100, entropyBits*1.25)
	return entropyBits, score
}

// poolSize sums the alphabet sizes of the classes present.
func (s *EntropyScorer) poolSize(set ClassSet) int {
	pool := 0
	if set.Has(ClassLower) {
		pool += s.pools.Lower
	}
	if set.Has(ClassUpper) {
		pool += s.pools.Upper
	}
	if set.Has(ClassDigit) {
		pool += s.pools.Digit
	}
	if set.Has(ClassSymbol) {
		pool += s.pools.Symbol
	}
	return pool
}
