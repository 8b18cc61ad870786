package password

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Generator defaults
const (
	DefaultLength      = 16
	DefaultMaxAttempts = 32
)

// RandSource supplies the generator's randomness. It is injectable so
// generation is deterministic under a seeded source; *math/rand.Rand
// satisfies it directly.
type RandSource interface {
	Intn(n int) int
}

// CryptoSource draws from crypto/rand. Like uuid.New, it panics if the
// system randomness source fails.
type CryptoSource struct{}

// Intn returns a uniform random int in [0, n).
func (CryptoSource) Intn(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("password: crypto/rand failed: %v", err))
	}
	return int(v.Int64())
}

// Generator synthesizes passwords that satisfy a policy. Required character
// classes are guaranteed by construction rather than by retry-until-lucky, so
// the attempt bound is only exercised by genuinely strict or unsatisfiable
// rule combinations.
type Generator struct {
	policy      *Policy
	source      RandSource
	maxAttempts int
}

// NewGenerator creates a generator for the policy. A nil source uses
// CryptoSource; maxAttempts <= 0 uses DefaultMaxAttempts.
func NewGenerator(policy *Policy, source RandSource, maxAttempts int) *Generator {
	if source == nil {
		source = CryptoSource{}
	}
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxAttempts
	}
	return &Generator{
		policy:      policy,
		source:      source,
		maxAttempts: maxAttempts,
	}
}

// Generate produces a password at the default length, raised or lowered as
// the policy's length bounds demand.
func (g *Generator) Generate() (Password, error) {
	return g.GenerateLength(0)
}

// GenerateLength produces a password of the given length (0 picks a default
// within the policy's bounds). Candidates are built to satisfy the policy's
// structural minimums, then checked with Validate; after maxAttempts
// non-compliant candidates the call fails with ErrUnsatisfiablePolicy.
func (g *Generator) GenerateLength(length int) (Password, error) {
	min, max := g.policy.lengthBounds()

	if length == 0 {
		length = DefaultLength
		if length < min {
			length = min
		}
		if max > 0 && length > max {
			length = max
		}
	}
	if length < min || (max > 0 && length > max) {
		return Password{}, fmt.Errorf("requested length %d is outside the policy bounds: %w", length, ErrUnsatisfiablePolicy)
	}

	required := g.policy.requiredClasses()
	if length < required.Count() {
		return Password{}, fmt.Errorf("length %d cannot hold %d required classes: %w", length, required.Count(), ErrUnsatisfiablePolicy)
	}

	alphabet := []rune((ClassLower | ClassUpper | ClassDigit | ClassSymbol).Alphabet())
	runLimit := g.policy.repeatLimit()

	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		candidate := g.build(length, required, alphabet, runLimit)
		if result := g.policy.Validate(candidate); result.Passed {
			return NewPassword(candidate)
		}
	}

	return Password{}, fmt.Errorf("gave up after %d attempts: %w", g.maxAttempts, ErrUnsatisfiablePolicy)
}

// build assembles one candidate: one character per required class, random
// fill from the full alphabet, a Fisher-Yates shuffle, and a repair pass
// breaking character runs the policy would reject.
func (g *Generator) build(length int, required ClassSet, alphabet []rune, runLimit int) string {
	chars := make([]rune, 0, length)

	for _, class := range []ClassSet{ClassLower, ClassUpper, ClassDigit, ClassSymbol} {
		if required.Has(class) {
			pool := []rune(class.Alphabet())
			chars = append(chars, pool[g.source.Intn(len(pool))])
		}
	}

	for len(chars) < length {
		chars = append(chars, alphabet[g.source.Intn(len(alphabet))])
	}

	for i := len(chars) - 1; i > 0; i-- {
		j := g.source.Intn(i + 1)
		chars[i], chars[j] = chars[j], chars[i]
	}

	if runLimit > 0 {
		run := 1
		for i := 1; i < len(chars); i++ {
			if chars[i] != chars[i-1] {
				run = 1
				continue
			}
			run++
			if run > runLimit {
				for tries := 0; tries < 8 && chars[i] == chars[i-1]; tries++ {
					chars[i] = alphabet[g.source.Intn(len(alphabet))]
				}
				run = 1
			}
		}
	}

	return string(chars)
}
