package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBasicAnalyzeScoreMatchesScorer(t *testing.T) {
	scorer := NewEntropyScorer(DefaultPoolSizes())
	analyzer := NewBasicAnalyzer(scorer, NewCommonChecker(nil))

	for _, pw := range []string{"aG4!kP9w", "tr0ub4dor&3", "zzzzzz", "A"} {
		result, err := analyzer.Analyze(pw)
		require.NoError(t, err)

		bits, score := scorer.Score(pw)
		assert.Equal(t, score, result.Score, "password %q", pw)
		assert.Equal(t, bits, result.EntropyBits, "password %q", pw)
		assert.Equal(t, ClassifyScore(score), result.Classification, "password %q", pw)
		assert.Zero(t, result.Flags, "password %q", pw)
	}
}

func TestBasicAnalyzeCommonPasswordCappedAtWeak(t *testing.T) {
	analyzer := NewBasicAnalyzer(nil, nil)

	result, err := analyzer.Analyze("password")
	require.NoError(t, err)

	// The numeric score is left as computed; only the bucket is forced down.
	_, rawScore := NewEntropyScorer(DefaultPoolSizes()).Score("password")
	require.Equal(t, rawScore, result.Score)
	require.True(t, result.Flags.Has(FlagCommonPassword))
	require.LessOrEqual(t, result.Classification, Weak)
}

func TestBasicAnalyzeCommonButAlreadyVeryWeak(t *testing.T) {
	analyzer := NewBasicAnalyzer(nil, NewCommonChecker([]string{"ab"}))

	result, err := analyzer.Analyze("ab")
	require.NoError(t, err)
	require.True(t, result.Flags.Has(FlagCommonPassword))
	require.Equal(t, VeryWeak, result.Classification)
}

func TestAnalyzeEmptyPassword(t *testing.T) {
	for _, analyzer := range []Analyzer{
		NewBasicAnalyzer(nil, nil),
		NewAdvancedAnalyzer(nil, nil),
	} {
		result, err := analyzer.Analyze("")
		require.NoError(t, err)
		require.Zero(t, result.EntropyBits)
		require.Zero(t, result.Score)
		require.Equal(t, VeryWeak, result.Classification)
		require.Zero(t, result.Flags)
	}
}

func TestAnalyzeInvalidUTF8(t *testing.T) {
	for _, analyzer := range []Analyzer{
		NewBasicAnalyzer(nil, nil),
		NewAdvancedAnalyzer(nil, nil),
	} {
		_, err := analyzer.Analyze("abc\xff")
		require.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestAdvancedAnalyzeMergesPatternFlags(t *testing.T) {
	analyzer := NewAdvancedAnalyzer(nil, nil)

	result, err := analyzer.Analyze("abababab")
	require.NoError(t, err)
	require.True(t, result.Flags.Has(FlagRepeatedPattern))
	require.LessOrEqual(t, result.Classification, Moderate)
}

func TestAdvancedAnalyzeCapsStrongScoreAtModerate(t *testing.T) {
	analyzer := NewAdvancedAnalyzer(nil, nil)

	// Four classes over 8 characters scores Strong on raw entropy, but the
	// repeated "aB3!" unit caps the bucket.
	result, err := analyzer.Analyze("aB3!aB3!")
	require.NoError(t, err)
	require.Greater(t, result.Score, 60.0)
	require.True(t, result.Flags.Has(FlagRepeatedPattern))
	require.Equal(t, Moderate, result.Classification)
}

func TestAdvancedAnalyzeCommonCapStacksBelowPatternCap(t *testing.T) {
	common := NewCommonChecker([]string{"Aa1!Aa1!Aa1!"})
	basic := NewBasicAnalyzer(nil, common)
	analyzer := NewAdvancedAnalyzer(basic, nil)

	result, err := analyzer.Analyze("Aa1!Aa1!Aa1!")
	require.NoError(t, err)
	require.True(t, result.Flags.Has(FlagCommonPassword))
	require.True(t, result.Flags.Has(FlagRepeatedPattern))
	require.Equal(t, Weak, result.Classification)
}

func TestAdvancedFlagsSupersetOfBasic(t *testing.T) {
	basic := NewBasicAnalyzer(nil, nil)
	advanced := NewAdvancedAnalyzer(basic, nil)

	for _, pw := range []string{"password", "abcdef", "abab", "aG4!kP9w", "", "qwerty"} {
		basicResult, err := basic.Analyze(pw)
		require.NoError(t, err)
		advancedResult, err := advanced.Analyze(pw)
		require.NoError(t, err)

		assert.True(t, advancedResult.Flags.Has(basicResult.Flags), "password %q", pw)
	}
}

func TestAnalyzeIdempotent(t *testing.T) {
	for _, analyzer := range []Analyzer{
		NewBasicAnalyzer(nil, nil),
		NewAdvancedAnalyzer(nil, nil),
	} {
		first, err := analyzer.Analyze("aB3!aB3!")
		require.NoError(t, err)
		second, err := analyzer.Analyze("aB3!aB3!")
		require.NoError(t, err)
		require.Equal(t, first, second)
	}
}

func TestAnalyzerInterfaceDispatch(t *testing.T) {
	// Both variants are consumed through the interface with no type checks.
	analyzers := []Analyzer{
		NewBasicAnalyzer(nil, nil),
		NewAdvancedAnalyzer(nil, nil),
	}

	for _, a := range analyzers {
		result, err := a.Analyze("StrongPass123!")
		require.NoError(t, err)
		require.NotNil(t, result)
		require.Greater(t, result.Score, 0.0)
	}
}
