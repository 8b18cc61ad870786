package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectRepeatedPattern(t *testing.T) {
	d := NewPatternDetector()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"two-char unit full coverage", "abab", true},
		{"three-char unit full coverage", "xqzxqz", true},
		{"repeat covering exactly half", "xqxqzrwm", true},
		{"repeat covering under half", "ababnqzrw", false},
		{"char run forms a repeating pair", "aaaa", true},
		{"three chars cannot fit a repeated unit", "aaa", false},
		{"no repeats", "xrqmzw", false},
		{"empty", "", false},
		{"too short for a unit", "aba", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.in).Has(FlagRepeatedPattern))
		})
	}
}

func TestDetectSequentialRun(t *testing.T) {
	d := NewPatternDetector()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"ascending letters", "abc", true},
		{"ascending inside", "xxabcxx", true},
		{"descending digits", "321xyz", true},
		{"full ascending word", "abcdef", true},
		{"two chars only", "ab", false},
		{"broken run", "acegik", false},
		{"case break stops the run", "aBc", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.in).Has(FlagSequentialRun))
		})
	}
}

func TestDetectKeyboardWalk(t *testing.T) {
	d := NewPatternDetector()

	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"home row", "asdf", true},
		{"top row mixed case", "QwErTy", true},
		{"reverse walk", "poiuy", true},
		{"bottom row fragment", "xcv", true},
		{"no walk", "aG4!kP", false},
		{"column walk not detected", "qaz", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.in).Has(FlagKeyboardWalk))
		})
	}
}

func TestDetectCleanPassword(t *testing.T) {
	d := NewPatternDetector()
	require.Equal(t, FlagSet(0), d.Detect("aG4!kP9w"))
}

func TestDetectCaseSensitiveRepeats(t *testing.T) {
	d := NewPatternDetector()

	// "aBaB" repeats; "aBab" does not.
	require.True(t, d.Detect("aBaB").Has(FlagRepeatedPattern))
	require.False(t, d.Detect("aBab").Has(FlagRepeatedPattern))
}

func TestFlagSetString(t *testing.T) {
	assert.Equal(t, "none", FlagSet(0).String())
	assert.Equal(t, "CommonPassword,SequentialRun", (FlagCommonPassword | FlagSequentialRun).String())
}

func TestFlagSetMarshalJSON(t *testing.T) {
	data, err := (FlagRepeatedPattern | FlagKeyboardWalk).MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `["RepeatedPattern","KeyboardWalk"]`, string(data))

	data, err = FlagSet(0).MarshalJSON()
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}
