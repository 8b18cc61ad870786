package password

import "strings"

// FlagSet is a bitmask of analysis findings.
type FlagSet uint8

const (
	// FlagCommonPassword marks an exact match in the known-weak password set
	FlagCommonPassword FlagSet = 1 << iota

	// FlagRepeatedPattern marks a consecutively repeating substring covering
	// at least half the password
	FlagRepeatedPattern

	// FlagSequentialRun marks a run of 3+ strictly ascending or descending
	// code points
	FlagSequentialRun

	// FlagKeyboardWalk marks a run of 3+ keyboard-adjacent characters
	FlagKeyboardWalk
)

// Has reports whether the set contains all flags in other.
func (f FlagSet) Has(other FlagSet) bool {
	return f&other == other
}

// List returns the flag names in declaration order.
func (f FlagSet) List() []string {
	var names []string
	if f.Has(FlagCommonPassword) {
		names = append(names, "CommonPassword")
	}
	if f.Has(FlagRepeatedPattern) {
		names = append(names, "RepeatedPattern")
	}
	if f.Has(FlagSequentialRun) {
		names = append(names, "SequentialRun")
	}
	if f.Has(FlagKeyboardWalk) {
		names = append(names, "KeyboardWalk")
	}
	return names
}

// String returns a comma-separated list of flag names.
func (f FlagSet) String() string {
	names := f.List()
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// MarshalJSON renders the set as a JSON array of flag names.
func (f FlagSet) MarshalJSON() ([]byte, error) {
	names := f.List()
	if len(names) == 0 {
		return []byte("[]"), nil
	}
	return []byte(`["` + strings.Join(names, `","`) + `"]`), nil
}

// QWERTY rows used for keyboard-walk detection.
var keyboardRows = []string{
	"1234567890",
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
}

// PatternDetector flags repeated substrings, sequential runs, and
// keyboard-adjacent sequences. Detection is case-sensitive (keyboard rows
// excepted), operates on the raw character sequence only, and never matches
// across non-adjacent positions.
type PatternDetector struct{}

// NewPatternDetector creates a pattern detector.
func NewPatternDetector() *PatternDetector {
	return &PatternDetector{}
}

// Detect returns the pattern flags found in the password.
func (d *PatternDetector) Detect(password string) FlagSet {
	runes := []rune(password)

	var flags FlagSet
	if hasRepeatedPattern(runes) {
		flags |= FlagRepeatedPattern
	}
	if hasSequentialRun(runes) {
		flags |= FlagSequentialRun
	}
	if hasKeyboardWalk(runes) {
		flags |= FlagKeyboardWalk
	}
	return flags
}

// hasRepeatedPattern reports whether some substring of length >= 2 repeats
// consecutively, with the repetitions covering at least 50% of the password.
func hasRepeatedPattern(runes []rune) bool {
	n := len(runes)
	for size := 2; size*2 <= n; size++ {
		for start := 0; start+2*size <= n; start++ {
			unit := runes[start : start+size]

			repeats := 1
			for start+(repeats+1)*size <= n && runesEqual(unit, runes[start+repeats*size:start+(repeats+1)*size]) {
				repeats++
			}

			if repeats >= 2 && 2*repeats*size >= n {
				return true
			}
		}
	}
	return false
}

// hasSequentialRun reports whether 3+ adjacent characters form a strictly
// ascending or descending code-point sequence.
func hasSequentialRun(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		d1 := runes[i+1] - runes[i]
		d2 := runes[i+2] - runes[i+1]
		if (d1 == 1 && d2 == 1) || (d1 == -1 && d2 == -1) {
			return true
		}
	}
	return false
}

// hasKeyboardWalk reports whether 3+ adjacent characters sit next to each
// other on a QWERTY row, in either direction. Row lookup ignores case.
func hasKeyboardWalk(runes []rune) bool {
	for i := 0; i+2 < len(runes); i++ {
		window := strings.ToLower(string(runes[i : i+3]))
		for _, row := range keyboardRows {
			if strings.Contains(row, window) || strings.Contains(reverse(row), window) {
				return true
			}
		}
	}
	return false
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
