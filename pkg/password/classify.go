package password

import "strings"

// Character class alphabets. Symbols is the 32-character ASCII symbol set
// (printable specials excluding space).
const (
	LowercaseLetters = "abcdefghijklmnopqrstuvwxyz"
	UppercaseLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Digits           = "0123456789"
	Symbols          = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"
)

// ClassSet is a bitmask of character classes.
type ClassSet uint8

const (
	// ClassLower marks lowercase ASCII letters
	ClassLower ClassSet = 1 << iota

	// ClassUpper marks uppercase ASCII letters
	ClassUpper

	// ClassDigit marks decimal digits
	ClassDigit

	// ClassSymbol marks printable ASCII symbols
	ClassSymbol
)

// Classify returns the character classes a rune belongs to. A rune belongs
// to at most one class; whitespace, control characters, and anything outside
// the ASCII alphabets yield the empty set.
func Classify(r rune) ClassSet {
	switch {
	case r >= 'a' && r <= 'z':
		return ClassLower
	case r >= 'A' && r <= 'Z':
		return ClassUpper
	case r >= '0' && r <= '9':
		return ClassDigit
	case strings.ContainsRune(Symbols, r):
		return ClassSymbol
	}
	return 0
}

// ClassesOf returns the union of classes present in a string.
func ClassesOf(s string) ClassSet {
	var set ClassSet
	for _, r := range s {
		set |= Classify(r)
	}
	return set
}

// Has reports whether the set contains all classes in other.
func (s ClassSet) Has(other ClassSet) bool {
	return s&other == other
}

// Count returns the number of classes in the set.
func (s ClassSet) Count() int {
	n := 0
	for _, c := range []ClassSet{ClassLower, ClassUpper, ClassDigit, ClassSymbol} {
		if s.Has(c) {
			n++
		}
	}
	return n
}

// String returns a comma-separated list of class names.
func (s ClassSet) String() string {
	var names []string
	if s.Has(ClassLower) {
		names = append(names, "lower")
	}
	if s.Has(ClassUpper) {
		names = append(names, "upper")
	}
	if s.Has(ClassDigit) {
		names = append(names, "digit")
	}
	if s.Has(ClassSymbol) {
		names = append(names, "symbol")
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ",")
}

// Alphabet returns the combined alphabet of all classes in the set.
func (s ClassSet) Alphabet() string {
	var b strings.Builder
	if s.Has(ClassLower) {
		b.WriteString(LowercaseLetters)
	}
	if s.Has(ClassUpper) {
		b.WriteString(UppercaseLetters)
	}
	if s.Has(ClassDigit) {
		b.WriteString(Digits)
	}
	if s.Has(ClassSymbol) {
		b.WriteString(Symbols)
	}
	return b.String()
}
