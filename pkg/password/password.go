// Package password implements password strength analysis, rule-based policy
// validation, and policy-driven password generation. All checks are local:
// no network lookups, no persistence, ASCII character classes only.
package password

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Password is an immutable value wrapping a password string. Its String
// method returns a masked form so the raw value never leaks into logs or
// formatted output by accident.
type Password struct {
	value string
}

// NewPassword wraps a password string. Returns ErrInvalidInput if the input
// is not valid UTF-8. Empty passwords are allowed.
func NewPassword(value string) (Password, error) {
	if !utf8.ValidString(value) {
		return Password{}, ErrInvalidInput
	}
	return Password{value: value}, nil
}

// Value returns the raw password string.
func (p Password) Value() string {
	return p.value
}

// Length returns the number of characters (code points).
func (p Password) Length() int {
	return utf8.RuneCountInString(p.value)
}

// Masked returns the password with every character replaced by '*'.
func (p Password) Masked() string {
	return strings.Repeat("*", p.Length())
}

// Classes returns the character classes present in the password.
func (p Password) Classes() ClassSet {
	return ClassesOf(p.value)
}

// ContainsUpper reports whether the password contains an uppercase letter.
func (p Password) ContainsUpper() bool {
	return p.Classes().Has(ClassUpper)
}

// ContainsLower reports whether the password contains a lowercase letter.
func (p Password) ContainsLower() bool {
	return p.Classes().Has(ClassLower)
}

// ContainsDigit reports whether the password contains a digit.
func (p Password) ContainsDigit() bool {
	return p.Classes().Has(ClassDigit)
}

// ContainsSymbol reports whether the password contains a symbol.
func (p Password) ContainsSymbol() bool {
	return p.Classes().Has(ClassSymbol)
}

// String implements fmt.Stringer with the masked form.
func (p Password) String() string {
	return fmt.Sprintf("Password(masked=%q, length=%d)", p.Masked(), p.Length())
}
