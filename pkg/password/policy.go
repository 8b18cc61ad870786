package password

import (
	"fmt"
	"unicode/utf8"

	passwordvalidator "github.com/wagslane/go-password-validator"
)

// RuleKind identifies a policy rule.
type RuleKind int

const (
	// RuleMinLength requires at least N characters
	RuleMinLength RuleKind = iota + 1

	// RuleMaxLength allows at most N characters
	RuleMaxLength

	// RuleRequireUpper requires an uppercase letter
	RuleRequireUpper

	// RuleRequireLower requires a lowercase letter
	RuleRequireLower

	// RuleRequireDigit requires a digit
	RuleRequireDigit

	// RuleRequireSymbol requires a symbol
	RuleRequireSymbol

	// RuleMaxRepeat limits runs of one character to N+1 occurrences, so
	// N=0 forbids adjacent duplicates
	RuleMaxRepeat

	// RuleMinEntropy requires an entropy estimate of at least N bits
	RuleMinEntropy

	// RuleNotCommon rejects passwords from the known-weak set
	RuleNotCommon
)

// String returns the rule kind name.
func (k RuleKind) String() string {
	switch k {
	case RuleMinLength:
		return "MinLength"
	case RuleMaxLength:
		return "MaxLength"
	case RuleRequireUpper:
		return "RequireUppercase"
	case RuleRequireLower:
		return "RequireLowercase"
	case RuleRequireDigit:
		return "RequireDigit"
	case RuleRequireSymbol:
		return "RequireSymbol"
	case RuleMaxRepeat:
		return "MaxRepeatedChars"
	case RuleMinEntropy:
		return "MinEntropyBits"
	case RuleNotCommon:
		return "NotCommon"
	}
	return "Unknown"
}

// MarshalJSON renders the rule kind name as a JSON string.
func (k RuleKind) MarshalJSON() ([]byte, error) {
	return []byte(`"` + k.String() + `"`), nil
}

// Rule is one policy constraint.
type Rule struct {
	Kind  RuleKind
	Param int
}

// MinLength requires at least n characters.
func MinLength(n int) Rule { return Rule{Kind: RuleMinLength, Param: n} }

// MaxLength allows at most n characters.
func MaxLength(n int) Rule { return Rule{Kind: RuleMaxLength, Param: n} }

// RequireUpper requires an uppercase letter.
func RequireUpper() Rule { return Rule{Kind: RuleRequireUpper} }

// RequireLower requires a lowercase letter.
func RequireLower() Rule { return Rule{Kind: RuleRequireLower} }

// RequireDigit requires a digit.
func RequireDigit() Rule { return Rule{Kind: RuleRequireDigit} }

// RequireSymbol requires a symbol.
func RequireSymbol() Rule { return Rule{Kind: RuleRequireSymbol} }

// MaxRepeat limits runs of one character to n+1 consecutive occurrences.
func MaxRepeat(n int) Rule { return Rule{Kind: RuleMaxRepeat, Param: n} }

// MinEntropy requires an entropy estimate of at least bits.
func MinEntropy(bits int) Rule { return Rule{Kind: RuleMinEntropy, Param: bits} }

// NotCommon rejects passwords from the policy's known-weak set.
func NotCommon() Rule { return Rule{Kind: RuleNotCommon} }

// Violation records a failed rule.
type Violation struct {
	Rule    RuleKind `json:"rule"`
	Message string   `json:"message"`
}

// ValidationResult lists every rule a password violated, in the order the
// rules were added to the policy.
type ValidationResult struct {
	Passed     bool        `json:"passed"`
	Violations []Violation `json:"violations,omitempty"`
}

// Policy is an ordered, immutable set of rules. Rules are added only at
// construction; a policy that constructed without error is well formed.
type Policy struct {
	rules  []Rule
	common *CommonChecker
}

// NewPolicy creates a policy from an ordered rule list. The common checker
// backs the NotCommon rule; nil uses the built-in default list. Conflicting
// or out-of-range rule parameters return a PolicyError.
func NewPolicy(rules []Rule, common *CommonChecker) (*Policy, error) {
	if common == nil {
		common = NewCommonChecker(nil)
	}

	seen := make(map[RuleKind]bool, len(rules))
	minLen, maxLen := 0, 0
	for _, r := range rules {
		if r.Kind.String() == "Unknown" {
			return nil, &PolicyError{Rule: r.Kind, Message: "unknown rule kind"}
		}
		if seen[r.Kind] {
			return nil, &PolicyError{Rule: r.Kind, Message: "rule added more than once"}
		}
		seen[r.Kind] = true

		switch r.Kind {
		case RuleMinLength:
			if r.Param < 0 {
				return nil, &PolicyError{Rule: r.Kind, Message: "length must not be negative"}
			}
			minLen = r.Param
		case RuleMaxLength:
			if r.Param <= 0 {
				return nil, &PolicyError{Rule: r.Kind, Message: "length must be positive"}
			}
			maxLen = r.Param
		case RuleMaxRepeat:
			if r.Param < 0 {
				return nil, &PolicyError{Rule: r.Kind, Message: "repeat limit must not be negative"}
			}
		case RuleMinEntropy:
			if r.Param < 0 {
				return nil, &PolicyError{Rule: r.Kind, Message: "entropy bits must not be negative"}
			}
		}
	}

	if maxLen > 0 && minLen > maxLen {
		return nil, &PolicyError{Rule: RuleMaxLength, Message: "maximum length is below minimum length"}
	}

	owned := make([]Rule, len(rules))
	copy(owned, rules)
	return &Policy{rules: owned, common: common}, nil
}

// Rules returns a copy of the policy's rule list in evaluation order.
func (p *Policy) Rules() []Rule {
	out := make([]Rule, len(p.rules))
	copy(out, p.rules)
	return out
}

// Validate checks the password against every rule in order and collects all
// violations; it never short-circuits, so the caller gets a complete report.
// Passed is true iff the violation list is empty.
func (p *Policy) Validate(password string) ValidationResult {
	length := utf8.RuneCountInString(password)
	classes := ClassesOf(password)

	var violations []Violation
	fail := func(kind RuleKind, format string, args ...any) {
		violations = append(violations, Violation{
			Rule:    kind,
			Message: fmt.Sprintf(format, args...),
		})
	}

	for _, r := range p.rules {
		switch r.Kind {
		case RuleMinLength:
			if length < r.Param {
				fail(r.Kind, "password must be at least %d characters long", r.Param)
			}
		case RuleMaxLength:
			if length > r.Param {
				fail(r.Kind, "password must be at most %d characters long", r.Param)
			}
		case RuleRequireUpper:
			if !classes.Has(ClassUpper) {
				fail(r.Kind, "password must contain at least one uppercase letter")
			}
		case RuleRequireLower:
			if !classes.Has(ClassLower) {
				fail(r.Kind, "password must contain at least one lowercase letter")
			}
		case RuleRequireDigit:
			if !classes.Has(ClassDigit) {
				fail(r.Kind, "password must contain at least one digit")
			}
		case RuleRequireSymbol:
			if !classes.Has(ClassSymbol) {
				fail(r.Kind, "password must contain at least one symbol")
			}
		case RuleMaxRepeat:
			if run := longestRun(password); run > r.Param+1 {
				fail(r.Kind, "password repeats a character %d times in a row (limit %d)", run, r.Param+1)
			}
		case RuleMinEntropy:
			if got := passwordvalidator.GetEntropy(password); got < float64(r.Param) {
				fail(r.Kind, "password entropy %.1f bits is below the required %d bits", got, r.Param)
			}
		case RuleNotCommon:
			if p.common.IsCommon(password) {
				fail(r.Kind, "password appears in the known-weak list")
			}
		}
	}

	return ValidationResult{
		Passed:     len(violations) == 0,
		Violations: violations,
	}
}

// requiredClasses returns the classes the policy demands.
func (p *Policy) requiredClasses() ClassSet {
	var set ClassSet
	for _, r := range p.rules {
		switch r.Kind {
		case RuleRequireUpper:
			set |= ClassUpper
		case RuleRequireLower:
			set |= ClassLower
		case RuleRequireDigit:
			set |= ClassDigit
		case RuleRequireSymbol:
			set |= ClassSymbol
		}
	}
	return set
}

// lengthBounds returns the policy's minimum and maximum length (0 = unset).
func (p *Policy) lengthBounds() (min, max int) {
	for _, r := range p.rules {
		switch r.Kind {
		case RuleMinLength:
			min = r.Param
		case RuleMaxLength:
			max = r.Param
		}
	}
	return min, max
}

// repeatLimit returns the maximum allowed run length, or 0 if unset.
func (p *Policy) repeatLimit() int {
	for _, r := range p.rules {
		if r.Kind == RuleMaxRepeat {
			return r.Param + 1
		}
	}
	return 0
}

// longestRun returns the length of the longest run of one character.
func longestRun(s string) int {
	var prev rune
	run, longest := 0, 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
		prev = r
	}
	return longest
}
