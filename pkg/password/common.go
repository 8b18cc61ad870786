package password

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// defaultCommonPasswords is a small built-in set drawn from public
// worst-password lists. Callers with a larger corpus can load their own list
// with LoadCommonPasswords.
var defaultCommonPasswords = []string{
	"password", "password1", "password123", "passw0rd", "p@ssw0rd",
	"123456", "1234567", "12345678", "123456789", "1234567890",
	"qwerty", "qwerty123", "qwertyuiop", "abc123", "abcd1234",
	"111111", "000000", "123123", "654321", "112233",
	"letmein", "welcome", "welcome1", "admin", "admin123",
	"root", "toor", "login", "master", "monkey",
	"dragon", "shadow", "sunshine", "princess", "football",
	"baseball", "superman", "batman", "trustno1", "iloveyou",
	"starwars", "whatever", "freedom", "secret", "hello",
	"charlie", "donald", "flower", "hottie", "zaq1zaq1",
}

// DefaultCommonPasswords returns a copy of the built-in known-weak set.
func DefaultCommonPasswords() []string {
	out := make([]string, len(defaultCommonPasswords))
	copy(out, defaultCommonPasswords)
	return out
}

// LoadCommonPasswords reads a newline-delimited password list. Blank lines
// and lines starting with '#' are skipped.
func LoadCommonPasswords(r io.Reader) ([]string, error) {
	var passwords []string

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		passwords = append(passwords, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read password list: %w", err)
	}

	return passwords, nil
}

// CommonChecker tests passwords for exact, case-sensitive membership in a
// known-weak set fixed at construction time.
type CommonChecker struct {
	set map[string]struct{}
}

// NewCommonChecker creates a checker over the given set. A nil slice uses
// the built-in default list.
func NewCommonChecker(passwords []string) *CommonChecker {
	if passwords == nil {
		passwords = defaultCommonPasswords
	}
	set := make(map[string]struct{}, len(passwords))
	for _, p := range passwords {
		set[p] = struct{}{}
	}
	return &CommonChecker{set: set}
}

// IsCommon reports whether the password is in the known-weak set. Exact
// match only, no fuzzy or case-folded comparison.
func (c *CommonChecker) IsCommon(password string) bool {
	_, ok := c.set[password]
	return ok
}

// Size returns the number of passwords in the set.
func (c *CommonChecker) Size() int {
	return len(c.set)
}
