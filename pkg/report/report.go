// Package report renders analysis and validation results as human-readable
// text or JSON. It is a pure consumer of the engine's result types.
package report

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/passguard/passguard/pkg/password"
)

// Analysis renders an analysis result as a text report.
func Analysis(result *password.AnalysisResult) string {
	var b strings.Builder
	b.WriteString("Password Analysis Report\n")
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Score: %.1f / 100\n", result.Score)
	fmt.Fprintf(&b, "Classification: %s\n", result.Classification)
	fmt.Fprintf(&b, "Entropy: %.2f bits\n", result.EntropyBits)
	fmt.Fprintf(&b, "Flags: %s\n", result.Flags)

	keys := make([]string, 0, len(result.Details))
	for k := range result.Details {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, "%s: %s\n", titleCase(k), result.Details[k])
	}

	return b.String()
}

// Validation renders a validation result as a text report.
func Validation(result password.ValidationResult) string {
	var b strings.Builder
	b.WriteString("Password Validation Report\n")
	b.WriteString("--------------------------\n")
	if result.Passed {
		b.WriteString("Passed: true\n")
		return b.String()
	}

	b.WriteString("Passed: false\n")
	for _, v := range result.Violations {
		fmt.Fprintf(&b, "  [%s] %s\n", v.Rule, v.Message)
	}
	return b.String()
}

// JSON renders any result type as indented JSON.
func JSON(v any) (string, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode report: %w", err)
	}
	return string(data), nil
}

// titleCase turns a snake_case detail key into a display label.
func titleCase(key string) string {
	words := strings.Split(key, "_")
	for i, w := range words {
		if w != "" {
			words[i] = strings.ToUpper(w[:1]) + w[1:]
		}
	}
	return strings.Join(words, " ")
}
