package password

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// Analyzer is the shared analysis contract. Both variants produce the same
// result shape; callers never need a type check to consume either.
type Analyzer interface {
	Analyze(password string) (*AnalysisResult, error)
}

// AnalysisResult is the structured verdict for one analysis call. A fresh
// result is produced per call and never mutated afterwards.
type AnalysisResult struct {
	Score          float64           `json:"score"`
	Classification Classification    `json:"classification"`
	EntropyBits    float64           `json:"entropyBits"`
	Flags          FlagSet           `json:"flags"`
	Details        map[string]string `json:"details,omitempty"`
}

// BasicAnalyzer scores entropy and flags common passwords. Immutable after
// construction; Analyze is a pure function.
type BasicAnalyzer struct {
	scorer *EntropyScorer
	common *CommonChecker
}

// NewBasicAnalyzer creates a basic analyzer. Nil collaborators fall back to
// defaults.
func NewBasicAnalyzer(scorer *EntropyScorer, common *CommonChecker) *BasicAnalyzer {
	if scorer == nil {
		scorer = NewEntropyScorer(DefaultPoolSizes())
	}
	if common == nil {
		common = NewCommonChecker(nil)
	}
	return &BasicAnalyzer{scorer: scorer, common: common}
}

// Analyze scores the password and checks it against the known-weak set.
// A common-password match caps the classification at Weak; the numeric score
// is left as computed. Returns ErrInvalidInput for non-UTF-8 input; any
// valid string, including empty, analyzes without error.
func (a *BasicAnalyzer) Analyze(password string) (*AnalysisResult, error) {
	if !utf8.ValidString(password) {
		return nil, ErrInvalidInput
	}

	bits, score := a.scorer.Score(password)

	result := &AnalysisResult{
		Score:          score,
		Classification: ClassifyScore(score),
		EntropyBits:    bits,
		Details: map[string]string{
			"length":  strconv.Itoa(utf8.RuneCountInString(password)),
			"classes": ClassesOf(password).String(),
			"entropy": fmt.Sprintf("%.2f bits", bits),
		},
	}

	if a.common.IsCommon(password) {
		result.Flags |= FlagCommonPassword
		result.Details["common"] = "password appears in the known-weak list"
		if result.Classification > Weak {
			result.Classification = Weak
		}
	}

	return result, nil
}

// AdvancedAnalyzer runs every basic check plus pattern detection. It
// composes a BasicAnalyzer rather than reimplementing it, so the cap rule
// stays explicit: pattern findings merge into the basic result and cap the
// classification at Moderate. Caps only ever lower a classification.
type AdvancedAnalyzer struct {
	basic    *BasicAnalyzer
	detector *PatternDetector
}

// NewAdvancedAnalyzer creates an advanced analyzer. Nil collaborators fall
// back to defaults.
func NewAdvancedAnalyzer(basic *BasicAnalyzer, detector *PatternDetector) *AdvancedAnalyzer {
	if basic == nil {
		basic = NewBasicAnalyzer(nil, nil)
	}
	if detector == nil {
		detector = NewPatternDetector()
	}
	return &AdvancedAnalyzer{basic: basic, detector: detector}
}

// Analyze performs the basic analysis, then merges pattern flags. Any
// repeated-pattern, sequential-run, or keyboard-walk finding caps the
// classification at Moderate even if the raw entropy score is higher.
func (a *AdvancedAnalyzer) Analyze(password string) (*AnalysisResult, error) {
	result, err := a.basic.Analyze(password)
	if err != nil {
		return nil, err
	}

	flags := a.detector.Detect(password)
	if flags == 0 {
		return result, nil
	}

	result.Flags |= flags
	if flags.Has(FlagRepeatedPattern) {
		result.Details["repeated_pattern"] = "contains a repeating substring"
	}
	if flags.Has(FlagSequentialRun) {
		result.Details["sequential_run"] = "contains an ascending or descending character run"
	}
	if flags.Has(FlagKeyboardWalk) {
		result.Details["keyboard_walk"] = "contains a keyboard-adjacent sequence"
	}
	if result.Classification > Moderate {
		result.Classification = Moderate
	}

	return result, nil
}
