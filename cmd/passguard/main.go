package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/passguard/passguard/internal/config"
	"github.com/passguard/passguard/internal/logger"
	"github.com/passguard/passguard/pkg/password"
	"github.com/passguard/passguard/pkg/report"
)

const version = "0.1.0"

var (
	jsonOutput bool
	basicOnly  bool
	genLength  int
)

var rootCmd = &cobra.Command{
	Use:   "passguard",
	Short: "Password strength analysis and policy enforcement",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze [password]",
	Short: "Analyze password strength",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

var validateCmd = &cobra.Command{
	Use:   "validate [password]",
	Short: "Validate a password against the configured policy",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a policy-compliant password",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the passguard version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit JSON instead of text reports")
	analyzeCmd.Flags().BoolVar(&basicOnly, "basic", false, "skip pattern detection")
	generateCmd.Flags().IntVar(&genLength, "length", 0, "password length (0 uses the configured default)")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func setup() (*config.Config, *logger.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	log := logger.New(cfg.Log.Level, cfg.Log.Format).WithRunID(uuid.NewString())
	return cfg, log, nil
}

// readPassword takes the password from the argument list, a no-echo terminal
// prompt, or the first line of piped stdin, in that order.
func readPassword(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}

	fd := int(os.Stdin.Fd())
	if term.IsTerminal(fd) {
		fmt.Fprint(os.Stderr, "Password: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(raw), nil
	}

	scanner := bufio.NewScanner(os.Stdin)
	if scanner.Scan() {
		return scanner.Text(), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return "", nil
}

func buildChecker(cfg *config.Config) (*password.CommonChecker, error) {
	list, err := cfg.Analyzer.CommonPasswords()
	if err != nil {
		return nil, err
	}
	return password.NewCommonChecker(list), nil
}

func buildAnalyzer(cfg *config.Config, checker *password.CommonChecker) password.Analyzer {
	scorer := password.NewEntropyScorer(cfg.Analyzer.PoolSizes())
	basic := password.NewBasicAnalyzer(scorer, checker)
	if basicOnly || !cfg.Analyzer.Advanced {
		return basic
	}
	return password.NewAdvancedAnalyzer(basic, password.NewPatternDetector())
}

func buildPolicy(cfg *config.Config, checker *password.CommonChecker) (*password.Policy, error) {
	policy, err := password.NewPolicy(cfg.Policy.Rules(), checker)
	if err != nil {
		return nil, fmt.Errorf("failed to build policy: %w", err)
	}
	return policy, nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	pw, err := readPassword(args)
	if err != nil {
		return err
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}
	analyzer := buildAnalyzer(cfg, checker)

	result, err := analyzer.Analyze(pw)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	log.Debug().
		Float64("score", result.Score).
		Str("classification", result.Classification.String()).
		Str("flags", result.Flags.String()).
		Msg("analysis complete")

	if jsonOutput {
		out, err := report.JSON(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
		return nil
	}
	fmt.Print(report.Analysis(result))
	return nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	pw, err := readPassword(args)
	if err != nil {
		return err
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}
	policy, err := buildPolicy(cfg, checker)
	if err != nil {
		return err
	}

	result := policy.Validate(pw)
	log.Debug().Bool("passed", result.Passed).Int("violations", len(result.Violations)).Msg("validation complete")

	if jsonOutput {
		out, err := report.JSON(result)
		if err != nil {
			return err
		}
		fmt.Println(out)
	} else {
		fmt.Print(report.Validation(result))
	}

	if !result.Passed {
		os.Exit(1)
	}
	return nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, log, err := setup()
	if err != nil {
		return err
	}

	checker, err := buildChecker(cfg)
	if err != nil {
		return err
	}
	policy, err := buildPolicy(cfg, checker)
	if err != nil {
		return err
	}

	length := genLength
	if length == 0 {
		length = cfg.Generator.Length
	}

	gen := password.NewGenerator(policy, nil, cfg.Generator.MaxAttempts)
	pw, err := gen.GenerateLength(length)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}

	log.Debug().Stringer("password", pw).Msg("password generated")
	fmt.Println(pw.Value())
	return nil
}
