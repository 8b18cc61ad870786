package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/passguard/passguard/pkg/password"
)

// Config holds all configuration for the application
type Config struct {
	Log       LogConfig       `mapstructure:"log"`
	Analyzer  AnalyzerConfig  `mapstructure:"analyzer"`
	Policy    PolicyConfig    `mapstructure:"policy"`
	Generator GeneratorConfig `mapstructure:"generator"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// AnalyzerConfig holds analysis configuration
type AnalyzerConfig struct {
	// Advanced selects the advanced analyzer (pattern detection) by default
	Advanced bool `mapstructure:"advanced"`

	// Pool sizes credited per character class when estimating entropy
	PoolLower  int `mapstructure:"pool_lower"`
	PoolUpper  int `mapstructure:"pool_upper"`
	PoolDigit  int `mapstructure:"pool_digit"`
	PoolSymbol int `mapstructure:"pool_symbol"`

	// CommonListFile is an optional newline-delimited known-weak password
	// list replacing the built-in one
	CommonListFile string `mapstructure:"common_list_file"`
}

// PoolSizes returns the configured entropy pool sizes.
func (c AnalyzerConfig) PoolSizes() password.PoolSizes {
	return password.PoolSizes{
		Lower:  c.PoolLower,
		Upper:  c.PoolUpper,
		Digit:  c.PoolDigit,
		Symbol: c.PoolSymbol,
	}
}

// CommonPasswords returns the known-weak password list, loading the
// configured file when one is set.
func (c AnalyzerConfig) CommonPasswords() ([]string, error) {
	if c.CommonListFile == "" {
		return password.DefaultCommonPasswords(), nil
	}

	f, err := os.Open(c.CommonListFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open common password list: %w", err)
	}
	defer f.Close()

	return password.LoadCommonPasswords(f)
}

// PolicyConfig holds password policy configuration
type PolicyConfig struct {
	MinLength      int  `mapstructure:"min_length"`
	MaxLength      int  `mapstructure:"max_length"`
	RequireUpper   bool `mapstructure:"require_upper"`
	RequireLower   bool `mapstructure:"require_lower"`
	RequireDigit   bool `mapstructure:"require_digit"`
	RequireSymbol  bool `mapstructure:"require_symbol"`
	MaxRepeat      int  `mapstructure:"max_repeat"`       // -1 disables the rule
	MinEntropyBits int  `mapstructure:"min_entropy_bits"` // 0 disables the rule
	ForbidCommon   bool `mapstructure:"forbid_common"`
}

// Rules builds the ordered rule list the configuration describes.
func (c PolicyConfig) Rules() []password.Rule {
	var rules []password.Rule
	if c.MinLength > 0 {
		rules = append(rules, password.MinLength(c.MinLength))
	}
	if c.MaxLength > 0 {
		rules = append(rules, password.MaxLength(c.MaxLength))
	}
	if c.RequireUpper {
		rules = append(rules, password.RequireUpper())
	}
	if c.RequireLower {
		rules = append(rules, password.RequireLower())
	}
	if c.RequireDigit {
		rules = append(rules, password.RequireDigit())
	}
	if c.RequireSymbol {
		rules = append(rules, password.RequireSymbol())
	}
	if c.MaxRepeat >= 0 {
		rules = append(rules, password.MaxRepeat(c.MaxRepeat))
	}
	if c.MinEntropyBits > 0 {
		rules = append(rules, password.MinEntropy(c.MinEntropyBits))
	}
	if c.ForbidCommon {
		rules = append(rules, password.NotCommon())
	}
	return rules
}

// GeneratorConfig holds password generation configuration
type GeneratorConfig struct {
	Length      int `mapstructure:"length"`
	MaxAttempts int `mapstructure:"max_attempts"`
}

// Load reads configuration from file and environment variables
func Load() (*Config, error) {
	v := viper.New()

	// Set config file name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/passguard")

	// Set defaults
	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		// Config file not found is OK, we'll use defaults and env vars
	}

	// Bind environment variables
	v.SetEnvPrefix("PASSGUARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal config
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	// Log defaults
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")

	// Analyzer defaults
	v.SetDefault("analyzer.advanced", true)
	v.SetDefault("analyzer.pool_lower", 26)
	v.SetDefault("analyzer.pool_upper", 26)
	v.SetDefault("analyzer.pool_digit", 10)
	v.SetDefault("analyzer.pool_symbol", 32)
	v.SetDefault("analyzer.common_list_file", "")

	// Policy defaults
	v.SetDefault("policy.min_length", 12)
	v.SetDefault("policy.max_length", 128)
	v.SetDefault("policy.require_upper", true)
	v.SetDefault("policy.require_lower", true)
	v.SetDefault("policy.require_digit", true)
	v.SetDefault("policy.require_symbol", false)
	v.SetDefault("policy.max_repeat", 2)
	v.SetDefault("policy.min_entropy_bits", 0)
	v.SetDefault("policy.forbid_common", true)

	// Generator defaults
	v.SetDefault("generator.length", password.DefaultLength)
	v.SetDefault("generator.max_attempts", password.DefaultMaxAttempts)
}
