// Package config provides configuration loading and validation for the CLI.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jonathan/resumeforge/internal/llm"
)

const (
	// EnvPrefix is prepended to every environment override, e.g. RESUMEFORGE_MAX_SKILLS
	EnvPrefix = "RESUMEFORGE"
	// DefaultFileName is searched for in the working directory when no path is given
	DefaultFileName = "resumeforge"
)

// Config represents the CLI configuration. Values come from, in increasing priority,
// defaults, the config file, and environment variables. CLI flags are applied on top
// by the commands.
type Config struct {
	// Inputs
	Job        string `mapstructure:"job"`        // Path to job description file
	JobURL     string `mapstructure:"job_url"`    // URL to fetch job posting from
	UseBrowser bool   `mapstructure:"use_browser"` // Use headless browser for SPA sites

	// Profile storage
	ProfilePath string `mapstructure:"profile_path"`
	DatabaseURL string `mapstructure:"database_url"` // PostgreSQL; overrides ProfilePath when set

	// LLM
	Provider          string        `mapstructure:"provider"`
	Model             string        `mapstructure:"model"` // Overrides every tier when set
	APIKey            string        `mapstructure:"api_key"`
	APIKeyFile        string        `mapstructure:"api_key_file"`
	SuggestionTimeout time.Duration `mapstructure:"suggestion_timeout"`

	// Limits
	MaxProjects int `mapstructure:"max_projects"`
	MaxBullets  int `mapstructure:"max_bullets"`
	MaxSkills   int `mapstructure:"max_skills"`
	MinJDLength int `mapstructure:"min_jd_length"`

	// Output
	Format   string   `mapstructure:"format"`
	Template string   `mapstructure:"template"`
	Out      string   `mapstructure:"out"`
	S3       S3Config `mapstructure:"s3"`
}

// S3Config configures uploads of rendered documents
type S3Config struct {
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	Region    string `mapstructure:"region"`
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

// providerKeyEnv maps a provider to the conventional environment variable for its key
var providerKeyEnv = map[llm.Provider]string{
	llm.ProviderCerebras: "CEREBRAS_API_KEY",
	llm.ProviderGemini:   "GEMINI_API_KEY",
	llm.ProviderOpenAI:   "OPENAI_API_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("profile_path", "data/user_profile.json")
	v.SetDefault("provider", string(llm.ProviderCerebras))
	v.SetDefault("suggestion_timeout", "20s")
	v.SetDefault("max_projects", 3)
	v.SetDefault("max_bullets", 3)
	v.SetDefault("max_skills", 15)
	v.SetDefault("min_jd_length", 100)
	v.SetDefault("format", "latex")
}

// Load reads the config file at path, or resumeforge.{yaml,json,toml} in the working
// directory when path is empty. A missing default file is not an error.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// Keys without defaults are invisible to AutomaticEnv during Unmarshal.
	for _, key := range []string{"job", "job_url", "use_browser", "model", "api_key", "api_key_file", "template", "out",
		"s3.bucket", "s3.prefix", "s3.region", "s3.endpoint", "s3.access_key", "s3.secret_key"} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}
	if err := v.BindEnv("database_url", EnvPrefix+"_DATABASE_URL", "DATABASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind env for database_url: %w", err)
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName(DefaultFileName)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.resolveAPIKey(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveAPIKey applies api_key_file, which wins over every other source, then falls
// back to the provider's conventional environment variable.
func (c *Config) resolveAPIKey() error {
	if c.APIKeyFile != "" {
		data, err := os.ReadFile(c.APIKeyFile)
		if err != nil {
			return fmt.Errorf("failed to read api key file %s: %w", c.APIKeyFile, err)
		}
		c.APIKey = strings.TrimSpace(string(data))
		return nil
	}
	if c.APIKey == "" {
		if name, ok := providerKeyEnv[c.LLMProvider()]; ok {
			c.APIKey = os.Getenv(name)
		}
	}
	return nil
}

// LLMProvider returns the normalized provider name
func (c *Config) LLMProvider() llm.Provider {
	return llm.Provider(strings.ToLower(strings.TrimSpace(c.Provider)))
}

// LLMConfig returns the model configuration for the selected provider.
func (c *Config) LLMConfig() *llm.Config {
	cfg := llm.ConfigFor(c.Provider)
	if c.Model != "" {
		cfg = cfg.WithAllModels(c.Model)
	}
	return cfg
}

// Validate checks that the configuration has valid values.
// Required inputs are checked by the commands after flags are merged.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	if c.MaxProjects < 0 {
		return fmt.Errorf("config error: 'max_projects' must be non-negative")
	}
	if c.MaxBullets < 0 {
		return fmt.Errorf("config error: 'max_bullets' must be non-negative")
	}
	if c.MaxSkills < 0 {
		return fmt.Errorf("config error: 'max_skills' must be non-negative")
	}
	if c.MinJDLength < 0 {
		return fmt.Errorf("config error: 'min_jd_length' must be non-negative")
	}
	if c.SuggestionTimeout <= 0 {
		return fmt.Errorf("config error: 'suggestion_timeout' must be positive")
	}

	if _, ok := providerKeyEnv[c.LLMProvider()]; !ok {
		return fmt.Errorf("config error: unknown provider %q", c.Provider)
	}

	switch strings.ToLower(c.Format) {
	case "", "latex", "tex", "html":
	default:
		return fmt.Errorf("config error: unsupported format %q", c.Format)
	}

	if c.Template != "" {
		if _, err := os.Stat(c.Template); os.IsNotExist(err) {
			return fmt.Errorf("config error: template file not found: %s", c.Template)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}
