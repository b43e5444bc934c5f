// Package config loads speechdrill settings from defaults, an optional
// YAML file and SPEECHDRILL_* environment variables, in increasing order
// of precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/abhisek/speechdrill/internal/llm"
	"github.com/abhisek/speechdrill/internal/session"
)

// EnvPrefix is prepended to every environment variable, with dots in
// keys replaced by underscores: practice.language is
// SPEECHDRILL_PRACTICE_LANGUAGE.
const EnvPrefix = "SPEECHDRILL"

type Config struct {
	// DB is the SQLite path. Empty means the store's default location.
	DB              string         `mapstructure:"db"`
	Log             LogConfig      `mapstructure:"log"`
	PremiumUnlocked bool           `mapstructure:"premium_unlocked"`
	Practice        PracticeConfig `mapstructure:"practice"`
	LLM             llm.Config     `mapstructure:"llm"`
}

type LogConfig struct {
	Mode string `mapstructure:"mode" validate:"oneof=dev prod"`
	// File receives log output. Empty means stderr for plain commands and
	// a file beside the database while the TUI owns the terminal.
	File string `mapstructure:"file"`
}

type PracticeConfig struct {
	MaxWordsPerConfiguration int    `mapstructure:"max_words_per_configuration" validate:"min=1,max=10"`
	Language                 string `mapstructure:"language" validate:"oneof=english spanish"`
}

// Options controls where Load looks for a config file.
type Options struct {
	// File is an explicit config path. It must exist when set.
	File string
	// Dir is searched for config.yaml when File is empty. Defaults to
	// $XDG_CONFIG_HOME/speechdrill or ~/.config/speechdrill.
	Dir string
}

var validate = validator.New()

// Load reads and validates the configuration.
func Load(opts Options) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := readFile(v, opts); err != nil {
		return nil, err
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	cfg.Practice.Language = strings.ToLower(cfg.Practice.Language)
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func readFile(v *viper.Viper, opts Options) error {
	if opts.File != "" {
		v.SetConfigFile(opts.File)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", opts.File, err)
		}
		return nil
	}

	dir := opts.Dir
	if dir == "" {
		var err error
		if dir, err = DefaultDir(); err != nil {
			// No home directory; env and defaults still apply.
			return nil
		}
	}
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

// DefaultDir returns the directory searched for config.yaml.
func DefaultDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "speechdrill"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(home, ".config", "speechdrill"), nil
}

// setDefaults registers every key. AutomaticEnv only consults keys viper
// already knows about, so secrets get an empty default too.
func setDefaults(v *viper.Viper) {
	v.SetDefault("db", "")
	v.SetDefault("log.mode", "dev")
	v.SetDefault("log.file", "")
	v.SetDefault("premium_unlocked", false)
	v.SetDefault("practice.max_words_per_configuration", session.DefaultMaxWordsPerConfiguration)
	v.SetDefault("practice.language", "english")

	d := llm.DefaultConfig()
	v.SetDefault("llm.provider", d.Provider)
	v.SetDefault("llm.timeout", d.Timeout)
	v.SetDefault("llm.anthropic.api_key", "")
	v.SetDefault("llm.anthropic.model", d.Anthropic.Model)
	v.SetDefault("llm.openai.api_key", "")
	v.SetDefault("llm.openai.model", d.OpenAI.Model)
	v.SetDefault("llm.openai.base_url", d.OpenAI.BaseURL)
	v.SetDefault("llm.gemini.api_key", "")
	v.SetDefault("llm.gemini.model", d.Gemini.Model)
	v.SetDefault("llm.openrouter.api_key", "")
	v.SetDefault("llm.openrouter.model", d.OpenRouter.Model)
	v.SetDefault("llm.openrouter.base_url", d.OpenRouter.BaseURL)
	v.SetDefault("llm.retry.max_attempts", d.Retry.MaxAttempts)
	v.SetDefault("llm.retry.initial_wait", d.Retry.InitialWait)
	v.SetDefault("llm.retry.max_wait", d.Retry.MaxWait)
	v.SetDefault("llm.retry.multiplier", d.Retry.Multiplier)
}
