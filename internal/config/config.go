package config

import (
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rxtech-lab/argo-terminal/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Duration wraps time.Duration so YAML values like "2s" or "500ms" parse
// directly.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler for Duration.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}

	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "invalid duration %q", raw)
	}

	*d = Duration(parsed)

	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

type APIConfig struct {
	BaseURL string   `yaml:"base_url" validate:"required,url"`
	Timeout Duration `yaml:"timeout" validate:"gt=0"`
}

type PollConfig struct {
	Interval Duration `yaml:"interval" validate:"gt=0"`
}

type HistoryConfig struct {
	Limit int `yaml:"limit" validate:"gte=2,lte=500"`
}

type ConfirmationConfig struct {
	TTL Duration `yaml:"ttl" validate:"gt=0"`
}

type LogConfig struct {
	Path string `yaml:"path"`
}

// Config holds the terminal client configuration.
type Config struct {
	API          APIConfig          `yaml:"api" validate:"required"`
	Poll         PollConfig         `yaml:"poll"`
	History      HistoryConfig      `yaml:"history"`
	Confirmation ConfirmationConfig `yaml:"confirmation"`
	Log          LogConfig          `yaml:"log"`
}

// DefaultConfig returns the configuration used when no file is provided.
func DefaultConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8000",
			Timeout: Duration(10 * time.Second),
		},
		Poll: PollConfig{
			Interval: Duration(2 * time.Second),
		},
		History: HistoryConfig{
			Limit: 60,
		},
		Confirmation: ConfirmationConfig{
			TTL: Duration(2500 * time.Millisecond),
		},
		Log: LogConfig{
			Path: "argo-terminal.log",
		},
	}
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Load reads and parses the config file at path. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to read config file %s", path)
	}

	return Parse(data)
}

// Validate validates the Config struct.
func (c *Config) Validate() error {
	validate := validator.New()

	if err := validate.Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid configuration", err)
	}

	return nil
}
