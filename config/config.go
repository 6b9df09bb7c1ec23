package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the application configuration loaded from config.yaml.
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	LLM     LLMConfig     `yaml:"llm"`
	Log     LogConfig     `yaml:"log"`
	Tracing TracingConfig `yaml:"tracing"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" validate:"required"`
	// Mode is the gin mode: debug, release or test.
	Mode string `yaml:"mode" validate:"omitempty,oneof=debug release test"`
	// ForceProvider, when set, is the only provider the HTTP service uses,
	// whatever a client asks for.
	ForceProvider   string        `yaml:"force_provider"`
	GenerateTimeout time.Duration `yaml:"generate_timeout" validate:"gt=0"`
	CacheTTL        time.Duration `yaml:"cache_ttl" validate:"gt=0"`
	AllowOrigins    []string      `yaml:"allow_origins" validate:"min=1"`
}

type LLMConfig struct {
	Provider   string        `yaml:"provider"`
	Model      string        `yaml:"model"`
	APIKey     string        `yaml:"api_key"`
	BaseURL    string        `yaml:"base_url" validate:"omitempty,url"`
	MaxRetries int           `yaml:"max_retries" validate:"gte=0,lte=10"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0"`
}

type LogConfig struct {
	Mode       string `yaml:"mode" validate:"omitempty,oneof=dev development prod production"`
	Level      string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" validate:"gte=0"`
}

type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"`
	ServiceName string  `yaml:"service_name"`
	Endpoint    string  `yaml:"endpoint"`
	Insecure    bool    `yaml:"insecure"`
	SampleRatio float64 `yaml:"sample_ratio" validate:"gte=0,lte=1"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Server: ServerConfig{
			Addr:            ":8080",
			Mode:            "release",
			ForceProvider:   "mock",
			GenerateTimeout: 60 * time.Second,
			CacheTTL:        30 * time.Minute,
			AllowOrigins:    []string{"*"},
		},
		LLM: LLMConfig{
			Provider:   "mock",
			Model:      "gpt-4",
			MaxRetries: 2,
			Timeout:    90 * time.Second,
		},
		Log: LogConfig{
			Mode:  "development",
			Level: "info",
		},
		Tracing: TracingConfig{
			ServiceName: "doc-auto-formatter",
			SampleRatio: 1,
		},
	}
}

// LoadConfig reads YAML config from path on top of Default, then applies
// .env and environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse config %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, err
		}
	}

	applyEnv(&cfg)
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

var validate = validator.New()

// Validate checks field constraints and reports every violation at once.
func Validate(cfg Config) error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.LLM.APIKey = v
	}
	if v := os.Getenv("DAF_LLM_PROVIDER"); v != "" {
		cfg.LLM.Provider = v
	}
	if v := os.Getenv("DAF_LLM_MODEL"); v != "" {
		cfg.LLM.Model = v
	}
	if v := os.Getenv("DAF_LLM_BASE_URL"); v != "" {
		cfg.LLM.BaseURL = v
	}
	if v := os.Getenv("DAF_FORCE_PROVIDER"); v != "" {
		cfg.Server.ForceProvider = v
	}
	if v := os.Getenv("DAF_SERVER_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("DAF_LOG_MODE"); v != "" {
		cfg.Log.Mode = v
	}
}
