// Package config loads and validates the application configuration.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/sevigo/code-critic/internal/logger"
)

// ServerConfig holds the HTTP API settings.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// AIConfig holds the model backend settings. The API credential is carried
// here explicitly and injected at construction; application logic never
// reads it from the environment.
type AIConfig struct {
	LLMProvider    string        `mapstructure:"llm_provider"`
	GeneratorModel string        `mapstructure:"generator_model"`
	OllamaHost     string        `mapstructure:"ollama_host"`
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	RequestTimeout time.Duration `mapstructure:"request_timeout"`
	CacheTTL       time.Duration `mapstructure:"cache_ttl"`
}

// Config holds the application's configuration values.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	AI      AIConfig      `mapstructure:"ai"`
	Logging logger.Config `mapstructure:"logging"`
}

// LoadConfig reads configuration from an optional config.yaml in the working
// directory, overridden by CRITIC_* environment variables, sets sensible
// defaults and validates provider-specific requirements.
func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("CRITIC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("server.port", "8080")
	v.SetDefault("ai.llm_provider", "ollama")
	v.SetDefault("ai.generator_model", "")
	v.SetDefault("ai.ollama_host", "http://localhost:11434")
	v.SetDefault("ai.gemini_api_key", "")
	v.SetDefault("ai.request_timeout", 2*time.Minute)
	v.SetDefault("ai.cache_ttl", 10*time.Minute)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stdout")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: v.GetString("server.port"),
		},
		AI: AIConfig{
			LLMProvider:    v.GetString("ai.llm_provider"),
			GeneratorModel: v.GetString("ai.generator_model"),
			OllamaHost:     v.GetString("ai.ollama_host"),
			GeminiAPIKey:   v.GetString("ai.gemini_api_key"),
			RequestTimeout: v.GetDuration("ai.request_timeout"),
			CacheTTL:       v.GetDuration("ai.cache_ttl"),
		},
		Logging: logger.Config{
			Level:  v.GetString("logging.level"),
			Format: v.GetString("logging.format"),
			Output: v.GetString("logging.output"),
		},
	}

	if cfg.AI.GeneratorModel == "" {
		cfg.AI.GeneratorModel = defaultModelFor(cfg.AI.LLMProvider)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks provider-specific requirements.
func (c *Config) Validate() error {
	switch c.AI.LLMProvider {
	case "ollama":
		if c.AI.OllamaHost == "" {
			return fmt.Errorf("ai.ollama_host must be set for the ollama provider")
		}
	case "gemini":
		if c.AI.GeminiAPIKey == "" {
			return fmt.Errorf("ai.gemini_api_key must be set for the gemini provider")
		}
	default:
		return fmt.Errorf("unsupported LLM provider: %s", c.AI.LLMProvider)
	}

	if c.AI.RequestTimeout <= 0 {
		return fmt.Errorf("ai.request_timeout must be positive")
	}
	return nil
}

func defaultModelFor(provider string) string {
	switch provider {
	case "gemini":
		return "gemini-2.5-flash"
	default:
		return "gemma3:latest"
	}
}
