package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Server
	Host        string `json:"host"`
	Port        int    `json:"port"`
	Environment string `json:"environment"`
	APIPrefix   string `json:"api_prefix"`
	LogLevel    string `json:"log_level"`

	// Auth (keys clients use against axiorad, not the Axiora key)
	APIKeyHeader string   `json:"api_key_header"`
	APIKeys      []string `json:"api_keys"`
	EnableAuth   bool     `json:"enable_auth"`

	// Rate Limiting
	RateLimitPerMinute int `json:"rate_limit_per_minute"`

	// Axiora
	AxioraAPIKey  string `json:"axiora_api_key"`
	AxioraBaseURL string `json:"axiora_base_url"`
	AxioraTimeout int    `json:"axiora_timeout"`

	// AI / LLM
	AnthropicAPIKey  string `json:"anthropic_api_key"`
	AnthropicBaseURL string `json:"anthropic_base_url"` // override for custom proxy
	Model            string `json:"model"`
	AgentTimeout     int    `json:"agent_timeout"`

	// Tools exposed to the agent. Empty means all.
	SelectedTools []string `json:"selected_tools"`
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:               DefaultHost,
		Port:               DefaultPort,
		Environment:        DefaultEnvironment,
		APIPrefix:          DefaultAPIPrefix,
		LogLevel:           DefaultLogLevel,
		APIKeyHeader:       "X-API-Key",
		EnableAuth:         true,
		RateLimitPerMinute: DefaultRateLimitPerMinute,
		AxioraTimeout:      DefaultAxioraTimeout,
		AgentTimeout:       DefaultAgentTimeout,
	}

	// Load from JSON config file if specified
	if path := getEnv("AXIORAD_CONFIG", ""); path != "" {
		if err := loadJSON(path, cfg); err != nil {
			return nil, err
		}
	}

	// Environment overrides
	applyEnvOverrides(cfg)

	return cfg, nil
}

func loadJSON(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

func applyEnvOverrides(cfg *Config) {
	if v := getEnv("AXIORAD_HOST", ""); v != "" {
		cfg.Host = v
	}
	if v := getEnv("AXIORAD_PORT", ""); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			cfg.Port = p
		}
	}
	if v := getEnv("AXIORAD_ENV", ""); v != "" {
		cfg.Environment = v
	}
	if v := getEnv("AXIORAD_LOG_LEVEL", ""); v != "" {
		cfg.LogLevel = v
	}
	if v := getEnv("AXIORAD_API_KEYS", ""); v != "" {
		cfg.APIKeys = strings.Split(v, ",")
	}
	if v := getEnv("ENABLE_AUTH", ""); v != "" {
		cfg.EnableAuth = v == "true" || v == "1"
	}
	if v := getEnv("RATE_LIMIT_PER_MINUTE", ""); v != "" {
		if r, err := strconv.Atoi(v); err == nil {
			cfg.RateLimitPerMinute = r
		}
	}
	if v := getEnv("AXIORA_API_KEY", ""); v != "" {
		cfg.AxioraAPIKey = v
	}
	if v := getEnv("AXIORA_BASE_URL", ""); v != "" {
		cfg.AxioraBaseURL = v
	}
	if v := getEnv("AXIORA_TIMEOUT", ""); v != "" {
		if t, err := strconv.Atoi(v); err == nil {
			cfg.AxioraTimeout = t
		}
	}
	if v := getEnv("ANTHROPIC_API_KEY", ""); v != "" {
		cfg.AnthropicAPIKey = v
	}
	if v := getEnv("ANTHROPIC_BASE_URL", ""); v != "" {
		cfg.AnthropicBaseURL = v
	}
	if v := getEnv("AXIORAD_MODEL", ""); v != "" {
		cfg.Model = v
	}
	if v := getEnv("AXIORAD_TOOLS", ""); v != "" {
		cfg.SelectedTools = strings.Split(v, ",")
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
