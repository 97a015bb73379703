package config_test

import (
	"testing"

	"github.com/axiora/axiora-go/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, config.DefaultPort)
	}
	if cfg.LogLevel != config.DefaultLogLevel {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.AgentTimeout != config.DefaultAgentTimeout {
		t.Errorf("AgentTimeout = %d", cfg.AgentTimeout)
	}
	if !cfg.EnableAuth {
		t.Error("auth should default to enabled")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("AXIORAD_PORT", "9999")
	t.Setenv("AXIORAD_LOG_LEVEL", "debug")
	t.Setenv("AXIORA_API_KEY", "ax_test_key")
	t.Setenv("AXIORAD_TOOLS", "axiora_search_companies,axiora_get_financials")
	t.Setenv("ENABLE_AUTH", "false")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9999 {
		t.Errorf("Port = %d, want 9999", cfg.Port)
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q", cfg.LogLevel)
	}
	if cfg.AxioraAPIKey != "ax_test_key" {
		t.Errorf("AxioraAPIKey = %q", cfg.AxioraAPIKey)
	}
	if len(cfg.SelectedTools) != 2 || cfg.SelectedTools[0] != "axiora_search_companies" {
		t.Errorf("SelectedTools = %v", cfg.SelectedTools)
	}
	if cfg.EnableAuth {
		t.Error("ENABLE_AUTH=false should disable auth")
	}
}

func TestLoadBadPortIgnored(t *testing.T) {
	t.Setenv("AXIORAD_PORT", "not-a-number")
	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != config.DefaultPort {
		t.Errorf("unparseable port should keep default, got %d", cfg.Port)
	}
}
