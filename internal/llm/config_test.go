package llm

import (
	"errors"
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"anthropic without key", Config{Provider: "anthropic"}, true},
		{"anthropic with key", Config{Provider: "anthropic", Anthropic: AnthropicConfig{APIKey: "sk-test"}}, false},
		{"openai without key", Config{Provider: "openai"}, true},
		{"openrouter with key", Config{Provider: "openrouter", OpenRouter: OpenRouterConfig{APIKey: "sk-or"}}, false},
		{"gemini with key", Config{Provider: "gemini", Gemini: GeminiConfig{APIKey: "g"}}, false},
		{"mock needs no key", Config{Provider: "mock"}, false},
		{"unknown provider", Config{Provider: "llama"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestConfig_ValidateEmptyProvider(t *testing.T) {
	if err := (Config{}).Validate(); !errors.Is(err, ErrNotConfigured) {
		t.Fatalf("Validate() = %v, want ErrNotConfigured", err)
	}
}

func clearVendorKeys(t *testing.T) {
	t.Helper()
	for _, vk := range vendorKeys {
		t.Setenv(vk.env, "")
	}
}

func TestDiscoverConfig_ProbeOrder(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("ANTHROPIC_API_KEY", "sk-ant")
	t.Setenv("OPENAI_API_KEY", "sk-oai")

	cfg, ok := DiscoverConfig()
	if !ok {
		t.Fatal("expected a provider to be discovered")
	}
	if cfg.Provider != "openai" {
		t.Errorf("Provider = %q, want openai", cfg.Provider)
	}
	if cfg.OpenAI.APIKey != "sk-oai" {
		t.Errorf("OpenAI.APIKey = %q, want sk-oai", cfg.OpenAI.APIKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestDiscover_KeepsConfiguredProvider(t *testing.T) {
	clearVendorKeys(t)
	t.Setenv("GEMINI_API_KEY", "g")

	cfg := DefaultConfig()
	cfg.Provider = "mock"
	got, ok := cfg.Discover()
	if !ok || got.Provider != "mock" {
		t.Errorf("Discover() = %q, %v; want mock, true", got.Provider, ok)
	}
}

func TestDiscoverConfig_NothingFound(t *testing.T) {
	clearVendorKeys(t)
	if _, ok := DiscoverConfig(); ok {
		t.Fatal("expected no provider")
	}
}
