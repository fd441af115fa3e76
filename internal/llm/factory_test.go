package llm

import (
	"strings"
	"testing"
)

func TestNewProvider(t *testing.T) {
	tests := []struct {
		name     string
		config   Config
		wantName string
		wantErr  bool
	}{
		{"openai", Config{Provider: "openai", APIKey: "sk-test"}, "openai", false},
		{"openai case-insensitive", Config{Provider: "OpenAI", APIKey: "sk-test"}, "openai", false},
		{"openai without key", Config{Provider: "openai"}, "", true},
		{"anthropic", Config{Provider: "anthropic", APIKey: "sk-ant"}, "anthropic", false},
		{"claude alias", Config{Provider: "claude", APIKey: "sk-ant"}, "anthropic", false},
		{"anthropic without key", Config{Provider: "anthropic"}, "", true},
		{"ollama", Config{Provider: "ollama"}, "ollama", false},
		{"unknown", Config{Provider: "bard"}, "", true},
		{"empty", Config{}, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider, err := NewProvider(tt.config)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewProvider: %v", err)
			}
			if provider.Name() != tt.wantName {
				t.Errorf("Name() = %q, want %q", provider.Name(), tt.wantName)
			}
		})
	}
}

func TestNewProvider_UnknownNamesSupported(t *testing.T) {
	_, err := NewProvider(Config{Provider: "bard"})
	if err == nil || !strings.Contains(err.Error(), "supported:") {
		t.Errorf("err = %v, want the list of supported providers", err)
	}
}
