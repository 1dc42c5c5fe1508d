// Package config provides configuration management for the VMS helper.
// It loads settings from environment variables with the VMSHELPER_
// prefix and provides sensible defaults for all configuration options.
package config

import (
	"os"
	"strconv"
)

// Config holds all configuration settings for the VMS helper.
type Config struct {
	Server     ServerConfig
	Reference  ReferenceConfig
	Classifier ClassifierConfig
	Narrative  NarrativeConfig
	Chapter    ChapterConfig
	LLM        LLMConfig
	Security   SecurityConfig
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Port int    // Server port (default: 8484)
	Host string // Server host (default: 127.0.0.1)
}

// ReferenceConfig selects where the VMS code reference table is loaded
// from. The table is read once at startup and never written.
type ReferenceConfig struct {
	Engine string // Reference source: csv, sqlite, postgres (default: csv)
	Path   string // CSV or SQLite file path (default: ./data/vms_code_reference.csv)
	DSN    string // Postgres connection string when Engine is postgres
}

// ClassifierConfig contains rule-based classifier settings.
type ClassifierConfig struct {
	// EmptyPolicy selects the result for empty input: "none" or "other".
	// The source variants disagree, so this stays a deliberate knob.
	EmptyPolicy string

	// RulesPath optionally points at a YAML rule/partner file; empty
	// means the built-in defaults.
	RulesPath string
}

// NarrativeConfig contains renderer settings.
type NarrativeConfig struct {
	Mode string // Task-text handling: raw or conjugated (default: raw)
}

// ChapterConfig identifies the chapter running the helper.
type ChapterConfig struct {
	Abbreviation string // Chapter abbreviation, also the default partner (default: AAMN)
}

// LLMConfig contains AI suggestion provider configuration.
type LLMConfig struct {
	Provider        string // Provider: ollama, openai, anthropic (default: ollama)
	OllamaURL       string // Ollama API URL (default: http://localhost:11434)
	OllamaModel     string // Ollama model name (default: phi3:mini)
	OpenAIAPIKey    string // OpenAI API key
	OpenAIModel     string // OpenAI model name (default: gpt-4o-mini)
	AnthropicAPIKey string // Anthropic API key
	AnthropicModel  string // Anthropic model name (default: claude-haiku-4-5-20251001)
	IncludeRules    bool   // Embed rule notes in the suggestion prompt (default: false)
}

// SecurityConfig contains security and authentication settings.
type SecurityConfig struct {
	SecurityMode string // Security mode: development, production (default: development)
	APIToken     string // API authentication token for production mode
}

// LoadConfig loads configuration from environment variables with
// sensible defaults. All environment variables use the VMSHELPER_
// prefix.
func LoadConfig() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Port: getEnvInt("VMSHELPER_PORT", 8484),
			Host: getEnv("VMSHELPER_HOST", "127.0.0.1"),
		},
		Reference: ReferenceConfig{
			Engine: getEnv("VMSHELPER_REFERENCE_ENGINE", "csv"),
			Path:   getEnv("VMSHELPER_REFERENCE_PATH", "./data/vms_code_reference.csv"),
			DSN:    getEnv("VMSHELPER_REFERENCE_DSN", ""),
		},
		Classifier: ClassifierConfig{
			EmptyPolicy: getEnv("VMSHELPER_EMPTY_POLICY", "none"),
			RulesPath:   getEnv("VMSHELPER_RULES_PATH", ""),
		},
		Narrative: NarrativeConfig{
			Mode: getEnv("VMSHELPER_NARRATIVE_MODE", "raw"),
		},
		Chapter: ChapterConfig{
			Abbreviation: getEnv("VMSHELPER_CHAPTER_ABBREVIATION", "AAMN"),
		},
		LLM: LLMConfig{
			Provider:        getEnv("VMSHELPER_LLM_PROVIDER", "ollama"),
			OllamaURL:       getEnv("VMSHELPER_OLLAMA_URL", "http://localhost:11434"),
			OllamaModel:     getEnv("VMSHELPER_OLLAMA_MODEL", "phi3:mini"),
			OpenAIAPIKey:    getEnv("VMSHELPER_OPENAI_API_KEY", ""),
			OpenAIModel:     getEnv("VMSHELPER_OPENAI_MODEL", "gpt-4o-mini"),
			AnthropicAPIKey: getEnv("VMSHELPER_ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getEnv("VMSHELPER_ANTHROPIC_MODEL", "claude-haiku-4-5-20251001"),
			IncludeRules:    getEnvBool("VMSHELPER_LLM_INCLUDE_RULES", false),
		},
		Security: SecurityConfig{
			SecurityMode: getEnv("VMSHELPER_SECURITY_MODE", "development"),
			APIToken:     getEnv("VMSHELPER_API_TOKEN", ""),
		},
	}, nil
}

// getEnv retrieves a string environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an integer environment variable or returns a
// default value. If the environment variable exists but cannot be
// parsed as an integer, it returns the default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool retrieves a boolean environment variable or returns a
// default value. It recognizes "true", "1", "yes" as true and "false",
// "0", "no" as false (case-insensitive).
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		switch value {
		case "true", "1", "yes", "True", "TRUE", "Yes", "YES":
			return true
		case "false", "0", "no", "False", "FALSE", "No", "NO":
			return false
		}
	}
	return defaultValue
}
