package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// APIKeyName is the credential key looked up in the secrets store and the environment.
const APIKeyName = "GROQ_API_KEY"

// ErrMissingAPIKey is returned by Load when no credential could be resolved.
var ErrMissingAPIKey = errors.New("no API key found. Please set the GROQ_API_KEY in your environment or secrets store")

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Chat specifics
	LLM     LLMConfig
	Session SessionConfig
	UI      UIConfig
	Secrets SecretsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// LLMConfig describes the single completion provider the chat talks to.
type LLMConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration // 0 disables the per-request deadline
}

type SessionConfig struct {
	TTL          time.Duration
	MaxSessions  int
	CookieName   string
	CookieSecure bool
}

type UIConfig struct {
	Title       string
	Icon        string
	Description string
	Placeholder string
}

// SecretsConfig points at the TOML secrets store that takes priority over env vars.
type SecretsConfig struct {
	Path string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
// A .env file in the working directory is loaded into the environment first.
func Load() (*Config, error) {
	// Missing .env is normal outside local development.
	_ = godotenv.Load()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	if port := viper.GetInt("port"); port != 0 {
		cfg.HTTPServer.Port = port
	}
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// LLM
	cfg.LLM.Provider = viper.GetString("llm.provider")
	cfg.LLM.BaseURL = viper.GetString("llm.base_url")
	cfg.LLM.Model = viper.GetString("llm.model")
	timeout, err := time.ParseDuration(viper.GetString("llm.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid llm.timeout: %w", err)
	}
	cfg.LLM.Timeout = timeout

	// Session
	ttl, err := time.ParseDuration(viper.GetString("session.ttl"))
	if err != nil {
		return nil, fmt.Errorf("invalid session.ttl: %w", err)
	}
	cfg.Session.TTL = ttl
	cfg.Session.MaxSessions = viper.GetInt("session.max_sessions")
	cfg.Session.CookieName = viper.GetString("session.cookie_name")
	cfg.Session.CookieSecure = viper.GetBool("session.cookie_secure")

	// UI
	cfg.UI.Title = viper.GetString("ui.title")
	cfg.UI.Icon = viper.GetString("ui.icon")
	cfg.UI.Description = viper.GetString("ui.description")
	cfg.UI.Placeholder = viper.GetString("ui.placeholder")

	// Credential: secrets store first, then environment.
	cfg.Secrets.Path = viper.GetString("secrets.path")
	apiKey, err := ResolveAPIKey(cfg.Secrets.Path)
	if err != nil {
		return nil, err
	}
	cfg.LLM.APIKey = apiKey

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "development")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	// LLM defaults
	viper.SetDefault("llm.provider", "groq")
	viper.SetDefault("llm.base_url", "https://api.groq.com/openai/v1")
	viper.SetDefault("llm.model", "meta-llama/llama-4-maverick-17b-128e-instruct")
	viper.SetDefault("llm.timeout", "60s")

	// Session defaults
	viper.SetDefault("session.ttl", "30m")
	viper.SetDefault("session.max_sessions", 1000)
	viper.SetDefault("session.cookie_name", "session_id")
	viper.SetDefault("session.cookie_secure", false)

	// UI defaults
	viper.SetDefault("ui.title", "AI Chat Bot")
	viper.SetDefault("ui.icon", "🤖")
	viper.SetDefault("ui.description", "This is an AI-powered chat bot using Groq's API. Ask me anything!")
	viper.SetDefault("ui.placeholder", "What would you like to know?")

	viper.SetDefault("secrets.path", ".streamlit/secrets.toml")
}

// ResolveAPIKey returns the API key from the secrets store at secretsPath,
// falling back to the GROQ_API_KEY environment variable.
func ResolveAPIKey(secretsPath string) (string, error) {
	if key := readSecret(secretsPath, APIKeyName); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(os.Getenv(APIKeyName)); key != "" {
		return key, nil
	}
	return "", ErrMissingAPIKey
}

// readSecret reads a single key from a TOML secrets file.
// Any problem with the file counts as "not found" so the env fallback applies.
func readSecret(path, key string) string {
	if path == "" {
		return ""
	}
	if _, err := os.Stat(path); err != nil {
		return ""
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	if err := v.ReadInConfig(); err != nil {
		return ""
	}
	return strings.TrimSpace(v.GetString(key))
}

// validate checks the fields the service cannot start without.
func validate(cfg *Config) error {
	if cfg.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("http_server.port must be positive")
	}
	if cfg.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive")
	}
	if cfg.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive")
	}
	return nil
}
