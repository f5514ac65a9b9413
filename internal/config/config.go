package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v3"
)

const (
	BackendPiccyBot = "piccybot"
	BackendOpenAI   = "openai"
)

type Config struct {
	Server ServerConfig `yaml:"server"`
	TTS    TTSConfig    `yaml:"tts"`
	Log    LogConfig    `yaml:"log"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type TTSConfig struct {
	Backend           string `yaml:"backend"`             // "piccybot" or "openai"
	PiccyBotURL       string `yaml:"piccybot_url"`        // empty selects the public PiccyBot endpoint
	PiccyBotUserAgent string `yaml:"piccybot_user_agent"` // empty selects the PiccyBot app user agent
	TimeoutSeconds    int    `yaml:"timeout_seconds"`
	OpenAIKey         string `yaml:"openai_api_key"`
	OpenAIBaseURL     string `yaml:"openai_base_url"`
	OpenAIModel       string `yaml:"openai_model"`
}

type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // "json" or "text"
	File   string `yaml:"file"`   // optional rotating log file
}

// Load builds the configuration from defaults, an optional YAML file named by
// CONFIG_FILE, and environment variables, in increasing precedence.
func Load() (*Config, error) {
	cfg := Defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Defaults returns the configuration used when nothing is overridden.
func Defaults() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		TTS: TTSConfig{
			Backend:        BackendPiccyBot,
			TimeoutSeconds: 30,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	port, err := getEnvInt("SERVER_PORT", c.Server.Port)
	if err != nil {
		return fmt.Errorf("invalid SERVER_PORT: %w", err)
	}

	timeout, err := getEnvInt("TTS_TIMEOUT_SECONDS", c.TTS.TimeoutSeconds)
	if err != nil {
		return fmt.Errorf("invalid TTS_TIMEOUT_SECONDS: %w", err)
	}

	c.Server.Host = getEnv("SERVER_HOST", c.Server.Host)
	c.Server.Port = port

	c.TTS.Backend = strings.ToLower(getEnv("TTS_BACKEND", c.TTS.Backend))
	c.TTS.PiccyBotURL = getEnv("PICCYBOT_API_URL", c.TTS.PiccyBotURL)
	c.TTS.PiccyBotUserAgent = getEnv("PICCYBOT_USER_AGENT", c.TTS.PiccyBotUserAgent)
	c.TTS.TimeoutSeconds = timeout
	c.TTS.OpenAIKey = getEnv("OPENAI_API_KEY", c.TTS.OpenAIKey)
	c.TTS.OpenAIBaseURL = getEnv("TTS_OPENAI_BASE_URL", c.TTS.OpenAIBaseURL)
	c.TTS.OpenAIModel = getEnv("TTS_OPENAI_MODEL", c.TTS.OpenAIModel)

	c.Log.Level = getEnv("LOG_LEVEL", c.Log.Level)
	c.Log.Format = getEnv("LOG_FORMAT", c.Log.Format)
	c.Log.File = getEnv("LOG_FILE", c.Log.File)

	return nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Server.Host, c.Server.Port)
}

// Timeout is the bound on a single upstream TTS call.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TTS.TimeoutSeconds) * time.Second
}

func (c *Config) Validate() error {
	var problems []string

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server port %d out of range", c.Server.Port))
	}
	if c.TTS.TimeoutSeconds <= 0 {
		problems = append(problems, "TTS_TIMEOUT_SECONDS must be positive")
	}

	switch c.TTS.Backend {
	case BackendPiccyBot:
	case BackendOpenAI:
		if c.TTS.OpenAIKey == "" {
			problems = append(problems, "OPENAI_API_KEY is required for the openai backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown TTS_BACKEND %q", c.TTS.Backend))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	return strconv.Atoi(v)
}
