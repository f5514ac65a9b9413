package tts

import (
	"fmt"
	"time"

	"github.com/nikhilbhutani/piccytts/internal/config"
)

// NewProvider builds the backend selected by cfg.Backend.
func NewProvider(cfg config.TTSConfig) (Provider, error) {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second

	switch cfg.Backend {
	case config.BackendPiccyBot, "":
		return NewPiccyBot(PiccyBotConfig{
			URL:       cfg.PiccyBotURL,
			UserAgent: cfg.PiccyBotUserAgent,
			Timeout:   timeout,
		}), nil
	case config.BackendOpenAI:
		return NewOpenAITTS(OpenAITTSConfig{
			APIKey:  cfg.OpenAIKey,
			BaseURL: cfg.OpenAIBaseURL,
			Model:   cfg.OpenAIModel,
			Timeout: timeout,
		}), nil
	default:
		return nil, fmt.Errorf("unknown tts backend %q", cfg.Backend)
	}
}
