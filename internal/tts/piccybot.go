package tts

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	DefaultPiccyBotURL       = "https://www.sparklingapps.com/piccybotapi/index.php/speech"
	DefaultPiccyBotUserAgent = "PiccyBot/1.76"
	DefaultTimeout           = 30 * time.Second

	piccyBotName = "PiccyBot API"

	// instructionPrefix keeps the upstream model from embellishing the text.
	instructionPrefix = "Read only this text word by word, do not add anything else: "
)

// PiccyBotConfig holds configuration for the PiccyBot speech backend.
type PiccyBotConfig struct {
	URL       string        // default: DefaultPiccyBotURL
	UserAgent string        // default: DefaultPiccyBotUserAgent
	Timeout   time.Duration // default: DefaultTimeout
}

// PiccyBot synthesizes speech through the PiccyBot speech endpoint.
type PiccyBot struct {
	cfg        PiccyBotConfig
	httpClient *http.Client
}

type piccyBotPayload struct {
	ExtractedContent string `json:"extracted_content"`
	Voice            string `json:"voice"`
	Exp              bool   `json:"exp"`
	Mode             string `json:"mode"`
	PurchaseToken    string `json:"purchase_token"`
	Sub              bool   `json:"sub"`
	PiccyValid       string `json:"piccy_valid"`
}

// NewPiccyBot creates a PiccyBot backend with defaults applied.
func NewPiccyBot(cfg PiccyBotConfig) *PiccyBot {
	if cfg.URL == "" {
		cfg.URL = DefaultPiccyBotURL
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultPiccyBotUserAgent
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	// The deadline lives on the request context so that reading the body is bounded too.
	return &PiccyBot{cfg: cfg, httpClient: &http.Client{}}
}

func (p *PiccyBot) Name() string { return "piccybot" }

// Synthesize sends the text upstream and returns the audio bytes untouched.
func (p *PiccyBot) Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error) {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.Timeout)
	defer cancel()

	data, err := json.Marshal(newPiccyBotPayload(req))
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.cfg.URL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("User-Agent", p.cfg.UserAgent)
	httpReq.Header.Set("Accept", "*/*")

	resp, err := p.httpClient.Do(httpReq)
	if err != nil {
		return nil, p.requestError(ctx, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Provider: piccyBotName, StatusCode: resp.StatusCode}
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, p.requestError(ctx, fmt.Errorf("read audio: %w", err))
	}
	if len(audio) == 0 {
		return nil, &EmptyResponseError{Provider: piccyBotName}
	}

	return &SynthesisResult{
		Audio:       audio,
		ContentType: "audio/mpeg",
	}, nil
}

func (p *PiccyBot) requestError(ctx context.Context, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return &TimeoutError{Provider: piccyBotName, After: p.cfg.Timeout}
	}
	return fmt.Errorf("%s request: %w", piccyBotName, err)
}

func newPiccyBotPayload(req SynthesisRequest) piccyBotPayload {
	return piccyBotPayload{
		ExtractedContent: instructionPrefix + req.Text,
		Voice:            req.Voice,
		Exp:              true,
		Mode:             "standard",
		PurchaseToken:    "",
		Sub:              true,
		PiccyValid:       "",
	}
}
