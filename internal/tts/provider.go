package tts

import "context"

// SynthesisRequest holds the normalised parameters for text-to-speech generation.
type SynthesisRequest struct {
	Voice string
	Text  string
}

// SynthesisResult holds the generated audio and its content type.
type SynthesisResult struct {
	Audio       []byte
	ContentType string
}

// Provider is the interface for text-to-speech backends.
type Provider interface {
	Synthesize(ctx context.Context, req SynthesisRequest) (*SynthesisResult, error)
	Name() string
}
