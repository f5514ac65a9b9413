package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"unicode/utf8"

	"github.com/nikhilbhutani/piccytts/internal/api/middleware"
	"github.com/nikhilbhutani/piccytts/internal/api/respond"
	"github.com/nikhilbhutani/piccytts/internal/tts"
)

type SpeechHandler struct {
	provider tts.Provider
}

func NewSpeechHandler(provider tts.Provider) *SpeechHandler {
	return &SpeechHandler{provider: provider}
}

// Speak validates the voice and text query parameters, calls the upstream
// provider once and relays the audio.
func (h *SpeechHandler) Speak(w http.ResponseWriter, r *http.Request) {
	voice, _ := queryValue(r.URL.RawQuery, "voice")
	text, _ := queryValue(r.URL.RawQuery, "text")

	req, err := tts.ValidateParams(voice, text)
	if err != nil {
		var vErr *tts.ValidationError
		if errors.As(err, &vErr) {
			respond.Error(w, http.StatusBadRequest, vErr.Message)
			return
		}
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.provider.Synthesize(r.Context(), req)
	if err != nil {
		slog.ErrorContext(r.Context(), "tts generation failed",
			"request_id", middleware.RequestIDFromContext(r.Context()),
			"provider", h.provider.Name(),
			"voice", req.Voice,
			"text_length", utf8.RuneCountInString(req.Text),
			"error", err,
		)
		respond.Error(w, http.StatusInternalServerError, "Generation failed: "+err.Error())
		return
	}

	respond.Audio(w, req.Voice, result.ContentType, result.Audio)
}
