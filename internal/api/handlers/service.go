package handlers

import (
	"net/http"
	"strings"

	"github.com/nikhilbhutani/piccytts/internal/api/respond"
)

// ServiceHandler serves the descriptive endpoints.
type ServiceHandler struct {
	voices []string
}

func NewServiceHandler(voices []string) *ServiceHandler {
	return &ServiceHandler{voices: voices}
}

// Index describes the API and links an example request on the caller's origin.
func (h *ServiceHandler) Index(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "Text to Speech API - PiccyBot", respond.Fields{
		"endpoints": map[string]string{
			"voices": "/voices - List available voices",
			"tts":    "/tts?voice=alloy&text=Hello - Generate audio",
		},
		"example": requestOrigin(r) + "/tts?voice=nova&text=Hello",
	})
}

// Voices lists the supported voices in order.
func (h *ServiceHandler) Voices(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "Available voices in PiccyBot", respond.Fields{
		"voices": h.voices,
		"total":  len(h.voices),
	})
}

// NotFound answers every unrouted path.
func NotFound(w http.ResponseWriter, r *http.Request) {
	respond.Error(w, http.StatusNotFound, "Endpoint not found. Use /, /voices or /tts")
}

func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if proto := r.Header.Get("X-Forwarded-Proto"); proto != "" {
		scheme = strings.TrimSpace(strings.Split(proto, ",")[0])
	}
	return scheme + "://" + r.Host
}
