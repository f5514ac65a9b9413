// Package respond writes every response the API produces: JSON envelopes,
// error envelopes and raw audio.
package respond

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
)

// Fields are extra top-level members merged into a JSON envelope.
type Fields map[string]any

// JSON writes the envelope {status_code, message, ...extra} with the given
// status. A zero status means 200. extra cannot override status_code or message.
func JSON(w http.ResponseWriter, status int, message string, extra Fields) {
	if status == 0 {
		status = http.StatusOK
	}

	body := make(map[string]any, len(extra)+2)
	for k, v := range extra {
		body[k] = v
	}
	body["status_code"] = status
	body["message"] = message

	data, err := json.MarshalIndent(body, "", "  ")
	if err != nil {
		slog.Error("encode response", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}

// Error writes {status_code, error: true, message}.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, message, Fields{"error": true})
}

// Audio writes MP3 bytes as a download named tts_<voice>.mp3.
func Audio(w http.ResponseWriter, voice string, contentType string, audio []byte) {
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "tts_"+voice+".mp3"))
	w.Header().Set("Content-Length", strconv.Itoa(len(audio)))
	w.WriteHeader(http.StatusOK)
	w.Write(audio)
}
