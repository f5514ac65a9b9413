package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAITTS_Synthesize(t *testing.T) {
	t.Parallel()

	audio := []byte("ID3-mp3-bytes")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/audio/speech", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "tts-1", body["model"])
		assert.Equal(t, "Hello", body["input"])
		assert.Equal(t, "nova", body["voice"])
		assert.Equal(t, "mp3", body["response_format"])

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write(audio)
	}))
	defer srv.Close()

	o := NewOpenAITTS(OpenAITTSConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	res, err := o.Synthesize(context.Background(), SynthesisRequest{Voice: "nova", Text: "Hello"})
	require.NoError(t, err)
	assert.Equal(t, audio, res.Audio)
	assert.Equal(t, "audio/mpeg", res.ContentType)
	assert.Equal(t, "openai", o.Name())
}

func TestOpenAITTS_Synthesize_StatusError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
	}))
	defer srv.Close()

	o := NewOpenAITTS(OpenAITTSConfig{APIKey: "test-key", BaseURL: srv.URL + "/v1"})
	_, err := o.Synthesize(context.Background(), SynthesisRequest{Voice: "alloy", Text: "Hello"})

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, err.Error(), "503")
}
