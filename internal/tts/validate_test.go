package tts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateParams(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		voice     string
		text      string
		want      SynthesisRequest
		wantError string
	}{
		{"valid", "alloy", "Hello", SynthesisRequest{Voice: "alloy", Text: "Hello"}, ""},
		{"voice normalised", " NOVA ", "  Hello World ", SynthesisRequest{Voice: "nova", Text: "Hello World"}, ""},
		{"text case kept", "echo", "MiXeD", SynthesisRequest{Voice: "echo", Text: "MiXeD"}, ""},
		{"missing voice", "", "Hello", SynthesisRequest{}, "Voice and text parameters are required"},
		{"missing text", "alloy", "", SynthesisRequest{}, "Voice and text parameters are required"},
		{"blank voice", "   ", "Hello", SynthesisRequest{}, "Voice and text parameters are required"},
		{"blank text", "alloy", " \t\n", SynthesisRequest{}, "Voice and text parameters are required"},
		{"unknown voice", "bogus", "Hello", SynthesisRequest{}, "Invalid voice. Available voices: alloy, echo, fable, onyx, nova, shimmer"},
		{"text too long", "alloy", strings.Repeat("a", MaxTextLength+1), SynthesisRequest{}, "Text cannot exceed 5000 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := ValidateParams(tt.voice, tt.text)
			if tt.wantError != "" {
				var vErr *ValidationError
				require.ErrorAs(t, err, &vErr)
				assert.Equal(t, tt.wantError, vErr.Message)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestValidateParams_LengthCountsCharacters(t *testing.T) {
	t.Parallel()

	// 5000 multi-byte runes are well over 5000 bytes but still allowed.
	text := strings.Repeat("é", MaxTextLength)
	got, err := ValidateParams("fable", text)
	require.NoError(t, err)
	assert.Equal(t, text, got.Text)

	_, err = ValidateParams("fable", text+"é")
	assert.EqualError(t, err, "Text cannot exceed 5000 characters")
}

func TestValidateParams_VoiceCheckedBeforeLength(t *testing.T) {
	t.Parallel()

	_, err := ValidateParams("bogus", strings.Repeat("a", MaxTextLength+1))
	assert.ErrorContains(t, err, "Invalid voice")
}

func TestVoices(t *testing.T) {
	t.Parallel()

	v := Voices()
	assert.Equal(t, []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}, v)

	v[0] = "mutated"
	assert.Equal(t, "alloy", Voices()[0], "Voices must return a copy")

	assert.True(t, IsVoice("shimmer"))
	assert.False(t, IsVoice("Shimmer"))
	assert.Equal(t, "alloy, echo, fable, onyx, nova, shimmer", VoiceList())
}

func TestValidateParams_TrimSet(t *testing.T) {
	t.Parallel()

	got, err := ValidateParams("\uFEFFnova\u00A0", "\u3000Hello\u2028")
	require.NoError(t, err)
	assert.Equal(t, SynthesisRequest{Voice: "nova", Text: "Hello"}, got)

	// U+0085 is not whitespace for this trim, so it stays part of the text.
	got, err = ValidateParams("alloy", "\u0085Hi\u0085")
	require.NoError(t, err)
	assert.Equal(t, "\u0085Hi\u0085", got.Text)

	_, err = ValidateParams("\u0085nova", "Hi")
	assert.ErrorContains(t, err, "Invalid voice")

	_, err = ValidateParams("\uFEFF", "Hi")
	assert.EqualError(t, err, "Voice and text parameters are required")
}
