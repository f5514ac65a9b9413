package tts

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the upper bound on text length, counted in characters.
const MaxTextLength = 5000

// ValidationError reports a rejected voice or text parameter.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// ValidateParams checks the raw voice and text query values and returns the
// normalised request. Voice is trimmed and lower-cased; text is trimmed only.
func ValidateParams(voice, text string) (SynthesisRequest, error) {
	cleanVoice := strings.ToLower(trim(voice))
	cleanText := trim(text)

	if cleanVoice == "" || cleanText == "" {
		return SynthesisRequest{}, &ValidationError{Message: "Voice and text parameters are required"}
	}

	if !IsVoice(cleanVoice) {
		return SynthesisRequest{}, &ValidationError{
			Message: "Invalid voice. Available voices: " + VoiceList(),
		}
	}

	if utf8.RuneCountInString(cleanText) > MaxTextLength {
		return SynthesisRequest{}, &ValidationError{
			Message: fmt.Sprintf("Text cannot exceed %d characters", MaxTextLength),
		}
	}

	return SynthesisRequest{Voice: cleanVoice, Text: cleanText}, nil
}

// trim strips the ECMAScript whitespace and line terminator set, which
// includes U+FEFF but not U+0085, unlike strings.TrimSpace.
func trim(s string) string {
	return strings.TrimFunc(s, isTrimSpace)
}

func isTrimSpace(r rune) bool {
	switch r {
	case '\t', '\n', '\v', '\f', '\r', '\uFEFF', '\u2028', '\u2029':
		return true
	}
	return unicode.Is(unicode.Zs, r)
}
