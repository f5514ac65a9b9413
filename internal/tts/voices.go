package tts

import (
	"slices"
	"strings"
)

// voices is the fixed, ordered set of voices accepted by the service.
var voices = []string{"alloy", "echo", "fable", "onyx", "nova", "shimmer"}

// Voices returns a copy of the supported voices in display order.
func Voices() []string {
	return slices.Clone(voices)
}

// IsVoice reports whether v names a supported voice. v must already be normalised.
func IsVoice(v string) bool {
	return slices.Contains(voices, v)
}

// VoiceList joins the supported voices for human-readable messages.
func VoiceList() string {
	return strings.Join(voices, ", ")
}
