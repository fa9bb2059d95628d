package classify

import (
	"chat-metrics/domain"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentClassifiers(t *testing.T) {
	req := require.New(t)

	req.True(IsMedia(domain.MediaOmitted))
	req.False(IsMedia("<Media omitted>"))
	req.False(IsMedia("look <Media omitted>\n"))

	req.True(IsSticker("sent a sticker"))
	req.False(IsSticker("Sticker omitted"))

	req.True(IsDeleted("This message was deleted\n"))
	req.True(IsDeleted("you deleted: THIS MESSAGE WAS DELETED"))
	req.False(IsDeleted("message deleted"))
}

func TestIsVoiceMessage(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"Plain keyword", "voice message", true},
		{"Uppercase", "AUDIO omitted", true},
		{"Trailing punctuation", "Voice note: 0:12", true},
		{"Variant", "sent a voice msg.", true},
		{"Substring of a longer word", "audiobook tonight?", true},
		{"Nothing", "see you later", false},
		{"Empty", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, IsVoiceMessage(tt.input))
		})
	}
}

func TestCallType(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected CallKind
		found    bool
	}{
		{"Voice call", "Missed voice call", VoiceCall, true},
		{"Video call", "Video call, 3 min", VideoCall, true},
		{"Both mentioned counts once, voice first", "video call or voice call?", VoiceCall, true},
		{"No call", "call me", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := CallType(tt.input)
			require.Equal(t, tt.found, ok)
			require.Equal(t, tt.expected, kind)
		})
	}
}

func TestExtractMentions(t *testing.T) {
	req := require.New(t)
	req.Equal([]string{"bob", "carol"}, ExtractMentions("hey @bob check this @carol"))
	req.Equal([]string{"dave"}, ExtractMentions("@@dave@ ping"))
	req.Nil(ExtractMentions("mail me at bob@example.com"))
	req.Nil(ExtractMentions("just @ alone"))
	req.Nil(ExtractMentions("no mention"))
}

func TestDisplayText(t *testing.T) {
	req := require.New(t)
	req.Equal(MediaLikeSubstitute, DisplayText(domain.MediaOmitted))
	req.Equal(MediaLikeSubstitute, DisplayText("IMG-001.jpg (file omitted)"))
	req.Equal(MediaLikeSubstitute, DisplayText("Missed video call"))
	req.Equal(MediaLikeSubstitute, DisplayText("gif omitted"))
	req.Equal("Hello there\n", DisplayText("Hello there\n"))
}

func TestDefaultOracles(t *testing.T) {
	req := require.New(t)
	oracles := DefaultOracles()

	req.Equal(2, oracles.CountURLs("read https://example.com/a and www.golang.org today"))
	req.Equal(0, oracles.CountURLs("nothing here"))
	req.Equal([]string{"https://example.com/a"}, oracles.ExtractURLs("see https://example.com/a"))

	req.Equal(3, oracles.CountEmojis("so funny 😂😂 👍"))
	req.Equal(0, oracles.CountEmojis("plain ascii: 123 #*"))
}
