// Package classify maps message text to content-type tags.
// Every function is pure and keyword based.
package classify

import (
	"chat-metrics/domain"
	"strings"

	"github.com/samber/lo"
)

const (
	stickerMarker = "sticker"
	deletedMarker = "this message was deleted"

	// MediaLikeSubstitute replaces the literal text of a media-like first message.
	MediaLikeSubstitute = "It's a media message (voice message, call, image, video, etc.)"
)

// Voice note variants, with and without trailing punctuation.
var voicePatterns = []string{
	"voice message",
	"audio",
	"voice note",
	"voice recording",
	"voice clip",
	"voice memo",
	"voice file",
	"voice msg",
	"voice msg.",
	"voice msg:",
	"voice message:",
	"voice note:",
	"voice recording:",
	"voice clip:",
	"voice memo:",
	"voice file:",
}

var mediaLikePatterns = []string{
	"voice message", "audio", "voice note", "voice recording", "voice clip", "voice memo", "voice file", "voice msg",
	"<media omitted>", "image omitted", "video omitted", "document omitted", "sticker omitted",
	"voice call", "video call", "missed voice call", "missed video call",
	"GIF omitted", "location omitted", "contact omitted", "file omitted",
}

type CallKind string

const (
	VoiceCall CallKind = "Voice Call"
	VideoCall CallKind = "Video Call"
)

type callRule struct {
	pattern string
	kind    CallKind
}

// Order matters: a text naming both kinds counts as a voice call.
var callTable = []callRule{
	{"voice call", VoiceCall},
	{"video call", VideoCall},
}

var (
	voiceMatcher     = lo.Must(NewMatcher(voicePatterns))
	mediaLikeMatcher = lo.Must(NewMatcher(mediaLikePatterns))
	callMatcher      = lo.Must(NewMatcher(lo.Map(callTable, func(c callRule, _ int) string {
		return c.pattern
	})))
)

// CallKinds lists the call types in table order.
func CallKinds() []CallKind {
	return []CallKind{VoiceCall, VideoCall}
}

func IsMedia(text string) bool {
	return text == domain.MediaOmitted
}

func IsSticker(text string) bool {
	return strings.Contains(text, stickerMarker)
}

func IsDeleted(text string) bool {
	return strings.Contains(strings.ToLower(text), deletedMarker)
}

func IsVoiceMessage(text string) bool {
	return voiceMatcher.Any(text)
}

// CallType returns the single call kind a text refers to, if any.
func CallType(text string) (CallKind, bool) {
	pos, ok := callMatcher.First(text)
	if !ok {
		return "", false
	}
	return callTable[pos].kind, true
}

// IsMediaLike is only used to hide the literal text of a first message.
func IsMediaLike(text string) bool {
	return mediaLikeMatcher.Any(text)
}

// DisplayText substitutes media-like texts with a readable description.
func DisplayText(text string) string {
	if IsMediaLike(text) {
		return MediaLikeSubstitute
	}
	return text
}

// Words splits on any whitespace.
func Words(text string) []string {
	return strings.Fields(text)
}

// ExtractMentions returns the names of @tokens, without validating them
// against the participants.
func ExtractMentions(text string) []string {
	if !strings.Contains(text, "@") {
		return nil
	}
	var names []string
	for _, token := range strings.Fields(text) {
		if !strings.HasPrefix(token, "@") {
			continue
		}
		if name := strings.Trim(token, "@"); name != "" {
			names = append(names, name)
		}
	}
	return names
}
