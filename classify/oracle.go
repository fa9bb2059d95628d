package classify

import (
	"regexp"

	"github.com/forPelevin/gomoji"
	"mvdan.cc/xurls/v2"
)

// URLExtractor finds every URL-like substring of a text.
type URLExtractor interface {
	FindURLs(text string) []string
}

// EmojiOracle returns the emoji glyphs of a text, one entry per code point.
type EmojiOracle interface {
	Emojis(text string) []string
}

// Oracles bundles the black-box collaborators used by the aggregators.
type Oracles struct {
	URLs   URLExtractor
	Emojis EmojiOracle
}

// DefaultOracles wires xurls and gomoji.
func DefaultOracles() Oracles {
	return Oracles{URLs: NewURLExtractor(), Emojis: NewEmojiOracle()}
}

type relaxedURLs struct {
	re *regexp.Regexp
}

// NewURLExtractor matches URLs with or without scheme, e.g. "example.com/path".
func NewURLExtractor() URLExtractor {
	return relaxedURLs{re: xurls.Relaxed()}
}

func (r relaxedURLs) FindURLs(text string) []string {
	return r.re.FindAllString(text, -1)
}

type codePointEmojis struct{}

func NewEmojiOracle() EmojiOracle {
	return codePointEmojis{}
}

// Emojis checks every code point on its own, so a flag or a skin tone
// sequence contributes each of its emoji code points.
func (codePointEmojis) Emojis(text string) []string {
	var glyphs []string
	for _, r := range text {
		if r < 0x80 {
			continue
		}
		glyph := string(r)
		if _, err := gomoji.GetInfo(glyph); err == nil {
			glyphs = append(glyphs, glyph)
		}
	}
	return glyphs
}

// CountEmojis is the glyph count of a text.
func (o Oracles) CountEmojis(text string) int {
	return len(o.Emojis.Emojis(text))
}

func (o Oracles) ExtractURLs(text string) []string {
	return o.URLs.FindURLs(text)
}

// CountURLs is the number of URLs found in a text.
func (o Oracles) CountURLs(text string) int {
	return len(o.ExtractURLs(text))
}
