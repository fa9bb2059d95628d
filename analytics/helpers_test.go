package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/store"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Monday 4 March 2024, 10:00 UTC
var t0 = time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)

func msg(sender, content string, at time.Time) domain.Message {
	return domain.NewMessage(uuid.New(), sender, content, at)
}

// sequence builds one message per sender, seconds apart from t0.
func sequence(senders []string, seconds []int) store.View {
	messages := make([]domain.Message, len(senders))
	for i, s := range senders {
		messages[i] = msg(s, "text", t0.Add(time.Duration(seconds[i])*time.Second))
	}
	return store.NewView(messages...)
}

// fakeOracles counts "http" tokens as URLs and ":)" as emoji.
type fakeOracles struct{}

func (fakeOracles) FindURLs(text string) []string {
	var urls []string
	for _, w := range strings.Fields(text) {
		if strings.HasPrefix(w, "http") {
			urls = append(urls, w)
		}
	}
	return urls
}

func (fakeOracles) Emojis(text string) []string {
	var glyphs []string
	for i := 0; i < strings.Count(text, ":)"); i++ {
		glyphs = append(glyphs, ":)")
	}
	return glyphs
}

func testOracles() classify.Oracles {
	return classify.Oracles{URLs: fakeOracles{}, Emojis: fakeOracles{}}
}
