package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/store"
	"strings"
	"unicode"

	"github.com/abadojack/whatlanggo"
	"github.com/samber/lo"
)

const (
	DefaultTopActiveUsers = 5
	DefaultTopEmojis      = 10
	DefaultTopWords       = 20

	// NoCalls is reported when no call notice was found.
	NoCalls = "No calls happened."

	minLanguageWords = 3
)

// VoiceMessages counts voice notes per sender.
func VoiceMessages(view store.View) []NameCount {
	voice := lo.Filter(view.Messages(), func(m domain.Message, _ int) bool {
		return classify.IsVoiceMessage(m.Content)
	})
	return countByFirstSeen(senders(voice))
}

type Calls struct {
	Rows   []NameCount // one row per call kind, table order
	Notice string      // NoCalls when Rows is empty
}

// CallAnalysis counts voice and video calls. A message counts for one kind at most.
func CallAnalysis(view store.View) Calls {
	counts := make(map[classify.CallKind]int)
	for i := 0; i < view.Len(); i++ {
		if kind, ok := classify.CallType(view.At(i).Content); ok {
			counts[kind]++
		}
	}
	if len(counts) == 0 {
		return Calls{Rows: []NameCount{}, Notice: NoCalls}
	}
	return Calls{Rows: lo.Map(classify.CallKinds(), func(k classify.CallKind, _ int) NameCount {
		return NameCount{Name: string(k), Count: counts[k]}
	})}
}

type Share struct {
	Name    string
	Percent float64
}

type ActiveUsers struct {
	Top    []NameCount
	Shares []Share
}

// MostActiveUsers ranks every sender of the chat, notifications included,
// and reports each one's share of the messages.
func MostActiveUsers(view store.View, top int) ActiveUsers {
	counts := countByFirstSeen(senders(view.Messages()))
	total := view.Len()
	shares := lo.Map(counts, func(r NameCount, _ int) Share {
		return Share{Name: r.Name, Percent: round2(float64(r.Count) / float64(total) * 100)}
	})
	return ActiveUsers{Top: head(counts, top), Shares: shares}
}

// TopEmojis returns the most used glyphs, ties in order of first use.
func TopEmojis(view store.View, oracles classify.Oracles, top int) []NameCount {
	glyphs := lo.FlatMap(view.Messages(), func(m domain.Message, _ int) []string {
		return oracles.Emojis.Emojis(m.Content)
	})
	return head(countByFirstSeen(glyphs), top)
}

var stopwords = lo.SliceToMap([]string{
	"a", "about", "above", "after", "again", "against", "all", "also", "am", "an", "and", "any", "are",
	"as", "at", "be", "because", "been", "before", "being", "below", "between", "both", "but", "by",
	"can", "could", "did", "do", "does", "doing", "down", "during", "each", "else", "ever", "few",
	"for", "from", "further", "get", "had", "has", "have", "having", "he", "her", "here", "hers",
	"herself", "him", "himself", "his", "how", "however", "i", "if", "in", "into", "is", "it", "its",
	"itself", "just", "like", "me", "more", "most", "my", "myself", "no", "nor", "not", "of", "off",
	"on", "once", "only", "or", "other", "otherwise", "ought", "our", "ours", "ourselves", "out",
	"over", "own", "same", "shall", "she", "should", "since", "so", "some", "such", "than", "that",
	"the", "their", "theirs", "them", "themselves", "then", "there", "these", "they", "this",
	"those", "through", "to", "too", "under", "until", "up", "very", "was", "we", "were", "what",
	"when", "where", "which", "while", "who", "whom", "why", "with", "would", "you", "your", "yours",
	"yourself", "yourselves", "www", "http", "com",
	"media", "omitted", "https", "added", "left", domain.GroupNotification,
}, func(w string) (string, struct{}) { return w, struct{}{} })

// CommonWords is the word frequency table behind a word cloud:
// lowercased words, punctuation trimmed, stopwords and numbers left out.
func CommonWords(view store.View, top int) []NameCount {
	words := lo.FlatMap(view.Messages(), func(m domain.Message, _ int) []string {
		return lo.FilterMap(classify.Words(m.Content), func(w string, _ int) (string, bool) {
			w = strings.ToLower(strings.TrimFunc(w, func(r rune) bool {
				return unicode.IsPunct(r) || unicode.IsSymbol(r)
			}))
			if w == "" || isNumber(w) {
				return "", false
			}
			_, stop := stopwords[w]
			return w, !stop
		})
	})
	return head(countByName(words), top)
}

func isNumber(w string) bool {
	return strings.IndexFunc(w, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

// LanguageMix detects the language of every human text message long enough
// to be reliable, most used language first.
func LanguageMix(view store.View) []NameCount {
	var languages []string
	for _, m := range view.ExcludeSystem().Messages() {
		if classify.IsMedia(m.Content) || classify.IsDeleted(m.Content) {
			continue
		}
		if len(classify.Words(m.Content)) < minLanguageWords {
			continue
		}
		info := whatlanggo.Detect(m.Content)
		if !info.IsReliable() {
			continue
		}
		languages = append(languages, info.Lang.String())
	}
	return countByFirstSeen(languages)
}

func head(rows []NameCount, top int) []NameCount {
	if top >= 0 && len(rows) > top {
		return rows[:top]
	}
	return rows
}
