package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/store"
	"cmp"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/samber/lo"
)

const (
	firstMessageDateLayout = "02 January 2006"
	noMessagesFound        = "No messages found"

	daysPerYear  = 365
	daysPerMonth = 30

	lateNightStart = 0
	lateNightEnd   = 3 // exclusive
)

// FirstMessage describes the earliest message of a scope.
// Age is only filled for the Overall scope.
type FirstMessage struct {
	Date    string
	Age     string
	Text    string
	User    string
	Elapsed time.Duration
}

// ChatAge finds the earliest human message of the whole chat and how long
// ago it was sent. ok is false when the chat holds no human message.
func ChatAge(view store.View, now time.Time) (FirstMessage, bool) {
	earliest, ok := earliestMessage(view.ExcludeSystem())
	if !ok {
		return FirstMessage{}, false
	}
	elapsed := now.Sub(earliest.At)
	return FirstMessage{
		Date:    earliest.At.Format(firstMessageDateLayout),
		Age:     FormatAge(elapsed),
		Text:    classify.DisplayText(earliest.Content),
		User:    earliest.Sender,
		Elapsed: elapsed,
	}, true
}

// UserFirstMessage finds the earliest message sent by user.
func UserFirstMessage(view store.View, user string) FirstMessage {
	earliest, ok := earliestMessage(view.FilterByUser(user).ExcludeSystem())
	if !ok {
		return FirstMessage{Date: noMessagesFound, Text: noMessagesFound, User: user}
	}
	return FirstMessage{
		Date: earliest.At.Format(firstMessageDateLayout),
		Text: classify.DisplayText(earliest.Content),
		User: user,
	}
}

// FormatAge renders whole years, 30-day months and remaining days.
// Zero years and months are omitted, days are always shown.
func FormatAge(elapsed time.Duration) string {
	days := int(math.Floor(elapsed.Hours() / 24))
	if days < 0 {
		days = 0
	}
	years := days / daysPerYear
	rest := days % daysPerYear
	months := rest / daysPerMonth
	days = rest % daysPerMonth

	var parts []string
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	if months > 0 {
		parts = append(parts, plural(months, "month"))
	}
	parts = append(parts, plural(days, "day"))
	return strings.Join(parts, ", ")
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// earliestMessage breaks timestamp ties by stored order.
func earliestMessage(view store.View) (domain.Message, bool) {
	if view.IsEmpty() {
		return domain.Message{}, false
	}
	messages := view.Messages()
	slices.SortStableFunc(messages, func(a, b domain.Message) int { return a.At.Compare(b.At) })
	return messages[0], true
}

type ResponseTime struct {
	User       string
	AvgSeconds float64
}

type ResponseTimes struct {
	Rows    []ResponseTime // sorted by user
	Fastest *ResponseTime  // nil when nobody ever answered
}

// ResponseTimeAnalysis measures turn-taking latency.
// Only a sender change counts as a response: the latency of a message is the
// time elapsed since the message right before it, attributed to the new sender.
func ResponseTimeAnalysis(view store.View) ResponseTimes {
	view = view.ExcludeSystem()
	latencies := make(map[string][]float64)
	for i := 1; i < view.Len(); i++ {
		prev, curr := view.At(i-1), view.At(i)
		if curr.Sender == prev.Sender {
			continue
		}
		latencies[curr.Sender] = append(latencies[curr.Sender], curr.At.Sub(prev.At).Seconds())
	}
	if len(latencies) == 0 {
		return ResponseTimes{Rows: []ResponseTime{}}
	}

	rows := lo.MapToSlice(latencies, func(user string, seconds []float64) ResponseTime {
		return ResponseTime{User: user, AvgSeconds: lo.Mean(seconds)}
	})
	slices.SortFunc(rows, func(a, b ResponseTime) int { return cmp.Compare(a.User, b.User) })

	fastest := lo.MinBy(rows, func(a, b ResponseTime) bool { return a.AvgSeconds < b.AvgSeconds })
	return ResponseTimes{Rows: rows, Fastest: &fastest}
}

// FirstMessageOfDay tallies how many days each sender opened.
// The first message of a date is taken in stored order.
func FirstMessageOfDay(view store.View) []NameCount {
	view = view.ExcludeSystem()
	seen := make(map[string]struct{})
	var openers []string
	for i := 0; i < view.Len(); i++ {
		m := view.At(i)
		if _, ok := seen[m.Date()]; ok {
			continue
		}
		seen[m.Date()] = struct{}{}
		openers = append(openers, m.Sender)
	}
	return countByFirstSeen(openers)
}

// LateNightActivity counts messages sent in [00:00, 03:00) per sender.
func LateNightActivity(view store.View) []NameCount {
	late := lo.Filter(view.ExcludeSystem().Messages(), func(m domain.Message, _ int) bool {
		return m.Hour() >= lateNightStart && m.Hour() < lateNightEnd
	})
	return countByFirstSeen(senders(late))
}

type TextLength struct {
	User      string
	AvgLength float64
}

// TextLengthAnalysis averages the raw rune count of the stored text,
// trailing newlines included. For Overall there is one row per sender,
// otherwise a single row for user.
func TextLengthAnalysis(view store.View, user string) []TextLength {
	messages := view.FilterByUser(user).ExcludeSystem().Messages()
	if len(messages) == 0 {
		return []TextLength{}
	}
	if user != domain.Overall {
		return []TextLength{{User: user, AvgLength: meanLength(messages)}}
	}
	rows := lo.MapToSlice(lo.GroupBy(messages, func(m domain.Message) string { return m.Sender }),
		func(sender string, ms []domain.Message) TextLength {
			return TextLength{User: sender, AvgLength: meanLength(ms)}
		})
	slices.SortFunc(rows, func(a, b TextLength) int { return cmp.Compare(a.User, b.User) })
	return rows
}

func meanLength(messages []domain.Message) float64 {
	return lo.Mean(lo.Map(messages, func(m domain.Message, _ int) float64 {
		return float64(utf8.RuneCountInString(m.Content))
	}))
}

type Deletion struct {
	User    string
	Deleted int
	Rate    float64 // percent of the sender's messages, 2 decimals
}

// DeletedMessages counts deletion notices per sender, most deletions first.
func DeletedMessages(view store.View) []Deletion {
	messages := view.Messages()
	totals := lo.CountValuesBy(messages, func(m domain.Message) string { return m.Sender })
	deleted := lo.Filter(messages, func(m domain.Message, _ int) bool { return classify.IsDeleted(m.Content) })
	return lo.Map(countByFirstSeen(senders(deleted)), func(r NameCount, _ int) Deletion {
		return Deletion{
			User:    r.Name,
			Deleted: r.Count,
			Rate:    round2(float64(r.Count) / float64(totals[r.Name]) * 100),
		}
	})
}

func senders(messages []domain.Message) []string {
	return lo.Map(messages, func(m domain.Message, _ int) string { return m.Sender })
}
