package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/store"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

const day = 24 * time.Hour

func TestChatAge(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg(domain.GroupNotification, "Alice created group", t0.Add(-time.Hour)),
		msg("Bob", "second", t0.Add(time.Minute)),
		msg("Alice", "first", t0),
	)

	first, ok := ChatAge(view, t0.Add(400*day+time.Hour))

	req.True(ok)
	req.Equal(FirstMessage{
		Date:    "04 March 2024",
		Age:     "1 year, 1 month, 5 days",
		Text:    "first",
		User:    "Alice",
		Elapsed: 400*day + time.Hour,
	}, first)
}

func TestChatAge_MediaLikeFirstMessage(t *testing.T) {
	view := store.NewView(msg("Alice", domain.MediaOmitted, t0))
	first, ok := ChatAge(view, t0)
	require.True(t, ok)
	require.Equal(t, classify.MediaLikeSubstitute, first.Text)
	require.Equal(t, "0 days", first.Age)
}

func TestChatAge_NoHumanMessage(t *testing.T) {
	_, ok := ChatAge(store.NewView(msg(domain.GroupNotification, "x", t0)), t0)
	require.False(t, ok)
	_, ok = ChatAge(store.NewView(), t0)
	require.False(t, ok)
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		elapsed  time.Duration
		expected string
	}{
		{0, "0 days"},
		{day, "1 day"},
		{2*day + 5*time.Hour, "2 days"},
		{30 * day, "1 month, 0 days"},
		{365 * day, "1 year, 0 days"},
		{800 * day, "2 years, 2 months, 10 days"},
		{-3 * day, "0 days"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.expected, FormatAge(tt.elapsed), "elapsed=%s", tt.elapsed)
	}
}

func TestUserFirstMessage(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg("Alice", "hello", t0),
		msg("Bob", "Missed voice call", t0.Add(time.Minute)),
		msg("Bob", "hey", t0.Add(2*time.Minute)),
	)

	req.Equal(FirstMessage{Date: "04 March 2024", Text: classify.MediaLikeSubstitute, User: "Bob"},
		UserFirstMessage(view, "Bob"))
	req.Equal(FirstMessage{Date: "No messages found", Text: "No messages found", User: "Clara"},
		UserFirstMessage(view, "Clara"))
}

func TestResponseTimeAnalysis_OnlySenderChangesCount(t *testing.T) {
	req := require.New(t)
	view := sequence([]string{"A", "A", "B", "A"}, []int{0, 10, 15, 20})

	result := ResponseTimeAnalysis(view)

	req.Equal([]ResponseTime{{User: "A", AvgSeconds: 5}, {User: "B", AvgSeconds: 5}}, result.Rows)
	req.NotNil(result.Fastest)
	req.Equal("A", result.Fastest.User)
}

func TestResponseTimeAnalysis_MeanAndFastest(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg("A", "q", t0),
		msg(domain.GroupNotification, "C joined", t0.Add(5*time.Second)),
		msg("B", "r", t0.Add(60*time.Second)),
		msg("A", "s", t0.Add(80*time.Second)),
		msg("B", "t", t0.Add(180*time.Second)),
	)

	result := ResponseTimeAnalysis(view)

	req.Equal([]ResponseTime{{User: "A", AvgSeconds: 20}, {User: "B", AvgSeconds: 80}}, result.Rows)
	req.Equal(&ResponseTime{User: "A", AvgSeconds: 20}, result.Fastest)
}

func TestResponseTimeAnalysis_NoData(t *testing.T) {
	tests := []struct {
		name string
		view store.View
	}{
		{"Empty", store.NewView()},
		{"Single message", sequence([]string{"A"}, []int{0})},
		{"Monologue", sequence([]string{"A", "A", "A"}, []int{0, 1, 2})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ResponseTimeAnalysis(tt.view)
			require.Empty(t, result.Rows)
			require.Nil(t, result.Fastest)
		})
	}
}

func TestFirstMessageOfDay(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg(domain.GroupNotification, "Bob added Clara", t0.Add(-time.Hour)),
		msg("Alice", "morning", t0),
		msg("Bob", "hi", t0.Add(time.Minute)),
		msg("Bob", "day two", t0.Add(day)),
		msg("Alice", "hey", t0.Add(day+time.Minute)),
		msg("Bob", "day three", t0.Add(2*day)),
	)

	req.Equal([]NameCount{{Name: "Bob", Count: 2}, {Name: "Alice", Count: 1}}, FirstMessageOfDay(view))
	req.Empty(FirstMessageOfDay(store.NewView()))
}

func TestLateNightActivity_HalfOpenWindow(t *testing.T) {
	req := require.New(t)
	midnight := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.UTC)
	view := store.NewView(
		msg("Alice", "a", midnight),
		msg("Bob", "b", midnight.Add(2*time.Hour+59*time.Minute)),
		msg("Bob", "c", midnight.Add(3*time.Hour)),
		msg("Alice", "d", midnight.Add(90*time.Minute)),
		msg(domain.GroupNotification, "e", midnight.Add(time.Hour)),
		msg("Bob", "f", midnight.Add(23*time.Hour)),
	)

	req.Equal([]NameCount{{Name: "Alice", Count: 2}, {Name: "Bob", Count: 1}}, LateNightActivity(view))
}

func TestTextLengthAnalysis(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg("Bob", "hi\n", t0),
		msg("Alice", "héllo", t0.Add(time.Minute)),
		msg("Alice", "abc", t0.Add(2*time.Minute)),
		msg(domain.GroupNotification, "a very long notification", t0.Add(3*time.Minute)),
	)

	req.Equal([]TextLength{{User: "Alice", AvgLength: 4}, {User: "Bob", AvgLength: 3}},
		TextLengthAnalysis(view, domain.Overall))
	req.Equal([]TextLength{{User: "Bob", AvgLength: 3}}, TextLengthAnalysis(view, "Bob"))
	req.Empty(TextLengthAnalysis(view, "Clara"))
	req.Empty(TextLengthAnalysis(store.NewView(), domain.Overall))
}

func TestDeletedMessages(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg("Alice", "one", t0),
		msg("Alice", "This message was deleted", t0.Add(time.Minute)),
		msg("Alice", "three", t0.Add(2*time.Minute)),
		msg("Alice", "four", t0.Add(3*time.Minute)),
		msg("Bob", "you deleted this message was deleted", t0.Add(4*time.Minute)),
		msg("Bob", "this message was deleted", t0.Add(5*time.Minute)),
		msg("Bob", "ok", t0.Add(6*time.Minute)),
		msg("Clara", "never deletes", t0.Add(7*time.Minute)),
	)

	req.Equal([]Deletion{
		{User: "Bob", Deleted: 2, Rate: 66.67},
		{User: "Alice", Deleted: 1, Rate: 25},
	}, DeletedMessages(view))
	req.Empty(DeletedMessages(store.NewView()))
}
