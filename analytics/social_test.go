package analytics

import (
	"chat-metrics/domain"
	"chat-metrics/store"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExtractMentions(t *testing.T) {
	view := store.NewView(msg("alice", "hey @bob check this @carol", t0))
	require.Equal(t, []Mention{{By: "alice", Mentioned: "bob"}, {By: "alice", Mentioned: "carol"}}, ExtractMentions(view))
}

func TestReplyAdjacency(t *testing.T) {
	req := require.New(t)
	view := sequence([]string{"A", "A", "B", "C", "B"}, []int{0, 1, 2, 3, 4})

	req.Equal([]Reply{
		{From: "B", To: "A", Count: 1},
		{From: "B", To: "C", Count: 1},
		{From: "C", To: "B", Count: 1},
	}, ReplyAdjacency(view))
}

func TestReplyAdjacency_SkipsSystemAndCountsMultiplicity(t *testing.T) {
	view := sequence(
		[]string{"A", "B", domain.GroupNotification, "A", "B", "A", "B"},
		[]int{0, 1, 2, 3, 4, 5, 6},
	)
	require.Equal(t, []Reply{
		{From: "B", To: "A", Count: 3},
		{From: "A", To: "B", Count: 1},
	}, ReplyAdjacency(view))
}

func TestGroup_NotAGroupChat(t *testing.T) {
	req := require.New(t)
	view := store.NewView(
		msg("A", "hi @B", t0),
		msg(domain.GroupNotification, "A added B", t0.Add(time.Minute)),
		msg("B", "hello @A", t0.Add(2*time.Minute)),
	)

	group := Group(view, domain.Overall)

	req.False(group.IsGroup)
	req.Equal(NotGroupChat, group.Notice)
	req.Empty(group.Mentions)
	req.Empty(group.MentionSummary)
	req.Empty(group.Replies)
}

func groupView() store.View {
	return store.NewView(
		msg("A", "morning @B @C", t0),
		msg("B", "hi @A", t0.Add(time.Minute)),
		msg("C", "yo", t0.Add(2*time.Minute)),
		msg("C", "@A @B lunch?", t0.Add(3*time.Minute)),
		msg("A", "sure", t0.Add(4*time.Minute)),
	)
}

func TestGroup_Overall(t *testing.T) {
	req := require.New(t)
	group := Group(groupView(), domain.Overall)

	req.True(group.IsGroup)
	req.Empty(group.Notice)
	req.Len(group.Mentions, 5)
	req.Equal([]NameCount{{Name: "A", Count: 2}, {Name: "C", Count: 2}, {Name: "B", Count: 1}}, group.MentionSummary)
	req.Equal([]Reply{
		{From: "A", To: "C", Count: 1},
		{From: "B", To: "A", Count: 1},
		{From: "C", To: "B", Count: 1},
	}, group.Replies)
}

func TestGroup_SelectedUser(t *testing.T) {
	req := require.New(t)
	group := Group(groupView(), "C")

	req.True(group.IsGroup)
	req.Equal([]Mention{{By: "C", Mentioned: "A"}, {By: "C", Mentioned: "B"}}, group.Mentions)
	req.Equal([]NameCount{{Name: "C", Count: 2}}, group.MentionSummary)
	req.Equal([]Reply{{From: "C", To: "B", Count: 1}}, group.Replies)
}
