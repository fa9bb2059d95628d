package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/domain"
	"chat-metrics/store"
	"cmp"
	"slices"

	"github.com/samber/lo"
)

// NotGroupChat is reported when a chat has two human senders or fewer.
const NotGroupChat = "This is not a group chat"

// minGroupSenders is the smallest number of human senders of a group chat.
const minGroupSenders = 3

type Mention struct {
	By        string
	Mentioned string
}

type Reply struct {
	From  string
	To    string
	Count int
}

type GroupDynamics struct {
	IsGroup        bool
	Notice         string // NotGroupChat when IsGroup is false
	Mentions       []Mention
	MentionSummary []NameCount // mentions made per sender
	Replies        []Reply
}

// Group analyses mentions and reply adjacency.
// chat is the whole conversation. Mentions are read from the messages of user,
// replies from every adjacent pair of chat, keeping only those sent by user
// unless user is Overall.
func Group(chat store.View, user string) GroupDynamics {
	if len(chat.ExcludeSystem().Senders()) < minGroupSenders {
		return GroupDynamics{
			Notice:         NotGroupChat,
			Mentions:       []Mention{},
			MentionSummary: []NameCount{},
			Replies:        []Reply{},
		}
	}

	mentions := ExtractMentions(chat.FilterByUser(user))
	replies := ReplyAdjacency(chat)
	if user != domain.Overall {
		replies = lo.Filter(replies, func(r Reply, _ int) bool { return r.From == user })
	}
	return GroupDynamics{
		IsGroup:  true,
		Mentions: mentions,
		MentionSummary: countByName(lo.Map(mentions, func(m Mention, _ int) string {
			return m.By
		})),
		Replies: replies,
	}
}

// ExtractMentions records one (sender, name) pair per @token, in stored order.
func ExtractMentions(view store.View) []Mention {
	mentions := []Mention{}
	for i := 0; i < view.Len(); i++ {
		m := view.At(i)
		for _, name := range classify.ExtractMentions(m.Content) {
			mentions = append(mentions, Mention{By: m.Sender, Mentioned: name})
		}
	}
	return mentions
}

// ReplyAdjacency infers "replied to" edges between consecutive messages of
// different human senders, most frequent edge first.
func ReplyAdjacency(view store.View) []Reply {
	type edge struct{ from, to string }
	counts := make(map[edge]int)
	for i := 1; i < view.Len(); i++ {
		prev, curr := view.At(i-1), view.At(i)
		if curr.Sender == prev.Sender || curr.IsSystem() || prev.IsSystem() {
			continue
		}
		counts[edge{from: curr.Sender, to: prev.Sender}]++
	}
	replies := lo.MapToSlice(counts, func(e edge, c int) Reply {
		return Reply{From: e.from, To: e.to, Count: c}
	})
	slices.SortFunc(replies, func(a, b Reply) int {
		return cmp.Or(cmp.Compare(b.Count, a.Count), cmp.Compare(a.From, b.From), cmp.Compare(a.To, b.To))
	})
	return replies
}
