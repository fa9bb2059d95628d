package analytics

import (
	"chat-metrics/classify"
	"chat-metrics/contract"
	"chat-metrics/domain"
	"chat-metrics/store"
	"context"
	"time"
)

// Options tunes the top-K tables and the clock used for the chat age.
type Options struct {
	TopBusyDays    int
	TopActiveUsers int
	TopEmojis      int
	TopWords       int
	Now            func() time.Time
}

func DefaultOptions() Options {
	return Options{
		TopBusyDays:    DefaultBusyDays,
		TopActiveUsers: DefaultTopActiveUsers,
		TopEmojis:      DefaultTopEmojis,
		TopWords:       DefaultTopWords,
		Now:            time.Now,
	}
}

// Report gathers every table computed for one user scope.
// A table whose aggregator failed keeps its zero value and its name is listed in Failures.
type Report struct {
	User string

	Basic        BasicStats
	FirstMessage FirstMessage
	HasMessages  bool

	Monthly     []MonthCount
	Daily       []DayCount
	WeekDays    []NameCount
	Months      []NameCount
	Heatmap     Heatmap
	BusiestDays []DayCount

	ResponseTimes ResponseTimes
	FirstOfDay    []NameCount
	LateNight     []NameCount
	TextLength    []TextLength
	Deletions     []Deletion

	Group GroupDynamics

	Voice       []NameCount
	Calls       Calls
	ActiveUsers *ActiveUsers // Overall only
	TopEmojis   []NameCount
	CommonWords []NameCount
	Languages   []NameCount

	Failures map[string]error
}

type Engine struct {
	runner  contract.IRunner
	oracles classify.Oracles
	options Options
}

func NewEngine(runner contract.IRunner, oracles classify.Oracles, options Options) *Engine {
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Engine{runner: runner, oracles: oracles, options: options}
}

// Report runs every aggregator against s for user, concurrently.
// Each task writes a distinct field of the report.
func (e *Engine) Report(ctx context.Context, s *store.Store, user string) Report {
	chat := s.All()
	scoped := s.FilterByUser(user)
	r := Report{User: user}

	tasks := []contract.Task{
		contract.Func("basic", func() { r.Basic = Basic(scoped, e.oracles) }),
		contract.Func("first_message", func() {
			if user == domain.Overall {
				r.FirstMessage, r.HasMessages = ChatAge(chat, e.options.Now())
				return
			}
			r.FirstMessage = UserFirstMessage(chat, user)
			r.HasMessages = !scoped.ExcludeSystem().IsEmpty()
		}),
		contract.Func("monthly_timeline", func() { r.Monthly = MonthlyTimeline(scoped) }),
		contract.Func("daily_timeline", func() { r.Daily = DailyTimeline(scoped) }),
		contract.Func("week_activity", func() { r.WeekDays = WeekActivity(scoped) }),
		contract.Func("month_activity", func() { r.Months = MonthActivity(scoped) }),
		contract.Func("activity_heatmap", func() { r.Heatmap = ActivityHeatmap(scoped) }),
		contract.Func("busiest_days", func() { r.BusiestDays = BusiestDays(scoped, e.options.TopBusyDays) }),
		contract.Func("response_times", func() { r.ResponseTimes = ResponseTimeAnalysis(scoped) }),
		contract.Func("first_of_day", func() { r.FirstOfDay = FirstMessageOfDay(scoped) }),
		contract.Func("late_night", func() { r.LateNight = LateNightActivity(scoped) }),
		contract.Func("text_length", func() { r.TextLength = TextLengthAnalysis(chat, user) }),
		contract.Func("deleted_messages", func() { r.Deletions = DeletedMessages(scoped) }),
		contract.Func("group_dynamics", func() { r.Group = Group(chat, user) }),
		contract.Func("voice_messages", func() { r.Voice = VoiceMessages(scoped) }),
		contract.Func("calls", func() { r.Calls = CallAnalysis(scoped) }),
		contract.Func("top_emojis", func() { r.TopEmojis = TopEmojis(scoped, e.oracles, e.options.TopEmojis) }),
		contract.Func("common_words", func() { r.CommonWords = CommonWords(scoped, e.options.TopWords) }),
		contract.Func("languages", func() { r.Languages = LanguageMix(scoped) }),
	}
	if user == domain.Overall {
		tasks = append(tasks, contract.Func("active_users", func() {
			active := MostActiveUsers(chat, e.options.TopActiveUsers)
			r.ActiveUsers = &active
		}))
	}

	r.Failures = e.runner.Run(ctx, tasks...)
	return r
}
