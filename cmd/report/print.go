package main

import (
	"chat-metrics/analytics"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type printer struct {
	out     io.Writer
	colours bool
}

func newPrinter(out io.Writer, colours bool) printer {
	return printer{out: out, colours: colours}
}

func (p printer) Print(r analytics.Report) {
	p.section("Top statistics")
	p.table([]string{"Messages", "Words", "Media", "Links", "Emojis", "Stickers"}, [][]string{{
		itoa(r.Basic.Messages), itoa(r.Basic.Words), itoa(r.Basic.Media),
		itoa(r.Basic.Links), itoa(r.Basic.Emojis), itoa(r.Basic.Stickers),
	}})

	p.section("First message")
	if r.HasMessages || r.FirstMessage.Date != "" {
		row := []string{r.FirstMessage.Date, r.FirstMessage.User, r.FirstMessage.Text}
		header := []string{"Date", "User", "Message"}
		if r.FirstMessage.Age != "" {
			header = append(header, "Chat age")
			row = append(row, r.FirstMessage.Age)
		}
		p.table(header, [][]string{row})
	}

	if r.ActiveUsers != nil {
		p.section("Most active users")
		p.counts("User", r.ActiveUsers.Top)
		p.table([]string{"Name", "Percent"}, lo.Map(r.ActiveUsers.Shares, func(s analytics.Share, _ int) []string {
			return []string{s.Name, ftoa(s.Percent)}
		}))
	}

	p.section("Voice messages")
	p.counts("User", r.Voice)
	p.section("Calls")
	if r.Calls.Notice != "" {
		fmt.Fprintln(p.out, r.Calls.Notice)
	}
	p.counts("Call Type", r.Calls.Rows)
	p.section("Common words")
	p.counts("Word", r.CommonWords)
	p.section("Top emojis")
	p.counts("Emoji", r.TopEmojis)
	p.section("Languages")
	p.counts("Language", r.Languages)

	p.section("Monthly timeline")
	p.table([]string{"Month", "Messages"}, lo.Map(r.Monthly, func(m analytics.MonthCount, _ int) []string {
		return []string{m.Label, itoa(m.Count)}
	}))
	p.section("Daily timeline")
	p.days(r.Daily)
	p.section("Busiest days")
	p.days(r.BusiestDays)
	p.section("Week activity")
	p.counts("Day", r.WeekDays)
	p.section("Month activity")
	p.counts("Month", r.Months)

	p.section("Activity heatmap")
	periods := r.Heatmap.Periods()
	p.table(append([]string{"Day"}, periods...), lo.Map(r.Heatmap.Days(), func(day string, _ int) []string {
		return append([]string{day}, lo.Map(periods, func(period string, _ int) string {
			return itoa(r.Heatmap.Count(day, period))
		})...)
	}))

	p.section("Response times")
	p.table([]string{"User", "Average seconds"}, lo.Map(r.ResponseTimes.Rows, func(rt analytics.ResponseTime, _ int) []string {
		return []string{rt.User, ftoa(rt.AvgSeconds)}
	}))
	if r.ResponseTimes.Fastest != nil {
		fmt.Fprintf(p.out, "Fastest responder: %s (%s s)\n", r.ResponseTimes.Fastest.User, ftoa(r.ResponseTimes.Fastest.AvgSeconds))
	}
	p.section("First message of the day")
	p.counts("User", r.FirstOfDay)
	p.section("Late night messages")
	p.counts("User", r.LateNight)
	p.section("Average message length")
	p.table([]string{"User", "Average length"}, lo.Map(r.TextLength, func(t analytics.TextLength, _ int) []string {
		return []string{t.User, ftoa(t.AvgLength)}
	}))
	p.section("Deleted messages")
	p.table([]string{"User", "Deleted", "Rate (%)"}, lo.Map(r.Deletions, func(d analytics.Deletion, _ int) []string {
		return []string{d.User, itoa(d.Deleted), ftoa(d.Rate)}
	}))

	p.section("Group dynamics")
	if !r.Group.IsGroup {
		fmt.Fprintln(p.out, r.Group.Notice)
	} else {
		p.counts("Mentioned by", r.Group.MentionSummary)
		p.table([]string{"From", "To", "Replies"}, lo.Map(r.Group.Replies, func(rp analytics.Reply, _ int) []string {
			return []string{rp.From, rp.To, itoa(rp.Count)}
		}))
	}

	if len(r.Failures) > 0 {
		p.section("Failed tables")
		names := lo.Keys(r.Failures)
		sort.Strings(names)
		p.table([]string{"Table", "Error"}, lo.Map(names, func(name string, _ int) []string {
			return []string{name, r.Failures[name].Error()}
		}))
	}
}

func (p printer) section(title string) {
	header := fmt.Sprintf("  ====== %s ======", title)
	if p.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(p.out, header)
}

func (p printer) counts(key string, rows []analytics.NameCount) {
	p.table([]string{key, "Count"}, lo.Map(rows, func(r analytics.NameCount, _ int) []string {
		return []string{r.Name, itoa(r.Count)}
	}))
}

func (p printer) days(rows []analytics.DayCount) {
	p.table([]string{"Date", "Messages"}, lo.Map(rows, func(d analytics.DayCount, _ int) []string {
		return []string{d.Date, itoa(d.Count)}
	}))
}

func (p printer) table(header []string, rows [][]string) {
	if len(rows) == 0 {
		fmt.Fprintln(p.out, "No data")
		return
	}
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.AppendBulk(rows)
	table.Render()
}

func itoa(v int) string { return strconv.Itoa(v) }

func ftoa(v float64) string { return strconv.FormatFloat(v, 'f', 2, 64) }
