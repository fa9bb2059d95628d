package analytics

import (
	"chat-metrics/domain"
	"chat-metrics/store"
	"cmp"
	"fmt"
	"slices"

	"github.com/samber/lo"
)

// DefaultBusyDays is how many dates BusiestDays keeps.
const DefaultBusyDays = 10

type MonthCount struct {
	Year     int
	MonthNum int
	Month    string
	Label    string // "{Month}-{Year}"
	Count    int
}

type DayCount struct {
	Date  string
	Count int
}

// MonthlyTimeline counts messages per calendar month, oldest first.
func MonthlyTimeline(view store.View) []MonthCount {
	type monthKey struct {
		year, num int
		name      string
	}
	groups := lo.CountValuesBy(view.Messages(), func(m domain.Message) monthKey {
		return monthKey{year: m.Year(), num: m.MonthNum(), name: m.Month()}
	})
	rows := lo.MapToSlice(groups, func(k monthKey, c int) MonthCount {
		return MonthCount{
			Year:     k.year,
			MonthNum: k.num,
			Month:    k.name,
			Label:    fmt.Sprintf("%s-%d", k.name, k.year),
			Count:    c,
		}
	})
	slices.SortFunc(rows, func(a, b MonthCount) int {
		return cmp.Or(cmp.Compare(a.Year, b.Year), cmp.Compare(a.MonthNum, b.MonthNum))
	})
	return rows
}

// DailyTimeline counts messages per calendar date, ascending.
// Dates without messages are absent, an empty view yields an empty table.
func DailyTimeline(view store.View) []DayCount {
	rows := lo.MapToSlice(countPerDate(view), func(d string, c int) DayCount {
		return DayCount{Date: d, Count: c}
	})
	slices.SortFunc(rows, func(a, b DayCount) int { return cmp.Compare(a.Date, b.Date) })
	return rows
}

// WeekActivity is the day name histogram, busiest day first.
func WeekActivity(view store.View) []NameCount {
	return countByFirstSeen(lo.Map(view.Messages(), func(m domain.Message, _ int) string {
		return m.DayName()
	}))
}

// MonthActivity is the month name histogram, busiest month first.
func MonthActivity(view store.View) []NameCount {
	return countByFirstSeen(lo.Map(view.Messages(), func(m domain.Message, _ int) string {
		return m.Month()
	}))
}

// HeatCell addresses one (day name, period) combination.
type HeatCell struct {
	Day    string
	Period string
}

// Heatmap is a sparse day x period count table.
type Heatmap struct {
	cells map[HeatCell]int
}

// Count returns 0 for combinations without messages.
func (h Heatmap) Count(day, period string) int {
	return h.cells[HeatCell{Day: day, Period: period}]
}

func (h Heatmap) IsEmpty() bool { return len(h.cells) == 0 }

// Total is the sum over every cell.
func (h Heatmap) Total() int {
	return lo.Sum(lo.Values(h.cells))
}

// Days lists the day names present, Monday first.
func (h Heatmap) Days() []string {
	present := lo.Uniq(lo.Map(lo.Keys(h.cells), func(c HeatCell, _ int) string { return c.Day }))
	return lo.Filter(weekdays(), func(d string, _ int) bool { return lo.Contains(present, d) })
}

// Periods lists the period buckets present, in hour order.
func (h Heatmap) Periods() []string {
	present := lo.Uniq(lo.Map(lo.Keys(h.cells), func(c HeatCell, _ int) string { return c.Period }))
	return lo.Filter(domain.Periods(), func(p string, _ int) bool { return lo.Contains(present, p) })
}

// ActivityHeatmap groups messages by day name and period bucket.
func ActivityHeatmap(view store.View) Heatmap {
	return Heatmap{cells: lo.CountValuesBy(view.Messages(), func(m domain.Message) HeatCell {
		return HeatCell{Day: m.DayName(), Period: m.Period()}
	})}
}

// BusiestDays returns the top dates by message count.
// Dates with equal counts stay in date order.
func BusiestDays(view store.View, top int) []DayCount {
	rows := DailyTimeline(view)
	slices.SortStableFunc(rows, func(a, b DayCount) int { return cmp.Compare(b.Count, a.Count) })
	if top >= 0 && len(rows) > top {
		rows = rows[:top]
	}
	return rows
}

func countPerDate(view store.View) map[string]int {
	return lo.CountValuesBy(view.Messages(), func(m domain.Message) string { return m.Date() })
}

func weekdays() []string {
	return []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}
}
