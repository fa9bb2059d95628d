// Package domain contains core concepts of the chat metrics system.
// This file defines Message records and their derived calendar fields.
// Messages are immutable once built.
package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	// Overall selects every sender of a chat.
	Overall = "Overall"
	// GroupNotification is the reserved sender of joins, leaves and subject changes.
	GroupNotification = "group_notification"
	// MediaOmitted is what the export writes in place of an attachment.
	MediaOmitted = "<Media omitted>\n"

	DateLayout = "2006-01-02"
)

// Record is a normalized transcript line as handed over by the export parser.
type Record struct {
	Sender  string    `validate:"required"`
	Content string
	At      time.Time `validate:"required"`
}

// Message represents an immutable chat event.
// Calendar fields are derived once in NewMessage and used as grouping keys.
type Message struct {
	ID      uuid.UUID // unique identifier
	Sender  string
	Content string
	At      time.Time

	date     string
	hour     int
	dayName  string
	month    string
	monthNum int
	year     int
	period   string
}

func NewMessage(id uuid.UUID, sender, content string, at time.Time) Message {
	hour := at.Hour()
	return Message{
		ID:       id,
		Sender:   sender,
		Content:  content,
		At:       at,
		date:     at.Format(DateLayout),
		hour:     hour,
		dayName:  at.Weekday().String(),
		month:    at.Month().String(),
		monthNum: int(at.Month()),
		year:     at.Year(),
		period:   PeriodOf(hour),
	}
}

// Date is the calendar day formatted as 2006-01-02, lexically sortable.
func (m Message) Date() string { return m.date }

func (m Message) Hour() int { return m.hour }

func (m Message) DayName() string { return m.dayName }

func (m Message) Month() string { return m.month }

func (m Message) MonthNum() int { return m.monthNum }

func (m Message) Year() int { return m.year }

// Period is the heatmap bucket of the hour, e.g. "3-6".
func (m Message) Period() string { return m.period }

func (m Message) IsSystem() bool { return m.Sender == GroupNotification }

// PeriodWidth is the number of hours covered by one heatmap bucket.
const PeriodWidth = 3

// PeriodOf maps an hour of day to its bucket label.
func PeriodOf(hour int) string {
	start := hour / PeriodWidth * PeriodWidth
	return fmt.Sprintf("%d-%d", start, start+PeriodWidth)
}

// Periods lists every bucket label in chronological order.
func Periods() []string {
	periods := make([]string, 0, 24/PeriodWidth)
	for h := 0; h < 24; h += PeriodWidth {
		periods = append(periods, PeriodOf(h))
	}
	return periods
}
