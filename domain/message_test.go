package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNewMessage_DerivesCalendarFields(t *testing.T) {
	req := require.New(t)
	at := time.Date(2024, time.March, 4, 22, 15, 0, 0, time.UTC)

	msg := NewMessage(uuid.New(), "Alice", "Hello Bob", at)

	req.Equal("2024-03-04", msg.Date())
	req.Equal(22, msg.Hour())
	req.Equal("Monday", msg.DayName())
	req.Equal("March", msg.Month())
	req.Equal(3, msg.MonthNum())
	req.Equal(2024, msg.Year())
	req.Equal("21-24", msg.Period())
	req.False(msg.IsSystem())
}

func TestMessage_IsSystem(t *testing.T) {
	msg := NewMessage(uuid.New(), GroupNotification, "Alice added Bob", time.Now())
	require.True(t, msg.IsSystem())
}

func TestPeriodOf(t *testing.T) {
	req := require.New(t)
	tests := []struct {
		hour     int
		expected string
	}{
		{0, "0-3"},
		{2, "0-3"},
		{3, "3-6"},
		{13, "12-15"},
		{23, "21-24"},
	}
	for _, tt := range tests {
		req.Equal(tt.expected, PeriodOf(tt.hour), "hour=%d", tt.hour)
	}
	req.Equal([]string{"0-3", "3-6", "6-9", "9-12", "12-15", "15-18", "18-21", "21-24"}, Periods())
}
