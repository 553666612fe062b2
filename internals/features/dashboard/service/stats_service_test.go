package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAttendancePercentage(t *testing.T) {
	tests := []struct {
		name           string
		present        int
		totalScheduled int
		want           float64
	}{
		{"tidak ada jadwal", 0, 0, 0},
		{"tidak ada jadwal tapi ada hadir", 3, 0, 0},
		{"sebagian hadir", 3, 4, 75},
		{"hadir semua", 4, 4, 100},
		{"hadir lebih dari jadwal dibatasi 100", 5, 4, 100},
		{"tidak pernah hadir", 0, 10, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttendancePercentage(tt.present, tt.totalScheduled)
			assert.Equal(t, tt.want, got)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestMonthlyRevenue(t *testing.T) {
	day := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}
	items := []ScheduleRevenue{
		{Date: day(2026, time.July, 31), Fee: 100000},
		{Date: day(2026, time.August, 1), Fee: 150000},
		{Date: day(2026, time.August, 31), Fee: 200000},
		{Date: day(2026, time.September, 1), Fee: 300000},
		{Date: day(2025, time.August, 15), Fee: 999999},
	}

	assert.Equal(t, 350000.0, MonthlyRevenue(items, time.August, 2026))
	assert.Equal(t, 100000.0, MonthlyRevenue(items, time.July, 2026))
	assert.Equal(t, 0.0, MonthlyRevenue(items, time.January, 2026))
	assert.Equal(t, 0.0, MonthlyRevenue(nil, time.August, 2026))
}

func TestAverageCompletion(t *testing.T) {
	assert.Equal(t, 0.0, AverageCompletion(nil))
	assert.Equal(t, 0.0, AverageCompletion([]float64{}))
	assert.Equal(t, 50.0, AverageCompletion([]float64{0, 100}))
	assert.InDelta(t, 66.666, AverageCompletion([]float64{50, 70, 80}), 0.001)
}
