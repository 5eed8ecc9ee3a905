package service

import (
	"time"

	"github.com/luxehaven/admin-api/internal/domain"
)

// weekDays is the number of days shown in the dashboard bar charts.
const weekDays = 7

// WeeklyBookingCounts buckets booking creation times into the seven days
// ending today and returns the counts alongside labels like "Mon, 9/25".
// Timestamps outside the window are ignored.
func WeeklyBookingCounts(created []time.Time, now time.Time) ([]int, []string) {
	counts := make([]int, weekDays)
	labels := make([]string, weekDays)

	days := make([]time.Time, weekDays)
	for i := 0; i < weekDays; i++ {
		day := startOfDay(now.AddDate(0, 0, i-weekDays+1))
		days[i] = day
		labels[i] = day.Format("Mon, 1/2")
	}

	for _, ts := range created {
		day := startOfDay(ts)
		for i := range days {
			if day.Equal(days[i]) {
				counts[i]++
				break
			}
		}
	}
	return counts, labels
}

// InquiryWeekdayCounts buckets inquiries from the trailing week by day of
// week, Monday-indexed (Monday=0 … Sunday=6).
func InquiryWeekdayCounts(inquiries []domain.VacationInquiry, now time.Time) []int {
	counts := make([]int, weekDays)
	weekAgo := now.AddDate(0, 0, -weekDays)

	for _, inq := range inquiries {
		if inq.CreatedAt.Before(weekAgo) || inq.CreatedAt.After(now) {
			continue
		}
		day := (int(inq.CreatedAt.Weekday()) + 6) % 7 // Sunday=0 → Sunday=6
		counts[day]++
	}
	return counts
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
