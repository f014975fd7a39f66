package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

type TimeRange string

const (
	TimeRangeWeek        TimeRange = "week"
	TimeRangeMonth       TimeRange = "month"
	TimeRangeThreeMonths TimeRange = "three-months"
	TimeRangeAll         TimeRange = "all"
)

func TimeRanges() []TimeRange {
	return []TimeRange{TimeRangeWeek, TimeRangeMonth, TimeRangeThreeMonths, TimeRangeAll}
}

func ParseTimeRange(raw string) (TimeRange, error) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	normalized = strings.ReplaceAll(normalized, "_", "-")
	for _, r := range TimeRanges() {
		if string(r) == normalized {
			return r, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownTimeRange, raw)
}

func (r TimeRange) Label() string {
	switch r {
	case TimeRangeWeek:
		return "1 week"
	case TimeRangeMonth:
		return "1 month"
	case TimeRangeThreeMonths:
		return "3 months"
	case TimeRangeAll:
		return "All time"
	default:
		return string(r)
	}
}

// Since returns the inclusive lower bound of the range. ok is false for
// ranges without a bound.
func (r TimeRange) Since(now time.Time) (since time.Time, ok bool) {
	switch r {
	case TimeRangeWeek:
		return now.AddDate(0, 0, -7), true
	case TimeRangeMonth:
		return now.AddDate(0, -1, 0), true
	case TimeRangeThreeMonths:
		return now.AddDate(0, -3, 0), true
	default:
		return time.Time{}, false
	}
}

func (r TimeRange) Filter(records []Record, now time.Time) []Record {
	since, ok := r.Since(now)
	if !ok {
		return records
	}

	filtered := make([]Record, 0, len(records))
	for _, record := range records {
		if !record.Timestamp.Before(since) {
			filtered = append(filtered, record)
		}
	}

	return filtered
}

func CountsByCategory(records []Record) map[EmotionCategory]int {
	counts := make(map[EmotionCategory]int, len(emotionCategoryText))
	for _, category := range EmotionCategories() {
		counts[category] = 0
	}
	for _, record := range records {
		counts[record.Category()]++
	}

	return counts
}

func CountsByType(records []Record) map[EmotionType]int {
	counts := make(map[EmotionType]int, len(emotionText))
	for _, emotion := range EmotionTypes() {
		counts[emotion] = 0
	}
	for _, record := range records {
		counts[record.Emotion]++
	}

	return counts
}

type DailyCategoryCount struct {
	Date   time.Time
	Counts map[EmotionCategory]int
}

func (d DailyCategoryCount) Total() int {
	total := 0
	for _, count := range d.Counts {
		total += count
	}

	return total
}

// DailyCategoryCounts returns one entry per calendar day in loc between the
// first and last record, zero-filled for days without records.
func DailyCategoryCounts(records []Record, loc *time.Location) []DailyCategoryCount {
	if len(records) == 0 {
		return nil
	}
	if loc == nil {
		loc = time.Local
	}

	timestamps := make([]time.Time, 0, len(records))
	for _, record := range records {
		timestamps = append(timestamps, record.Timestamp)
	}
	sort.Slice(timestamps, func(i, j int) bool { return timestamps[i].Before(timestamps[j]) })

	first := startOfDay(timestamps[0], loc)
	last := startOfDay(timestamps[len(timestamps)-1], loc)

	days := make([]DailyCategoryCount, 0)
	index := make(map[string]int)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		counts := make(map[EmotionCategory]int, len(emotionCategoryText))
		for _, category := range EmotionCategories() {
			counts[category] = 0
		}
		index[day.Format(time.DateOnly)] = len(days)
		days = append(days, DailyCategoryCount{Date: day, Counts: counts})
	}

	for _, record := range records {
		i, ok := index[startOfDay(record.Timestamp, loc).Format(time.DateOnly)]
		if !ok {
			continue
		}
		days[i].Counts[record.Category()]++
	}

	return days
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	year, month, day := local.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}
