package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeRangeFilter(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	records := []Record{
		{ID: "a", Timestamp: now.Add(-2 * time.Hour)},
		{ID: "b", Timestamp: now.AddDate(0, 0, -7)},
		{ID: "c", Timestamp: now.AddDate(0, 0, -8)},
		{ID: "d", Timestamp: now.AddDate(0, -2, 0)},
		{ID: "e", Timestamp: now.AddDate(-1, 0, 0)},
	}

	tests := []struct {
		r    TimeRange
		want []RecordID
	}{
		{r: TimeRangeWeek, want: []RecordID{"a", "b"}},
		{r: TimeRangeMonth, want: []RecordID{"a", "b", "c"}},
		{r: TimeRangeThreeMonths, want: []RecordID{"a", "b", "c", "d"}},
		{r: TimeRangeAll, want: []RecordID{"a", "b", "c", "d", "e"}},
	}

	for _, tc := range tests {
		t.Run(string(tc.r), func(t *testing.T) {
			t.Parallel()
			ids := []RecordID{}
			for _, record := range tc.r.Filter(records, now) {
				ids = append(ids, record.ID)
			}
			assert.Equal(t, tc.want, ids)
		})
	}
}

func TestParseTimeRange(t *testing.T) {
	t.Parallel()

	got, err := ParseTimeRange("three_months")
	require.NoError(t, err)
	assert.Equal(t, TimeRangeThreeMonths, got)
	assert.Equal(t, "3 months", got.Label())

	_, err = ParseTimeRange("decade")
	assert.ErrorIs(t, err, ErrUnknownTimeRange)
}

func TestCountsIncludeZeroEntries(t *testing.T) {
	t.Parallel()

	records := []Record{
		{Emotion: EmotionJoy},
		{Emotion: EmotionPride},
		{Emotion: EmotionAnger},
	}

	byCategory := CountsByCategory(records)
	assert.Len(t, byCategory, 6)
	assert.Equal(t, 2, byCategory[EmotionCategoryPositive])
	assert.Equal(t, 1, byCategory[EmotionCategoryNegative])
	assert.Equal(t, 0, byCategory[EmotionCategoryComplex])

	byType := CountsByType(records)
	assert.Len(t, byType, 18)
	assert.Equal(t, 1, byType[EmotionJoy])
	assert.Equal(t, 0, byType[EmotionFear])
}

func TestDailyCategoryCountsFillsGaps(t *testing.T) {
	t.Parallel()

	day := time.Date(2026, 2, 10, 9, 0, 0, 0, time.UTC)
	records := []Record{
		{Emotion: EmotionAnger, Timestamp: day.AddDate(0, 0, 3)},
		{Emotion: EmotionJoy, Timestamp: day},
		{Emotion: EmotionHope, Timestamp: day.Add(10 * time.Hour)},
	}

	days := DailyCategoryCounts(records, time.UTC)
	require.Len(t, days, 4)

	assert.Equal(t, time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC), days[0].Date)
	assert.Equal(t, 1, days[0].Counts[EmotionCategoryPositive])
	assert.Equal(t, 1, days[0].Counts[EmotionCategoryAnticipatory])
	assert.Equal(t, 2, days[0].Total())
	assert.Equal(t, 0, days[1].Total())
	assert.Equal(t, 0, days[2].Total())
	assert.Equal(t, 1, days[3].Counts[EmotionCategoryNegative])
}

func TestDailyCategoryCountsEmpty(t *testing.T) {
	t.Parallel()

	assert.Nil(t, DailyCategoryCounts(nil, time.UTC))
}
