package recurrence_test

import (
	"testing"
	"time"

	"taskflow/internal/core/domain"
	"taskflow/internal/core/recurrence"

	"github.com/stretchr/testify/require"
)

func date(value string) time.Time {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return t
}

func repeatType(value domain.RepeatType) *domain.RepeatType {
	return &value
}

func repeatingTask(start string, kind domain.RepeatType) domain.Task {
	return domain.Task{
		ID:         "11111111-2222-3333-4444-555555555555",
		Title:      "Morning run",
		StartDate:  date(start),
		StartTime:  "07:30",
		HasRepeat:  true,
		RepeatType: repeatType(kind),
	}
}

func TestOccursOn_Matching(t *testing.T) {
	endDate := date("2024-01-15")
	withEnd := repeatingTask("2024-01-01", domain.RepeatWeekly)
	withEnd.RepeatEndDate = &endDate

	every3 := repeatingTask("2024-01-01", domain.RepeatCustom)
	every3.RepeatInterval = 3

	zeroInterval := repeatingTask("2024-01-01", domain.RepeatCustom)
	zeroInterval.RepeatInterval = 0

	cases := []struct {
		name   string
		task   domain.Task
		target string
		want   bool
	}{
		{"daily matches any later day", repeatingTask("2024-01-01", domain.RepeatDaily), "2024-01-05", true},
		{"daily excludes the start date itself", repeatingTask("2024-01-01", domain.RepeatDaily), "2024-01-01", false},
		{"daily excludes days before the start", repeatingTask("2024-01-01", domain.RepeatDaily), "2023-12-31", false},
		{"weekly matches exact multiples of seven", repeatingTask("2024-01-01", domain.RepeatWeekly), "2024-01-08", true},
		{"weekly rejects other offsets", repeatingTask("2024-01-01", domain.RepeatWeekly), "2024-01-09", false},
		{"weekly end date is inclusive", withEnd, "2024-01-15", true},
		{"weekly past the end date", withEnd, "2024-01-22", false},
		{"end date plus one day", withEnd, "2024-01-16", false},
		{"monthly matches same day next month", repeatingTask("2024-01-15", domain.RepeatMonthly), "2024-02-15", true},
		{"monthly matches same day next year", repeatingTask("2024-01-15", domain.RepeatMonthly), "2025-01-15", true},
		{"monthly rejects a different day of month", repeatingTask("2024-01-15", domain.RepeatMonthly), "2024-02-14", false},
		{"monthly day 31 never lands in february", repeatingTask("2024-01-31", domain.RepeatMonthly), "2024-02-29", false},
		{"monthly day 31 lands in march", repeatingTask("2024-01-31", domain.RepeatMonthly), "2024-03-31", true},
		{"custom interval three matches", every3, "2024-01-04", true},
		{"custom interval three rejects", every3, "2024-01-05", false},
		{"custom interval defaults to one", zeroInterval, "2024-01-02", true},
		{"unknown repeat type never matches", repeatingTask("2024-01-01", domain.RepeatType("yearly")), "2025-01-01", false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := recurrence.OccursOn(tc.task, date(tc.target))
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestOccursOn_NilRepeatType(t *testing.T) {
	task := repeatingTask("2024-01-01", domain.RepeatDaily)
	task.RepeatType = nil

	got, err := recurrence.OccursOn(task, date("2024-01-05"))
	require.NoError(t, err)
	require.False(t, got)
}

func TestOccursOn_ZeroStartDateIsRejected(t *testing.T) {
	task := repeatingTask("2024-01-01", domain.RepeatDaily)
	task.StartDate = time.Time{}

	_, err := recurrence.OccursOn(task, date("2024-01-05"))
	require.ErrorIs(t, err, recurrence.ErrInvalidDate)
}

func TestOccursOn_TimeOfDayDoesNotAffectMatching(t *testing.T) {
	task := repeatingTask("2024-01-01", domain.RepeatWeekly)
	task.StartDate = time.Date(2024, 1, 1, 23, 59, 0, 0, time.UTC)

	got, err := recurrence.OccursOn(task, time.Date(2024, 1, 8, 0, 1, 0, 0, time.UTC))
	require.NoError(t, err)
	require.True(t, got)
}

func TestInstanceID_RoundTrip(t *testing.T) {
	id := recurrence.InstanceID("abc-123", date("2024-01-05"))
	require.Equal(t, "abc-123-repeat-2024-01-05", id)
	require.True(t, recurrence.IsInstanceID(id))
	require.Equal(t, "abc-123", recurrence.SourceTaskID(id))

	require.False(t, recurrence.IsInstanceID("abc-123"))
	require.Equal(t, "abc-123", recurrence.SourceTaskID("abc-123"))
}

func TestMaterialize(t *testing.T) {
	task := repeatingTask("2024-01-01", domain.RepeatDaily)
	task.Completed = true

	instance := recurrence.Materialize(task, date("2024-01-05"))

	require.Equal(t, recurrence.InstanceID(task.ID, date("2024-01-05")), instance.ID)
	require.Equal(t, date("2024-01-05"), instance.StartDate)
	require.True(t, instance.IsRepeatInstance)
	require.False(t, instance.Completed, "instance completion is view state, never inherited")
	require.Equal(t, task.Title, instance.Title)
	require.Equal(t, task.StartTime, instance.StartTime)
}

func TestExpand_SkipsTasksStoredOnTargetDate(t *testing.T) {
	onTarget := repeatingTask("2024-01-05", domain.RepeatDaily)
	earlier := repeatingTask("2024-01-01", domain.RepeatDaily)
	earlier.ID = "99999999-8888-7777-6666-555555555555"

	instances, err := recurrence.Expand([]domain.Task{onTarget, earlier}, date("2024-01-05"))
	require.NoError(t, err)
	require.Len(t, instances, 1)
	require.Equal(t, recurrence.InstanceID(earlier.ID, date("2024-01-05")), instances[0].ID)
}

func TestExpand_WeeklyWithEndDateScenario(t *testing.T) {
	endDate := date("2024-01-15")
	task := repeatingTask("2024-01-01", domain.RepeatWeekly)
	task.RepeatEndDate = &endDate

	for target, want := range map[string]int{
		"2024-01-08": 1,
		"2024-01-15": 1,
		"2024-01-22": 0,
	} {
		instances, err := recurrence.Expand([]domain.Task{task}, date(target))
		require.NoError(t, err)
		require.Len(t, instances, want, "target %s", target)
	}
}

func TestExpand_PropagatesInvalidDate(t *testing.T) {
	bad := repeatingTask("2024-01-01", domain.RepeatDaily)
	bad.StartDate = time.Time{}

	_, err := recurrence.Expand([]domain.Task{bad}, date("2024-01-05"))
	require.ErrorIs(t, err, recurrence.ErrInvalidDate)
}
