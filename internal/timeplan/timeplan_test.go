package timeplan_test

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Roma7-7-7/survey-bot/internal/study"
	"github.com/Roma7-7-7/survey-bot/internal/timeplan"
)

func amsterdam(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)
	return loc
}

func TestResolve_FixedDatesAndTimeRows(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:    study.CategoryEnd,
		Dates: []time.Time{time.Date(2026, 4, 14, 0, 0, 0, 0, loc), time.Date(2026, 4, 15, 0, 0, 0, 0, loc)},
		TimeRows: [][]study.TimeOfDay{
			{{Hour: 10}, {Hour: 20}},
			{{Hour: 10}},
		},
		URLs: [][]string{{"u1", "u2", "u3"}},
	}
	sub := timeplan.Subscription{SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc)}

	got, err := timeplan.Resolve(cat, sub, loc, nil)
	require.NoError(t, err)

	want := []timeplan.Occurrence{
		{Category: study.CategoryEnd, Index: 0, Day: 0, Slot: 0, At: time.Date(2026, 4, 14, 10, 0, 0, 0, loc)},
		{Category: study.CategoryEnd, Index: 1, Day: 0, Slot: 1, At: time.Date(2026, 4, 14, 20, 0, 0, 0, loc)},
		{Category: study.CategoryEnd, Index: 2, Day: 1, Slot: 0, At: time.Date(2026, 4, 15, 10, 0, 0, 0, loc)},
	}
	assert.Equal(t, want, got)
}

func TestResolve_DayOffsetsCountFromSubscriptionDay(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:         study.CategoryDaily,
		DayOffsets: []int{1, 3},
		TimeRows: [][]study.TimeOfDay{
			{{Hour: 9}},
			{{Hour: 9}},
		},
		URLs: [][]string{{"u"}},
	}

	sub := timeplan.Subscription{SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc)}
	got, err := timeplan.Resolve(cat, sub, loc, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 4, 4, 9, 0, 0, 0, loc), got[0].At)
	assert.Equal(t, time.Date(2026, 4, 6, 9, 0, 0, 0, loc), got[1].At)

	// The subscription day is taken in the study location, not UTC.
	sub = timeplan.Subscription{SubscribedAt: time.Date(2026, 4, 3, 23, 30, 0, 0, time.UTC)}
	got, err = timeplan.Resolve(cat, sub, loc, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 4, 5, 9, 0, 0, 0, loc), got[0].At)
	assert.Equal(t, time.Date(2026, 4, 7, 9, 0, 0, 0, loc), got[1].At)
}

func TestResolve_WakeupChain(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:            study.CategoryDaily,
		DayOffsets:    []int{1, 2},
		SurveysPerDay: 3,
		WakeupDelay:   30 * time.Minute,
		BetweenDelay:  4 * time.Hour,
		URLs:          [][]string{{"u"}},
	}
	sub := timeplan.Subscription{
		SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc),
		Wakeup:       &study.TimeOfDay{Hour: 7, Minute: 30},
	}

	got, err := timeplan.Resolve(cat, sub, loc, nil)
	require.NoError(t, err)

	want := []timeplan.Occurrence{
		{Category: study.CategoryDaily, Index: 0, Day: 0, Slot: 0, At: time.Date(2026, 4, 4, 8, 0, 0, 0, loc)},
		{Category: study.CategoryDaily, Index: 1, Day: 0, Slot: 1, At: time.Date(2026, 4, 4, 12, 0, 0, 0, loc)},
		{Category: study.CategoryDaily, Index: 2, Day: 0, Slot: 2, At: time.Date(2026, 4, 4, 16, 0, 0, 0, loc)},
		{Category: study.CategoryDaily, Index: 3, Day: 1, Slot: 0, At: time.Date(2026, 4, 5, 8, 0, 0, 0, loc)},
		{Category: study.CategoryDaily, Index: 4, Day: 1, Slot: 1, At: time.Date(2026, 4, 5, 12, 0, 0, 0, loc)},
		{Category: study.CategoryDaily, Index: 5, Day: 1, Slot: 2, At: time.Date(2026, 4, 5, 16, 0, 0, 0, loc)},
	}
	assert.Equal(t, want, got)
}

func TestResolve_FixedDatesWithWakeupTimes(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:            study.CategoryEnd,
		Dates:         []time.Time{time.Date(2026, 4, 14, 0, 0, 0, 0, loc)},
		SurveysPerDay: 2,
		WakeupDelay:   time.Hour,
		BetweenDelay:  2 * time.Hour,
		URLs:          [][]string{{"u"}},
	}
	sub := timeplan.Subscription{
		SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc),
		Wakeup:       &study.TimeOfDay{Hour: 8},
	}

	got, err := timeplan.Resolve(cat, sub, loc, nil)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, time.Date(2026, 4, 14, 9, 0, 0, 0, loc), got[0].At)
	assert.Equal(t, time.Date(2026, 4, 14, 11, 0, 0, 0, loc), got[1].At)
}

func TestResolve_Jitter(t *testing.T) {
	loc := amsterdam(t)
	base := study.Category{
		ID:            study.CategoryDaily,
		DayOffsets:    []int{1, 2, 3},
		SurveysPerDay: 3,
		WakeupDelay:   30 * time.Minute,
		BetweenDelay:  4 * time.Hour,
		URLs:          [][]string{{"u"}},
	}
	jit := base
	jit.Jitter = 15 * time.Minute

	sub := timeplan.Subscription{
		SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc),
		Wakeup:       &study.TimeOfDay{Hour: 7, Minute: 30},
	}

	plain, err := timeplan.Resolve(base, sub, loc, nil)
	require.NoError(t, err)
	shifted, err := timeplan.Resolve(jit, sub, loc, rand.New(rand.NewPCG(7, 42)))
	require.NoError(t, err)
	require.Len(t, shifted, len(plain))

	for i := range shifted {
		assert.Equal(t, plain[i].Index, shifted[i].Index)
		assert.Equal(t, plain[i].Day, shifted[i].Day)
		assert.Equal(t, plain[i].Slot, shifted[i].Slot)

		diff := shifted[i].At.Sub(plain[i].At)
		assert.LessOrEqual(t, diff.Abs(), 15*time.Minute)
		assert.Zero(t, diff%time.Minute)
	}
}

func TestResolve_MissingWakeupTime(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:            study.CategoryDaily,
		DayOffsets:    []int{1},
		SurveysPerDay: 1,
		URLs:          [][]string{{"u"}},
	}
	sub := timeplan.Subscription{SubscribedAt: time.Date(2026, 4, 3, 14, 22, 0, 0, loc)}

	_, err := timeplan.Resolve(cat, sub, loc, nil)
	assert.ErrorIs(t, err, timeplan.ErrMissingWakeupTime)
}

func TestResolve_Disabled(t *testing.T) {
	got, err := timeplan.Resolve(study.Category{ID: study.CategoryDaily}, timeplan.Subscription{}, time.UTC, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestResolve_AtSubscribe(t *testing.T) {
	loc := amsterdam(t)
	cat := study.Category{
		ID:   study.CategoryStart,
		URLs: [][]string{{"u"}},
	}
	subscribedAt := time.Date(2026, 4, 3, 14, 22, 17, 0, loc)

	got, err := timeplan.Resolve(cat, timeplan.Subscription{SubscribedAt: subscribedAt}, loc, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, timeplan.Occurrence{Category: study.CategoryStart, At: subscribedAt}, got[0])
}
