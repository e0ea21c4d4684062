// Package timeplan computes concrete delivery moments for a participant from
// the study configuration. It is pure: no clocks, no storage, no side effects.
package timeplan

import (
	"errors"
	"math/rand/v2"
	"time"

	"github.com/Roma7-7-7/survey-bot/internal/study"
)

// ErrMissingWakeupTime is returned when a category derives its times from the
// participant's wake-up time and the participant has not provided one.
var ErrMissingWakeupTime = errors.New("wake-up time missing")

// Subscription carries the per-participant inputs of schedule resolution.
type Subscription struct {
	// SubscribedAt is the moment the participant's subscription was accepted.
	SubscribedAt time.Time
	// Wakeup is the participant's usual wake-up time, nil when not collected.
	Wakeup *study.TimeOfDay
}

// Occurrence is one planned delivery of a category.
type Occurrence struct {
	Category study.CategoryID
	// Index is the running occurrence number within the category, in
	// configuration order. It stays stable under jitter.
	Index int
	// Day and Slot address the occurrence as day number and position
	// within that day.
	Day  int
	Slot int
	// At is the resolved delivery moment, jitter applied.
	At time.Time
}

// Resolve computes every delivery occurrence of one category for one
// participant. A disabled category resolves to no occurrences. A category
// without day and time sources resolves to a single occurrence at the
// subscription moment, with no jitter. rnd drives jitter and must be set when
// the category configures any.
func Resolve(cat study.Category, sub Subscription, loc *time.Location, rnd *rand.Rand) ([]Occurrence, error) {
	if !cat.Enabled() {
		return nil, nil
	}
	if cat.AtSubscribe() {
		return []Occurrence{{Category: cat.ID, At: sub.SubscribedAt}}, nil
	}
	if cat.UsesWakeup() && sub.Wakeup == nil {
		return nil, ErrMissingWakeupTime
	}

	days := categoryDays(cat, sub, loc)
	res := make([]Occurrence, 0, cat.TotalOccurrences())
	for di, day := range days {
		for si, at := range slotTimes(cat, di, day, sub) {
			res = append(res, Occurrence{
				Category: cat.ID,
				Index:    len(res),
				Day:      di,
				Slot:     si,
				At:       jittered(at, cat.Jitter, rnd),
			})
		}
	}
	return res, nil
}

// categoryDays returns the midnight anchor of every delivery day, in
// configuration order. Fixed dates are used as configured; day offsets count
// from the participant's subscription day in the study location.
func categoryDays(cat study.Category, sub Subscription, loc *time.Location) []time.Time {
	if len(cat.Dates) > 0 {
		return cat.Dates
	}

	subDay := sub.SubscribedAt.In(loc)
	days := make([]time.Time, 0, len(cat.DayOffsets))
	for _, off := range cat.DayOffsets {
		days = append(days, time.Date(subDay.Year(), subDay.Month(), subDay.Day()+off, 0, 0, 0, 0, loc))
	}
	return days
}

// slotTimes returns the delivery moments within one day: either the fixed time
// row paired with the day by index, or a wake-up derived chain of
// surveys_per_day moments spaced by the between delay.
func slotTimes(cat study.Category, dayIndex int, day time.Time, sub Subscription) []time.Time {
	if len(cat.TimeRows) > 0 {
		row := cat.TimeRows[dayIndex]
		times := make([]time.Time, 0, len(row))
		for _, tod := range row {
			times = append(times, tod.At(day))
		}
		return times
	}

	first := sub.Wakeup.At(day).Add(cat.WakeupDelay)
	times := make([]time.Time, 0, cat.SurveysPerDay)
	for i := 0; i < cat.SurveysPerDay; i++ {
		times = append(times, first.Add(time.Duration(i)*cat.BetweenDelay))
	}
	return times
}

// jittered shifts a delivery moment by a uniform random whole number of
// minutes in [-jitter, +jitter].
func jittered(at time.Time, jitter time.Duration, rnd *rand.Rand) time.Time {
	if jitter <= 0 {
		return at
	}
	bound := int64(jitter / time.Minute)
	offset := rnd.Int64N(2*bound+1) - bound
	return at.Add(time.Duration(offset) * time.Minute)
}
