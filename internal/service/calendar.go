package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/Roma7-7-7/survey-bot/internal/calendar"
	"github.com/Roma7-7-7/survey-bot/internal/study"
)

//go:generate mockgen -package mocks -destination mocks/calendar.go . Calendar

// Calendar event color IDs (Google Calendar palette)
const (
	colorIDStart = "10" // Basil (green)
	colorIDDaily = "5"  // Banana (yellow)
	colorIDEnd   = "11" // Tomato (red)
)

const eventDuration = 15 * time.Minute

type Calendar interface {
	ListOurEvents(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]string, error)
	InsertEvent(ctx context.Context, calendarID, summary string, start, end time.Time, params calendar.EventParams) (string, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// CalendarService mirrors the fixed part of the study plan into a Google
// Calendar for study staff. Categories whose days or times depend on the
// individual participant (day offsets, wake-up derived times) have no fixed
// occurrences and are not mirrored.
type CalendarService struct {
	conf       *study.Config
	calendar   Calendar
	clock      Clock
	calendarID string

	mx  sync.Mutex
	log *slog.Logger
}

func NewCalendarService(calendarID string, cal Calendar, conf *study.Config, clock Clock, log *slog.Logger) *CalendarService {
	return &CalendarService{
		conf:       conf,
		calendar:   cal,
		clock:      clock,
		calendarID: calendarID,

		log: log.With("component", "calendar_sync"),
	}
}

type plannedEvent struct {
	summary string
	colorID string
	start   time.Time
}

// Sync performs a full delete-then-recreate sync of the upcoming fixed
// occurrences: our events in [today, last planned day] are removed and
// recreated from the current configuration.
func (s *CalendarService) Sync(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	events := s.plannedEvents()
	if len(events) == 0 {
		s.log.InfoContext(ctx, "no fixed occurrences to mirror")
		return nil
	}

	loc := s.conf.Location
	now := s.clock.Now().In(loc)
	timeMin := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	last := events[0].start
	for _, ev := range events {
		if ev.start.After(last) {
			last = ev.start
		}
	}
	timeMax := time.Date(last.Year(), last.Month(), last.Day(), 23, 59, 59, 0, loc) //nolint:mnd // it's ok

	s.log.InfoContext(ctx, "starting calendar sync",
		"timeMin", timeMin.Format(time.RFC3339), "timeMax", timeMax.Format(time.RFC3339))

	ids, err := s.calendar.ListOurEvents(ctx, s.calendarID, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, s.calendarID, id); err != nil {
			return fmt.Errorf("delete event %s: %w", id, err)
		}
	}

	inserted := 0
	for _, ev := range events {
		if ev.start.Before(timeMin) {
			continue
		}
		params := calendar.EventParams{ColorID: ev.colorID}
		if _, err := s.calendar.InsertEvent(ctx, s.calendarID, ev.summary, ev.start, ev.start.Add(eventDuration), params); err != nil {
			return fmt.Errorf("insert event %q: %w", ev.summary, err)
		}
		inserted++
	}

	s.log.InfoContext(ctx, "calendar sync finished", "deleted", len(ids), "created", inserted)
	return nil
}

// CleanupStale removes our events that are already in the past, looking back
// the given number of days.
func (s *CalendarService) CleanupStale(ctx context.Context, lookbackDays int) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	loc := s.conf.Location
	now := s.clock.Now().In(loc)
	timeMax := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, loc)
	timeMin := timeMax.AddDate(0, 0, -lookbackDays)

	ids, err := s.calendar.ListOurEvents(ctx, s.calendarID, timeMin, timeMax)
	if err != nil {
		return fmt.Errorf("list events: %w", err)
	}
	for _, id := range ids {
		if err := s.calendar.DeleteEvent(ctx, s.calendarID, id); err != nil {
			return fmt.Errorf("delete event %s: %w", id, err)
		}
	}
	if len(ids) > 0 {
		s.log.InfoContext(ctx, "stale calendar events removed", "count", len(ids))
	}
	return nil
}

func (s *CalendarService) plannedEvents() []plannedEvent {
	var out []plannedEvent
	for _, id := range study.Categories() {
		cat := s.conf.Category(id)
		if !cat.Enabled() || len(cat.Dates) == 0 || len(cat.TimeRows) == 0 {
			continue
		}
		n := 0
		for i, day := range cat.Dates {
			for _, tod := range cat.TimeRows[i] {
				n++
				out = append(out, plannedEvent{
					summary: fmt.Sprintf("%s: %s survey %d", s.conf.StudyName, id, n),
					colorID: categoryColorID(id),
					start:   tod.At(day),
				})
			}
		}
	}
	return out
}

func categoryColorID(id study.CategoryID) string {
	switch id {
	case study.CategoryStart:
		return colorIDStart
	case study.CategoryEnd:
		return colorIDEnd
	default:
		return colorIDDaily
	}
}
