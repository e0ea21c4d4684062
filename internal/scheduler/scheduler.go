// Package scheduler keeps the in-memory timer registry that drives survey
// deliveries, link retractions and reminders. Timers are addressed by string
// IDs so they can be replaced or cancelled by the services that own them.
package scheduler

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

type Clock interface {
	Now() time.Time
}

type Scheduler struct {
	log   *slog.Logger
	clock Clock
	cron  *cron.Cron

	mx      sync.Mutex
	timers  map[string]*time.Timer
	vers    map[string]uint64
	stopped bool
}

func New(loc *time.Location, clock Clock, log *slog.Logger) *Scheduler {
	c := cron.New(cron.WithLocation(loc))
	c.Start()
	return &Scheduler{
		log:    log.With("component", "scheduler"),
		clock:  clock,
		cron:   c,
		timers: make(map[string]*time.Timer),
		vers:   make(map[string]uint64),
	}
}

// ScheduleAt registers fn to run at the given moment. Scheduling an ID that is
// already registered replaces the earlier registration. A moment in the past
// fires immediately. fn runs on its own goroutine.
func (s *Scheduler) ScheduleAt(id string, at time.Time, fn func()) {
	s.mx.Lock()
	defer s.mx.Unlock()
	if s.stopped {
		return
	}

	if t, ok := s.timers[id]; ok {
		t.Stop()
	}
	s.vers[id]++
	ver := s.vers[id]

	delay := at.Sub(s.clock.Now())
	if delay < 0 {
		delay = 0
	}
	s.timers[id] = time.AfterFunc(delay, func() {
		s.mx.Lock()
		// A replaced or cancelled registration bumps the version, which
		// invalidates callbacks of timers that fired before the bump.
		if s.stopped || s.vers[id] != ver {
			s.mx.Unlock()
			return
		}
		delete(s.timers, id)
		s.mx.Unlock()
		fn()
	})
	s.log.Debug("timer scheduled", "id", id, "at", at, "delay", delay)
}

// Cancel stops the timer with the given ID. It reports whether a pending timer
// was cancelled.
func (s *Scheduler) Cancel(id string) bool {
	s.mx.Lock()
	defer s.mx.Unlock()

	t, ok := s.timers[id]
	if !ok {
		return false
	}
	t.Stop()
	delete(s.timers, id)
	s.vers[id]++
	s.log.Debug("timer cancelled", "id", id)
	return true
}

// CancelPrefix stops every pending timer whose ID starts with prefix and
// returns how many were cancelled.
func (s *Scheduler) CancelPrefix(prefix string) int {
	s.mx.Lock()
	defer s.mx.Unlock()

	res := 0
	for id, t := range s.timers {
		if !strings.HasPrefix(id, prefix) {
			continue
		}
		t.Stop()
		delete(s.timers, id)
		s.vers[id]++
		res++
	}
	if res > 0 {
		s.log.Debug("timers cancelled", "prefix", prefix, "count", res)
	}
	return res
}

// Pending returns the number of registered one-shot timers.
func (s *Scheduler) Pending() int {
	s.mx.Lock()
	defer s.mx.Unlock()
	return len(s.timers)
}

// AddCron registers fn on a standard 5-field cron spec, evaluated in the
// scheduler's location.
func (s *Scheduler) AddCron(spec string, fn func()) error {
	if _, err := s.cron.AddFunc(spec, fn); err != nil {
		return fmt.Errorf("add cron %q: %w", spec, err)
	}
	return nil
}

// Stop cancels every pending timer and stops the cron runner. The scheduler
// accepts no registrations afterwards.
func (s *Scheduler) Stop() {
	s.mx.Lock()
	s.stopped = true
	for id, t := range s.timers {
		t.Stop()
		delete(s.timers, id)
	}
	s.mx.Unlock()
	s.cron.Stop()
	s.log.Debug("stopped")
}
