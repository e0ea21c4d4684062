package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/survey-bot/internal/dal"
	"github.com/Roma7-7-7/survey-bot/internal/study"
	"github.com/Roma7-7-7/survey-bot/internal/timeplan"
)

//go:generate mockgen -package mocks -destination mocks/deliveries.go . DeliveriesStore,RemindersStore,Sender,DeliveryScheduler

// ErrNoActiveLink is returned when a participant asks for a survey link
// before any was delivered.
var ErrNoActiveLink = errors.New("no active link")

const (
	deletionSuffix = "_del"

	sendTimeout = 30 * time.Second
)

type (
	DeliveriesStore interface {
		MarkDeliveryFired(chatID int64, category string, occurrence int) error
		IsDeliveryFired(chatID int64, category string, occurrence int) (bool, error)
		GetFiredDeliveryKeys(chatID int64) (map[string]struct{}, error)
		CleanupFiredDeliveries(olderThan time.Duration) error

		PutSentLink(l dal.SentLink) error
		GetSentLink(chatID int64, category string, occurrence int) (dal.SentLink, bool, error)
		GetSentLinks(chatID int64) ([]dal.SentLink, error)
		GetAllSentLinks() ([]dal.SentLink, error)
		DeleteSentLink(chatID int64, category string, occurrence int) error
		CleanupSentLinks(olderThan time.Duration) error
	}

	RemindersStore interface {
		GetReminderState(chatID int64) (dal.ReminderState, bool, error)
		GetAllReminderStates() ([]dal.ReminderState, error)
		PutReminderState(state dal.ReminderState) error
		DeleteReminderState(chatID int64) error
	}

	// Sender delivers messages to participants. Implementations map transport
	// specific "participant is gone" failures to telegram.ErrForbidden.
	Sender interface {
		SendMessage(ctx context.Context, chatID int64, text string) (int, error)
		SendReminderQuestion(ctx context.Context, chatID int64, text string) (int, error)
		DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	}

	// DeliveryScheduler is the named one-shot timer registry deliveries run on.
	DeliveryScheduler interface {
		ScheduleAt(id string, at time.Time, fn func())
		Cancel(id string) bool
		CancelPrefix(prefix string) int
	}

	// Deliveries turns the study plan into sent survey links. Per participant
	// and category it keeps at most one pending delivery timer: when one fires
	// the next occurrence of that category is armed.
	Deliveries struct {
		conf         *study.Config
		participants ParticipantsStore
		store        DeliveriesStore
		reminders    RemindersStore
		sender       Sender
		scheduler    DeliveryScheduler
		notifier     Notifier
		clock        Clock
		rnd          *rand.Rand

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewDeliveries(
	conf *study.Config,
	participants ParticipantsStore,
	store DeliveriesStore,
	reminders RemindersStore,
	sender Sender,
	scheduler DeliveryScheduler,
	notifier Notifier,
	clock Clock,
	rnd *rand.Rand,
	log *slog.Logger,
) *Deliveries {
	return &Deliveries{
		conf:         conf,
		participants: participants,
		store:        store,
		reminders:    reminders,
		sender:       sender,
		scheduler:    scheduler,
		notifier:     notifier,
		clock:        clock,
		rnd:          rnd,

		log: log.With("component", "service").With("service", "deliveries"),
		mx:  &sync.Mutex{},
	}
}

// Register arms the next pending delivery timer for every enabled category of
// p. Occurrences already fired and occurrences in the past are skipped, they
// are never sent late.
func (s *Deliveries) Register(ctx context.Context, p dal.Participant) error {
	s.mx.Lock()
	defer s.mx.Unlock()
	return s.register(ctx, p)
}

func (s *Deliveries) register(ctx context.Context, p dal.Participant) error {
	fired, err := s.store.GetFiredDeliveryKeys(p.ChatID)
	if err != nil {
		return fmt.Errorf("get fired deliveries of %d: %w", p.ChatID, err)
	}
	for _, id := range study.Categories() {
		if err := s.registerNext(ctx, p, id, fired); err != nil {
			s.log.ErrorContext(ctx, "failed to register next delivery",
				"chatID", p.ChatID, "category", id, "error", err)
		}
	}
	return nil
}

// registerNext arms a timer for the first occurrence of the category that is
// neither fired nor past. The plan is recomputed from scratch on every call
// and is stable for a given participant, jitter included, so re-registration
// never moves a delivery.
func (s *Deliveries) registerNext(ctx context.Context, p dal.Participant, id study.CategoryID, fired map[string]struct{}) error {
	cat := s.conf.Category(id)
	if !cat.Enabled() {
		return nil
	}
	sub, err := participantSubscription(p)
	if err != nil {
		return err
	}
	occs, err := timeplan.Resolve(cat, sub, s.conf.Location, planRand(p))
	if err != nil {
		return fmt.Errorf("resolve: %w", err)
	}

	now := s.clock.Now()
	for _, occ := range occs {
		key := dal.BuildDeliveryKey(p.ChatID, string(id), occ.Index)
		if _, ok := fired[key]; ok {
			continue
		}
		if !occ.At.After(now) {
			continue
		}
		chatID := p.ChatID
		s.scheduler.ScheduleAt(key, occ.At, func() { s.deliver(chatID, occ) })
		s.log.InfoContext(ctx, "delivery scheduled",
			"chatID", p.ChatID, "category", id, "occurrence", occ.Index, "at", occ.At)
		return nil
	}
	return nil
}

// planRand seeds the jitter source from the participant identity so that the
// resolved plan is a pure function of participant and configuration.
func planRand(p dal.Participant) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(p.ChatID), uint64(p.SubscribedAt.UnixNano())))
}

func participantSubscription(p dal.Participant) (timeplan.Subscription, error) {
	sub := timeplan.Subscription{SubscribedAt: p.SubscribedAt}
	if p.WakeupTime == "" {
		return sub, nil
	}
	tod, err := study.ParseTimeOfDay(p.WakeupTime)
	if err != nil {
		return sub, fmt.Errorf("parse stored wake-up time %q: %w", p.WakeupTime, err)
	}
	sub.Wakeup = &tod
	return sub, nil
}

// deliver runs on a timer goroutine. The delivery is marked fired before the
// send so that a crash or a replayed timer can not produce a second send.
func (s *Deliveries) deliver(chatID int64, occ timeplan.Occurrence) {
	s.mx.Lock()
	defer s.mx.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	log := s.log.With("chatID", chatID, "category", occ.Category, "occurrence", occ.Index)

	p, ok, err := s.participants.GetParticipant(chatID)
	if err != nil {
		log.ErrorContext(ctx, "failed to get participant", "error", err)
		return
	}
	if !ok || !p.IsSubscribed() {
		log.InfoContext(ctx, "skipping delivery, participant not subscribed")
		return
	}

	category := string(occ.Category)
	fired, err := s.store.IsDeliveryFired(chatID, category, occ.Index)
	if err != nil {
		log.ErrorContext(ctx, "failed to check fired state", "error", err)
		return
	}
	if fired {
		log.InfoContext(ctx, "delivery already fired")
		s.chainNext(ctx, p, occ.Category)
		return
	}
	if err := s.store.MarkDeliveryFired(chatID, category, occ.Index); err != nil {
		log.ErrorContext(ctx, "failed to mark delivery fired", "error", err)
		return
	}

	cat := s.conf.Category(occ.Category)
	url := cat.URL(p.Condition, occ.Day, occ.Slot, occ.Index, s.rnd)
	if url == "" {
		log.ErrorContext(ctx, "no url configured for delivery", "condition", p.Condition)
		s.chainNext(ctx, p, occ.Category)
		return
	}

	msgID, err := s.sender.SendMessage(ctx, chatID, s.conf.TextWithLink(study.TextSurveyLink, url))
	if err != nil {
		if errors.Is(err, telegram.ErrForbidden) {
			log.InfoContext(ctx, "participant is not reachable anymore, purging")
			s.purge(ctx, chatID)
			return
		}
		log.ErrorContext(ctx, "failed to send survey link", "error", err)
		s.chainNext(ctx, p, occ.Category)
		return
	}
	log.InfoContext(ctx, "survey link delivered")

	link := dal.SentLink{
		ChatID:     chatID,
		Category:   category,
		Occurrence: occ.Index,
		MessageID:  msgID,
		URL:        url,
	}
	if err := s.store.PutSentLink(link); err != nil {
		log.ErrorContext(ctx, "failed to store sent link", "error", err)
	}

	s.retractSuperseded(ctx, chatID, cat, occ.Index)
	s.armDeletion(ctx, cat, chatID, occ.Index)
	if occ.Category == study.CategoryEnd {
		s.armReminder(ctx, p, occ)
	}
	s.chainNext(ctx, p, occ.Category)
}

func (s *Deliveries) chainNext(ctx context.Context, p dal.Participant, id study.CategoryID) {
	fired, err := s.store.GetFiredDeliveryKeys(p.ChatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get fired deliveries", "chatID", p.ChatID, "error", err)
		return
	}
	if err := s.registerNext(ctx, p, id, fired); err != nil {
		s.log.ErrorContext(ctx, "failed to register next delivery",
			"chatID", p.ChatID, "category", id, "error", err)
	}
}

// retractSuperseded removes earlier links of an on-next category right after
// a newer one was sent. The latest link always stays in the chat.
func (s *Deliveries) retractSuperseded(ctx context.Context, chatID int64, cat study.Category, current int) {
	if cat.Visibility != study.VisibilityOnNext {
		return
	}
	links, err := s.store.GetSentLinks(chatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to list sent links", "chatID", chatID, "error", err)
		return
	}
	for _, l := range links {
		if l.Category != string(cat.ID) || l.Occurrence == current {
			continue
		}
		s.retract(ctx, l)
	}
}

func (s *Deliveries) armDeletion(ctx context.Context, cat study.Category, chatID int64, occurrence int) {
	var at time.Time
	switch cat.Visibility {
	case study.VisibilityFixedDelay:
		at = s.clock.Now().Add(cat.DeleteAfter)
	case study.VisibilityAtDeadline:
		at = s.conf.SubscriptionDeadline
	default:
		return
	}

	category := string(cat.ID)
	key := dal.BuildDeliveryKey(chatID, category, occurrence)
	s.scheduler.ScheduleAt(key+deletionSuffix, at, func() { s.expireLink(chatID, category, occurrence) })
	s.log.InfoContext(ctx, "link deletion scheduled",
		"chatID", chatID, "category", category, "occurrence", occurrence, "at", at)
}

// expireLink runs on a deletion timer. The link is re-read because /survey
// may have replaced the message to delete in the meantime.
func (s *Deliveries) expireLink(chatID int64, category string, occurrence int) {
	s.mx.Lock()
	defer s.mx.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	l, ok, err := s.store.GetSentLink(chatID, category, occurrence)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get sent link", "chatID", chatID, "error", err)
		return
	}
	if !ok {
		return
	}
	s.retract(ctx, l)
}

// retract removes a delivered link from the chat and forgets it. Message
// deletion is best effort, the record is removed regardless.
func (s *Deliveries) retract(ctx context.Context, l dal.SentLink) {
	if err := s.sender.DeleteMessage(ctx, l.ChatID, l.MessageID); err != nil {
		s.log.WarnContext(ctx, "failed to delete message",
			"chatID", l.ChatID, "messageID", l.MessageID, "error", err)
	}
	if err := s.store.DeleteSentLink(l.ChatID, l.Category, l.Occurrence); err != nil {
		s.log.ErrorContext(ctx, "failed to delete sent link", "chatID", l.ChatID, "key", l.Key, "error", err)
		return
	}
	s.log.InfoContext(ctx, "link retracted",
		"chatID", l.ChatID, "category", l.Category, "occurrence", l.Occurrence)
}

// armReminder arms or re-arms the completion reminder after an end category
// delivery. Once a participant confirmed completion it is never armed again.
func (s *Deliveries) armReminder(ctx context.Context, p dal.Participant, occ timeplan.Occurrence) {
	if s.conf.EndReminderDelay <= 0 {
		return
	}
	state, ok, err := s.reminders.GetReminderState(p.ChatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get reminder state", "chatID", p.ChatID, "error", err)
		return
	}
	if ok && state.Completed {
		return
	}

	state = dal.ReminderState{
		ChatID:  p.ChatID,
		DueAt:   occ.At.Add(s.conf.EndReminderDelay),
		ArmedAt: s.clock.Now(),
	}
	if err := s.reminders.PutReminderState(state); err != nil {
		s.log.ErrorContext(ctx, "failed to store reminder state", "chatID", p.ChatID, "error", err)
		return
	}
	chatID := p.ChatID
	s.scheduler.ScheduleAt(reminderKey(chatID), state.DueAt, func() { s.fireReminder(chatID) })
	s.log.InfoContext(ctx, "completion reminder armed", "chatID", chatID, "at", state.DueAt)
}

func reminderKey(chatID int64) string {
	return fmt.Sprintf("%d_reminder", chatID)
}

// fireReminder runs on the reminder timer and asks whether the participant
// completed the end survey.
func (s *Deliveries) fireReminder(chatID int64) {
	s.mx.Lock()
	defer s.mx.Unlock()

	ctx, cancel := context.WithTimeout(context.Background(), sendTimeout)
	defer cancel()

	p, ok, err := s.participants.GetParticipant(chatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get participant", "chatID", chatID, "error", err)
		return
	}
	if !ok || !p.IsSubscribed() {
		return
	}

	state, ok, err := s.reminders.GetReminderState(chatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to get reminder state", "chatID", chatID, "error", err)
		return
	}
	if !ok || state.Answered || state.Completed {
		return
	}

	if _, err := s.sender.SendReminderQuestion(ctx, chatID, s.conf.Text(study.TextReminderQuestion)); err != nil {
		if errors.Is(err, telegram.ErrForbidden) {
			s.log.InfoContext(ctx, "participant is not reachable anymore, purging", "chatID", chatID)
			s.purge(ctx, chatID)
			return
		}
		s.log.ErrorContext(ctx, "failed to send completion reminder", "chatID", chatID, "error", err)
		return
	}
	s.log.InfoContext(ctx, "completion reminder sent", "chatID", chatID)
}

// AnswerReminder handles the yes/no answer to the completion question and
// returns the reply to show. Answering yes stops all further reminders, on
// no the latest end survey link is offered again.
func (s *Deliveries) AnswerReminder(ctx context.Context, chatID int64, completed bool) (string, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	state, ok, err := s.reminders.GetReminderState(chatID)
	if err != nil {
		return "", fmt.Errorf("get reminder state %d: %w", chatID, err)
	}
	if !ok {
		return "", ErrUnexpectedReply
	}

	state.Answered = true
	state.Completed = state.Completed || completed
	if err := s.reminders.PutReminderState(state); err != nil {
		return "", fmt.Errorf("put reminder state %d: %w", chatID, err)
	}

	if completed {
		s.scheduler.Cancel(reminderKey(chatID))
		s.log.InfoContext(ctx, "participant confirmed completion", "chatID", chatID)
		return s.conf.Text(study.TextReminderYes), nil
	}

	url := s.latestLinkURL(ctx, chatID, study.CategoryEnd)
	if url == "" {
		return s.conf.Text(study.TextSurveyUnavailable), nil
	}
	return s.conf.TextWithLink(study.TextReminderNo, url), nil
}

func (s *Deliveries) latestLinkURL(ctx context.Context, chatID int64, id study.CategoryID) string {
	links, err := s.store.GetSentLinks(chatID)
	if err != nil {
		s.log.ErrorContext(ctx, "failed to list sent links", "chatID", chatID, "error", err)
		return ""
	}
	best := -1
	url := ""
	for _, l := range links {
		if l.Category == string(id) && l.Occurrence > best {
			best, url = l.Occurrence, l.URL
		}
	}
	return url
}

// ResendLatest sends the most recent daily survey link again. The stored
// message is replaced so that a pending deletion applies to the fresh copy.
func (s *Deliveries) ResendLatest(ctx context.Context, chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	p, ok, err := s.participants.GetParticipant(chatID)
	if err != nil {
		return fmt.Errorf("get participant %d: %w", chatID, err)
	}
	if !ok || !p.IsSubscribed() {
		return ErrNotSubscribed
	}

	links, err := s.store.GetSentLinks(chatID)
	if err != nil {
		return fmt.Errorf("get sent links of %d: %w", chatID, err)
	}
	var latest *dal.SentLink
	for i := range links {
		l := &links[i]
		if l.Category != string(study.CategoryDaily) {
			continue
		}
		if latest == nil || l.Occurrence > latest.Occurrence {
			latest = l
		}
	}
	if latest == nil {
		return ErrNoActiveLink
	}

	msgID, err := s.sender.SendMessage(ctx, chatID, s.conf.TextWithLink(study.TextSurveyLink, latest.URL))
	if err != nil {
		return fmt.Errorf("send survey link to %d: %w", chatID, err)
	}
	oldMsgID := latest.MessageID
	latest.MessageID = msgID
	if err := s.store.PutSentLink(*latest); err != nil {
		return fmt.Errorf("put sent link of %d: %w", chatID, err)
	}
	if err := s.sender.DeleteMessage(ctx, chatID, oldMsgID); err != nil {
		s.log.WarnContext(ctx, "failed to delete message",
			"chatID", chatID, "messageID", oldMsgID, "error", err)
	}
	s.log.InfoContext(ctx, "survey link re-sent", "chatID", chatID, "occurrence", latest.Occurrence)
	return nil
}

// purge drops a participant that can no longer be reached: every pending
// timer is cancelled and all stored state is removed.
func (s *Deliveries) purge(ctx context.Context, chatID int64) {
	s.scheduler.CancelPrefix(dal.BuildChatPrefix(chatID))
	if err := s.participants.PurgeParticipant(chatID); err != nil {
		s.log.ErrorContext(ctx, "failed to purge participant", "chatID", chatID, "error", err)
		return
	}
	s.log.InfoContext(ctx, "participant purged", "chatID", chatID)
	s.notifier.Notify(ctx, fmt.Sprintf("Participant %d blocked the bot and was dropped from %q", chatID, s.conf.StudyName))
}

// Drop cancels every pending timer of chatID: deliveries, link deletions and
// the completion reminder.
func (s *Deliveries) Drop(chatID int64) {
	s.mx.Lock()
	defer s.mx.Unlock()

	n := s.scheduler.CancelPrefix(dal.BuildChatPrefix(chatID))
	s.log.Info("cancelled pending timers", "chatID", chatID, "count", n)
}

// Restore re-arms all timers from persisted state after a restart. Fired
// deliveries stay fired, overdue reminders are dropped rather than fired
// late, overdue link deletions are executed right away.
func (s *Deliveries) Restore(ctx context.Context) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	participants, err := s.participants.GetAllParticipants()
	if err != nil {
		return fmt.Errorf("get all participants: %w", err)
	}

	subscribed := make(map[int64]struct{}, len(participants))
	for _, p := range participants {
		if !p.IsSubscribed() {
			continue
		}
		subscribed[p.ChatID] = struct{}{}
		if err := s.register(ctx, p); err != nil {
			s.log.ErrorContext(ctx, "failed to restore deliveries", "chatID", p.ChatID, "error", err)
		}
	}

	if err := s.restoreDeletions(ctx, subscribed); err != nil {
		return fmt.Errorf("restore link deletions: %w", err)
	}
	if err := s.restoreReminders(ctx, subscribed); err != nil {
		return fmt.Errorf("restore reminders: %w", err)
	}

	s.log.InfoContext(ctx, "deliveries restored", "participants", len(subscribed))
	return nil
}

func (s *Deliveries) restoreDeletions(ctx context.Context, subscribed map[int64]struct{}) error {
	links, err := s.store.GetAllSentLinks()
	if err != nil {
		return fmt.Errorf("get all sent links: %w", err)
	}

	now := s.clock.Now()
	for _, l := range links {
		if _, ok := subscribed[l.ChatID]; !ok {
			continue
		}

		cat := s.conf.Category(study.CategoryID(l.Category))
		var at time.Time
		switch cat.Visibility {
		case study.VisibilityFixedDelay:
			at = l.SentAt.Add(cat.DeleteAfter)
		case study.VisibilityAtDeadline:
			at = s.conf.SubscriptionDeadline
		default:
			continue
		}

		if !at.After(now) {
			s.retract(ctx, l)
			continue
		}
		chatID, category, occurrence := l.ChatID, l.Category, l.Occurrence
		key := dal.BuildDeliveryKey(chatID, category, occurrence)
		s.scheduler.ScheduleAt(key+deletionSuffix, at, func() { s.expireLink(chatID, category, occurrence) })
	}
	return nil
}

func (s *Deliveries) restoreReminders(ctx context.Context, subscribed map[int64]struct{}) error {
	states, err := s.reminders.GetAllReminderStates()
	if err != nil {
		return fmt.Errorf("get all reminder states: %w", err)
	}

	now := s.clock.Now()
	for _, state := range states {
		if _, ok := subscribed[state.ChatID]; !ok {
			continue
		}
		if state.Answered || state.Completed {
			continue
		}
		if !state.DueAt.After(now) {
			s.log.InfoContext(ctx, "dropping overdue reminder", "chatID", state.ChatID, "dueAt", state.DueAt)
			continue
		}
		chatID := state.ChatID
		s.scheduler.ScheduleAt(reminderKey(chatID), state.DueAt, func() { s.fireReminder(chatID) })
	}
	return nil
}

// Cleanup drops fired delivery and sent link records older than ttl. The ttl
// must exceed the study length so that fired markers keep guarding against
// repeated sends while the study runs.
func (s *Deliveries) Cleanup(ctx context.Context, ttl time.Duration) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	if err := s.store.CleanupFiredDeliveries(ttl); err != nil {
		return fmt.Errorf("cleanup fired deliveries: %w", err)
	}
	if err := s.store.CleanupSentLinks(ttl); err != nil {
		return fmt.Errorf("cleanup sent links: %w", err)
	}
	s.log.InfoContext(ctx, "cleanup finished", "ttl", ttl)
	return nil
}
