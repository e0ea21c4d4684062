package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/Roma7-7-7/survey-bot/internal/dal"
	"github.com/Roma7-7-7/survey-bot/internal/study"
)

//go:generate mockgen -package mocks -destination mocks/participants.go . ParticipantsStore

//go:generate mockgen -package mocks -destination mocks/planner.go . DeliveryPlanner,Notifier

var (
	ErrSubscriptionWindowClosed  = errors.New("subscription window not open yet")
	ErrSubscriptionWindowExpired = errors.New("subscription window expired")
	ErrAlreadySubscribed         = errors.New("already subscribed")
	ErrNotSubscribed             = errors.New("not subscribed")
	ErrUnexpectedReply           = errors.New("unexpected reply")
	ErrInvalidWakeupTime         = errors.New("invalid wake-up time")
	ErrInvalidCondition          = errors.New("invalid condition")
)

type Clock interface {
	Now() time.Time
}

// NextStep tells the telegram layer what to ask the participant after a
// successful subscription step.
type NextStep int

const (
	StepDone NextStep = iota
	StepAskWakeupTime
	StepAskCondition
)

type (
	ParticipantsStore interface {
		CountParticipants() (int, error)
		GetParticipant(chatID int64) (dal.Participant, bool, error)
		GetAllParticipants() ([]dal.Participant, error)
		PutParticipant(p dal.Participant) error
		PurgeParticipant(chatID int64) error
	}

	// DeliveryPlanner arms and disarms survey delivery timers for one participant.
	DeliveryPlanner interface {
		Register(ctx context.Context, p dal.Participant) error
		Drop(chatID int64)
	}

	// Notifier pushes plain text updates to the study coordinator.
	// Implementations must never fail the calling flow.
	Notifier interface {
		Notify(ctx context.Context, text string)
	}

	// Subscriptions drives the per participant sign-up state machine.
	Subscriptions struct {
		conf     *study.Config
		store    ParticipantsStore
		planner  DeliveryPlanner
		notifier Notifier
		clock    Clock
		rnd      *rand.Rand

		log *slog.Logger
		mx  *sync.Mutex
	}
)

func NewSubscriptions(
	conf *study.Config,
	store ParticipantsStore,
	planner DeliveryPlanner,
	notifier Notifier,
	clock Clock,
	rnd *rand.Rand,
	log *slog.Logger,
) *Subscriptions {
	return &Subscriptions{
		conf:     conf,
		store:    store,
		planner:  planner,
		notifier: notifier,
		clock:    clock,
		rnd:      rnd,

		log: log.With("component", "service").With("service", "subscriptions"),
		mx:  &sync.Mutex{},
	}
}

// Subscribe starts or restarts the sign-up conversation for chatID. The
// returned step tells the caller which detail to ask for next. Outside the
// subscription window the participant stays unregistered.
func (s *Subscriptions) Subscribe(ctx context.Context, chatID int64) (NextStep, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	p, ok, err := s.store.GetParticipant(chatID)
	if err != nil {
		return StepDone, fmt.Errorf("get participant %d: %w", chatID, err)
	}
	if ok && p.State == dal.ParticipantSubscribed {
		return StepDone, ErrAlreadySubscribed
	}

	now := s.clock.Now()
	if now.Before(s.conf.SubscriptionStart) {
		return StepDone, ErrSubscriptionWindowClosed
	}
	if !now.Before(s.conf.SubscriptionDeadline) {
		return StepDone, ErrSubscriptionWindowExpired
	}

	np := dal.Participant{
		ChatID:       chatID,
		SubscribedAt: now,
		Condition:    dal.ConditionUnassigned,
	}
	if ok {
		// a returning participant keeps the condition assigned last time
		np.Condition = p.Condition
	}

	switch {
	case s.conf.WakeupTimeRequired():
		np.State = dal.ParticipantAwaitingWakeup
	case s.conf.ConditionSelfReport && np.Condition == dal.ConditionUnassigned:
		np.State = dal.ParticipantAwaitingCondition
	default:
		return StepDone, s.complete(ctx, np)
	}

	if err := s.store.PutParticipant(np); err != nil {
		return StepDone, fmt.Errorf("put participant %d: %w", chatID, err)
	}
	s.log.InfoContext(ctx, "subscription started", "chatID", chatID, "state", np.State)
	if np.State == dal.ParticipantAwaitingWakeup {
		return StepAskWakeupTime, nil
	}
	return StepAskCondition, nil
}

// Reply consumes a plain text message from a participant who is in the middle
// of the sign-up conversation.
func (s *Subscriptions) Reply(ctx context.Context, chatID int64, text string) (NextStep, error) {
	s.mx.Lock()
	defer s.mx.Unlock()

	p, ok, err := s.store.GetParticipant(chatID)
	if err != nil {
		return StepDone, fmt.Errorf("get participant %d: %w", chatID, err)
	}
	if !ok {
		return StepDone, ErrUnexpectedReply
	}

	switch p.State {
	case dal.ParticipantAwaitingWakeup:
		return s.acceptWakeupTime(ctx, p, text)
	case dal.ParticipantAwaitingCondition:
		return s.acceptCondition(ctx, p, text)
	default:
		return StepDone, ErrUnexpectedReply
	}
}

func (s *Subscriptions) acceptWakeupTime(ctx context.Context, p dal.Participant, text string) (NextStep, error) {
	tod, err := study.ParseTimeOfDay(text)
	if err != nil {
		return StepDone, ErrInvalidWakeupTime
	}
	p.WakeupTime = tod.String()

	if s.conf.ConditionSelfReport && p.Condition == dal.ConditionUnassigned {
		p.State = dal.ParticipantAwaitingCondition
		if err := s.store.PutParticipant(p); err != nil {
			return StepDone, fmt.Errorf("put participant %d: %w", p.ChatID, err)
		}
		return StepAskCondition, nil
	}
	return StepDone, s.complete(ctx, p)
}

func (s *Subscriptions) acceptCondition(ctx context.Context, p dal.Participant, text string) (NextStep, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || n < 1 || n > s.conf.Conditions {
		return StepDone, ErrInvalidCondition
	}
	p.Condition = n - 1
	return StepDone, s.complete(ctx, p)
}

// complete flips the participant to subscribed, assigning a random condition
// if none was collected, and arms the delivery timers. Timer registration
// failures degrade deliveries only, the subscription itself stands and a
// restart re-registers.
func (s *Subscriptions) complete(ctx context.Context, p dal.Participant) error {
	if p.Condition == dal.ConditionUnassigned {
		p.Condition = 0
		if s.conf.Conditions > 1 {
			p.Condition = s.rnd.IntN(s.conf.Conditions)
		}
	}
	p.State = dal.ParticipantSubscribed
	if err := s.store.PutParticipant(p); err != nil {
		return fmt.Errorf("put participant %d: %w", p.ChatID, err)
	}

	if err := s.planner.Register(ctx, p); err != nil {
		s.log.ErrorContext(ctx, "failed to register deliveries", "chatID", p.ChatID, "error", err)
	}
	s.log.InfoContext(ctx, "participant subscribed", "chatID", p.ChatID, "condition", p.Condition)

	msg := fmt.Sprintf("Participant %d subscribed to %q", p.ChatID, s.conf.StudyName)
	if count, err := s.store.CountParticipants(); err == nil {
		msg = fmt.Sprintf("%s (%d registered)", msg, count)
	}
	s.notifier.Notify(ctx, msg)
	return nil
}

// Unsubscribe stops all scheduled work for chatID and marks it unsubscribed.
// Links already delivered stay in the chat.
func (s *Subscriptions) Unsubscribe(ctx context.Context, chatID int64) error {
	s.mx.Lock()
	defer s.mx.Unlock()

	p, ok, err := s.store.GetParticipant(chatID)
	if err != nil {
		return fmt.Errorf("get participant %d: %w", chatID, err)
	}
	if !ok || p.State == dal.ParticipantUnsubscribed {
		return ErrNotSubscribed
	}

	p.State = dal.ParticipantUnsubscribed
	p.WakeupTime = ""
	if err := s.store.PutParticipant(p); err != nil {
		return fmt.Errorf("put participant %d: %w", chatID, err)
	}
	s.planner.Drop(chatID)

	s.log.InfoContext(ctx, "participant unsubscribed", "chatID", chatID)
	s.notifier.Notify(ctx, fmt.Sprintf("Participant %d unsubscribed from %q", chatID, s.conf.StudyName))
	return nil
}
