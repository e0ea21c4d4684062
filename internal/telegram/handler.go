package telegram

import (
	"context"
	"errors"
	"log/slog"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/survey-bot/internal/service"
	"github.com/Roma7-7-7/survey-bot/internal/study"
)

//go:generate mockgen -package mocks -destination mocks/services.go . Subscriptions,Deliveries

// Callback uniques for the inline buttons the bot sends.
const (
	cbSubscribe   = "subscribe"
	cbReminderYes = "reminder_yes"
	cbReminderNo  = "reminder_no"
)

type (
	Subscriptions interface {
		Subscribe(ctx context.Context, chatID int64) (service.NextStep, error)
		Reply(ctx context.Context, chatID int64, text string) (service.NextStep, error)
		Unsubscribe(ctx context.Context, chatID int64) error
	}

	Deliveries interface {
		AnswerReminder(ctx context.Context, chatID int64, completed bool) (string, error)
		ResendLatest(ctx context.Context, chatID int64) error
	}
)

type Handler struct {
	conf          *study.Config
	subscriptions Subscriptions
	deliveries    Deliveries

	markups *markups

	log *slog.Logger
}

func NewHandler(conf *study.Config, subscriptions Subscriptions, deliveries Deliveries, log *slog.Logger) *Handler {
	return &Handler{
		conf:          conf,
		subscriptions: subscriptions,
		deliveries:    deliveries,
		markups:       newMarkups(),
		log:           log,
	}
}

func (h *Handler) Start(c tb.Context) error {
	h.log.Debug("start handler called", "chatID", c.Sender().ID)
	return h.sendOrDelete(c, h.conf.Text(study.TextWelcome), h.markups.start.ReplyMarkup)
}

func (h *Handler) Help(c tb.Context) error {
	h.log.Debug("help handler called", "chatID", c.Sender().ID)
	return h.sendOrDelete(c, h.conf.Text(study.TextHelp), nil)
}

func (h *Handler) Subscribe(c tb.Context) error {
	chatID := c.Sender().ID
	h.log.Debug("subscribe handler called", "chatID", chatID)

	step, err := h.subscriptions.Subscribe(context.Background(), chatID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAlreadySubscribed):
			return h.sendOrDelete(c, h.conf.Text(study.TextAlreadySubscribed), nil)
		case errors.Is(err, service.ErrSubscriptionWindowClosed):
			return h.sendOrDelete(c, h.conf.Text(study.TextWindowClosed), nil)
		case errors.Is(err, service.ErrSubscriptionWindowExpired):
			return h.sendOrDelete(c, h.conf.Text(study.TextWindowExpired), nil)
		}

		h.log.Error("failed to subscribe",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, h.conf.Text(study.TextGenericError), nil)
	}

	return h.sendOrDelete(c, h.stepText(step), nil)
}

func (h *Handler) Unsubscribe(c tb.Context) error {
	chatID := c.Sender().ID

	if err := h.subscriptions.Unsubscribe(context.Background(), chatID); err != nil {
		if errors.Is(err, service.ErrNotSubscribed) {
			return h.sendOrDelete(c, h.conf.Text(study.TextNotSubscribed), nil)
		}

		h.log.Error("failed to unsubscribe",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, h.conf.Text(study.TextGenericError), nil)
	}

	h.log.Info("participant unsubscribed", "chatID", chatID)
	return h.sendOrDelete(c, h.conf.Text(study.TextUnsubscribed), nil)
}

// Survey re-sends the latest survey link on request. The delivery service
// sends the link itself, so there is nothing to reply with on success.
func (h *Handler) Survey(c tb.Context) error {
	chatID := c.Sender().ID
	h.log.Debug("survey handler called", "chatID", chatID)

	err := h.deliveries.ResendLatest(context.Background(), chatID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, service.ErrNotSubscribed):
		return h.sendOrDelete(c, h.conf.Text(study.TextNotSubscribed), nil)
	case errors.Is(err, service.ErrNoActiveLink):
		return h.sendOrDelete(c, h.conf.Text(study.TextSurveyUnavailable), nil)
	default:
		h.log.Error("failed to resend survey link",
			"error", err,
			"chatID", chatID)
		return h.sendOrDelete(c, h.conf.Text(study.TextGenericError), nil)
	}
}

// Text feeds plain replies into the subscription conversation. Replies that
// no conversation is waiting for are dropped silently.
func (h *Handler) Text(c tb.Context) error {
	chatID := c.Sender().ID

	step, err := h.subscriptions.Reply(context.Background(), chatID, c.Text())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnexpectedReply):
			h.log.Debug("ignoring unexpected text", "chatID", chatID)
			return nil
		case errors.Is(err, service.ErrInvalidWakeupTime):
			return c.Send(h.conf.Text(study.TextInvalidWakeup))
		case errors.Is(err, service.ErrInvalidCondition):
			return c.Send(h.conf.Text(study.TextInvalidCondition))
		}

		h.log.Error("failed to process reply",
			"error", err,
			"chatID", chatID)
		return c.Send(h.conf.Text(study.TextGenericError))
	}

	return c.Send(h.stepText(step))
}

func (h *Handler) Callback(c tb.Context) error {
	callback := c.Callback()
	if callback == nil {
		h.log.Debug("callback router called with nil callback")
		return nil
	}

	chatID := c.Sender().ID
	h.log.Debug("callback received",
		"chatID", chatID,
		"data", callback.Data,
		"unique", callback.Unique)

	// Respond to callback first to remove loading state
	if err := c.Respond(); err != nil {
		h.log.Warn("failed to respond to callback", "error", err, "chatID", chatID)
	}

	// Use Data field and trim the prefix if present
	data := callback.Data
	if len(data) > 0 && data[0] == '\f' {
		data = data[1:]
	}

	switch data {
	case cbSubscribe:
		return h.Subscribe(c)

	case cbReminderYes:
		return h.answerReminder(c, true)

	case cbReminderNo:
		return h.answerReminder(c, false)

	default:
		h.log.Debug("no handler matched for callback", "chatID", chatID, "data", data)
		return nil
	}
}

func (h *Handler) answerReminder(c tb.Context, completed bool) error {
	chatID := c.Sender().ID

	text, err := h.deliveries.AnswerReminder(context.Background(), chatID, completed)
	if err != nil {
		if errors.Is(err, service.ErrUnexpectedReply) {
			// Stale buttons from an earlier reminder. Remove the question
			// instead of answering it.
			h.log.Debug("stale reminder answer", "chatID", chatID)
			if err := c.Delete(); err != nil {
				h.log.Warn("failed to delete message", "error", err, "chatID", chatID)
			}
			return nil
		}

		h.log.Error("failed to process reminder answer",
			"error", err,
			"chatID", chatID,
			"completed", completed)
		return h.sendOrDelete(c, h.conf.Text(study.TextGenericError), nil)
	}

	return h.sendOrDelete(c, text, nil)
}

func (h *Handler) stepText(step service.NextStep) string {
	switch step {
	case service.StepAskWakeupTime:
		return h.conf.Text(study.TextAskWakeup)
	case service.StepAskCondition:
		return h.conf.Text(study.TextAskCondition)
	default:
		return h.conf.Text(study.TextSubscribed)
	}
}

// sendOrDelete deletes the previous message for callbacks and sends a new one
func (h *Handler) sendOrDelete(c tb.Context, text string, markup *tb.ReplyMarkup) error {
	if c.Callback() != nil {
		// Delete the old message to keep chat clean
		if err := c.Delete(); err != nil {
			h.log.Warn("failed to delete message",
				"error", err,
				"chatID", c.Sender().ID)
		}
	}

	if markup != nil {
		return c.Send(text, markup)
	}
	return c.Send(text)
}

type (
	// startMarkup contains the markup sent with the welcome message
	startMarkup struct {
		*tb.ReplyMarkup
		subscribe tb.Btn
	}

	// reminderMarkup contains the yes/no markup for completion reminders
	reminderMarkup struct {
		*tb.ReplyMarkup
		yes tb.Btn
		no  tb.Btn
	}

	// markups aggregates all keyboard markups used by the bot
	markups struct {
		start    startMarkup
		reminder reminderMarkup
	}
)

func newMarkups() *markups {
	start := &tb.ReplyMarkup{}
	subscribeBtn := start.Data("Subscribe", cbSubscribe)
	start.Inline(start.Row(subscribeBtn))

	reminder := &tb.ReplyMarkup{}
	yesBtn := reminder.Data("Yes", cbReminderYes)
	noBtn := reminder.Data("Not yet", cbReminderNo)
	reminder.Inline(reminder.Row(yesBtn, noBtn))

	return &markups{
		start: startMarkup{
			ReplyMarkup: start,
			subscribe:   subscribeBtn,
		},
		reminder: reminderMarkup{
			ReplyMarkup: reminder,
			yes:         yesBtn,
			no:          noBtn,
		},
	}
}
