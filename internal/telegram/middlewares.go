package telegram

import (
	"context"
	"errors"
	"log/slog"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/survey-bot/internal/service"
)

// PurgeOnForbiddenMiddleware unsubscribes participants whose handler reply
// failed because the bot can no longer message them. Scheduled deliveries
// handle the same condition on their own; this covers the interactive path.
type PurgeOnForbiddenMiddleware struct {
	subscriptions Subscriptions

	log *slog.Logger
}

func NewPurgeOnForbiddenMiddleware(subscriptions Subscriptions, log *slog.Logger) *PurgeOnForbiddenMiddleware {
	return &PurgeOnForbiddenMiddleware{
		subscriptions: subscriptions,
		log:           log,
	}
}

func (m *PurgeOnForbiddenMiddleware) Handle(next tb.HandlerFunc) tb.HandlerFunc {
	return func(c tb.Context) error {
		rootErr := next(c)
		if rootErr == nil || !isForbidden(rootErr) {
			return rootErr
		}

		sender := c.Sender()
		if sender == nil {
			m.log.Warn("sender is not present in update")
			return rootErr
		}

		m.log.Warn("bot is blocked, unsubscribing", "chatID", sender.ID)
		err := m.subscriptions.Unsubscribe(context.Background(), sender.ID)
		if err != nil && !errors.Is(err, service.ErrNotSubscribed) {
			m.log.Error("failed to unsubscribe blocked participant",
				"error", err,
				"chatID", sender.ID)
		}

		return rootErr
	}
}
