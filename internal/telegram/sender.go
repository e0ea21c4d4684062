package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	tb "gopkg.in/telebot.v3"

	"github.com/Roma7-7-7/telegram"
)

// Sender delivers participant facing messages over telebot. Failures that
// mean the participant is gone (blocked the bot, deleted the account) are
// mapped to telegram.ErrForbidden so services can react uniformly.
type Sender struct {
	bot *tb.Bot

	markups *markups

	log *slog.Logger
}

func NewSender(bot *tb.Bot, log *slog.Logger) *Sender {
	return &Sender{
		bot: bot,

		markups: newMarkups(),

		log: log.With("component", "sender"),
	}
}

func (s *Sender) SendMessage(_ context.Context, chatID int64, text string) (int, error) {
	msg, err := s.bot.Send(tb.ChatID(chatID), text)
	if err != nil {
		return 0, mapForbidden(err)
	}
	return msg.ID, nil
}

func (s *Sender) SendReminderQuestion(_ context.Context, chatID int64, text string) (int, error) {
	msg, err := s.bot.Send(tb.ChatID(chatID), text, s.markups.reminder.ReplyMarkup)
	if err != nil {
		return 0, mapForbidden(err)
	}
	return msg.ID, nil
}

func (s *Sender) DeleteMessage(_ context.Context, chatID int64, messageID int) error {
	stored := tb.StoredMessage{
		MessageID: strconv.Itoa(messageID),
		ChatID:    chatID,
	}
	if err := s.bot.Delete(stored); err != nil {
		return mapForbidden(err)
	}
	return nil
}

func mapForbidden(err error) error {
	if isForbidden(err) {
		return fmt.Errorf("%v: %w", err, telegram.ErrForbidden)
	}
	return err
}

func isForbidden(err error) bool {
	return errors.Is(err, telegram.ErrForbidden) ||
		errors.Is(err, tb.ErrBlockedByUser) ||
		errors.Is(err, tb.ErrChatNotFound) ||
		errors.Is(err, tb.ErrUserIsDeactivated)
}
