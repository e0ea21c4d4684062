package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	tb "gopkg.in/telebot.v3"
)

// NewTelebot builds the long-polling telebot client shared by the Bot and
// the Sender.
func NewTelebot(token string) (*tb.Bot, error) {
	bot, err := tb.NewBot(tb.Settings{
		Token:  token,
		Poller: &tb.LongPoller{Timeout: 5 * time.Second}, //nolint:mnd // it's ok
	})
	if err != nil {
		return nil, fmt.Errorf("create telegram bot: %w", err)
	}

	return bot, nil
}

type Bot struct {
	bot *tb.Bot

	handler *Handler

	log *slog.Logger
}

func NewBot(bot *tb.Bot, handler *Handler, log *slog.Logger) *Bot {
	return &Bot{
		bot: bot,

		handler: handler,

		log: log.With("component", "bot"),
	}
}

func (b *Bot) Start(ctx context.Context) error {
	b.bot.Use(NewPurgeOnForbiddenMiddleware(b.handler.subscriptions, b.log).Handle)

	// Register command handlers
	b.bot.Handle("/start", b.handler.Start)
	b.bot.Handle("/help", b.handler.Help)
	b.bot.Handle("/subscribe", b.handler.Subscribe)
	b.bot.Handle("/unsubscribe", b.handler.Unsubscribe)
	if b.handler.conf.SurveyCommandEnabled {
		b.bot.Handle("/survey", b.handler.Survey)
	}

	b.bot.Handle(tb.OnText, b.handler.Text)
	b.bot.Handle(tb.OnCallback, b.handler.Callback)

	go func() {
		<-ctx.Done()
		b.log.Info("Stopping bot")
		b.bot.Stop()
	}()

	b.bot.Start()

	return nil
}
