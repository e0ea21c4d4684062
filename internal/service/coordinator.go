package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/Roma7-7-7/telegram"
)

//go:generate mockgen -package mocks -destination mocks/telegram.go . TelegramClient

type TelegramClient interface {
	SendMessage(ctx context.Context, chatID string, text string) error
}

// Coordinator pushes ops updates to the study coordinator chat. An empty chat
// id disables it. Once the coordinator blocks the bot no further pushes are
// attempted for the lifetime of the process.
type Coordinator struct {
	telegram TelegramClient
	chatID   string

	disabled bool
	log      *slog.Logger
	mx       *sync.Mutex
}

func NewCoordinator(client TelegramClient, chatID string, log *slog.Logger) *Coordinator {
	return &Coordinator{
		telegram: client,
		chatID:   chatID,

		log: log.With("component", "service").With("service", "coordinator"),
		mx:  &sync.Mutex{},
	}
}

func (c *Coordinator) Notify(ctx context.Context, text string) {
	c.mx.Lock()
	defer c.mx.Unlock()

	if c.chatID == "" || c.disabled {
		return
	}

	err := c.telegram.SendMessage(ctx, c.chatID, text)
	if err == nil {
		return
	}
	if errors.Is(err, telegram.ErrForbidden) {
		c.log.WarnContext(ctx, "coordinator chat is not reachable, disabling notifications")
		c.disabled = true
		return
	}
	c.log.ErrorContext(ctx, "failed to notify coordinator", "error", err)
}
