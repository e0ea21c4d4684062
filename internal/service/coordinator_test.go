package service_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/Roma7-7-7/telegram"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Roma7-7-7/survey-bot/internal/service"
	"github.com/Roma7-7-7/survey-bot/internal/service/mocks"
)

func TestCoordinator_Notify(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockTelegramClient(ctrl)
		client.EXPECT().SendMessage(gomock.Any(), "98765", "3 participants registered").Return(nil)

		c := service.NewCoordinator(client, "98765", slog.New(slog.DiscardHandler))
		c.Notify(ctx, "3 participants registered")
	})

	t.Run("disabled_without_chat_id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		c := service.NewCoordinator(mocks.NewMockTelegramClient(ctrl), "", slog.New(slog.DiscardHandler))
		c.Notify(ctx, "nobody listens")
	})

	t.Run("forbidden_disables_further_pushes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockTelegramClient(ctrl)
		client.EXPECT().SendMessage(gomock.Any(), "98765", "first").Return(telegram.ErrForbidden)

		c := service.NewCoordinator(client, "98765", slog.New(slog.DiscardHandler))
		c.Notify(ctx, "first")
		c.Notify(ctx, "second")
	})

	t.Run("send_error_does_not_disable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockTelegramClient(ctrl)
		client.EXPECT().SendMessage(gomock.Any(), "98765", gomock.Any()).Return(assert.AnError).Times(2)

		c := service.NewCoordinator(client, "98765", slog.New(slog.DiscardHandler))
		c.Notify(ctx, "first")
		c.Notify(ctx, "second")
	})
}
