package telegram_test

import (
	"fmt"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	tb "gopkg.in/telebot.v3"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/survey-bot/internal/service"
	"github.com/Roma7-7-7/survey-bot/internal/telegram"
	"github.com/Roma7-7-7/survey-bot/internal/telegram/mocks"
)

func handlerStub(err error) tb.HandlerFunc {
	return func(_ tb.Context) error {
		return err
	}
}

func TestPurgeOnForbiddenMiddleware_Handle(t *testing.T) {
	type fields struct {
		subscriptions func(*gomock.Controller) telegram.Subscriptions
	}
	type args struct {
		c   *tbContext
		err error
	}
	tests := []struct {
		name    string
		fields  fields
		args    args
		wantErr assert.ErrorAssertionFunc
	}{
		{
			name: "no_error",
			args: args{
				c:   stubContext(),
				err: nil,
			},
			wantErr: assert.NoError,
		},
		{
			name: "other_error",
			args: args{
				c:   stubContext(),
				err: assert.AnError,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, assert.AnError, err, "expected error %v, got %v", assert.AnError, err)
			},
		},
		{
			name: "blocked_by_user",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(gomock.Any(), chatID).Return(nil)
					return res
				},
			},
			args: args{
				c:   stubContext(),
				err: tb.ErrBlockedByUser,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, tb.ErrBlockedByUser, err, "expected error %v, got %v", tb.ErrBlockedByUser, err)
			},
		},
		{
			name: "chat_not_found",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(gomock.Any(), chatID).Return(nil)
					return res
				},
			},
			args: args{
				c:   stubContext(),
				err: tb.ErrChatNotFound,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, tb.ErrChatNotFound, err, "expected error %v, got %v", tb.ErrChatNotFound, err)
			},
		},
		{
			name: "wrapped_forbidden_error",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(gomock.Any(), chatID).Return(nil)
					return res
				},
			},
			args: args{
				c:   stubContext(),
				err: fmt.Errorf("wrapped: %w", tc.ErrForbidden),
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.ErrorIsf(t, err, tc.ErrForbidden, "expected forbidden, got %v", err)
			},
		},
		{
			name: "error_unsubscribe",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(gomock.Any(), chatID).Return(assert.AnError)
					return res
				},
			},
			args: args{
				c:   stubContext(),
				err: tb.ErrBlockedByUser,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, tb.ErrBlockedByUser, err, "expected error %v, got %v", tb.ErrBlockedByUser, err)
			},
		},
		{
			name: "not_subscribed_is_fine",
			fields: fields{
				subscriptions: func(ctrl *gomock.Controller) telegram.Subscriptions {
					res := mocks.NewMockSubscriptions(ctrl)
					res.EXPECT().Unsubscribe(gomock.Any(), chatID).Return(service.ErrNotSubscribed)
					return res
				},
			},
			args: args{
				c:   stubContext(),
				err: tb.ErrBlockedByUser,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, tb.ErrBlockedByUser, err, "expected error %v, got %v", tb.ErrBlockedByUser, err)
			},
		},
		{
			name: "missing_sender",
			args: args{
				c:   &tbContext{},
				err: tb.ErrBlockedByUser,
			},
			wantErr: func(t assert.TestingT, err error, i ...interface{}) bool {
				return assert.Equalf(t, tb.ErrBlockedByUser, err, "expected error %v, got %v", tb.ErrBlockedByUser, err)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			subscriptions := telegram.Subscriptions(mocks.NewMockSubscriptions(ctrl))
			if tt.fields.subscriptions != nil {
				subscriptions = tt.fields.subscriptions(ctrl)
			}

			m := telegram.NewPurgeOnForbiddenMiddleware(
				subscriptions,
				slog.New(slog.DiscardHandler),
			)
			hStub := handlerStub(tt.args.err)
			tt.wantErr(t, m.Handle(hStub)(tt.args.c))
		})
	}
}
