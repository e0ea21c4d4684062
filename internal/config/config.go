package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/kelseyhightower/envconfig"
)

const ssmTokenPath = "/survey-bot/prod/telegram-token"

type Config struct {
	Dev bool `envconfig:"DEV" default:"false"`

	DBPath          string `envconfig:"DB_PATH" default:"data/survey-bot.db"`
	StudyConfigPath string `envconfig:"STUDY_CONFIG" default:"study.json"`

	CleanupInterval time.Duration `envconfig:"CLEANUP_INTERVAL" default:"1h"`
	DeliveriesTTL   time.Duration `envconfig:"DELIVERIES_TTL" default:"2160h"`

	CoordinatorChatID string `envconfig:"COORDINATOR_CHAT_ID"`

	GoogleCalendarID      string `envconfig:"GOOGLE_CALENDAR_ID"`
	GoogleCredentialsPath string `envconfig:"GOOGLE_CREDENTIALS_PATH" default:"credentials.json"`
	CalendarSyncCron      string `envconfig:"CALENDAR_SYNC_CRON" default:"30 3 * * *"`
	CalendarLookbackDays  int    `envconfig:"CALENDAR_LOOKBACK_DAYS" default:"30"`

	TelegramToken string `envconfig:"TELEGRAM_TOKEN"`
}

// NewConfig processes the environment. In dev mode the Telegram token is
// taken from TELEGRAM_TOKEN as-is; otherwise it is fetched from the SSM
// parameter store.
func NewConfig(ctx context.Context) (*Config, error) {
	res := &Config{}

	err := envconfig.Process("", res)
	if err != nil {
		return nil, fmt.Errorf("envconfig process: %w", err)
	}

	if res.Dev {
		return res, nil
	}
	res.TelegramToken, err = getSSMToken(ctx)
	if err != nil {
		return nil, err
	}

	if res.TelegramToken == "" {
		return nil, errors.New("telegram token is required")
	}

	return res, nil
}

func getSSMToken(ctx context.Context) (string, error) {
	cfg, err := config.LoadDefaultConfig(ctx)
	if err != nil {
		return "", fmt.Errorf("load aws config: %w", err)
	}
	ssmClient := ssm.NewFromConfig(cfg)

	param, err := ssmClient.GetParameter(ctx, &ssm.GetParameterInput{
		Name:           aws.String(ssmTokenPath),
		WithDecryption: aws.Bool(true),
	})
	if err != nil {
		return "", fmt.Errorf("get SSM token: %w", err)
	}
	if param.Parameter.Value == nil {
		return "", errors.New("SSM Token not found")
	}

	return *param.Parameter.Value, nil
}
