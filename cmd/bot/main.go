package main

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"go.etcd.io/bbolt"

	tc "github.com/Roma7-7-7/telegram"

	"github.com/Roma7-7-7/survey-bot/internal/calendar"
	"github.com/Roma7-7-7/survey-bot/internal/config"
	"github.com/Roma7-7-7/survey-bot/internal/dal"
	"github.com/Roma7-7-7/survey-bot/internal/dal/migrations"
	"github.com/Roma7-7-7/survey-bot/internal/scheduler"
	"github.com/Roma7-7-7/survey-bot/internal/service"
	"github.com/Roma7-7-7/survey-bot/internal/study"
	"github.com/Roma7-7-7/survey-bot/internal/telegram"
	"github.com/Roma7-7-7/survey-bot/pkg/clock"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	conf, err := config.NewConfig(ctx)
	if err != nil {
		slog.Error("Failed to process config", "error", err)
		os.Exit(1)
	}

	log := mustLogger(conf.Dev)

	studyConf, err := study.Load(conf.StudyConfigPath)
	if err != nil {
		log.Error("Failed to load study config", "error", err, "path", conf.StudyConfigPath)
		os.Exit(1)
	}

	db, err := bbolt.Open(conf.DBPath, 0o600, nil)
	if err != nil {
		log.Error("Failed to open database", "error", err, "path", conf.DBPath)
		os.Exit(1)
	}
	defer db.Close()

	if err := migrations.RunMigrations(db, log); err != nil {
		log.Error("Failed to run migrations", "error", err)
		os.Exit(1)
	}
	store, err := dal.NewBoltDB(db)
	if err != nil {
		log.Error("Failed to init store", "error", err)
		os.Exit(1)
	}

	clk := clock.NewWithLocation(studyConf.Location)
	timers := scheduler.New(studyConf.Location, clk, log)
	defer timers.Stop()

	telebot, err := telegram.NewTelebot(conf.TelegramToken)
	if err != nil {
		log.Error("Failed to create telegram bot", "error", err)
		os.Exit(1)
	}
	sender := telegram.NewSender(telebot, log)
	coordinator := service.NewCoordinator(tc.NewClient(http.DefaultClient, conf.TelegramToken), conf.CoordinatorChatID, log)

	deliveriesSvc := service.NewDeliveries(studyConf, store, store, store, sender, timers, coordinator, clk, newRand(), log)
	subscriptionsSvc := service.NewSubscriptions(studyConf, store, deliveriesSvc, coordinator, clk, newRand(), log)

	handler := telegram.NewHandler(studyConf, subscriptionsSvc, deliveriesSvc, log)
	bot := telegram.NewBot(telebot, handler, log)

	if err := deliveriesSvc.Restore(ctx); err != nil {
		log.Error("Failed to restore delivery timers", "error", err)
		os.Exit(1)
	}
	count, err := store.CountParticipants()
	if err != nil {
		log.Error("Failed to count participants", "error", err)
		os.Exit(1)
	}
	log.Info("State restored", "study", studyConf.StudyName, "participants", count, "pendingTimers", timers.Pending())

	if conf.GoogleCalendarID != "" {
		if err := startCalendarSync(ctx, conf, studyConf, clk, timers, log); err != nil {
			log.Error("Failed to start calendar sync", "error", err)
			os.Exit(1)
		}
	}

	maintenance := service.NewMaintenance(func(ctx context.Context) error {
		return deliveriesSvc.Cleanup(ctx, conf.DeliveriesTTL)
	}, conf.CleanupInterval, log)

	wg := &sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		maintenance.Start(ctx)
	}()

	log.Info("Starting bot")
	if err := bot.Start(ctx); err != nil {
		log.Error("Failed to start bot", "error", err)
	}

	wg.Wait()
	log.Info("Stopped bot")
}

func startCalendarSync(ctx context.Context, conf *config.Config, studyConf *study.Config, clk *clock.Clock, timers *scheduler.Scheduler, log *slog.Logger) error {
	gcal, err := calendar.NewGoogle(ctx, conf.GoogleCredentialsPath)
	if err != nil {
		return fmt.Errorf("create calendar client: %w", err)
	}

	svc := service.NewCalendarService(conf.GoogleCalendarID, gcal, studyConf, clk, log)
	if err := svc.Sync(ctx); err != nil {
		log.Error("Initial calendar sync failed", "error", err)
	}

	return timers.AddCron(conf.CalendarSyncCron, func() {
		ctx := context.Background()
		if err := svc.Sync(ctx); err != nil {
			log.Error("Calendar sync failed", "error", err)
		}
		if err := svc.CleanupStale(ctx, conf.CalendarLookbackDays); err != nil {
			log.Error("Calendar cleanup failed", "error", err)
		}
	})
}

// newRand returns a dedicated PRNG per service. Each service serializes access
// with its own mutex, so they must not share one.
func newRand() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

func mustLogger(dev bool) *slog.Logger {
	var handler slog.Handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	if dev {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})
	}

	return slog.New(handler)
}
