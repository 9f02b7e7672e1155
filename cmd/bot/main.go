package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/aliskhannn/trivia-quiz-bot/internal/config"
	"github.com/aliskhannn/trivia-quiz-bot/internal/delivery/telegram"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres"
	"github.com/aliskhannn/trivia-quiz-bot/internal/infra/postgres/repository"
	"github.com/aliskhannn/trivia-quiz-bot/internal/logger"
	"github.com/aliskhannn/trivia-quiz-bot/internal/service"
	"github.com/aliskhannn/trivia-quiz-bot/internal/storage"
	"github.com/aliskhannn/trivia-quiz-bot/internal/trivia"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	zl, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = zl.Sync() }()

	bot, err := tgbotapi.NewBotAPI(cfg.TelegramAPIToken)
	if err != nil {
		zl.Fatal("failed to create bot API", zap.Error(err))
	}
	bot.Debug = cfg.Env == "local"

	zl.Info("authorized on telegram", zap.String("username", bot.Self.UserName))

	// Set commands.
	commands := []tgbotapi.BotCommand{
		{
			Command:     "start",
			Description: "Start the bot",
		},
		{
			Command:     "play",
			Description: "Pick a difficulty and start a round",
		},
		{
			Command:     "score",
			Description: "Show current round and personal best",
		},
		{
			Command:     "leaderboard",
			Description: "Show top players",
		},
		{
			Command:     "mute",
			Description: "Toggle sound cues",
		},
		{
			Command:     "remind",
			Description: "Toggle the daily reminder",
		},
		{
			Command:     "help",
			Description: "Help",
		},
	}

	if _, err = bot.Request(tgbotapi.NewSetMyCommands(commands...)); err != nil {
		zl.Warn("failed to set bot commands", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	dsn, err := cfg.DB.DSN()
	if err != nil {
		zl.Fatal("database is not configured", zap.Error(err))
	}

	pool, err := postgres.NewPool(ctx, dsn, postgres.PoolConfig{
		MaxConns:        cfg.DB.MaxConnections,
		MaxConnLifetime: cfg.DB.MaxConnLifetime,
	})
	if err != nil {
		zl.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	settingsRepo := repository.NewSettingsRepository(pool)
	roundRepo := repository.NewRoundRepository(pool)

	fetcher := trivia.NewClient(cfg.Trivia.BaseURL, cfg.Trivia.Timeout)

	sessions := storage.NewSessionStorage()
	reminderMessages := storage.NewReminderStorage()

	sounds := telegram.NewCallbackSounds(bot, zl)

	quizService := service.NewQuizService(sessions, fetcher, settingsRepo, roundRepo, sounds, zl)
	settingsService := service.NewSettingsService(settingsRepo)
	leaderboardService := service.NewLeaderboardService(roundRepo, cfg.Leaderboard.Limit)
	reminderService := service.NewReminderService(settingsRepo, cfg.Reminders.Schedule, zl)

	handler := telegram.NewHandler(
		bot,
		zl,
		quizService,
		settingsService,
		leaderboardService,
		reminderMessages,
	)

	// The handler renders fetch results and reminders, so it is attached
	// after both sides exist.
	quizService.SetPresenter(handler)
	reminderService.SetNotifier(handler)

	if cfg.Reminders.Enabled {
		go reminderService.Start(ctx)
	}

	if err := handler.Run(ctx); err != nil && ctx.Err() == nil {
		zl.Fatal("handler stopped", zap.Error(err))
	}

	zl.Info("shutdown signal received")
}
