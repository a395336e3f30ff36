package bot

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"gopkg.in/telebot.v4"
)

// Config - конфигурация бота
type Config struct {
	Token           string
	LongPollTimeout time.Duration
	// DefaultTarget - валюта для /rates {symbol} без второго аргумента
	DefaultTarget string
	// DefaultInterval - интервал /startauto без аргумента, в минутах
	DefaultInterval int
}

// RatesReader - чтение курсов (rates.Service)
type RatesReader interface {
	GetAllRates(ctx context.Context) ([]domain.Rate, error)
	GetRate(ctx context.Context, source, target string) (rates.RateStats, error)
}

// Subscriptions - управление авторассылкой (subscription.Service)
type Subscriptions interface {
	Enable(ctx context.Context, sub domain.Subscription) error
	Disable(ctx context.Context, chatID int64, source, target string) (int64, error)
}

type Bot struct {
	bot    *telebot.Bot
	cfg    Config
	rates  RatesReader
	subs   Subscriptions
	logger *slog.Logger
}

// NewClient - клиент Telegram с long polling. Общий для бота и рассылки.
func NewClient(cfg Config) (*telebot.Bot, error) {
	if cfg.LongPollTimeout <= 0 {
		cfg.LongPollTimeout = 10 * time.Second
	}
	return telebot.NewBot(telebot.Settings{
		Token:  cfg.Token,
		Poller: &telebot.LongPoller{Timeout: cfg.LongPollTimeout},
	})
}

// New регистрирует команды на клиенте
func New(client *telebot.Bot, cfg Config, rates RatesReader, subs Subscriptions, logger *slog.Logger) *Bot {
	if cfg.DefaultTarget == "" {
		cfg.DefaultTarget = "USD"
	}
	b := &Bot{
		bot:    client,
		cfg:    cfg,
		rates:  rates,
		subs:   subs,
		logger: logger.With(slog.String("component", "bot")),
	}

	client.Handle("/start", b.handleStart)
	client.Handle("/rates", b.handleRates)
	client.Handle("/startauto", b.handleStartAuto)
	client.Handle("/stopauto", b.handleStopAuto)
	return b
}

// Start запускает long polling до отмены ctx
func (b *Bot) Start(ctx context.Context) {
	go func() {
		<-ctx.Done()
		b.bot.Stop()
	}()
	b.logger.Info("bot started")
	b.bot.Start()
	b.logger.Info("bot stopped")
}
