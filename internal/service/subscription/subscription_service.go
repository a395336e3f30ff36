package subscription

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/pkg/botfmt"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"gopkg.in/telebot.v4"
)

var (
	ErrInvalidInterval = errors.New("interval must be > 0")
	ErrInvalidPair     = errors.New("subscription pair needs distinct source and target")
	errNoRates         = errors.New("no rates to send")
)

// Sender - отправка сообщений в Telegram (*telebot.Bot).
type Sender interface {
	Send(to telebot.Recipient, what interface{}, opts ...interface{}) (*telebot.Message, error)
}

type Store interface {
	Upsert(ctx context.Context, sub domain.Subscription, from time.Time) error
	Delete(ctx context.Context, chatID int64, source, target string) (int64, error)
	Due(ctx context.Context, now time.Time) ([]domain.Subscription, error)
	Reschedule(ctx context.Context, sub domain.Subscription, at time.Time) error
}

type RatesReader interface {
	GetAllRates(ctx context.Context) ([]domain.Rate, error)
	GetRate(ctx context.Context, source, target string) (rates.RateStats, error)
}

type Service struct {
	sender       Sender
	repo         Store
	rates        RatesReader
	now          func() time.Time
	log          *slog.Logger
	fetchTimeout time.Duration
}

func New(sender Sender, repo Store, rates RatesReader, log *slog.Logger) *Service {
	return NewWithClock(sender, repo, rates, func() time.Time { return time.Now().UTC() }, log)
}

func NewWithClock(sender Sender, repo Store, rates RatesReader, now func() time.Time, log *slog.Logger) *Service {
	return &Service{
		sender:       sender,
		repo:         repo,
		rates:        rates,
		now:          now,
		log:          log,
		fetchTimeout: 4 * time.Second,
	}
}

// Enable - подписка чата на сводку (пустая пара) или на одну пару.
// Повторный вызов для той же пары меняет интервал. Первая отправка - ближайший проход рассылки.
func (s *Service) Enable(ctx context.Context, sub domain.Subscription) error {
	sub.Source = strings.ToUpper(strings.TrimSpace(sub.Source))
	sub.Target = strings.ToUpper(strings.TrimSpace(sub.Target))

	if sub.IntervalMinutes <= 0 {
		return ErrInvalidInterval
	}
	if (sub.Source == "") != (sub.Target == "") || (!sub.AllPairs() && sub.Source == sub.Target) {
		return ErrInvalidPair
	}
	if !sub.AllPairs() {
		// пара без единого курса - скорее всего опечатка
		if _, err := s.rates.GetRate(ctx, sub.Source, sub.Target); errors.Is(err, rates.ErrRateNotFound) {
			return err
		}
	}

	if err := s.repo.Upsert(ctx, sub, s.now()); err != nil {
		s.log.Error("subscriptions.enable failed",
			slog.Int64("chat_id", sub.ChatID),
			slog.String("source", sub.Source),
			slog.String("target", sub.Target),
			slog.String("error", err.Error()))
		return fmt.Errorf("enable subscription: %w", err)
	}
	s.log.Info("subscriptions.enable ok",
		slog.Int64("chat_id", sub.ChatID),
		slog.String("source", sub.Source),
		slog.String("target", sub.Target),
		slog.Int("interval_min", sub.IntervalMinutes))
	return nil
}

// Disable - отписка от пары; с пустым source снимает все подписки чата.
// Возвращает число снятых подписок.
func (s *Service) Disable(ctx context.Context, chatID int64, source, target string) (int64, error) {
	source = strings.ToUpper(strings.TrimSpace(source))
	target = strings.ToUpper(strings.TrimSpace(target))

	n, err := s.repo.Delete(ctx, chatID, source, target)
	if err != nil {
		s.log.Error("subscriptions.disable failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()))
		return 0, fmt.Errorf("disable subscription: %w", err)
	}
	s.log.Info("subscriptions.disable ok", slog.Int64("chat_id", chatID), slog.Int64("removed", n))
	return n, nil
}

// DispatchDue - один проход рассылки по наступившим подпискам.
// Подписка, для которой не удалось собрать или отправить сообщение, остаётся due до следующего прохода.
// Возвращает количество отправленных сообщений.
func (s *Service) DispatchDue(ctx context.Context) (int, error) {
	now := s.now()

	due, err := s.repo.Due(ctx, now)
	if err != nil {
		return 0, fmt.Errorf("find due subscriptions: %w", err)
	}
	if len(due) == 0 {
		s.log.Debug("subscriptions.no_due")
		return 0, nil
	}

	rCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	summary := &summaryOnce{load: s.rates.GetAllRates}
	sent := 0
	for _, sub := range due {
		msg, err := s.message(rCtx, sub, summary)
		if err != nil {
			s.log.Warn("subscriptions.build failed",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("source", sub.Source),
				slog.String("target", sub.Target),
				slog.String("error", err.Error()))
			continue
		}
		if _, err := s.sender.Send(&telebot.Chat{ID: sub.ChatID}, msg); err != nil {
			s.log.Error("subscriptions.send failed",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("error", err.Error()))
			continue
		}
		sent++
		if err := s.repo.Reschedule(ctx, sub, now); err != nil {
			s.log.Error("subscriptions.reschedule failed",
				slog.Int64("chat_id", sub.ChatID),
				slog.String("error", err.Error()))
		}
	}

	s.log.Info("subscriptions.dispatch ok", slog.Int("due", len(due)), slog.Int("sent", sent))
	return sent, nil
}

func (s *Service) message(ctx context.Context, sub domain.Subscription, summary *summaryOnce) (string, error) {
	if sub.AllPairs() {
		return summary.get(ctx)
	}
	stats, err := s.rates.GetRate(ctx, sub.Source, sub.Target)
	if err != nil {
		return "", err
	}
	return botfmt.RateDetails(stats), nil
}

// summaryOnce - сводка по всем парам, загружается не больше раза за проход.
type summaryOnce struct {
	load func(ctx context.Context) ([]domain.Rate, error)
	done bool
	msg  string
	err  error
}

func (o *summaryOnce) get(ctx context.Context) (string, error) {
	if o.done {
		return o.msg, o.err
	}
	o.done = true

	list, err := o.load(ctx)
	switch {
	case err != nil:
		o.err = fmt.Errorf("load rates: %w", err)
	case len(list) == 0:
		o.err = errNoRates
	default:
		o.msg = botfmt.RatesMessage(list)
	}
	return o.msg, o.err
}
