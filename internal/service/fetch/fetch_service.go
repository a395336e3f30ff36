package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
)

type Service interface {
	// UpdateRates - один цикл: котировки провайдера -> валидация -> БД -> публикация.
	UpdateRates(ctx context.Context, p provider.LatestRateProvider) (int, error)
	// BackfillHistory - загрузка истории символа code с валютой target.
	BackfillHistory(ctx context.Context, p provider.HistoricalRateProvider, code, target string) (int, error)
}

// RateWriter - SaveRates пишет последний курс и историю атомарно.
type RateWriter interface {
	SaveRates(ctx context.Context, quotes []domain.Quote) error
	SaveHistory(ctx context.Context, quotes []domain.Quote) error
}

// Publisher - получатель сохранённых котировок (кэш, pub/sub).
type Publisher interface {
	Publish(ctx context.Context, quotes []domain.Quote) error
}

type fetchService struct {
	rateRepo  RateWriter
	publisher Publisher
	now       func() time.Time
	logger    *slog.Logger
}

// NewService - конструктор сервиса получения и сохранения курсов. publisher может быть nil.
func NewService(rateRepo RateWriter, publisher Publisher, logger *slog.Logger) Service {
	return NewServiceWithClock(rateRepo, publisher, func() time.Time { return time.Now().UTC() }, logger)
}

// NewServiceWithClock - конструктор для тестов с фиксированным временем.
func NewServiceWithClock(rateRepo RateWriter, publisher Publisher, now func() time.Time, logger *slog.Logger) Service {
	return &fetchService{
		rateRepo:  rateRepo,
		publisher: publisher,
		now:       now,
		logger:    logger,
	}
}

func (s *fetchService) UpdateRates(ctx context.Context, p provider.LatestRateProvider) (int, error) {
	quotes, err := p.GetRates(ctx)
	if err != nil {
		s.logger.Error("fetch rates", slog.String("provider", p.Name()), slog.String("error", err.Error()))
		return 0, fmt.Errorf("fetch rates from %s: %w", p.Name(), err)
	}

	valid := s.filter(quotes, p.Name())
	if len(valid) == 0 {
		s.logger.Warn("no valid quotes", slog.String("provider", p.Name()), slog.Int("received", len(quotes)))
		return 0, nil
	}

	if err := s.rateRepo.SaveRates(ctx, valid); err != nil {
		return 0, fmt.Errorf("save rates: %w", err)
	}

	s.publish(ctx, valid)

	s.logger.Info("rates updated",
		slog.String("provider", p.Name()),
		slog.Int("received", len(quotes)),
		slog.Int("saved", len(valid)),
	)
	return len(valid), nil
}

func (s *fetchService) BackfillHistory(ctx context.Context, p provider.HistoricalRateProvider, code, target string) (int, error) {
	history, err := p.GetHistoricalRates(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("fetch history %s from %s: %w", code, p.Name(), err)
	}

	// История приходит без валюты: проставляем её из конфигурации
	quotes := make([]domain.Quote, 0, len(history))
	for _, h := range history {
		quotes = append(quotes, domain.NewQuote(code, target, h.Price, h.Time))
	}

	valid := s.filter(quotes, p.Name())
	if err := s.rateRepo.SaveHistory(ctx, valid); err != nil {
		return 0, fmt.Errorf("save history %s: %w", code, err)
	}

	s.logger.Info("history backfilled",
		slog.String("provider", p.Name()),
		slog.String("symbol", code),
		slog.Int("saved", len(valid)),
	)
	return len(valid), nil
}

// filter - отбрасывает неопознанные и невалидные котировки; цикл при этом не падает.
func (s *fetchService) filter(quotes []domain.Quote, providerName string) []domain.Quote {
	now := s.now()
	out := make([]domain.Quote, 0, len(quotes))
	for _, q := range quotes {
		if !q.Identified() {
			s.logger.Warn("skip unidentified quote",
				slog.String("provider", providerName),
				slog.String("source", q.Source),
				slog.String("target", q.TargetCode()),
			)
			continue
		}
		if err := q.Validate(now); err != nil {
			s.logger.Warn("skip invalid quote",
				slog.String("provider", providerName),
				slog.String("source", q.Source),
				slog.String("target", q.TargetCode()),
				slog.String("error", err.Error()),
			)
			continue
		}
		out = append(out, q)
	}
	return out
}

func (s *fetchService) publish(ctx context.Context, quotes []domain.Quote) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(ctx, quotes); err != nil {
		s.logger.Warn("publish rates failed", slog.String("error", err.Error()))
	}
}
