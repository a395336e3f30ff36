package rates

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/shopspring/decimal"
)

// Бизнес-логика - получение курсов, расчёт изменений

type Service interface {
	// GetAllRates - последние курсы по всем парам
	GetAllRates(ctx context.Context) ([]domain.Rate, error)
	// GetRate - текущий курс пары, мин/макс за 24ч и изменение за 1ч
	GetRate(ctx context.Context, source, target string) (RateStats, error)
	// GetHistory - история пары за окно [from, to]
	GetHistory(ctx context.Context, source, target string, from, to time.Time) ([]domain.Rate, error)
}

type RateReader interface {
	GetAllLatest(ctx context.Context) ([]domain.Rate, error)
	GetLatest(ctx context.Context, source, target string) (*domain.Rate, error)
	History(ctx context.Context, source, target string, from, to time.Time) ([]domain.Rate, error)
	GetMinAndMax(ctx context.Context, source, target string, since time.Time) (min, max domain.Rate, err error)
	GetBefore(ctx context.Context, source, target string, before time.Time) (*domain.Rate, error)
}

type RateStats struct {
	Source      string
	Target      string
	Price       decimal.Decimal
	Min24h      decimal.Decimal
	Max24h      decimal.Decimal
	Change1hPct decimal.Decimal
	UpdatedAt   time.Time
}

var hundred = decimal.NewFromInt(100)

// pctPrecision - знаков после запятой в проценте изменения.
const pctPrecision = 4

type service struct {
	rateRepo RateReader
	clock    Clock
	logger   *slog.Logger
}

func NewService(rateRepo RateReader, logger *slog.Logger) Service {
	return NewServiceWithClock(rateRepo, NewRealClock(), logger)
}

// NewServiceWithClock - Конструктор для тестов: позволяет подставить фиксированные "часы".
func NewServiceWithClock(rateRepo RateReader, clk Clock, logger *slog.Logger) Service {
	return &service{
		rateRepo: rateRepo,
		clock:    clk,
		logger:   logger,
	}
}

func (s *service) GetAllRates(ctx context.Context) ([]domain.Rate, error) {
	out, err := s.rateRepo.GetAllLatest(ctx)
	if err != nil {
		s.logger.Error("failed to get latest rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("get latest rates: %w", err)
	}
	if len(out) == 0 {
		s.logger.Warn("no latest rates available")
		return nil, ErrRateNotFound
	}
	return out, nil
}

func (s *service) GetRate(ctx context.Context, source, target string) (RateStats, error) {
	current, err := s.rateRepo.GetLatest(ctx, source, target)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Warn("rate not found", slog.String("source", source), slog.String("target", target))
			return RateStats{}, ErrRateNotFound
		}
		s.logger.Error("failed to get current rate",
			slog.String("source", source), slog.String("target", target), slog.String("error", err.Error()))
		return RateStats{}, fmt.Errorf("get current rate: %w", err)
	}

	now := s.clock.Now()

	// Мин/макс за последние 24 часа
	since24h := now.Add(-24 * time.Hour)
	minRate, maxRate, err := s.rateRepo.GetMinAndMax(ctx, source, target, since24h)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("no min/max within 24h", slog.String("source", source), slog.Time("since", since24h))
		} else {
			s.logger.Error("failed to get min and max rates", slog.String("source", source), slog.String("error", err.Error()))
		}
		return RateStats{}, ErrMinMaxPrice
	}

	// Курс час назад
	hourAgo := now.Add(-time.Hour)
	old, err := s.rateRepo.GetBefore(ctx, source, target, hourAgo)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug("no rate an hour ago", slog.String("source", source), slog.Time("at", hourAgo))
			return RateStats{}, ErrHourAgoPrice
		}
		s.logger.Error("failed to get rate an hour ago", slog.String("source", source), slog.String("error", err.Error()))
		return RateStats{}, fmt.Errorf("get hour-ago rate: %w", err)
	}
	if old.Value.IsZero() {
		s.logger.Warn("old rate is zero, cannot compute percentage change", slog.String("source", source))
		return RateStats{}, ErrHourAgoPrice
	}

	changePct := current.Value.Sub(old.Value).Div(old.Value).Mul(hundred).Round(pctPrecision)

	s.logger.Debug("computed stats",
		slog.String("source", source),
		slog.String("target", target),
		slog.String("min", minRate.Value.String()),
		slog.String("max", maxRate.Value.String()),
		slog.String("change_pct", changePct.String()),
	)

	return RateStats{
		Source:      current.Source,
		Target:      current.Target,
		Price:       current.Value,
		Min24h:      minRate.Value,
		Max24h:      maxRate.Value,
		Change1hPct: changePct,
		UpdatedAt:   current.Time,
	}, nil
}

func (s *service) GetHistory(ctx context.Context, source, target string, from, to time.Time) ([]domain.Rate, error) {
	if from.After(to) {
		return nil, ErrInvalidRange
	}
	out, err := s.rateRepo.History(ctx, source, target, from, to)
	if err != nil {
		s.logger.Error("failed to get history",
			slog.String("source", source), slog.String("target", target), slog.String("error", err.Error()))
		return nil, fmt.Errorf("get history: %w", err)
	}
	if len(out) == 0 {
		return nil, ErrRateNotFound
	}
	return out, nil
}
