package retry

import (
	"context"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
	"github.com/cenkalti/backoff/v4"
)

// Policy - ограниченный экспоненциальный повтор.
type Policy struct {
	MaxRetries      uint64
	InitialInterval time.Duration
	MaxInterval     time.Duration
}

// Provider - оборачивает GetRates повтором при сетевых ошибках (ErrNetwork).
// Любая другая ошибка возвращается сразу.
type Provider struct {
	next   provider.LatestRateProvider
	policy Policy
	logger *slog.Logger
}

var _ provider.LatestRateProvider = (*Provider)(nil)

func Wrap(next provider.LatestRateProvider, policy Policy, logger *slog.Logger) *Provider {
	if policy.InitialInterval <= 0 {
		policy.InitialInterval = 500 * time.Millisecond
	}
	if policy.MaxInterval <= 0 {
		policy.MaxInterval = 5 * time.Second
	}
	return &Provider{next: next, policy: policy, logger: logger}
}

func (p *Provider) Name() string { return p.next.Name() }

func (p *Provider) GetRates(ctx context.Context) ([]domain.Quote, error) {
	var quotes []domain.Quote
	attempt := 0

	op := func() error {
		attempt++
		q, err := p.next.GetRates(ctx)
		if err != nil {
			if !provider.IsRetryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		quotes = q
		return nil
	}

	notify := func(err error, wait time.Duration) {
		p.logger.Warn("provider call failed, retrying",
			slog.String("provider", p.next.Name()),
			slog.Int("attempt", attempt),
			slog.Duration("wait", wait),
			slog.String("error", err.Error()),
		)
	}

	if err := backoff.RetryNotify(op, backoff.WithContext(backoff.WithMaxRetries(p.newBackOff(), p.policy.MaxRetries), ctx), notify); err != nil {
		return nil, err
	}
	return quotes, nil
}

func (p *Provider) newBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = p.policy.InitialInterval
	b.MaxInterval = p.policy.MaxInterval
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
