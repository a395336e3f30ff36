package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/config"
	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Последние котировки в Redis: ключ на пару + канал для подписчиков

const keyPrefix = "rate:"

// NewClient - подключение к Redis с проверкой ping.
func NewClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", cfg.Addr, err)
	}
	return client, nil
}

type Publisher struct {
	client  redis.UniversalClient
	ttl     time.Duration
	channel string
	logger  *slog.Logger
}

func NewPublisher(client redis.UniversalClient, ttl time.Duration, channel string, logger *slog.Logger) *Publisher {
	return &Publisher{client: client, ttl: ttl, channel: channel, logger: logger}
}

// Key - ключ последнего курса пары.
func Key(source, target string) string {
	return keyPrefix + source + ":" + target
}

// Publish - одним pipeline: SET на каждую котировку и PUBLISH всего пакета.
func (p *Publisher) Publish(ctx context.Context, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}

	rates := toRates(quotes)
	batch, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("marshal rates: %w", err)
	}

	pipe := p.client.Pipeline()
	for _, r := range rates {
		payload, err := json.Marshal(r)
		if err != nil {
			return fmt.Errorf("marshal rate %s/%s: %w", r.Source, r.Target, err)
		}
		pipe.Set(ctx, Key(r.Source, r.Target), payload, p.ttl)
	}
	pipe.Publish(ctx, p.channel, batch)

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("redis pipeline: %w", err)
	}
	p.logger.Debug("rates published", slog.Int("count", len(rates)), slog.String("channel", p.channel))
	return nil
}

func toRates(quotes []domain.Quote) []domain.Rate {
	out := make([]domain.Rate, 0, len(quotes))
	for _, q := range quotes {
		out = append(out, domain.Rate{Source: q.Source, Target: q.TargetCode(), Value: q.Price, Time: q.Time})
	}
	return out
}
