package app

import (
	"log/slog"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/config"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
	"github.com/NastyaGoryachaya/trading-service/internal/provider/random"
	"github.com/NastyaGoryachaya/trading-service/internal/provider/retry"
	"github.com/NastyaGoryachaya/trading-service/internal/provider/yahoo"
)

const defaultRandomInterval = 5 * time.Second

func providerName(cfg *config.Config) string {
	if cfg.Scheduler.Type == config.SchedulerRandom {
		return "random"
	}
	return "yahoo"
}

func yahooClient(cfg *config.Config, pairs provider.PairRegistry, log *slog.Logger) *yahoo.Client {
	return yahoo.NewClient(yahoo.Config{
		LatestURL:  cfg.Yahoo.LatestURL,
		HistoryURL: cfg.Yahoo.HistoryURL,
		Timeout:    cfg.Yahoo.Timeout,
		UserAgent:  cfg.Yahoo.UserAgent,
	}, pairs, log)
}

// ratesProvider - fixed: yahoo с повторами и интервалом из конфига; random: фейковый провайдер.
func ratesProvider(cfg *config.Config, pairs provider.PairRegistry, log *slog.Logger) (provider.LatestRateProvider, time.Duration) {
	if cfg.Scheduler.Type == config.SchedulerRandom {
		interval := cfg.Scheduler.RandomInterval
		if interval <= 0 {
			interval = defaultRandomInterval
		}
		return random.New(), interval
	}

	p := retry.Wrap(yahooClient(cfg, pairs, log), retry.Policy{
		MaxRetries:      cfg.Yahoo.Retry.MaxRetries,
		InitialInterval: cfg.Yahoo.Retry.InitialInterval,
		MaxInterval:     cfg.Yahoo.Retry.MaxInterval,
	}, log)
	return p, cfg.Scheduler.Interval
}
