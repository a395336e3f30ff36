package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	botpkg "github.com/NastyaGoryachaya/trading-service/internal/bot"
	"github.com/NastyaGoryachaya/trading-service/internal/config"
	"github.com/NastyaGoryachaya/trading-service/internal/consts"
	"github.com/NastyaGoryachaya/trading-service/internal/infra/cache"
	repopg "github.com/NastyaGoryachaya/trading-service/internal/repository/postgres"
	"github.com/NastyaGoryachaya/trading-service/internal/scheduler"
	fetchsvc "github.com/NastyaGoryachaya/trading-service/internal/service/fetch"
	portfoliosvc "github.com/NastyaGoryachaya/trading-service/internal/service/portfolio"
	ratesvc "github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	subsvc "github.com/NastyaGoryachaya/trading-service/internal/service/subscription"
	usersvc "github.com/NastyaGoryachaya/trading-service/internal/service/users"
	"github.com/NastyaGoryachaya/trading-service/internal/transport/httptransport"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

type App struct {
	cfg *config.Config
	log *slog.Logger

	db    *pgxpool.Pool
	redis *redis.Client
	e     *echo.Echo
	serv  *http.Server

	rateRepo *repopg.RateRepo
	pairRepo *repopg.PairRepo

	fetch fetchsvc.Service

	scheduler *scheduler.Scheduler
	bot       *botpkg.Bot
}

func NewApp(ctx context.Context, cfg *config.Config, log *slog.Logger, db *pgxpool.Pool) (*App, error) {
	app := &App{cfg: cfg, log: log, db: db}

	app.rateRepo = repopg.NewRateRepository(db)
	app.pairRepo = repopg.NewPairRepository(db, providerName(cfg))
	subsRepo := repopg.NewSubscriptionRepository(db)

	var publisher fetchsvc.Publisher
	if cfg.Redis.Enabled {
		client, err := cache.NewClient(ctx, &cfg.Redis)
		if err != nil {
			return nil, err
		}
		app.redis = client
		publisher = cache.NewPublisher(client, cfg.Redis.TTL, cfg.Redis.Channel, log)
	}

	userRepo := repopg.NewUserRepository(db)
	rates := ratesvc.NewService(app.rateRepo, log)
	users := usersvc.NewService(userRepo, log)
	portfolio := portfoliosvc.NewService(portfoliosvc.Repositories{
		Users:      userRepo,
		Portfolios: repopg.NewPortfolioRepository(db),
		Assets:     repopg.NewAssetRepository(db),
		Favorites:  repopg.NewFavoriteRepository(db),
		Rates:      app.rateRepo,
	}, log)
	app.fetch = fetchsvc.NewService(app.rateRepo, publisher, log)

	e := echo.New()
	e.HideBanner = true
	app.e = e

	httptransport.NewRatesHandler(log, rates, cfg.Server.RequestTimeout).RegisterRoutes(e)
	httptransport.NewPortfolioHandler(log, portfolio, cfg.Server.RequestTimeout).RegisterRoutes(e)
	httptransport.NewUsersHandler(log, users, cfg.Server.RequestTimeout).RegisterRoutes(e)
	e.GET("/health", httptransport.Health)

	app.serv = &http.Server{
		Addr:         cfg.Server.Addr,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		Handler:      e,
	}

	app.scheduler = scheduler.NewScheduler(cfg.Scheduler.RunTimeout, log)
	if cfg.Scheduler.Enabled {
		interval, job := app.ratesJob()
		if err := app.scheduler.Every(interval, job); err != nil {
			return nil, err
		}
	}

	if cfg.Telegram.Enabled {
		botCfg := botpkg.Config{
			Token:           cfg.Telegram.Token,
			LongPollTimeout: 10 * time.Second,
			DefaultTarget:   consts.USD,
			DefaultInterval: cfg.Telegram.DefaultAutoInterval,
		}
		client, err := botpkg.NewClient(botCfg)
		if err != nil {
			log.Error("telegram init failed", slog.String("error", err.Error()))
			return nil, err
		}
		subs := subsvc.New(client, subsRepo, rates, log)
		app.bot = botpkg.New(client, botCfg, rates, subs, log)

		// Проверка подписок раз в минуту
		err = app.scheduler.Every(time.Minute, scheduler.JobFunc{
			JobName: "subscriptions",
			Fn: func(ctx context.Context) error {
				_, err := subs.DispatchDue(ctx)
				return err
			},
		})
		if err != nil {
			return nil, err
		}
	}

	log.Info("app initialized",
		slog.Bool("scheduler_enabled", cfg.Scheduler.Enabled),
		slog.String("scheduler_type", cfg.Scheduler.Type),
		slog.Bool("redis_enabled", cfg.Redis.Enabled),
		slog.Bool("telegram_enabled", cfg.Telegram.Enabled),
		slog.String("http_addr", cfg.Server.Addr),
	)
	return app, nil
}

// ratesJob - задача обновления курсов для выбранного типа планировщика.
func (a *App) ratesJob() (time.Duration, scheduler.Job) {
	p, interval := ratesProvider(a.cfg, a.pairRepo, a.log)
	return interval, scheduler.JobFunc{
		JobName: p.Name() + "-rates",
		Fn: func(ctx context.Context) error {
			_, err := a.fetch.UpdateRates(ctx, p)
			return err
		},
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		a.scheduler.Start(ctx)
	}()

	if a.cfg.Scheduler.Enabled && a.cfg.Scheduler.Type == config.SchedulerFixed && len(a.cfg.Scheduler.Backfill) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.backfill(ctx)
		}()
	}

	if a.bot != nil {
		a.log.Info("starting bot")
		wg.Add(1)
		go func() {
			defer wg.Done()
			a.bot.Start(ctx)
		}()
	}

	a.log.Info("starting server", slog.String("addr", a.cfg.Server.Addr))
	srvErr := make(chan error, 1)
	go func() {
		if err := a.e.StartServer(a.serv); err != nil && !errors.Is(err, http.ErrServerClosed) {
			srvErr <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-srvErr:
		runErr = fmt.Errorf("http server: %w", err)
		cancel()
	}

	shutdownErr := a.Shutdown(context.Background())
	wg.Wait()
	a.closeStores()
	return errors.Join(runErr, shutdownErr)
}

// backfill - однократная загрузка истории для символов из конфига
func (a *App) backfill(ctx context.Context) {
	client := yahooClient(a.cfg, a.pairRepo, a.log)
	for _, code := range a.cfg.Scheduler.Backfill {
		runCtx, cancel := context.WithTimeout(ctx, a.cfg.Scheduler.RunTimeout)
		_, err := a.fetch.BackfillHistory(runCtx, client, code, a.cfg.Scheduler.BackfillTarget)
		cancel()
		if err != nil {
			a.log.Error("history backfill failed", slog.String("symbol", code), slog.String("error", err.Error()))
		}
	}
}

func (a *App) Shutdown(ctx context.Context) error {
	shCtx, cancel := context.WithTimeout(ctx, a.cfg.Server.ShutdownTimeout)
	defer cancel()

	// слушает a.serv, а не собственный e.Server
	if err := a.serv.Shutdown(shCtx); err != nil {
		a.log.Error("http shutdown error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

func (a *App) closeStores() {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Warn("redis close error", slog.String("error", err.Error()))
		}
	}
	if a.db != nil {
		a.db.Close()
	}
	a.log.Info("application stopped")
}
