package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
)

// DefaultRunTimeout - ограничение одного запуска задачи, если не задано в конфиге.
const DefaultRunTimeout = 30 * time.Second

// Job - периодическая задача. Run получает контекст с таймаутом запуска.
type Job interface {
	Name() string
	Run(ctx context.Context) error
}

// JobFunc - задача из функции.
type JobFunc struct {
	JobName string
	Fn      func(ctx context.Context) error
}

func (j JobFunc) Name() string                  { return j.JobName }
func (j JobFunc) Run(ctx context.Context) error { return j.Fn(ctx) }

type Scheduler struct {
	cron       *cron.Cron
	runTimeout time.Duration
	logger     *slog.Logger

	mu   sync.RWMutex
	root context.Context
	jobs map[string]cron.Job
}

// NewScheduler - конструктор планировщика фоновых задач на cron.
func NewScheduler(runTimeout time.Duration, logger *slog.Logger) *Scheduler {
	if runTimeout <= 0 {
		runTimeout = DefaultRunTimeout
	}
	logger = logger.With(slog.String("component", "scheduler"))
	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(newCronLogger(logger, slog.LevelDebug)),
			cron.WithChain(cron.Recover(newCronLogger(logger, slog.LevelError))),
		),
		runTimeout: runTimeout,
		logger:     logger,
		root:       context.Background(),
		jobs:       make(map[string]cron.Job),
	}
}

// Every - регистрирует задачу с периодом interval. Запуск, пришедший во время
// предыдущего запуска той же задачи, пропускается.
func (s *Scheduler) Every(interval time.Duration, job Job) error {
	if interval <= 0 {
		return fmt.Errorf("job %s: interval must be positive, got %s", job.Name(), interval)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.jobs[job.Name()]; ok {
		return fmt.Errorf("job %s already registered", job.Name())
	}

	skip := newCronLogger(s.logger.With(slog.String("job", job.Name())), slog.LevelWarn)
	wrapped := cron.NewChain(cron.SkipIfStillRunning(skip)).Then(cron.FuncJob(func() { s.run(job) }))

	schedule := "@every " + interval.String()
	if _, err := s.cron.AddJob(schedule, wrapped); err != nil {
		return fmt.Errorf("job %s: %w", job.Name(), err)
	}
	s.jobs[job.Name()] = wrapped

	s.logger.Info("job registered", slog.String("job", job.Name()), slog.String("schedule", schedule))
	return nil
}

// Start - первый запуск всех задач сразу, затем по расписанию до отмены ctx.
// Блокирует до остановки и завершения выполняющихся запусков.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	s.root = ctx
	jobs := make([]cron.Job, 0, len(s.jobs))
	for _, j := range s.jobs {
		jobs = append(jobs, j)
	}
	s.mu.Unlock()

	s.logger.Info("scheduler started", slog.Int("jobs", len(jobs)))
	var wg sync.WaitGroup
	for _, j := range jobs {
		wg.Add(1)
		go func(j cron.Job) {
			defer wg.Done()
			j.Run()
		}(j)
	}
	s.cron.Start()

	<-ctx.Done()
	<-s.cron.Stop().Done()
	wg.Wait()
	s.logger.Info("scheduler stopped")
}

// Trigger - внеплановый запуск задачи по имени с той же политикой пропуска.
// Возвращает false, если задача не зарегистрирована.
func (s *Scheduler) Trigger(name string) bool {
	s.mu.RLock()
	j, ok := s.jobs[name]
	s.mu.RUnlock()
	if !ok {
		return false
	}
	j.Run()
	return true
}

// run - один запуск задачи; ошибка логируется и не останавливает планировщик
func (s *Scheduler) run(job Job) {
	s.mu.RLock()
	root := s.root
	s.mu.RUnlock()

	ctx, cancel := context.WithTimeout(root, s.runTimeout)
	defer cancel()

	started := time.Now()
	s.logger.Debug("job started", slog.String("job", job.Name()))
	if err := job.Run(ctx); err != nil {
		s.logger.Error("job failed",
			slog.String("job", job.Name()),
			slog.Duration("duration", time.Since(started)),
			slog.String("error", err.Error()),
		)
		return
	}
	s.logger.Debug("job completed", slog.String("job", job.Name()), slog.Duration("duration", time.Since(started)))
}
