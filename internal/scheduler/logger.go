package scheduler

import (
	"context"
	"log/slog"

	"github.com/robfig/cron/v3"
)

// cronLogger - cron.Logger поверх slog. Info-сообщения cron пишутся с уровнем info.
type cronLogger struct {
	logger *slog.Logger
	info   slog.Level
}

var _ cron.Logger = cronLogger{}

func newCronLogger(logger *slog.Logger, info slog.Level) cronLogger {
	return cronLogger{logger: logger, info: info}
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Log(context.Background(), l.info, "cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	args := append([]interface{}{slog.String("error", err.Error())}, keysAndValues...)
	l.logger.Error("cron: "+msg, args...)
}
