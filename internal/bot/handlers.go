package bot

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/pkg/botfmt"
	"gopkg.in/telebot.v4"
)

var ErrInvalidInterval = errors.New("invalid interval")

const requestTimeout = 3 * time.Second

// handleStart - справка по командам
func (b *Bot) handleStart(c telebot.Context) error {
	return c.Send("Привет! Доступные команды:\n" +
		"/rates - курсы по всем парам\n" +
		"/rates {source} {target} - курс пары с мин/макс за 24ч (например /rates BZ=F USD)\n" +
		"/startauto {минуты} - включить автообновления по всем парам\n" +
		"/startauto {минуты} {source} {target} - автообновления одной пары\n" +
		"/stopauto [{source} {target}] - отключить автообновления")
}

// handleRates - без аргументов все пары, с аргументами подробности по одной
func (b *Bot) handleRates(c telebot.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	args := c.Args()
	if len(args) == 0 {
		list, err := b.rates.GetAllRates(ctx)
		if err != nil {
			b.logError("/rates", err)
			return c.Send(translateBotError(err))
		}
		return c.Send(botfmt.RatesMessage(list))
	}
	if len(args) > 2 {
		return c.Send("Использование: /rates {source} {target}")
	}

	source := strings.ToUpper(args[0])
	target := b.cfg.DefaultTarget
	if len(args) == 2 {
		target = strings.ToUpper(args[1])
	}

	item, err := b.rates.GetRate(ctx, source, target)
	if err != nil {
		b.logError("/rates", err, slog.String("source", source), slog.String("target", target))
		return c.Send(translateBotError(err))
	}
	return c.Send(botfmt.RateDetails(item))
}

// handleStartAuto - /startauto [минуты] [source [target]]: без пары - сводка по всем парам
func (b *Bot) handleStartAuto(c telebot.Context) error {
	chatID := c.Chat().ID
	args := c.Args()
	if len(args) > 3 {
		return c.Send("Использование: /startauto {минуты} {source} {target}")
	}

	sub := domain.Subscription{ChatID: chatID, IntervalMinutes: b.cfg.DefaultInterval}
	if len(args) > 0 {
		m, err := parseMinutes(args[0])
		if err != nil {
			b.logger.Warn("bot: /startauto invalid interval", slog.Int64("chat_id", chatID), slog.String("arg", args[0]))
			return c.Send("Некорректный интервал. Пример: /startauto 10")
		}
		sub.IntervalMinutes = m
		sub.Source, sub.Target = b.pairArgs(args[1:])
	}
	if sub.IntervalMinutes <= 0 {
		return c.Send("Укажи интервал в минутах: /startauto 10")
	}

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	if err := b.subs.Enable(ctx, sub); err != nil {
		b.logError("/startauto", err, slog.Int64("chat_id", chatID))
		return c.Send(translateBotError(err))
	}
	if sub.AllPairs() {
		return c.Send(fmt.Sprintf("Автообновления включены! (каждые %d мин.)", sub.IntervalMinutes))
	}
	return c.Send(fmt.Sprintf("Автообновления %s/%s включены! (каждые %d мин.)", sub.Source, sub.Target, sub.IntervalMinutes))
}

// handleStopAuto - /stopauto [source [target]]: без пары снимает все подписки чата
func (b *Bot) handleStopAuto(c telebot.Context) error {
	args := c.Args()
	if len(args) > 2 {
		return c.Send("Использование: /stopauto {source} {target}")
	}
	source, target := b.pairArgs(args)

	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()

	removed, err := b.subs.Disable(ctx, c.Chat().ID, source, target)
	if err != nil {
		b.logError("/stopauto", err, slog.Int64("chat_id", c.Chat().ID))
		return c.Send(translateBotError(err))
	}
	if removed == 0 {
		return c.Send("Активных автообновлений нет")
	}
	return c.Send("Автообновления отключены!")
}

// pairArgs - пара из аргументов команды; одна валюта дополняется DefaultTarget
func (b *Bot) pairArgs(args []string) (string, string) {
	switch len(args) {
	case 0:
		return "", ""
	case 1:
		return strings.ToUpper(args[0]), b.cfg.DefaultTarget
	default:
		return strings.ToUpper(args[0]), strings.ToUpper(args[1])
	}
}

func (b *Bot) logError(cmd string, err error, attrs ...any) {
	args := append([]any{slog.String("cmd", cmd), slog.String("error", err.Error())}, attrs...)
	b.logger.Warn("bot: command failed", args...)
}

// parseMinutes - минуты > 0
func parseMinutes(s string) (int, error) {
	m, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || m <= 0 {
		return 0, ErrInvalidInterval
	}
	return m, nil
}
