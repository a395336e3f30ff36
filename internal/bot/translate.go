package bot

import (
	"errors"

	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"github.com/NastyaGoryachaya/trading-service/internal/service/subscription"
)

func translateBotError(err error) string {
	switch {
	case errors.Is(err, rates.ErrRateNotFound):
		return "Курс не найден"
	case errors.Is(err, rates.ErrMinMaxPrice), errors.Is(err, rates.ErrHourAgoPrice):
		return "Недостаточно данных для статистики, попробуйте позже"
	case errors.Is(err, subscription.ErrInvalidInterval):
		return "Некорректный интервал"
	case errors.Is(err, subscription.ErrInvalidPair):
		return "Некорректная пара: нужны разные source и target"
	default:
		return "Внутренняя ошибка сервиса, попробуйте позже"
	}
}
