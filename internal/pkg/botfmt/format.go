package botfmt

import (
	"fmt"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"github.com/shopspring/decimal"
)

// RateLine - короткая строка для рассылок и /rates без аргументов.
func RateLine(r domain.Rate) string {
	return fmt.Sprintf("%s/%s | Текущий курс: %s", r.Source, r.Target, HumanPrice(r.Value))
}

// RatesMessage - общий текст по всем парам, по строке на пару.
func RatesMessage(list []domain.Rate) string {
	var b strings.Builder
	for i, r := range list {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(RateLine(r))
	}
	return b.String()
}

// RateDetails - подробное сообщение для /rates {source} {target}.
func RateDetails(s rates.RateStats) string {
	return fmt.Sprintf(
		"[%s/%s]\nТекущий курс: %s\nМинимальный за 24ч: %s\nМаксимальный за 24ч: %s\nИзменение за 1ч: %s%%\nОбновлено: %s",
		s.Source, s.Target,
		HumanPrice(s.Price),
		HumanPrice(s.Min24h),
		HumanPrice(s.Max24h),
		signed(s.Change1hPct),
		s.UpdatedAt.UTC().Format(time.RFC3339),
	)
}

// HumanPrice - два знака после запятой, для курсов меньше единицы четыре.
func HumanPrice(v decimal.Decimal) string {
	if v.Abs().LessThan(decimal.NewFromInt(1)) {
		return v.StringFixed(4)
	}
	return v.StringFixed(2)
}

func signed(v decimal.Decimal) string {
	s := v.StringFixed(2)
	if v.IsPositive() {
		return "+" + s
	}
	return s
}
