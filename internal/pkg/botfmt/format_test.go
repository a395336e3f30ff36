package botfmt

import (
	"testing"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestHumanPrice(t *testing.T) {
	t.Parallel()
	require.Equal(t, "35.50", HumanPrice(decimal.RequireFromString("35.5")))
	require.Equal(t, "0.9213", HumanPrice(decimal.RequireFromString("0.92129")))
}

func TestRatesMessage(t *testing.T) {
	t.Parallel()
	msg := RatesMessage([]domain.Rate{
		{Source: "USD", Target: "EUR", Value: decimal.RequireFromString("0.92")},
		{Source: "BZ=F", Target: "USD", Value: decimal.RequireFromString("35.5")},
	})
	require.Equal(t, "USD/EUR | Текущий курс: 0.9200\nBZ=F/USD | Текущий курс: 35.50", msg)
}

func TestRateDetails(t *testing.T) {
	t.Parallel()
	msg := RateDetails(rates.RateStats{
		Source: "BZ=F", Target: "USD",
		Price:       decimal.RequireFromString("105"),
		Min24h:      decimal.RequireFromString("90"),
		Max24h:      decimal.RequireFromString("110"),
		Change1hPct: decimal.RequireFromString("5"),
		UpdatedAt:   time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC),
	})
	require.Contains(t, msg, "[BZ=F/USD]")
	require.Contains(t, msg, "Изменение за 1ч: +5.00%")
	require.Contains(t, msg, "Обновлено: 2025-09-01T12:00:00Z")

	neg := RateDetails(rates.RateStats{Change1hPct: decimal.RequireFromString("-1.5")})
	require.Contains(t, neg, "Изменение за 1ч: -1.50%")
}
