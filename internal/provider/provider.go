package provider

import (
	"context"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
)

// LatestRateProvider - источник текущих курсов для набора пар.
type LatestRateProvider interface {
	Name() string
	GetRates(ctx context.Context) ([]domain.Quote, error)
}

// SingleRateProvider - текущий курс одного символа провайдера.
type SingleRateProvider interface {
	GetLatestRate(ctx context.Context, symbol string) (domain.Quote, error)
}

// HistoricalRateProvider - история курсов по коду символа.
type HistoricalRateProvider interface {
	Name() string
	GetHistoricalRates(ctx context.Context, code string) ([]domain.Quote, error)
}

// PairRegistry - реестр пар. Читается заново на каждом цикле.
type PairRegistry interface {
	GetAll(ctx context.Context) ([]domain.Pair, error)
}
