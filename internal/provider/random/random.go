package random

import (
	"context"
	"math/rand"
	"sync"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/consts"
	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
	"github.com/shopspring/decimal"
)

const (
	name = "random"

	// BrentMin, BrentMax - диапазон цены товарной котировки [30, 40).
	BrentMin = 30
	BrentMax = 40

	pricePrecision = 6
)

// Provider - генератор фейковых котировок для окружений без доступа к внешним API.
type Provider struct {
	mu  sync.Mutex
	rnd *rand.Rand
	now func() time.Time
}

var (
	_ provider.LatestRateProvider     = (*Provider)(nil)
	_ provider.SingleRateProvider     = (*Provider)(nil)
	_ provider.HistoricalRateProvider = (*Provider)(nil)
)

func New() *Provider {
	return NewWithSource(rand.NewSource(time.Now().UnixNano()), func() time.Time { return time.Now().UTC() })
}

// NewWithSource - конструктор для тестов: фиксированный seed и часы.
func NewWithSource(src rand.Source, now func() time.Time) *Provider {
	return &Provider{rnd: rand.New(src), now: now}
}

func (p *Provider) Name() string { return name }

// GetRates - две котировки за цикл: USD/EUR в (0, 1) и BZ=F/USD в [30, 40).
func (p *Provider) GetRates(_ context.Context) ([]domain.Quote, error) {
	p.mu.Lock()
	fx := p.positive()
	brent := BrentMin + (BrentMax-BrentMin)*p.rnd.Float64()
	p.mu.Unlock()

	now := p.now()
	return []domain.Quote{
		domain.NewQuote(consts.USD, consts.EUR, round(fx), now),
		domain.NewQuote(consts.Brent, consts.USD, round(brent), now),
	}, nil
}

func (p *Provider) GetLatestRate(context.Context, string) (domain.Quote, error) {
	return domain.Quote{}, provider.NotImplemented("random.GetLatestRate")
}

func (p *Provider) GetHistoricalRates(context.Context, string) ([]domain.Quote, error) {
	return nil, provider.NotImplemented("random.GetHistoricalRates")
}

// positive - Float64 из (0, 1): ноль после округления перевыбирается.
func (p *Provider) positive() float64 {
	for {
		v := p.rnd.Float64()
		if round(v).IsPositive() {
			return v
		}
	}
}

// round - усечение вниз, чтобы не выйти за верхнюю границу диапазона.
func round(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Truncate(pricePrecision)
}
