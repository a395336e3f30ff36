package fetch_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/provider"
	providermocks "github.com/NastyaGoryachaya/trading-service/internal/provider/mocks"
	"github.com/NastyaGoryachaya/trading-service/internal/service/fetch"
	fetchmocks "github.com/NastyaGoryachaya/trading-service/internal/service/fetch/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

var fixedNow = time.Date(2025, 9, 1, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newProvider(ctrl *gomock.Controller, quotes []domain.Quote, err error) *providermocks.MockLatestRateProvider {
	p := providermocks.NewMockLatestRateProvider(ctrl)
	p.EXPECT().Name().Return("test").AnyTimes()
	p.EXPECT().GetRates(gomock.Any()).Return(quotes, err).Times(1)
	return p
}

// Success: все котировки валидны, сохраняются одной записью и публикуются
func TestUpdateRates_Success(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := []domain.Quote{
		domain.NewQuote("USD", "EUR", decimal.RequireFromString("0.92"), fixedNow),
		domain.NewQuote("BZ=F", "USD", decimal.RequireFromString("35.5"), fixedNow),
	}
	p := newProvider(ctrl, quotes, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)
	pub := fetchmocks.NewMockPublisher(ctrl)

	gomock.InOrder(
		repo.EXPECT().SaveRates(gomock.Any(), quotes).Return(nil),
		pub.EXPECT().Publish(gomock.Any(), quotes).Return(nil),
	)

	svc := fetch.NewServiceWithClock(repo, pub, clock, slog.Default())

	saved, err := svc.UpdateRates(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != 2 {
		t.Fatalf("expected 2 saved, got %d", saved)
	}
}

// InvalidQuotesDropped: отрицательная цена, будущее время и промах поиска пары
// отбрасываются, остальные сохраняются
func TestUpdateRates_InvalidQuotesDropped(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	good := domain.NewQuote("USD", "EUR", decimal.RequireFromString("0.92"), fixedNow)
	quotes := []domain.Quote{
		good,
		domain.NewQuote("USD", "GBP", decimal.RequireFromString("-1"), fixedNow),
		domain.NewQuote("USD", "JPY", decimal.RequireFromString("150"), fixedNow.Add(2*time.Minute)),
		domain.NewSymbolQuote("", decimal.RequireFromString("10"), fixedNow),
	}
	p := newProvider(ctrl, quotes, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)

	repo.EXPECT().SaveRates(gomock.Any(), []domain.Quote{good}).Return(nil)

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	saved, err := svc.UpdateRates(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != 1 {
		t.Fatalf("expected 1 saved, got %d", saved)
	}
}

// SkewTolerated: котировка в пределах минуты от now считается валидной
func TestUpdateRates_SkewTolerated(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	q := domain.NewQuote("USD", "EUR", decimal.RequireFromString("0.92"), fixedNow.Add(30*time.Second))
	p := newProvider(ctrl, []domain.Quote{q}, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)
	repo.EXPECT().SaveRates(gomock.Any(), gomock.Len(1)).Return(nil)

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	if _, err := svc.UpdateRates(ctx, p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// ProviderError: ошибка провайдера возвращается обёрнутой, в БД ничего не пишется
func TestUpdateRates_ProviderError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newProvider(ctrl, nil, provider.NetworkError("get rates", errors.New("connection refused")))
	repo := fetchmocks.NewMockRateWriter(ctrl)
	repo.EXPECT().SaveRates(gomock.Any(), gomock.Any()).Times(0)

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	_, err := svc.UpdateRates(ctx, p)
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if !errors.Is(err, provider.ErrNetwork) {
		t.Fatalf("expected ErrNetwork in chain, got %v", err)
	}
}

// EmptyBatch: пустой ответ провайдера не ошибка и не обращение к БД
func TestUpdateRates_EmptyBatch(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := newProvider(ctrl, []domain.Quote{}, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)
	repo.EXPECT().SaveRates(gomock.Any(), gomock.Any()).Times(0)

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	saved, err := svc.UpdateRates(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != 0 {
		t.Fatalf("expected 0 saved, got %d", saved)
	}
}

// SaveError: ошибка записи прерывает цикл, публикация не вызывается
func TestUpdateRates_SaveError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := []domain.Quote{domain.NewQuote("USD", "EUR", decimal.RequireFromString("0.92"), fixedNow)}
	p := newProvider(ctrl, quotes, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)
	pub := fetchmocks.NewMockPublisher(ctrl)

	repo.EXPECT().SaveRates(gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Times(0)

	svc := fetch.NewServiceWithClock(repo, pub, clock, slog.Default())

	if _, err := svc.UpdateRates(ctx, p); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// PublishError: ошибка публикации только логируется
func TestUpdateRates_PublishError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quotes := []domain.Quote{domain.NewQuote("USD", "EUR", decimal.RequireFromString("0.92"), fixedNow)}
	p := newProvider(ctrl, quotes, nil)
	repo := fetchmocks.NewMockRateWriter(ctrl)
	pub := fetchmocks.NewMockPublisher(ctrl)

	repo.EXPECT().SaveRates(gomock.Any(), gomock.Any()).Return(nil)
	pub.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(errors.New("redis down"))

	svc := fetch.NewServiceWithClock(repo, pub, clock, slog.Default())

	saved, err := svc.UpdateRates(ctx, p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != 1 {
		t.Fatalf("expected 1 saved, got %d", saved)
	}
}

// Backfill: история сохраняется с валютой из аргумента target
func TestBackfillHistory_SetsTarget(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	day := time.Date(2016, 2, 4, 0, 0, 0, 0, time.UTC)
	p := providermocks.NewMockHistoricalRateProvider(ctrl)
	p.EXPECT().Name().Return("test").AnyTimes()
	p.EXPECT().GetHistoricalRates(gomock.Any(), "BZ=F").
		Return([]domain.Quote{domain.NewSymbolQuote("BZ=F", decimal.RequireFromString("72.88"), day)}, nil)

	repo := fetchmocks.NewMockRateWriter(ctrl)
	repo.EXPECT().SaveRates(gomock.Any(), gomock.Any()).Times(0)
	repo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, qs []domain.Quote) error {
			if len(qs) != 1 {
				t.Errorf("expected 1 quote, got %d", len(qs))
				return nil
			}
			if qs[0].Source != "BZ=F" || qs[0].TargetCode() != "USD" {
				t.Errorf("unexpected pair: %s/%s", qs[0].Source, qs[0].TargetCode())
			}
			if !qs[0].Price.Equal(decimal.RequireFromString("72.88")) {
				t.Errorf("unexpected price: %s", qs[0].Price)
			}
			return nil
		})

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	saved, err := svc.BackfillHistory(ctx, p, "BZ=F", "USD")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved != 1 {
		t.Fatalf("expected 1 saved, got %d", saved)
	}
}

func TestBackfillHistory_ProviderError(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	p := providermocks.NewMockHistoricalRateProvider(ctrl)
	p.EXPECT().Name().Return("test").AnyTimes()
	p.EXPECT().GetHistoricalRates(gomock.Any(), "BZ=F").Return(nil, provider.ParseError("history", errors.New("bad row")))

	repo := fetchmocks.NewMockRateWriter(ctrl)
	repo.EXPECT().SaveHistory(gomock.Any(), gomock.Any()).Times(0)

	svc := fetch.NewServiceWithClock(repo, nil, clock, slog.Default())

	_, err := svc.BackfillHistory(ctx, p, "BZ=F", "USD")
	if !errors.Is(err, provider.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
