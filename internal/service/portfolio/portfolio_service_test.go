package portfolio_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/NastyaGoryachaya/trading-service/internal/service/portfolio"
	portfoliomocks "github.com/NastyaGoryachaya/trading-service/internal/service/portfolio/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
)

type fixture struct {
	users      *portfoliomocks.MockUserReader
	portfolios *portfoliomocks.MockPortfolioReader
	assets     *portfoliomocks.MockAssetStore
	favorites  *portfoliomocks.MockFavoriteStore
	rates      *portfoliomocks.MockRateStore
	svc        portfolio.Service
}

func setup(t *testing.T) fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := fixture{
		users:      portfoliomocks.NewMockUserReader(ctrl),
		portfolios: portfoliomocks.NewMockPortfolioReader(ctrl),
		assets:     portfoliomocks.NewMockAssetStore(ctrl),
		favorites:  portfoliomocks.NewMockFavoriteStore(ctrl),
		rates:      portfoliomocks.NewMockRateStore(ctrl),
	}
	f.svc = portfolio.NewService(portfolio.Repositories{
		Users:      f.users,
		Portfolios: f.portfolios,
		Assets:     f.assets,
		Favorites:  f.favorites,
		Rates:      f.rates,
	}, slog.Default())
	return f
}

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func str(s string) *string { return &s }

func latest(source, target, value string) *domain.Rate {
	return &domain.Rate{Source: source, Target: target, Value: dec(value), Time: time.Now().UTC()}
}

// -------------------------
// GetPortfolio
// -------------------------

func TestGetPortfolio_Valued(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "alice").
		Return(&domain.Portfolio{ID: 1, UserLogin: "alice", BaseCurrency: "USD"}, nil)
	f.assets.EXPECT().FindAllByUserLogin(gomock.Any(), "alice").Return([]domain.Asset{
		{ID: 1, UserLogin: "alice", SymbolCode: "BZ=F", SymbolName: "Brent Crude Oil", SymbolCurrency: str("USD"), Quantity: dec("2"), TotalCost: dec("60")},
		{ID: 2, UserLogin: "alice", SymbolCode: "EUR", SymbolName: "Euro", Quantity: dec("100"), TotalCost: dec("110")},
		{ID: 3, UserLogin: "alice", SymbolCode: "USD", SymbolName: "US Dollar", Quantity: dec("10"), TotalCost: dec("10")},
	}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(latest("BZ=F", "USD", "35.5"), nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "EUR", "USD").Return(latest("EUR", "USD", "1.1"), nil)

	got, err := f.svc.GetPortfolio(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Assets) != 3 {
		t.Fatalf("expected 3 assets, got %d", len(got.Assets))
	}
	if got.Assets[0].Value == nil || !got.Assets[0].Value.Equal(dec("71")) {
		t.Fatalf("unexpected BZ=F value: %v", got.Assets[0].Value)
	}
	if got.Assets[2].Value == nil || !got.Assets[2].Value.Equal(dec("10")) {
		t.Fatalf("base currency asset must be valued at quantity, got %v", got.Assets[2].Value)
	}
	// 71 + 110 + 10
	if !got.TotalValue.Equal(dec("191")) {
		t.Fatalf("unexpected total: %s", got.TotalValue)
	}
}

func TestGetPortfolio_CrossRate(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "bob").
		Return(&domain.Portfolio{ID: 2, UserLogin: "bob", BaseCurrency: "EUR"}, nil)
	f.assets.EXPECT().FindAllByUserLogin(gomock.Any(), "bob").Return([]domain.Asset{
		{SymbolCode: "BZ=F", SymbolCurrency: str("USD"), Quantity: dec("1")},
	}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "BZ=F", "EUR").Return(nil, repository.ErrNotFound)
	f.rates.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(latest("BZ=F", "USD", "40"), nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "USD", "EUR").Return(latest("USD", "EUR", "0.9"), nil)

	got, err := f.svc.GetPortfolio(ctx, "bob")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Assets[0].Price == nil || !got.Assets[0].Price.Equal(dec("36")) {
		t.Fatalf("unexpected cross price: %v", got.Assets[0].Price)
	}
}

func TestGetPortfolio_MissingRate(t *testing.T) {
	t.Parallel()
	f := setup(t)
	ctx := context.Background()

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "alice").
		Return(&domain.Portfolio{ID: 1, UserLogin: "alice", BaseCurrency: "USD"}, nil)
	f.assets.EXPECT().FindAllByUserLogin(gomock.Any(), "alice").Return([]domain.Asset{
		{SymbolCode: "EUR", Quantity: dec("5")},
	}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "EUR", "USD").Return(nil, repository.ErrNotFound)

	got, err := f.svc.GetPortfolio(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Assets[0].Value != nil || got.Assets[0].Price != nil {
		t.Fatalf("expected unvalued asset, got %+v", got.Assets[0])
	}
	if !got.TotalValue.IsZero() {
		t.Fatalf("expected zero total, got %s", got.TotalValue)
	}
}

func TestGetPortfolio_NotFound(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "ghost").Return(nil, repository.ErrNotFound)

	if _, err := f.svc.GetPortfolio(context.Background(), "ghost"); !errors.Is(err, portfolio.ErrPortfolioNotFound) {
		t.Fatalf("expected ErrPortfolioNotFound, got %v", err)
	}
}

func TestGetPortfolio_RateError(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "alice").
		Return(&domain.Portfolio{ID: 1, UserLogin: "alice", BaseCurrency: "USD"}, nil)
	f.assets.EXPECT().FindAllByUserLogin(gomock.Any(), "alice").Return([]domain.Asset{{SymbolCode: "EUR", Quantity: dec("5")}}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "EUR", "USD").Return(nil, errors.New("db down"))

	if _, err := f.svc.GetPortfolio(context.Background(), "alice"); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// -------------------------
// Favorites
// -------------------------

func TestAddFavorite_Normalized(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 7, Login: "alice"}, nil)
	f.favorites.EXPECT().Add(gomock.Any(), domain.FavoriteSymbol{UserID: 7, FromCode: "USD", ToCode: "EUR"}).Return(nil)

	got, err := f.svc.AddFavorite(context.Background(), "alice", " usd", "eur ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.FromCode != "USD" || got.ToCode != "EUR" || got.UserID != 7 {
		t.Fatalf("unexpected favorite: %+v", got)
	}
}

func TestAddFavorite_Invalid(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name     string
		from, to string
	}{
		{"same codes", "USD", "usd"},
		{"empty from", "", "EUR"},
		{"empty to", "USD", " "},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := setup(t)
			if _, err := f.svc.AddFavorite(context.Background(), "alice", tc.from, tc.to); !errors.Is(err, portfolio.ErrInvalidFavorite) {
				t.Fatalf("expected ErrInvalidFavorite, got %v", err)
			}
		})
	}
}

func TestAddFavorite_UserNotFound(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.users.EXPECT().FindByLogin(gomock.Any(), "ghost").Return(nil, repository.ErrNotFound)

	if _, err := f.svc.AddFavorite(context.Background(), "ghost", "USD", "EUR"); !errors.Is(err, portfolio.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestListFavorites_EmptyIsNotNil(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 7}, nil)
	f.favorites.EXPECT().FindAllByUserID(gomock.Any(), int64(7)).Return(nil, nil)

	got, err := f.svc.ListFavorites(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestRemoveFavorite(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.users.EXPECT().FindByLogin(gomock.Any(), "alice").Return(&domain.User{ID: 7}, nil)
	f.favorites.EXPECT().Delete(gomock.Any(), "USD", "EUR", int64(7)).Return(nil)

	if err := f.svc.RemoveFavorite(context.Background(), "alice", "usd", "eur"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// -------------------------
// DeleteSymbol
// -------------------------

func TestDeleteSymbol(t *testing.T) {
	t.Parallel()
	f := setup(t)

	gomock.InOrder(
		f.assets.EXPECT().DeleteAllBySymbolCode(gomock.Any(), "BZ=F").Return(int64(3), nil),
		f.rates.EXPECT().DeleteBySource(gomock.Any(), "BZ=F").Return(nil),
	)

	removed, err := f.svc.DeleteSymbol(context.Background(), "bz=f")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed != 3 {
		t.Fatalf("expected 3 removed, got %d", removed)
	}
}

func TestDeleteSymbol_Empty(t *testing.T) {
	t.Parallel()
	f := setup(t)

	if _, err := f.svc.DeleteSymbol(context.Background(), "  "); !errors.Is(err, portfolio.ErrInvalidSymbol) {
		t.Fatalf("expected ErrInvalidSymbol, got %v", err)
	}
}

// -------------------------
// GetCurrencyHoldings
// -------------------------

func TestGetCurrencyHoldings(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "alice").
		Return(&domain.Portfolio{ID: 1, UserLogin: "alice", BaseCurrency: "RUB"}, nil)
	f.assets.EXPECT().FindAllByUserLoginWithoutCurrency(gomock.Any(), "alice").Return([]domain.Asset{
		{ID: 2, UserLogin: "alice", SymbolCode: "EUR", SymbolName: "Euro", Quantity: dec("10"), TotalCost: dec("900")},
		{ID: 4, UserLogin: "alice", SymbolCode: "CNY", SymbolName: "Yuan", Quantity: dec("5"), TotalCost: dec("50")},
	}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "EUR", "RUB").Return(latest("EUR", "RUB", "95"), nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "CNY", "RUB").Return(nil, repository.ErrNotFound)

	got, err := f.svc.GetCurrencyHoldings(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Assets) != 2 {
		t.Fatalf("expected 2 assets, got %d", len(got.Assets))
	}
	if got.Assets[1].Value != nil {
		t.Fatalf("CNY without rate must stay unvalued, got %s", got.Assets[1].Value)
	}
	if !got.TotalValue.Equal(dec("950")) {
		t.Fatalf("total: want 950, got %s", got.TotalValue)
	}
}

func TestGetCurrencyHoldings_NoPortfolio(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "bob").Return(nil, repository.ErrNotFound)

	if _, err := f.svc.GetCurrencyHoldings(context.Background(), "bob"); !errors.Is(err, portfolio.ErrPortfolioNotFound) {
		t.Fatalf("expected ErrPortfolioNotFound, got %v", err)
	}
}

// -------------------------
// SaveAsset
// -------------------------

func TestSaveAsset_StoresAndValues(t *testing.T) {
	t.Parallel()
	f := setup(t)

	f.assets.EXPECT().Save(gomock.Any(), domain.Asset{
		UserLogin: "alice", SymbolCode: "BZ=F", Quantity: dec("3"), TotalCost: dec("200"),
	}).Return(nil)
	f.assets.EXPECT().FindByUserLoginAndSymbolCode(gomock.Any(), "alice", "BZ=F").Return(&domain.Asset{
		ID: 7, UserLogin: "alice", SymbolCode: "BZ=F", SymbolName: "Brent Crude Oil",
		SymbolCurrency: str("USD"), Quantity: dec("3"), TotalCost: dec("200"),
	}, nil)
	f.portfolios.EXPECT().FindByUserLogin(gomock.Any(), "alice").
		Return(&domain.Portfolio{ID: 1, UserLogin: "alice", BaseCurrency: "USD"}, nil)
	f.rates.EXPECT().GetLatest(gomock.Any(), "BZ=F", "USD").Return(latest("BZ=F", "USD", "70"), nil)

	got, err := f.svc.SaveAsset(context.Background(), "alice", " bz=f ", dec("3"), dec("200"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID != 7 || got.Value == nil || !got.Value.Equal(dec("210")) {
		t.Fatalf("unexpected asset view: %+v", got)
	}
}

func TestSaveAsset_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		code    string
		qty     string
		repoErr error
		want    error
	}{
		{name: "empty code", code: " ", qty: "1", want: portfolio.ErrInvalidSymbol},
		{name: "negative quantity", code: "EUR", qty: "-1", want: portfolio.ErrInvalidAsset},
		{name: "no portfolio", code: "EUR", qty: "1", repoErr: repository.ErrNotFound, want: portfolio.ErrPortfolioNotFound},
		{name: "unknown symbol", code: "XXX", qty: "1", repoErr: repository.ErrUnknownReference, want: portfolio.ErrInvalidSymbol},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			f := setup(t)
			if tc.repoErr != nil {
				f.assets.EXPECT().Save(gomock.Any(), gomock.Any()).Return(tc.repoErr)
			}
			_, err := f.svc.SaveAsset(context.Background(), "alice", tc.code, dec(tc.qty), dec("1"))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
