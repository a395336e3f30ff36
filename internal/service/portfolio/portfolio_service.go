package portfolio

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/shopspring/decimal"
)

// Портфели пользователей и избранные пары

type Service interface {
	// GetPortfolio - портфель с позициями, оценёнными в базовой валюте
	GetPortfolio(ctx context.Context, login string) (View, error)
	// GetCurrencyHoldings - только валютные позиции портфеля
	GetCurrencyHoldings(ctx context.Context, login string) (View, error)
	// SaveAsset - задаёт количество и стоимость позиции, возвращает её оценку
	SaveAsset(ctx context.Context, login, code string, quantity, totalCost decimal.Decimal) (AssetView, error)
	ListFavorites(ctx context.Context, login string) ([]domain.FavoriteSymbol, error)
	AddFavorite(ctx context.Context, login, from, to string) (domain.FavoriteSymbol, error)
	RemoveFavorite(ctx context.Context, login, from, to string) error
	// DeleteSymbol - удаляет позиции и курсы снятого с торгов символа
	DeleteSymbol(ctx context.Context, code string) (int64, error)
}

type UserReader interface {
	FindByLogin(ctx context.Context, login string) (*domain.User, error)
}

type PortfolioReader interface {
	FindByUserLogin(ctx context.Context, login string) (*domain.Portfolio, error)
}

type AssetStore interface {
	FindAllByUserLogin(ctx context.Context, login string) ([]domain.Asset, error)
	FindAllByUserLoginWithoutCurrency(ctx context.Context, login string) ([]domain.Asset, error)
	FindByUserLoginAndSymbolCode(ctx context.Context, login, code string) (*domain.Asset, error)
	Save(ctx context.Context, a domain.Asset) error
	DeleteAllBySymbolCode(ctx context.Context, code string) (int64, error)
}

type FavoriteStore interface {
	FindAllByUserID(ctx context.Context, userID int64) ([]domain.FavoriteSymbol, error)
	Add(ctx context.Context, f domain.FavoriteSymbol) error
	Delete(ctx context.Context, fromCode, toCode string, userID int64) error
}

type RateStore interface {
	GetLatest(ctx context.Context, source, target string) (*domain.Rate, error)
	DeleteBySource(ctx context.Context, code string) error
}

// Repositories - хранилища, с которыми работает сервис.
type Repositories struct {
	Users      UserReader
	Portfolios PortfolioReader
	Assets     AssetStore
	Favorites  FavoriteStore
	Rates      RateStore
}

// AssetView - позиция и её оценка. Price и Value равны nil, если курса к базовой валюте нет.
type AssetView struct {
	domain.Asset
	Price *decimal.Decimal
	Value *decimal.Decimal
}

type View struct {
	ID           int64
	UserLogin    string
	BaseCurrency string
	Assets       []AssetView
	// TotalValue - сумма оценённых позиций
	TotalValue decimal.Decimal
}

type service struct {
	repos  Repositories
	logger *slog.Logger
}

func NewService(repos Repositories, logger *slog.Logger) Service {
	return &service{repos: repos, logger: logger}
}

func (s *service) GetPortfolio(ctx context.Context, login string) (View, error) {
	return s.view(ctx, login, s.repos.Assets.FindAllByUserLogin)
}

func (s *service) GetCurrencyHoldings(ctx context.Context, login string) (View, error) {
	return s.view(ctx, login, s.repos.Assets.FindAllByUserLoginWithoutCurrency)
}

func (s *service) view(ctx context.Context, login string, load func(context.Context, string) ([]domain.Asset, error)) (View, error) {
	p, err := s.portfolio(ctx, login)
	if err != nil {
		return View{}, err
	}

	assets, err := load(ctx, login)
	if err != nil {
		s.logger.Error("failed to get assets", slog.String("login", login), slog.String("error", err.Error()))
		return View{}, fmt.Errorf("get assets: %w", err)
	}

	view := View{
		ID:           p.ID,
		UserLogin:    p.UserLogin,
		BaseCurrency: p.BaseCurrency,
		Assets:       make([]AssetView, 0, len(assets)),
		TotalValue:   decimal.Zero,
	}
	for _, a := range assets {
		av, err := s.value(ctx, a, p.BaseCurrency)
		if err != nil {
			return View{}, err
		}
		if av.Value != nil {
			view.TotalValue = view.TotalValue.Add(*av.Value)
		}
		view.Assets = append(view.Assets, av)
	}
	return view, nil
}

func (s *service) SaveAsset(ctx context.Context, login, code string, quantity, totalCost decimal.Decimal) (AssetView, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return AssetView{}, ErrInvalidSymbol
	}
	if quantity.IsNegative() || totalCost.IsNegative() {
		return AssetView{}, ErrInvalidAsset
	}

	err := s.repos.Assets.Save(ctx, domain.Asset{
		UserLogin:  login,
		SymbolCode: code,
		Quantity:   quantity,
		TotalCost:  totalCost,
	})
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return AssetView{}, ErrPortfolioNotFound
	case errors.Is(err, repository.ErrUnknownReference):
		return AssetView{}, ErrInvalidSymbol
	case err != nil:
		s.logger.Error("failed to save asset",
			slog.String("login", login), slog.String("symbol", code), slog.String("error", err.Error()))
		return AssetView{}, fmt.Errorf("save asset: %w", err)
	}

	a, err := s.repos.Assets.FindByUserLoginAndSymbolCode(ctx, login, code)
	if err != nil {
		return AssetView{}, fmt.Errorf("get asset %s: %w", code, err)
	}
	p, err := s.portfolio(ctx, login)
	if err != nil {
		return AssetView{}, err
	}
	s.logger.Info("asset saved",
		slog.String("login", login),
		slog.String("symbol", code),
		slog.String("quantity", quantity.String()))
	return s.value(ctx, *a, p.BaseCurrency)
}

func (s *service) portfolio(ctx context.Context, login string) (*domain.Portfolio, error) {
	p, err := s.repos.Portfolios.FindByUserLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPortfolioNotFound
		}
		s.logger.Error("failed to get portfolio", slog.String("login", login), slog.String("error", err.Error()))
		return nil, fmt.Errorf("get portfolio: %w", err)
	}
	return p, nil
}

// value - оценка позиции; без курса к базовой валюте Price и Value остаются nil.
func (s *service) value(ctx context.Context, a domain.Asset, base string) (AssetView, error) {
	av := AssetView{Asset: a}
	price, err := s.price(ctx, a, base)
	switch {
	case err == nil:
		value := a.Quantity.Mul(price)
		av.Price = &price
		av.Value = &value
	case errors.Is(err, repository.ErrNotFound):
		s.logger.Debug("no rate for asset", slog.String("symbol", a.SymbolCode), slog.String("base", base))
	default:
		return AssetView{}, fmt.Errorf("value asset %s: %w", a.SymbolCode, err)
	}
	return av, nil
}

// price - курс символа в базовой валюте: напрямую или через валюту котирования символа.
func (s *service) price(ctx context.Context, a domain.Asset, base string) (decimal.Decimal, error) {
	if a.SymbolCode == base {
		return decimal.NewFromInt(1), nil
	}

	direct, err := s.repos.Rates.GetLatest(ctx, a.SymbolCode, base)
	if err == nil {
		return direct.Value, nil
	}
	if !errors.Is(err, repository.ErrNotFound) || a.SymbolCurrency == nil || *a.SymbolCurrency == base {
		return decimal.Zero, err
	}

	quoted, err := s.repos.Rates.GetLatest(ctx, a.SymbolCode, *a.SymbolCurrency)
	if err != nil {
		return decimal.Zero, err
	}
	fx, err := s.repos.Rates.GetLatest(ctx, *a.SymbolCurrency, base)
	if err != nil {
		return decimal.Zero, err
	}
	return quoted.Value.Mul(fx.Value), nil
}

func (s *service) ListFavorites(ctx context.Context, login string) ([]domain.FavoriteSymbol, error) {
	u, err := s.user(ctx, login)
	if err != nil {
		return nil, err
	}
	out, err := s.repos.Favorites.FindAllByUserID(ctx, u.ID)
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	if out == nil {
		out = []domain.FavoriteSymbol{}
	}
	return out, nil
}

func (s *service) AddFavorite(ctx context.Context, login, from, to string) (domain.FavoriteSymbol, error) {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return domain.FavoriteSymbol{}, err
	}
	u, err := s.user(ctx, login)
	if err != nil {
		return domain.FavoriteSymbol{}, err
	}

	f := domain.FavoriteSymbol{UserID: u.ID, FromCode: from, ToCode: to}
	if err := s.repos.Favorites.Add(ctx, f); err != nil {
		return domain.FavoriteSymbol{}, fmt.Errorf("add favorite: %w", err)
	}
	s.logger.Info("favorite added", slog.String("login", login), slog.String("from", from), slog.String("to", to))
	return f, nil
}

func (s *service) RemoveFavorite(ctx context.Context, login, from, to string) error {
	from, to, err := normalizePair(from, to)
	if err != nil {
		return err
	}
	u, err := s.user(ctx, login)
	if err != nil {
		return err
	}
	if err := s.repos.Favorites.Delete(ctx, from, to, u.ID); err != nil {
		return fmt.Errorf("remove favorite: %w", err)
	}
	return nil
}

func (s *service) DeleteSymbol(ctx context.Context, code string) (int64, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return 0, ErrInvalidSymbol
	}

	removed, err := s.repos.Assets.DeleteAllBySymbolCode(ctx, code)
	if err != nil {
		return 0, fmt.Errorf("delete assets %s: %w", code, err)
	}
	if err := s.repos.Rates.DeleteBySource(ctx, code); err != nil {
		return removed, fmt.Errorf("delete rates %s: %w", code, err)
	}

	s.logger.Info("symbol deleted", slog.String("symbol", code), slog.Int64("assets", removed))
	return removed, nil
}

func (s *service) user(ctx context.Context, login string) (*domain.User, error) {
	u, err := s.repos.Users.FindByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		s.logger.Error("failed to get user", slog.String("login", login), slog.String("error", err.Error()))
		return nil, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

func normalizePair(from, to string) (string, string, error) {
	from = strings.ToUpper(strings.TrimSpace(from))
	to = strings.ToUpper(strings.TrimSpace(to))
	if from == "" || to == "" || from == to {
		return "", "", ErrInvalidFavorite
	}
	return from, to, nil
}
