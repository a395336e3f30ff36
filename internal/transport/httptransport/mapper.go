package httptransport

import (
	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/service/portfolio"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
)

func toRateDTO(r domain.Rate) Rate {
	return Rate{
		Source:    r.Source,
		Target:    r.Target,
		Price:     r.Value,
		UpdatedAt: r.Time,
	}
}

func toRateStatsDTO(s rates.RateStats) Rate {
	out := Rate{
		Source:    s.Source,
		Target:    s.Target,
		Price:     s.Price,
		UpdatedAt: s.UpdatedAt,
	}
	minV, maxV := s.Min24h, s.Max24h
	out.Min24h = &minV
	out.Max24h = &maxV
	pct := Percent(s.Change1hPct)
	out.Change1hPct = &pct
	return out
}

func toDateValueDTO(r domain.Rate) DateValue {
	return DateValue{Date: r.Time, Value: r.Value}
}

func toAssetDTO(a portfolio.AssetView) Asset {
	return Asset{
		Symbol:    a.SymbolCode,
		Name:      a.SymbolName,
		Currency:  a.SymbolCurrency,
		Quantity:  a.Quantity,
		TotalCost: a.TotalCost,
		Price:     a.Price,
		Value:     a.Value,
	}
}

func toPortfolioDTO(v portfolio.View) Portfolio {
	assets := make([]Asset, 0, len(v.Assets))
	for _, a := range v.Assets {
		assets = append(assets, toAssetDTO(a))
	}
	return Portfolio{
		ID:           v.ID,
		Login:        v.UserLogin,
		BaseCurrency: v.BaseCurrency,
		TotalValue:   v.TotalValue,
		Assets:       assets,
	}
}

func toUserDTO(u domain.User) User {
	return User{
		ID:             u.ID,
		Login:          u.Login,
		Email:          u.Email,
		Provider:       u.Provider,
		ProviderUserID: u.ProviderUserID,
	}
}

func toFavoriteDTO(f domain.FavoriteSymbol) Favorite {
	return Favorite{From: f.FromCode, To: f.ToCode}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
