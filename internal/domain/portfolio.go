package domain

import "github.com/shopspring/decimal"

// Symbol - валюта, акция или товар. Currency == nil для самих валют.
type Symbol struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Currency *string `json:"currency,omitempty"`
}

type User struct {
	ID             int64
	Login          string
	Email          string
	Provider       string
	ProviderUserID string
}

// Asset - позиция пользователя по одному символу.
type Asset struct {
	ID             int64
	UserLogin      string
	SymbolCode     string
	SymbolName     string
	SymbolCurrency *string
	Quantity       decimal.Decimal
	TotalCost      decimal.Decimal
}

// Portfolio - портфель пользователя с базовой валютой оценки.
type Portfolio struct {
	ID           int64
	UserLogin    string
	BaseCurrency string
	Assets       []Asset
}

// FavoriteSymbol - избранная пара пользователя (составной ключ from/to/user).
type FavoriteSymbol struct {
	UserID   int64
	FromCode string
	ToCode   string
}
