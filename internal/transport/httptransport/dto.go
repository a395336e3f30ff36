package httptransport

import (
	"time"

	"github.com/shopspring/decimal"
)

// Percent - процентное изменение; в JSON число с 3 знаками после запятой.
type Percent decimal.Decimal

func (p Percent) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(p).StringFixed(3)), nil
}

// Rate - DTO курса пары.
type Rate struct {
	Source      string           `json:"source"`
	Target      string           `json:"target"`
	Price       decimal.Decimal  `json:"price"`
	Min24h      *decimal.Decimal `json:"min_24h,omitempty"`
	Max24h      *decimal.Decimal `json:"max_24h,omitempty"`
	Change1hPct *Percent         `json:"change_1h_pct,omitempty"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// DateValue - точка истории.
type DateValue struct {
	Date  time.Time       `json:"date"`
	Value decimal.Decimal `json:"value"`
}

type Asset struct {
	Symbol    string           `json:"symbol"`
	Name      string           `json:"name"`
	Currency  *string          `json:"currency,omitempty"`
	Quantity  decimal.Decimal  `json:"quantity"`
	TotalCost decimal.Decimal  `json:"total_cost"`
	Price     *decimal.Decimal `json:"price,omitempty"`
	Value     *decimal.Decimal `json:"value,omitempty"`
}

type Portfolio struct {
	ID           int64           `json:"id"`
	Login        string          `json:"login"`
	BaseCurrency string          `json:"base_currency"`
	TotalValue   decimal.Decimal `json:"total_value"`
	Assets       []Asset         `json:"assets"`
}

// AssetRequest - тело PUT /users/:login/assets/:code.
type AssetRequest struct {
	Quantity  decimal.Decimal `json:"quantity"`
	TotalCost decimal.Decimal `json:"total_cost"`
}

type User struct {
	ID             int64  `json:"id"`
	Login          string `json:"login"`
	Email          string `json:"email"`
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id,omitempty"`
}

type RegisterUserRequest struct {
	Login          string `json:"login"`
	Email          string `json:"email"`
	Provider       string `json:"provider"`
	ProviderUserID string `json:"provider_user_id"`
	BaseCurrency   string `json:"base_currency"`
}

type Favorite struct {
	From string `json:"from"`
	To   string `json:"to"`
}
