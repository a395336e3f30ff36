package portfolio

import "errors"

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPortfolioNotFound = errors.New("portfolio not found")
	ErrInvalidFavorite   = errors.New("invalid favorite pair")
	ErrInvalidSymbol     = errors.New("invalid symbol code")
	ErrInvalidAsset      = errors.New("quantity and total cost must not be negative")
)
