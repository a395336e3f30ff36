package httptransport

import (
	"errors"
	"net/http"

	"github.com/NastyaGoryachaya/trading-service/internal/ports/errcode"
	"github.com/NastyaGoryachaya/trading-service/internal/service/portfolio"
	"github.com/NastyaGoryachaya/trading-service/internal/service/rates"
	"github.com/NastyaGoryachaya/trading-service/internal/service/users"
)

func FromServiceError(err error) errcode.Code {
	switch {
	case errors.Is(err, rates.ErrRateNotFound):
		return errcode.NotFoundRates
	case errors.Is(err, rates.ErrMinMaxPrice):
		return errcode.MinMaxPrice
	case errors.Is(err, rates.ErrHourAgoPrice):
		return errcode.HourAgoPrice
	case errors.Is(err, rates.ErrInvalidRange),
		errors.Is(err, portfolio.ErrInvalidSymbol),
		errors.Is(err, users.ErrUnknownCurrency):
		return errcode.BadRequest
	case errors.Is(err, portfolio.ErrUserNotFound),
		errors.Is(err, users.ErrUserNotFound):
		return errcode.NotFoundUser
	case errors.Is(err, portfolio.ErrPortfolioNotFound):
		return errcode.NotFoundPortfolio
	case errors.Is(err, portfolio.ErrInvalidFavorite):
		return errcode.InvalidFavorite
	case errors.Is(err, portfolio.ErrInvalidAsset):
		return errcode.InvalidAsset
	case errors.Is(err, users.ErrInvalidUser):
		return errcode.InvalidUser
	case errors.Is(err, users.ErrLoginTaken),
		errors.Is(err, users.ErrEmailTaken),
		errors.Is(err, users.ErrProviderAccountTaken):
		return errcode.UserExists
	default:
		return errcode.Internal
	}
}

// httpError - статус и тело ответа для кода ошибки.
func httpError(code errcode.Code) (int, string) {
	switch code {
	case errcode.NotFoundRates:
		return http.StatusNotFound, "rates_not_found"
	case errcode.NotFoundUser:
		return http.StatusNotFound, "user_not_found"
	case errcode.NotFoundPortfolio:
		return http.StatusNotFound, "portfolio_not_found"
	case errcode.MinMaxPrice:
		return http.StatusUnprocessableEntity, "minmax_unavailable"
	case errcode.HourAgoPrice:
		return http.StatusUnprocessableEntity, "not_enough_data_for_change_1h"
	case errcode.InvalidFavorite:
		return http.StatusBadRequest, "invalid_favorite"
	case errcode.InvalidAsset:
		return http.StatusBadRequest, "invalid_asset"
	case errcode.InvalidUser:
		return http.StatusBadRequest, "invalid_user"
	case errcode.UserExists:
		return http.StatusConflict, "user_exists"
	case errcode.BadRequest:
		return http.StatusBadRequest, "bad_request"
	default:
		return http.StatusInternalServerError, "internal_server_error"
	}
}
