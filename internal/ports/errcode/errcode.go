package errcode

type Code string

const (
	NotFoundRates     Code = "NOT_FOUND_RATES"
	NotFoundUser      Code = "NOT_FOUND_USER"
	NotFoundPortfolio Code = "NOT_FOUND_PORTFOLIO"

	MinMaxPrice  Code = "MINMAX_PRICE"
	HourAgoPrice Code = "HOUR_AGO_PRICE"

	InvalidFavorite Code = "INVALID_FAVORITE"
	InvalidAsset    Code = "INVALID_ASSET"
	InvalidUser     Code = "INVALID_USER"
	UserExists      Code = "USER_EXISTS"
	BadRequest      Code = "BAD_REQUEST"
	Internal        Code = "INTERNAL_ERROR"
)
