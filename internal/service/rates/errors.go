package rates

import "errors"

var (
	ErrRateNotFound = errors.New("rate not found")
	ErrMinMaxPrice  = errors.New("min/max price calculation error")
	ErrHourAgoPrice = errors.New("hour-ago price unavailable")
	ErrInvalidRange = errors.New("invalid time range")
)
