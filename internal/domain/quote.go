package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ClockSkew - допустимое опережение времени котировки относительно текущего.
const ClockSkew = time.Minute

var (
	ErrNegativePrice = errors.New("quote price is negative")
	ErrFutureQuote   = errors.New("quote time is in the future")
)

// Quote - одно наблюдение цены: source -> target по цене Price в момент Time.
// Target == nil для инструментов без валюты котирования (и при промахе поиска пары).
type Quote struct {
	Source string
	Target *string
	Price  decimal.Decimal
	Time   time.Time
}

// NewQuote - котировка пары source/target.
func NewQuote(source, target string, price decimal.Decimal, t time.Time) Quote {
	return Quote{Source: source, Target: &target, Price: price, Time: t}
}

// NewSymbolQuote - котировка без валюты (история акций, одиночный запрос).
func NewSymbolQuote(source string, price decimal.Decimal, t time.Time) Quote {
	return Quote{Source: source, Price: price, Time: t}
}

// TargetCode - код валюты или пустая строка, если она неизвестна.
func (q Quote) TargetCode() string {
	if q.Target == nil {
		return ""
	}
	return *q.Target
}

// Identified - у котировки известны обе стороны пары.
func (q Quote) Identified() bool {
	return q.Source != "" && q.Target != nil && *q.Target != ""
}

// Validate проверяет инварианты котировки относительно момента now.
func (q Quote) Validate(now time.Time) error {
	if q.Price.IsNegative() {
		return ErrNegativePrice
	}
	if q.Time.After(now.Add(ClockSkew)) {
		return ErrFutureQuote
	}
	return nil
}

// Pair - запись реестра пар: символ провайдера и коды source/target.
type Pair struct {
	Symbol string `json:"symbol"` // EURUSD=X, BZ=F, ...
	Source string `json:"source"`
	Target string `json:"target"`
}

// Rate - сохранённый курс пары.
type Rate struct {
	Source string          `json:"source"`
	Target string          `json:"target"`
	Value  decimal.Decimal `json:"value"`
	Time   time.Time       `json:"time"`
}
