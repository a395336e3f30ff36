package provider

import (
	"errors"
	"fmt"
)

var (
	// ErrNetwork - транспортная ошибка или ответ не 2xx.
	ErrNetwork = errors.New("provider network error")
	// ErrParse - некорректный JSON/CSV в ответе.
	ErrParse = errors.New("provider parse error")
	// ErrNotImplemented - провайдер не поддерживает операцию. Это ошибка конфигурации, повторять бессмысленно.
	ErrNotImplemented = errors.New("provider operation not implemented")
)

// Error - ошибка провайдера с видом Kind (один из Err* выше).
type Error struct {
	Kind error
	Op   string
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func NetworkError(op string, err error) error {
	return &Error{Kind: ErrNetwork, Op: op, Err: err}
}

func ParseError(op string, err error) error {
	return &Error{Kind: ErrParse, Op: op, Err: err}
}

func NotImplemented(op string) error {
	return &Error{Kind: ErrNotImplemented, Op: op}
}

// IsRetryable - имеет смысл повторить запрос: только сетевые ошибки провайдера.
// Ошибки разбора, неподдерживаемые операции и сбои реестра пар не повторяются.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrNetwork)
}
