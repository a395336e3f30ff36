package repository

import "errors"

var (
	ErrNotFound = errors.New("not found")
	// ErrDuplicate - нарушение уникальности
	ErrDuplicate = errors.New("already exists")
	// ErrUnknownReference - ссылка на несуществующую запись (символ, валюта)
	ErrUnknownReference = errors.New("referenced record not found")
)
