package postgres

import (
	"errors"
	"fmt"

	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// mapConstraintError - нарушения ограничений в ошибки пакета repository.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case uniqueViolation:
		return fmt.Errorf("%w: %s", repository.ErrDuplicate, pgErr.ConstraintName)
	case foreignKeyViolation:
		return fmt.Errorf("%w: %s", repository.ErrUnknownReference, pgErr.ConstraintName)
	default:
		return err
	}
}
