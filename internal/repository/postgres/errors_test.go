package postgres

import (
	"errors"
	"testing"

	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

func TestMapConstraintError(t *testing.T) {
	t.Parallel()

	dup := mapConstraintError(&pgconn.PgError{Code: uniqueViolation, ConstraintName: "users_email_key"})
	require.ErrorIs(t, dup, repository.ErrDuplicate)
	require.Contains(t, dup.Error(), "users_email_key")

	fk := mapConstraintError(&pgconn.PgError{Code: foreignKeyViolation, ConstraintName: "assets_symbol_code_fkey"})
	require.ErrorIs(t, fk, repository.ErrUnknownReference)

	other := &pgconn.PgError{Code: "42P01"}
	require.Equal(t, error(other), mapConstraintError(other))

	plain := errors.New("conn reset")
	require.Equal(t, plain, mapConstraintError(plain))
}
