package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepository(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id, login, email, provider, COALESCE(provider_user_id, '')`

// FindByLogin - пользователь по логину.
func (r *UserRepo) FindByLogin(ctx context.Context, login string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE login = $1`, login)
}

// FindByEmail - пользователь по email.
func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
}

func (r *UserRepo) ExistsByLoginAndProvider(ctx context.Context, login, provider string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE login = $1 AND provider = $2)`, login, provider)
}

func (r *UserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
}

func (r *UserRepo) ExistsByProviderUserIDAndProvider(ctx context.Context, providerUserID, provider string) (bool, error) {
	return r.exists(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE provider_user_id = $1 AND provider = $2)`, providerUserID, provider)
}

// Create - создаёт пользователя и его пустой портфель с базовой валютой baseCurrency
// в одной транзакции. Возвращает id пользователя.
func (r *UserRepo) Create(ctx context.Context, u domain.User, baseCurrency string) (int64, error) {
	const insertUser = `
		INSERT INTO users (login, email, provider, provider_user_id)
		VALUES ($1, $2, $3, NULLIF($4, ''))
		RETURNING id
	`
	const insertPortfolio = `INSERT INTO portfolios (user_id, base_currency) VALUES ($1, $2)`

	var id int64
	err := pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertUser, u.Login, u.Email, u.Provider, u.ProviderUserID).Scan(&id); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, insertPortfolio, id, baseCurrency)
		return err
	})
	if err != nil {
		return 0, mapConstraintError(err)
	}
	return id, nil
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg string) (*domain.User, error) {
	var u domain.User
	err := r.db.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Login, &u.Email, &u.Provider, &u.ProviderUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) exists(ctx context.Context, query string, args ...any) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx, query, args...).Scan(&ok)
	return ok, err
}
