package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PortfolioRepo struct {
	db *pgxpool.Pool
}

func NewPortfolioRepository(db *pgxpool.Pool) *PortfolioRepo {
	return &PortfolioRepo{db: db}
}

// FindByUserLogin - портфель пользователя (без позиций).
func (r *PortfolioRepo) FindByUserLogin(ctx context.Context, login string) (*domain.Portfolio, error) {
	const query = `
		SELECT p.id, u.login, p.base_currency
		FROM portfolios p
		JOIN users u ON u.id = p.user_id
		WHERE u.login = $1
	`
	var p domain.Portfolio
	err := r.db.QueryRow(ctx, query, login).Scan(&p.ID, &p.UserLogin, &p.BaseCurrency)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
