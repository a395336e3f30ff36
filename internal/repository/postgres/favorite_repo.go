package postgres

import (
	"context"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FavoriteRepo struct {
	db *pgxpool.Pool
}

func NewFavoriteRepository(db *pgxpool.Pool) *FavoriteRepo {
	return &FavoriteRepo{db: db}
}

// FindAllByUserID - избранные пары пользователя.
func (r *FavoriteRepo) FindAllByUserID(ctx context.Context, userID int64) ([]domain.FavoriteSymbol, error) {
	const query = `
		SELECT user_id, from_code, to_code
		FROM favorite_symbols
		WHERE user_id = $1
		ORDER BY from_code, to_code
	`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FavoriteSymbol
	for rows.Next() {
		var f domain.FavoriteSymbol
		if err := rows.Scan(&f.UserID, &f.FromCode, &f.ToCode); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Add - добавляет пару в избранное; повторное добавление безопасно.
func (r *FavoriteRepo) Add(ctx context.Context, f domain.FavoriteSymbol) error {
	const query = `
		INSERT INTO favorite_symbols (user_id, from_code, to_code)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	_, err := r.db.Exec(ctx, query, f.UserID, f.FromCode, f.ToCode)
	return err
}

// Delete - удаляет пару из избранного по составному ключу.
func (r *FavoriteRepo) Delete(ctx context.Context, fromCode, toCode string, userID int64) error {
	const query = `DELETE FROM favorite_symbols WHERE from_code = $1 AND to_code = $2 AND user_id = $3`
	_, err := r.db.Exec(ctx, query, fromCode, toCode, userID)
	return err
}
