package postgres

import (
	"context"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PairRepo - реестр пар провайдера (таблица pairs).
type PairRepo struct {
	db       *pgxpool.Pool
	provider string
}

// NewPairRepository - реестр пар одного провайдера.
func NewPairRepository(db *pgxpool.Pool, provider string) *PairRepo {
	return &PairRepo{db: db, provider: provider}
}

// GetAll - все пары провайдера в порядке символа.
func (r *PairRepo) GetAll(ctx context.Context) ([]domain.Pair, error) {
	const query = `
		SELECT symbol, source, target
		FROM pairs
		WHERE provider = $1
		ORDER BY symbol
	`
	rows, err := r.db.Query(ctx, query, r.provider)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Pair
	for rows.Next() {
		var p domain.Pair
		if err := rows.Scan(&p.Symbol, &p.Source, &p.Target); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
