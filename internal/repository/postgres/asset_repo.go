package postgres

import (
	"context"
	"errors"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AssetRepo - позиции пользователей (assets + symbols + portfolios + users).
type AssetRepo struct {
	db *pgxpool.Pool
}

func NewAssetRepository(db *pgxpool.Pool) *AssetRepo {
	return &AssetRepo{db: db}
}

const assetColumns = `
	a.id, u.login, s.code, s.name, s.currency, a.quantity, a.total_cost
	FROM assets a
	JOIN portfolios p ON p.id = a.portfolio_id
	JOIN users u ON u.id = p.user_id
	JOIN symbols s ON s.code = a.symbol_code
`

// FindAllByUserLogin - все позиции пользователя, отсортированные по имени символа.
func (r *AssetRepo) FindAllByUserLogin(ctx context.Context, login string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + `
		WHERE u.login = $1
		ORDER BY s.name
	`
	rows, err := r.db.Query(ctx, query, login)
	if err != nil {
		return nil, err
	}
	return collectAssets(rows)
}

// FindByUserLoginAndSymbolCode - позиция пользователя по коду символа.
func (r *AssetRepo) FindByUserLoginAndSymbolCode(ctx context.Context, login, code string) (*domain.Asset, error) {
	query := `SELECT ` + assetColumns + `
		WHERE u.login = $1 AND s.code = $2
	`
	var a domain.Asset
	err := r.db.QueryRow(ctx, query, login, code).
		Scan(&a.ID, &a.UserLogin, &a.SymbolCode, &a.SymbolName, &a.SymbolCurrency, &a.Quantity, &a.TotalCost)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// FindAllByUserLoginWithoutCurrency - позиции в валютах (у символа нет валюты котирования).
func (r *AssetRepo) FindAllByUserLoginWithoutCurrency(ctx context.Context, login string) ([]domain.Asset, error) {
	query := `SELECT ` + assetColumns + `
		WHERE u.login = $1 AND s.currency IS NULL
		ORDER BY s.name
	`
	rows, err := r.db.Query(ctx, query, login)
	if err != nil {
		return nil, err
	}
	return collectAssets(rows)
}

// Save - upsert позиции в портфеле пользователя.
// ErrNotFound - у пользователя нет портфеля, ErrUnknownReference - неизвестный символ.
func (r *AssetRepo) Save(ctx context.Context, a domain.Asset) error {
	const query = `
		INSERT INTO assets (portfolio_id, symbol_code, quantity, total_cost)
		SELECT p.id, $2, $3, $4
		FROM portfolios p
		JOIN users u ON u.id = p.user_id
		WHERE u.login = $1
		ON CONFLICT (portfolio_id, symbol_code)
		DO UPDATE SET quantity = EXCLUDED.quantity, total_cost = EXCLUDED.total_cost
	`
	tag, err := r.db.Exec(ctx, query, a.UserLogin, a.SymbolCode, a.Quantity, a.TotalCost)
	if err != nil {
		return mapConstraintError(err)
	}
	if tag.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// DeleteAllBySymbolCode - удаляет позиции всех пользователей по символу.
func (r *AssetRepo) DeleteAllBySymbolCode(ctx context.Context, code string) (int64, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM assets WHERE symbol_code = $1`, code)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func collectAssets(rows pgx.Rows) ([]domain.Asset, error) {
	defer rows.Close()

	var out []domain.Asset
	for rows.Next() {
		var a domain.Asset
		if err := rows.Scan(&a.ID, &a.UserLogin, &a.SymbolCode, &a.SymbolName, &a.SymbolCurrency, &a.Quantity, &a.TotalCost); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
