package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/NastyaGoryachaya/trading-service/internal/repository"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RateRepo - курсы: latest_rates (последний на пару) и historical_rates (все наблюдения).
type RateRepo struct {
	db *pgxpool.Pool
}

// NewRateRepository - Создаёт новый репозиторий курсов на основе пула соединений.
func NewRateRepository(db *pgxpool.Pool) *RateRepo {
	return &RateRepo{db: db}
}

const (
	// более старое наблюдение не перетирает новое
	upsertLatestQuery = `
		INSERT INTO latest_rates (source, target, value, time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source, target)
		DO UPDATE SET value = EXCLUDED.value, time = EXCLUDED.time
		WHERE latest_rates.time <= EXCLUDED.time
	`
	insertHistoryQuery = `
		INSERT INTO historical_rates (source, target, value, time)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (source, target, time)
		DO UPDATE SET value = EXCLUDED.value
	`
)

// SaveRates - в одной транзакции обновляет latest_rates и дописывает historical_rates.
// При ошибке не записывается ни одна из таблиц.
func (r *RateRepo) SaveRates(ctx context.Context, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		queueQuotes(batch, upsertLatestQuery, quotes)
		queueQuotes(batch, insertHistoryQuery, quotes)
		return tx.SendBatch(ctx, batch).Close()
	})
}

// SaveHistory - идемпотентная вставка наблюдений в историю.
func (r *RateRepo) SaveHistory(ctx context.Context, quotes []domain.Quote) error {
	if len(quotes) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	queueQuotes(batch, insertHistoryQuery, quotes)
	return r.db.SendBatch(ctx, batch).Close()
}

func queueQuotes(batch *pgx.Batch, query string, quotes []domain.Quote) {
	for _, q := range quotes {
		batch.Queue(query, q.Source, q.TargetCode(), q.Price, q.Time)
	}
}

// GetAllLatest - последние курсы всех пар.
func (r *RateRepo) GetAllLatest(ctx context.Context) ([]domain.Rate, error) {
	const query = `
		SELECT source, target, value, time
		FROM latest_rates
		ORDER BY source, target
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return collectRates(rows)
}

// GetLatest - последний курс пары.
func (r *RateRepo) GetLatest(ctx context.Context, source, target string) (*domain.Rate, error) {
	const query = `
		SELECT source, target, value, time
		FROM latest_rates
		WHERE source = $1 AND target = $2
	`
	return scanRate(r.db.QueryRow(ctx, query, source, target))
}

// History - история пары за окно [from, to].
func (r *RateRepo) History(ctx context.Context, source, target string, from, to time.Time) ([]domain.Rate, error) {
	const query = `
		SELECT source, target, value, time
		FROM historical_rates
		WHERE source = $1 AND target = $2
		  AND time BETWEEN $3 AND $4
		ORDER BY time
	`
	rows, err := r.db.Query(ctx, query, source, target, from, to)
	if err != nil {
		return nil, err
	}
	return collectRates(rows)
}

// GetMinAndMax - минимальный и максимальный курс пары с момента since.
func (r *RateRepo) GetMinAndMax(ctx context.Context, source, target string, since time.Time) (min, max domain.Rate, err error) {
	const minQuery = `
		SELECT source, target, value, time
		FROM historical_rates
		WHERE source = $1 AND target = $2 AND time >= $3
		ORDER BY value
		LIMIT 1
	`
	const maxQuery = `
		SELECT source, target, value, time
		FROM historical_rates
		WHERE source = $1 AND target = $2 AND time >= $3
		ORDER BY value DESC
		LIMIT 1
	`
	lo, err := scanRate(r.db.QueryRow(ctx, minQuery, source, target, since))
	if err != nil {
		return domain.Rate{}, domain.Rate{}, err
	}
	hi, err := scanRate(r.db.QueryRow(ctx, maxQuery, source, target, since))
	if err != nil {
		return domain.Rate{}, domain.Rate{}, err
	}
	return *lo, *hi, nil
}

// GetBefore - курс пары не позже момента before (ближайший к нему).
func (r *RateRepo) GetBefore(ctx context.Context, source, target string, before time.Time) (*domain.Rate, error) {
	const query = `
		SELECT source, target, value, time
		FROM historical_rates
		WHERE source = $1 AND target = $2 AND time <= $3
		ORDER BY time DESC
		LIMIT 1
	`
	return scanRate(r.db.QueryRow(ctx, query, source, target, before))
}

// DeleteBySource - удаляет все курсы символа (в обеих таблицах).
func (r *RateRepo) DeleteBySource(ctx context.Context, code string) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM latest_rates WHERE source = $1 OR target = $1`, code); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `DELETE FROM historical_rates WHERE source = $1 OR target = $1`, code)
		return err
	})
}

func scanRate(row pgx.Row) (*domain.Rate, error) {
	var rate domain.Rate
	err := row.Scan(&rate.Source, &rate.Target, &rate.Value, &rate.Time)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rate, nil
}

func collectRates(rows pgx.Rows) ([]domain.Rate, error) {
	defer rows.Close()

	var out []domain.Rate
	for rows.Next() {
		var rate domain.Rate
		if err := rows.Scan(&rate.Source, &rate.Target, &rate.Value, &rate.Time); err != nil {
			return nil, err
		}
		out = append(out, rate)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return out, nil
}
