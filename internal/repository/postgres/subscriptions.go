package postgres

import (
	"context"
	"time"

	"github.com/NastyaGoryachaya/trading-service/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SubscriptionRepo - подписки чатов на курсы (rate_subscriptions).
// Время следующей отправки хранится явно в next_send_at.
type SubscriptionRepo struct {
	db *pgxpool.Pool
}

func NewSubscriptionRepository(db *pgxpool.Pool) *SubscriptionRepo {
	return &SubscriptionRepo{db: db}
}

// Upsert - подписка на пару (или сводку); первая отправка в момент from.
func (r *SubscriptionRepo) Upsert(ctx context.Context, sub domain.Subscription, from time.Time) error {
	const query = `
		INSERT INTO rate_subscriptions (chat_id, source, target, interval_minutes, next_send_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (chat_id, source, target)
		DO UPDATE SET interval_minutes = EXCLUDED.interval_minutes,
		              next_send_at = EXCLUDED.next_send_at
	`
	_, err := r.db.Exec(ctx, query, sub.ChatID, sub.Source, sub.Target, sub.IntervalMinutes, from)
	return err
}

// Delete - удаляет подписку чата на пару; с пустым source удаляет все подписки чата.
func (r *SubscriptionRepo) Delete(ctx context.Context, chatID int64, source, target string) (int64, error) {
	if source == "" {
		tag, err := r.db.Exec(ctx, `DELETE FROM rate_subscriptions WHERE chat_id = $1`, chatID)
		if err != nil {
			return 0, err
		}
		return tag.RowsAffected(), nil
	}

	const query = `DELETE FROM rate_subscriptions WHERE chat_id = $1 AND source = $2 AND target = $3`
	tag, err := r.db.Exec(ctx, query, chatID, source, target)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Due - подписки, у которых next_send_at наступил; сначала самые просроченные.
func (r *SubscriptionRepo) Due(ctx context.Context, now time.Time) ([]domain.Subscription, error) {
	const query = `
		SELECT chat_id, source, target, interval_minutes
		FROM rate_subscriptions
		WHERE next_send_at <= $1
		ORDER BY next_send_at, chat_id
	`
	rows, err := r.db.Query(ctx, query, now)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Subscription, error) {
		var s domain.Subscription
		err := row.Scan(&s.ChatID, &s.Source, &s.Target, &s.IntervalMinutes)
		return s, err
	})
}

// Reschedule - переносит следующую отправку на at + интервал подписки.
func (r *SubscriptionRepo) Reschedule(ctx context.Context, sub domain.Subscription, at time.Time) error {
	const query = `
		UPDATE rate_subscriptions
		SET next_send_at = $4::timestamptz + make_interval(mins => interval_minutes)
		WHERE chat_id = $1 AND source = $2 AND target = $3
	`
	_, err := r.db.Exec(ctx, query, sub.ChatID, sub.Source, sub.Target, at)
	return err
}
