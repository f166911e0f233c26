package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// profileRepo implements ProfileRepo. Scores are an append-only log of
// deltas; totals are always summed on read.
type profileRepo struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

func (r *profileRepo) AppendScore(ctx context.Context, data ScoreEventData) error {
	if data.Kind != KindArea && data.Kind != KindTrait {
		return fmt.Errorf("append score: unknown kind %q", data.Kind)
	}
	if data.Name == "" {
		return errors.New("append score: empty name")
	}

	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		seqNum, err := r.seq.NextIn(ctx, tx)
		if err != nil {
			return err
		}

		query, args := entsql.Dialect(dialect.SQLite).
			Insert("score_events").
			Columns("sequence", "timestamp", "kind", "name", "amount", "source").
			Values(seqNum, time.Now().UnixMilli(), data.Kind, data.Name, data.Amount, data.Source).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save score event: %w", err)
		}
		return nil
	})
}

func (r *profileRepo) Totals(ctx context.Context, kind string) (map[string]float64, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("name", entsql.As(entsql.Sum("amount"), "total")).
		From(entsql.Table("score_events")).
		Where(entsql.EQ("kind", kind)).
		GroupBy("name").
		Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]float64)
	for rows.Next() {
		var (
			name  string
			total float64
		)
		if err := rows.Scan(&name, &total); err != nil {
			return nil, fmt.Errorf("scan totals: %w", err)
		}
		totals[name] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query totals: %w", err)
	}
	return totals, nil
}

func (r *profileRepo) Setting(ctx context.Context, key string) (string, bool, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("value").
		From(entsql.Table("profile_settings")).
		Where(entsql.EQ("key", key)).
		Query()

	var value string
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query setting %s: %w", key, err)
	}
	return value, true, nil
}

func (r *profileRepo) SetSetting(ctx context.Context, key, value string) error {
	query, args := entsql.Dialect(dialect.SQLite).
		Insert("profile_settings").
		Columns("key", "value", "updated_at").
		Values(key, value, time.Now().UnixMilli()).
		OnConflict(
			entsql.ConflictColumns("key"),
			entsql.ResolveWithNewValues(),
		).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save setting %s: %w", key, err)
	}
	return nil
}

func (r *profileRepo) Reset(ctx context.Context) error {
	tables := []string{"score_events", "challenge_events", "profile_settings", "reports"}
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		for _, table := range tables {
			query, args := entsql.Dialect(dialect.SQLite).Delete(table).Query()
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("clear %s: %w", table, err)
			}
		}
		return nil
	})
}
