package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// reportRepo implements ReportRepo. Report bodies are stored as JSON.
type reportRepo struct {
	db *sql.DB
}

func (r *reportRepo) Save(ctx context.Context, rep *Report) error {
	data, err := json.Marshal(rep.Data)
	if err != nil {
		return fmt.Errorf("marshal report data: %w", err)
	}

	ts := rep.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	query, args := entsql.Dialect(dialect.SQLite).
		Insert("reports").
		Columns("sequence", "timestamp", "data").
		Values(rep.Sequence, ts.UnixMilli(), string(data)).
		Query()
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	if id, err := res.LastInsertId(); err == nil {
		rep.ID = int(id)
	}
	return nil
}

func (r *reportRepo) Latest(ctx context.Context) (*Report, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id", "sequence", "timestamp", "data").
		From(entsql.Table("reports")).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Limit(1).
		Query()

	var (
		rep  Report
		ts   int64
		data string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&rep.ID, &rep.Sequence, &ts, &data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query latest report: %w", err)
	}

	if err := json.Unmarshal([]byte(data), &rep.Data); err != nil {
		return nil, fmt.Errorf("unmarshal report data: %w", err)
	}
	rep.Timestamp = time.UnixMilli(ts)
	return &rep, nil
}

func (r *reportRepo) Prune(ctx context.Context, keep int) error {
	// Find the ID threshold: the Nth most recent report.
	query, args := entsql.Dialect(dialect.SQLite).
		Select("id").
		From(entsql.Table("reports")).
		OrderBy(entsql.Desc("timestamp"), entsql.Desc("id")).
		Offset(keep).
		Limit(1).
		Query()

	var threshold int
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&threshold)
	if errors.Is(err, sql.ErrNoRows) {
		return nil // fewer than keep reports exist
	}
	if err != nil {
		return fmt.Errorf("query reports for prune: %w", err)
	}

	query, args = entsql.Dialect(dialect.SQLite).
		Delete("reports").
		Where(entsql.LTE("id", threshold)).
		Query()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("prune reports: %w", err)
	}
	return nil
}
