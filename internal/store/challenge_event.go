package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

// challengeRepo implements ChallengeRepo.
type challengeRepo struct {
	db  *sql.DB
	drv *entsql.Driver
	seq *sequenceCounter
}

var challengeColumns = []string{
	"sequence", "timestamp", "session_id", "game", "victory",
	"final_stage", "stage_count", "lives_left",
	"total_attempts", "perfect_hits", "good_hits",
	"precision", "patience", "persistence", "duration_ms",
}

func (r *challengeRepo) AppendChallenge(ctx context.Context, data ChallengeEventData) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		seqNum, err := r.seq.NextIn(ctx, tx)
		if err != nil {
			return err
		}

		query, args := entsql.Dialect(dialect.SQLite).
			Insert("challenge_events").
			Columns(challengeColumns...).
			Values(seqNum, time.Now().UnixMilli(), data.SessionID, data.Game, data.Victory,
				data.FinalStage, data.StageCount, data.LivesLeft,
				data.TotalAttempts, data.PerfectHits, data.GoodHits,
				data.Precision, data.Patience, data.Persistence, data.Duration.Milliseconds()).
			Query()
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("save challenge event: %w", err)
		}
		return nil
	})
}

func (r *challengeRepo) Recent(ctx context.Context, opts QueryOpts) ([]ChallengeEvent, error) {
	sel := entsql.Dialect(dialect.SQLite).
		Select(challengeColumns...).
		From(entsql.Table("challenge_events")).
		OrderBy(entsql.Desc("sequence"))
	if opts.After > 0 {
		sel.Where(entsql.GT("sequence", opts.After))
	}
	if !opts.From.IsZero() {
		sel.Where(entsql.GTE("timestamp", opts.From.UnixMilli()))
	}
	if opts.Limit > 0 {
		sel.Limit(opts.Limit)
	}
	query, args := sel.Query()

	rows, err := r.drv.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}
	defer rows.Close()

	var events []ChallengeEvent
	for rows.Next() {
		var (
			e       ChallengeEvent
			ts, dur int64
		)
		err := rows.Scan(&e.Sequence, &ts, &e.SessionID, &e.Game, &e.Victory,
			&e.FinalStage, &e.StageCount, &e.LivesLeft,
			&e.TotalAttempts, &e.PerfectHits, &e.GoodHits,
			&e.Precision, &e.Patience, &e.Persistence, &dur)
		if err != nil {
			return nil, fmt.Errorf("scan challenge: %w", err)
		}
		e.Timestamp = time.UnixMilli(ts)
		e.Duration = time.Duration(dur) * time.Millisecond
		events = append(events, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query challenges: %w", err)
	}
	return events, nil
}

func (r *challengeRepo) Stats(ctx context.Context) (ChallengeStats, error) {
	query, args := entsql.Dialect(dialect.SQLite).
		Select(
			entsql.Count("*"),
			"COALESCE(SUM(victory), 0)",
			"COALESCE(SUM(total_attempts), 0)",
			"COALESCE(SUM(perfect_hits), 0)",
			"COALESCE(MAX(precision), 0)",
		).
		From(entsql.Table("challenge_events")).
		Query()

	var st ChallengeStats
	err := r.db.QueryRowContext(ctx, query, args...).
		Scan(&st.Played, &st.Victories, &st.TotalAttempts, &st.PerfectHits, &st.BestPrecision)
	if err != nil {
		return ChallengeStats{}, fmt.Errorf("query challenge stats: %w", err)
	}
	return st, nil
}
