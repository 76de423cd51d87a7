package achievements

import (
	"context"
	"fmt"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ListForUser returns the stored records keyed by achievement id. Users
// with no evaluation pass yet simply get an empty map.
func (r *Repo) ListForUser(ctx context.Context, userID int) (_ map[string]Record, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.listForUser")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT achievement_id, achieved, achieved_date, progress
			FROM achievement
			WHERE user_id = $1`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list achievement records: %w", err)
	}
	defer rows.Close()

	records := make(map[string]Record)
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.ID, &rec.Achieved, &rec.AchievedDate, &rec.Progress); err != nil {
			return nil, fmt.Errorf("scan achievement record: %w", err)
		}
		records[rec.ID] = rec
	}

	return records, rows.Err()
}

// Upsert writes one record, creating or replacing it. Records are only ever
// written by the evaluator, there is no delete path.
func (r *Repo) Upsert(ctx context.Context, userID int, def Definition, record Record) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.achievements.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx,
		`INSERT INTO achievement
			(user_id, achievement_id, title, description, icon, criteria_kind, criteria_threshold, achieved, achieved_date, progress)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			ON CONFLICT (user_id, achievement_id)
			DO UPDATE SET
				title = EXCLUDED.title,
				description = EXCLUDED.description,
				icon = EXCLUDED.icon,
				criteria_kind = EXCLUDED.criteria_kind,
				criteria_threshold = EXCLUDED.criteria_threshold,
				achieved = EXCLUDED.achieved,
				achieved_date = EXCLUDED.achieved_date,
				progress = EXCLUDED.progress`,
		userID, def.ID, def.Title, def.Description, def.Icon,
		string(def.Criteria.Kind), def.Criteria.Threshold,
		record.Achieved, record.AchievedDate, record.Progress,
	); err != nil {
		return fmt.Errorf("upsert achievement record: %w", err)
	}

	return nil
}
