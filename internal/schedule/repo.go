package schedule

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

// Upsert sets the plan for one weekday, replacing the previous plan for
// that day if present.
func (r *Repo) Upsert(ctx context.Context, entry Entry) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx,
		`INSERT INTO schedule_entry (user_id, weekday, exercise, minutes)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id, weekday)
			DO UPDATE SET exercise = EXCLUDED.exercise, minutes = EXCLUDED.minutes`,
		entry.UserID, entry.Weekday, entry.Exercise, entry.Minutes,
	); err != nil {
		return fmt.Errorf("upsert schedule entry: %w", err)
	}

	return nil
}

// Week returns the entries of the user ordered by weekday. Days without a
// plan are simply absent.
func (r *Repo) Week(ctx context.Context, userID int) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.week")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT user_id, weekday, exercise, minutes
			FROM schedule_entry
			WHERE user_id = $1
			ORDER BY weekday ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("get week schedule: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.UserID, &e.Weekday, &e.Exercise, &e.Minutes); err != nil {
			return nil, fmt.Errorf("scan schedule entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

func (r *Repo) Delete(ctx context.Context, userID, weekday int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM schedule_entry WHERE user_id = $1 AND weekday = $2`,
		userID, weekday,
	)
	if err != nil {
		return fmt.Errorf("delete schedule entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}
