package goals

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/2beens/fitstats/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, goal Goal) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = r.db.QueryRow(ctx,
		`INSERT INTO goal (user_id, kind, description, target, deadline, done, created_at)
			VALUES ($1, $2, $3, $4, $5, false, $6)
			RETURNING id`,
		goal.UserID, goal.Kind, goal.Description, goal.Target, goal.Deadline, goal.CreatedAt,
	).Scan(&goal.ID); err != nil {
		return nil, fmt.Errorf("insert goal: %w", err)
	}

	return &goal, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var g Goal
	if err = r.db.QueryRow(ctx,
		`SELECT id, user_id, kind, description, target, deadline, done, completed_at, created_at
			FROM goal
			WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&g.ID, &g.UserID, &g.Kind, &g.Description, &g.Target,
		&g.Deadline, &g.Done, &g.CompletedAt, &g.CreatedAt,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("get goal: %w", err)
	}

	return &g, nil
}

func (r *Repo) List(ctx context.Context, userID int) (_ []Goal, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, description, target, deadline, done, completed_at, created_at
			FROM goal
			WHERE user_id = $1
			ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []Goal
	for rows.Next() {
		var g Goal
		if err := rows.Scan(
			&g.ID, &g.UserID, &g.Kind, &g.Description, &g.Target,
			&g.Deadline, &g.Done, &g.CompletedAt, &g.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan goal: %w", err)
		}
		goals = append(goals, g)
	}

	return goals, rows.Err()
}

// Complete marks the goal done. A goal already done stays done, the original
// completion time is kept.
func (r *Repo) Complete(ctx context.Context, userID, id int, completedAt time.Time) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.complete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE goal
			SET done = true, completed_at = COALESCE(completed_at, $1)
			WHERE id = $2 AND user_id = $3`,
		completedAt, id, userID,
	)
	if err != nil {
		return fmt.Errorf("complete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.goals.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM goal WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGoalNotFound
	}

	return nil
}
