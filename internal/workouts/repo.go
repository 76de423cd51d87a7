package workouts

import (
	"context"
	"errors"
	"fmt"

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

func (r *Repo) Add(ctx context.Context, session Session) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = r.db.QueryRow(ctx,
		`INSERT INTO workout (user_id, exercise, intensity, calories, duration_minutes, date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id`,
		session.UserID, session.Exercise, session.Intensity,
		session.Calories, session.DurationMinutes, session.Date,
	).Scan(&session.ID); err != nil {
		return nil, fmt.Errorf("insert workout session: %w", err)
	}

	return &session, nil
}

func (r *Repo) Get(ctx context.Context, userID, id int) (_ *Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var s Session
	if err = r.db.QueryRow(ctx,
		`SELECT id, user_id, exercise, intensity, calories, duration_minutes, date
			FROM workout
			WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(
		&s.ID, &s.UserID, &s.Exercise, &s.Intensity,
		&s.Calories, &s.DurationMinutes, &s.Date,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrSessionNotFound
		}
		return nil, fmt.Errorf("get workout session: %w", err)
	}

	return &s, nil
}

func (r *Repo) Update(ctx context.Context, session Session) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`UPDATE workout
			SET exercise = $1, intensity = $2, calories = $3, duration_minutes = $4, date = $5
			WHERE id = $6 AND user_id = $7`,
		session.Exercise, session.Intensity, session.Calories,
		session.DurationMinutes, session.Date, session.ID, session.UserID,
	)
	if err != nil {
		return fmt.Errorf("update workout session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM workout WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete workout session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrSessionNotFound
	}

	return nil
}

// List returns one page of sessions, newest first, together with the total count.
func (r *Repo) List(ctx context.Context, params ListParams) (_ *SessionsPage, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	total, err := r.Count(ctx, params.UserID)
	if err != nil {
		return nil, err
	}

	limit := params.Size
	offset := (params.Page - 1) * params.Size
	if offset >= total {
		// over the last page, return the last one
		offset = total - params.Size
	}
	if offset < 0 {
		offset = 0
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, exercise, intensity, calories, duration_minutes, date
			FROM workout
			WHERE user_id = $1
			ORDER BY date DESC
			LIMIT $2 OFFSET $3`,
		params.UserID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list workout sessions: %w", err)
	}
	defer rows.Close()

	sessions, err := scanSessions(rows)
	if err != nil {
		return nil, err
	}

	return &SessionsPage{Sessions: sessions, Total: total}, nil
}

// ListAll returns every session of the user, oldest first.
func (r *Repo) ListAll(ctx context.Context, userID int) (_ []Session, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.listAll")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, exercise, intensity, calories, duration_minutes, date
			FROM workout
			WHERE user_id = $1
			ORDER BY date ASC`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("list all workout sessions: %w", err)
	}
	defer rows.Close()

	return scanSessions(rows)
}

func (r *Repo) Count(ctx context.Context, userID int) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.count")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var count int
	if err = r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM workout WHERE user_id = $1`,
		userID,
	).Scan(&count); err != nil {
		return 0, fmt.Errorf("count workout sessions: %w", err)
	}

	return count, nil
}

func scanSessions(rows pgx.Rows) ([]Session, error) {
	var sessions []Session
	for rows.Next() {
		var s Session
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.Exercise, &s.Intensity,
			&s.Calories, &s.DurationMinutes, &s.Date,
		); err != nil {
			return nil, fmt.Errorf("scan workout session: %w", err)
		}
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
