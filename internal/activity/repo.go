package activity

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

func (r *Repo) Add(ctx context.Context, event Event) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx,
		`INSERT INTO activity (user_id, kind, details, timestamp)
			VALUES ($1, $2, $3, $4)`,
		event.UserID, event.Kind, event.Details, event.Timestamp,
	); err != nil {
		return fmt.Errorf("insert activity event: %w", err)
	}

	return nil
}

func (r *Repo) List(ctx context.Context, userID, limit int) (_ []Event, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.activity.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kind, details, timestamp
			FROM activity
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT $2`,
		userID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("list activity events: %w", err)
	}
	defer rows.Close()

	var events []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Kind, &e.Details, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan activity event: %w", err)
		}
		events = append(events, e)
	}

	return events, rows.Err()
}
