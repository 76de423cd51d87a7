package weight

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

func (r *Repo) Add(ctx context.Context, entry Entry) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if err = r.db.QueryRow(ctx,
		`INSERT INTO weight_entry (user_id, kilos, timestamp)
			VALUES ($1, $2, $3)
			RETURNING id`,
		entry.UserID, entry.Kilos, entry.Timestamp,
	).Scan(&entry.ID); err != nil {
		return nil, fmt.Errorf("insert weight entry: %w", err)
	}

	return &entry, nil
}

func (r *Repo) Delete(ctx context.Context, userID, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	tag, err := r.db.Exec(ctx,
		`DELETE FROM weight_entry WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return fmt.Errorf("delete weight entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrEntryNotFound
	}

	return nil
}

// ListBetween returns the entries of the user in [from, to], oldest first.
func (r *Repo) ListBetween(ctx context.Context, userID int, from, to time.Time) (_ []Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.listBetween")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, kilos, timestamp
			FROM weight_entry
			WHERE user_id = $1 AND timestamp >= $2 AND timestamp <= $3
			ORDER BY timestamp ASC`,
		userID, from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("list weight entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.UserID, &e.Kilos, &e.Timestamp); err != nil {
			return nil, fmt.Errorf("scan weight entry: %w", err)
		}
		entries = append(entries, e)
	}

	return entries, rows.Err()
}

// Latest returns the most recent entry of the user.
func (r *Repo) Latest(ctx context.Context, userID int) (_ *Entry, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.weight.latest")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var e Entry
	if err = r.db.QueryRow(ctx,
		`SELECT id, user_id, kilos, timestamp
			FROM weight_entry
			WHERE user_id = $1
			ORDER BY timestamp DESC
			LIMIT 1`,
		userID,
	).Scan(&e.ID, &e.UserID, &e.Kilos, &e.Timestamp); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get latest weight entry: %w", err)
	}

	return &e, nil
}
