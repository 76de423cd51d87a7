package preferences

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

// Get returns the stored preferences, or the defaults if the user never
// saved any.
func (r *Repo) Get(ctx context.Context, userID int) (_ Preferences, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var p Preferences
	if err = r.db.QueryRow(ctx,
		`SELECT user_id, weight_unit, distance_unit, theme
			FROM preferences
			WHERE user_id = $1`,
		userID,
	).Scan(&p.UserID, &p.WeightUnit, &p.DistanceUnit, &p.Theme); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Default(userID), nil
		}
		return Preferences{}, fmt.Errorf("get preferences: %w", err)
	}

	return p, nil
}

func (r *Repo) Upsert(ctx context.Context, p Preferences) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.preferences.upsert")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if _, err = r.db.Exec(ctx,
		`INSERT INTO preferences (user_id, weight_unit, distance_unit, theme)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (user_id)
			DO UPDATE SET
				weight_unit = EXCLUDED.weight_unit,
				distance_unit = EXCLUDED.distance_unit,
				theme = EXCLUDED.theme`,
		p.UserID, p.WeightUnit, p.DistanceUnit, p.Theme,
	); err != nil {
		return fmt.Errorf("upsert preferences: %w", err)
	}

	return nil
}
