package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/fitstats/internal/telemetry/tracing"
	"github.com/2beens/fitstats/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

func (r *Repo) Add(ctx context.Context, user User) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	if err = r.db.QueryRow(ctx,
		`INSERT INTO fs_user (username, display_name, password_hash, created_at)
			VALUES ($1, $2, $3, $4)
			RETURNING id`,
		user.Username, user.DisplayName, user.PasswordHash, user.CreatedAt,
	).Scan(&id); err != nil {
		if pkg.IsUniqueViolationError(err) {
			return 0, ErrUsernameTaken
		}
		return 0, fmt.Errorf("insert user: %w", err)
	}

	return id, nil
}

func (r *Repo) GetByUsername(ctx context.Context, username string) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.getByUsername")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	if err = r.db.QueryRow(ctx,
		`SELECT id, username, display_name, password_hash, created_at
			FROM fs_user
			WHERE username = $1`,
		username,
	).Scan(&user.ID, &user.Username, &user.DisplayName, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by username: %w", err)
	}

	return &user, nil
}

func (r *Repo) Get(ctx context.Context, id int) (_ *User, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.users.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var user User
	if err = r.db.QueryRow(ctx,
		`SELECT id, username, display_name, password_hash, created_at
			FROM fs_user
			WHERE id = $1`,
		id,
	).Scan(&user.ID, &user.Username, &user.DisplayName, &user.PasswordHash, &user.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	return &user, nil
}
