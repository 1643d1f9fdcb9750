package postgres

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"
	"github.com/lib/pq"

	"chat-srv/internal/model"
	"chat-srv/internal/user/repository"
)

const uniqueViolation = "23505"

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	usr := opts.User
	usr.CreatedAt = r.clock()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO users (name, email, password_hash, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		usr.Name, usr.Email, usr.PasswordHash, usr.CreatedAt,
	).Scan(&usr.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return model.User{}, repository.ErrDuplicate
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.Create.Scan: %v", err)
		return model.User{}, errors.Wrap(err, "insert user")
	}

	return usr, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id int64) (model.User, error) {
	return r.getOne(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE id = $1`, id)
}

func (r *implRepository) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	if opts.ID > 0 {
		return r.Detail(ctx, sc, opts.ID)
	}
	return r.getOne(ctx,
		`SELECT id, name, email, password_hash, created_at FROM users WHERE email = $1`, opts.Email)
}

func (r *implRepository) getOne(ctx context.Context, query string, arg any) (model.User, error) {
	var usr model.User
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.user.repository.postgres.getOne.Scan: %v", err)
		return model.User{}, errors.Wrap(err, "query user")
	}

	return usr, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	query := `SELECT id, name, email, password_hash, created_at FROM users ORDER BY id`
	args := []any{}
	if len(opts.IDs) > 0 {
		query = `SELECT id, name, email, password_hash, created_at FROM users WHERE id = ANY($1) ORDER BY id`
		args = append(args, pq.Array(opts.IDs))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Query: %v", err)
		return nil, errors.Wrap(err, "list users")
	}
	defer rows.Close()

	var usrs []model.User
	for rows.Next() {
		var usr model.User
		if err := rows.Scan(&usr.ID, &usr.Name, &usr.Email, &usr.PasswordHash, &usr.CreatedAt); err != nil {
			r.l.Errorf(ctx, "internal.user.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan user")
		}
		usrs = append(usrs, usr)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.user.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate users")
	}

	return usrs, nil
}
