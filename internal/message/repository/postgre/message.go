package postgres

import (
	"context"
	"database/sql"

	"github.com/friendsofgo/errors"

	"chat-srv/internal/message/repository"
	"chat-srv/internal/model"
)

const messageColumns = `id, sender_id, receiver_id, content, created_at`

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Message, error) {
	msg := opts.Message
	msg.CreatedAt = r.clock()

	err := r.db.QueryRowContext(ctx,
		`INSERT INTO messages (sender_id, receiver_id, content, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		msg.SenderID, msg.ReceiverID, msg.Content, msg.CreatedAt,
	).Scan(&msg.ID)
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.Create.Scan: %v", err)
		return model.Message{}, errors.Wrap(err, "insert message")
	}

	return msg, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id int64) (model.Message, error) {
	var msg model.Message
	err := r.db.QueryRowContext(ctx,
		`SELECT `+messageColumns+` FROM messages WHERE id = $1`, id,
	).Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Message{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.message.repository.postgres.Detail.Scan: %v", err)
		return model.Message{}, errors.Wrap(err, "query message")
	}

	return msg, nil
}

func (r *implRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Message, error) {
	query := `SELECT ` + messageColumns + ` FROM messages
		 WHERE sender_id = $1 OR receiver_id = $1 OR receiver_id IS NULL
		 ORDER BY created_at, id`
	args := []any{opts.InvolvingUserID}

	if opts.ConversationWith != nil {
		query = `SELECT ` + messageColumns + ` FROM messages
		 WHERE (sender_id = $1 AND receiver_id = $2)
		    OR (sender_id = $2 AND receiver_id = $1)
		 ORDER BY created_at, id`
		args = append(args, *opts.ConversationWith)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.List.Query: %v", err)
		return nil, errors.Wrap(err, "list messages")
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var msg model.Message
		if err := rows.Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.CreatedAt); err != nil {
			r.l.Errorf(ctx, "internal.message.repository.postgres.List.Scan: %v", err)
			return nil, errors.Wrap(err, "scan message")
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.List.Rows: %v", err)
		return nil, errors.Wrap(err, "iterate messages")
	}

	return msgs, nil
}

func (r *implRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Message, error) {
	var msg model.Message
	err := r.db.QueryRowContext(ctx,
		`UPDATE messages SET content = $2 WHERE id = $1
		 RETURNING `+messageColumns,
		opts.ID, opts.Content,
	).Scan(&msg.ID, &msg.SenderID, &msg.ReceiverID, &msg.Content, &msg.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Message{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.message.repository.postgres.Update.Scan: %v", err)
		return model.Message{}, errors.Wrap(err, "update message")
	}

	return msg, nil
}

func (r *implRepository) Delete(ctx context.Context, sc model.Scope, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM messages WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.Delete.Exec: %v", err)
		return errors.Wrap(err, "delete message")
	}

	rows, err := res.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.message.repository.postgres.Delete.RowsAffected: %v", err)
		return errors.Wrap(err, "delete message")
	}
	if rows == 0 {
		return repository.ErrNotFound
	}

	return nil
}
