package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/umalmyha/customerlib/pkg/db/transactor"
)

// NoteRepository represents behavior for note storage
type NoteRepository interface {
	Exists(context.Context, int) (bool, error)
	Create(context.Context, *model.Note) (int, error)
	Read(context.Context, int) (*model.Note, error)
	ReadByCustomer(context.Context, int) ([]*model.Note, error)
	Update(context.Context, *model.Note) error
	Delete(context.Context, int) error
	DeleteByCustomer(context.Context, int) error
}

type postgresNoteRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresNoteRepository builds postgres note repository
func NewPostgresNoteRepository(trx transactor.PgxWithinTransactionExecutor) NoteRepository {
	return &postgresNoteRepository{trx: trx}
}

func (r *postgresNoteRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM notes WHERE id = $1)"

	var exists bool
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresNoteRepository) Create(ctx context.Context, n *model.Note) (int, error) {
	q := "INSERT INTO notes(customer_id, content) VALUES($1, $2) RETURNING id"

	var id int
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, n.CustomerID, n.Content).Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *postgresNoteRepository) Read(ctx context.Context, id int) (*model.Note, error) {
	q := "SELECT id, customer_id, content FROM notes WHERE id = $1"

	var n model.Note
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&n.ID, &n.CustomerID, &n.Content); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &n, nil
}

func (r *postgresNoteRepository) ReadByCustomer(ctx context.Context, customerID int) ([]*model.Note, error) {
	q := "SELECT id, customer_id, content FROM notes WHERE customer_id = $1 ORDER BY id"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notes := make([]*model.Note, 0)
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(&n.ID, &n.CustomerID, &n.Content); err != nil {
			return nil, err
		}
		notes = append(notes, &n)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return notes, nil
}

func (r *postgresNoteRepository) Update(ctx context.Context, n *model.Note) error {
	q := "UPDATE notes SET customer_id = $1, content = $2 WHERE id = $3"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, n.CustomerID, n.Content, n.ID)
	return err
}

func (r *postgresNoteRepository) Delete(ctx context.Context, id int) error {
	q := "DELETE FROM notes WHERE id = $1"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	return err
}

func (r *postgresNoteRepository) DeleteByCustomer(ctx context.Context, customerID int) error {
	q := "DELETE FROM notes WHERE customer_id = $1"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, customerID)
	return err
}
