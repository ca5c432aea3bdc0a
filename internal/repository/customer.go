package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/shopspring/decimal"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/umalmyha/customerlib/pkg/db/transactor"
)

const customerColumns = "id, first_name, last_name, phone_number, email, total_purchases_amount"

// CustomerRepository represents behavior for customer storage
type CustomerRepository interface {
	Exists(context.Context, int) (bool, error)
	Create(context.Context, *model.Customer) (int, error)
	Read(context.Context, int) (*model.Customer, error)
	ReadAll(context.Context) ([]*model.Customer, error)
	Count(context.Context) (int, error)
	ReadPage(ctx context.Context, page int, pageSize int) ([]*model.Customer, error)
	Update(context.Context, *model.Customer) error
	Delete(context.Context, int) error
	IsEmailTaken(context.Context, string) (bool, error)
	IsEmailTakenWithCustomerID(context.Context, string) (bool, int, error)
}

type postgresCustomerRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresCustomerRepository builds postgres customer repository
func NewPostgresCustomerRepository(trx transactor.PgxWithinTransactionExecutor) CustomerRepository {
	return &postgresCustomerRepository{trx: trx}
}

func (r *postgresCustomerRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM customers WHERE id = $1)"

	var exists bool
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresCustomerRepository) Create(ctx context.Context, c *model.Customer) (int, error) {
	q := `INSERT INTO customers(first_name, last_name, phone_number, email, total_purchases_amount)
          VALUES($1, $2, $3, $4, $5) RETURNING id`

	var id int
	row := r.trx.Executor(ctx).QueryRow(ctx, q, c.FirstName, c.LastName, c.PhoneNumber, c.Email, nullDecimal(c.TotalPurchasesAmount))
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *postgresCustomerRepository) Read(ctx context.Context, id int) (*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers WHERE id = $1"

	c, err := r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCustomerRepository) ReadAll(ctx context.Context) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers ORDER BY id"

	rows, err := r.trx.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *postgresCustomerRepository) Count(ctx context.Context) (int, error) {
	q := "SELECT COUNT(*) FROM customers"

	var count int
	if err := r.trx.Executor(ctx).QueryRow(ctx, q).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *postgresCustomerRepository) ReadPage(ctx context.Context, page int, pageSize int) ([]*model.Customer, error) {
	q := "SELECT " + customerColumns + " FROM customers ORDER BY id LIMIT $1 OFFSET $2"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, err
	}
	return r.scanRows(rows)
}

func (r *postgresCustomerRepository) Update(ctx context.Context, c *model.Customer) error {
	q := `UPDATE customers SET first_name = $1, last_name = $2, phone_number = $3, email = $4, total_purchases_amount = $5
          WHERE id = $6`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, c.FirstName, c.LastName, c.PhoneNumber, c.Email, nullDecimal(c.TotalPurchasesAmount), c.ID)
	return err
}

func (r *postgresCustomerRepository) Delete(ctx context.Context, id int) error {
	q := "DELETE FROM customers WHERE id = $1"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	return err
}

func (r *postgresCustomerRepository) IsEmailTaken(ctx context.Context, email string) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1)"

	var taken bool
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, email).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (r *postgresCustomerRepository) IsEmailTakenWithCustomerID(ctx context.Context, email string) (bool, int, error) {
	q := "SELECT id FROM customers WHERE email = $1"

	var id int
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, email).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, 0, nil
		}
		return false, 0, err
	}
	return true, id, nil
}

func (r *postgresCustomerRepository) scanRow(row pgx.Row) (*model.Customer, error) {
	var c model.Customer
	var amount decimal.NullDecimal
	if err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.PhoneNumber, &c.Email, &amount); err != nil {
		return nil, err
	}

	if amount.Valid {
		c.TotalPurchasesAmount = &amount.Decimal
	}
	return &c, nil
}

func (r *postgresCustomerRepository) scanRows(rows pgx.Rows) ([]*model.Customer, error) {
	defer rows.Close()

	customers := make([]*model.Customer, 0)
	for rows.Next() {
		c, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *d, Valid: true}
}
