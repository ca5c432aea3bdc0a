package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/customerlib/internal/model"
	"github.com/umalmyha/customerlib/pkg/db/transactor"
)

const addressColumns = "id, customer_id, address_line, address_line2, address_type_id, city, postal_code, state, country"

// AddressRepository represents behavior for address storage
type AddressRepository interface {
	Exists(context.Context, int) (bool, error)
	Create(context.Context, *model.Address) (int, error)
	Read(context.Context, int) (*model.Address, error)
	ReadByCustomer(context.Context, int) ([]*model.Address, error)
	Update(context.Context, *model.Address) error
	Delete(context.Context, int) error
	DeleteByCustomer(context.Context, int) error
}

type postgresAddressRepository struct {
	trx transactor.PgxWithinTransactionExecutor
}

// NewPostgresAddressRepository builds postgres address repository
func NewPostgresAddressRepository(trx transactor.PgxWithinTransactionExecutor) AddressRepository {
	return &postgresAddressRepository{trx: trx}
}

func (r *postgresAddressRepository) Exists(ctx context.Context, id int) (bool, error) {
	q := "SELECT EXISTS(SELECT 1 FROM addresses WHERE id = $1)"

	var exists bool
	if err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *postgresAddressRepository) Create(ctx context.Context, a *model.Address) (int, error) {
	q := `INSERT INTO addresses(customer_id, address_line, address_line2, address_type_id, city, postal_code, state, country)
          VALUES($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id`

	var id int
	row := r.trx.Executor(ctx).QueryRow(ctx, q, a.CustomerID, a.AddressLine, a.AddressLine2, int(a.Type), a.City, a.PostalCode, a.State, a.Country)
	if err := row.Scan(&id); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *postgresAddressRepository) Read(ctx context.Context, id int) (*model.Address, error) {
	q := "SELECT " + addressColumns + " FROM addresses WHERE id = $1"

	a, err := r.scanRow(r.trx.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return a, nil
}

func (r *postgresAddressRepository) ReadByCustomer(ctx context.Context, customerID int) ([]*model.Address, error) {
	q := "SELECT " + addressColumns + " FROM addresses WHERE customer_id = $1 ORDER BY id"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	addresses := make([]*model.Address, 0)
	for rows.Next() {
		a, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		addresses = append(addresses, a)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return addresses, nil
}

func (r *postgresAddressRepository) Update(ctx context.Context, a *model.Address) error {
	q := `UPDATE addresses SET customer_id = $1, address_line = $2, address_line2 = $3, address_type_id = $4,
          city = $5, postal_code = $6, state = $7, country = $8
          WHERE id = $9`
	_, err := r.trx.Executor(ctx).Exec(ctx, q, a.CustomerID, a.AddressLine, a.AddressLine2, int(a.Type), a.City, a.PostalCode, a.State, a.Country, a.ID)
	return err
}

func (r *postgresAddressRepository) Delete(ctx context.Context, id int) error {
	q := "DELETE FROM addresses WHERE id = $1"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, id)
	return err
}

func (r *postgresAddressRepository) DeleteByCustomer(ctx context.Context, customerID int) error {
	q := "DELETE FROM addresses WHERE customer_id = $1"
	_, err := r.trx.Executor(ctx).Exec(ctx, q, customerID)
	return err
}

func (r *postgresAddressRepository) scanRow(row pgx.Row) (*model.Address, error) {
	var a model.Address
	var addrType int
	if err := row.Scan(&a.ID, &a.CustomerID, &a.AddressLine, &a.AddressLine2, &addrType, &a.City, &a.PostalCode, &a.State, &a.Country); err != nil {
		return nil, err
	}
	a.Type = model.AddressType(addrType)
	return &a, nil
}
