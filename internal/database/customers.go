package database

import "context"

const insertCustomer = `
INSERT INTO customers (email, first_name, last_name, default_currency)
VALUES ($1, $2, $3, $4)
RETURNING id, email, first_name, last_name, default_currency
`

type InsertCustomerParams struct {
	Email           string
	FirstName       string
	LastName        string
	DefaultCurrency string
}

func (q *Queries) InsertCustomer(ctx context.Context, arg InsertCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, insertCustomer, arg.Email, arg.FirstName, arg.LastName, arg.DefaultCurrency)
	var c Customer
	err := row.Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.DefaultCurrency)
	return c, err
}

const upsertCustomer = `
INSERT INTO customers (id, email, first_name, last_name, default_currency)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    email            = EXCLUDED.email,
    first_name       = EXCLUDED.first_name,
    last_name        = EXCLUDED.last_name,
    default_currency = EXCLUDED.default_currency
RETURNING id, email, first_name, last_name, default_currency
`

type UpsertCustomerParams struct {
	ID              int64
	Email           string
	FirstName       string
	LastName        string
	DefaultCurrency string
}

func (q *Queries) UpsertCustomer(ctx context.Context, arg UpsertCustomerParams) (Customer, error) {
	row := q.db.QueryRow(ctx, upsertCustomer, arg.ID, arg.Email, arg.FirstName, arg.LastName, arg.DefaultCurrency)
	var c Customer
	err := row.Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.DefaultCurrency)
	return c, err
}

const getCustomer = `
SELECT id, email, first_name, last_name, default_currency
FROM customers
WHERE id = $1
`

func (q *Queries) GetCustomer(ctx context.Context, id int64) (Customer, error) {
	row := q.db.QueryRow(ctx, getCustomer, id)
	var c Customer
	err := row.Scan(&c.ID, &c.Email, &c.FirstName, &c.LastName, &c.DefaultCurrency)
	return c, err
}

const customerExists = `
SELECT EXISTS (SELECT 1 FROM customers WHERE id = $1)
`

func (q *Queries) CustomerExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, customerExists, id).Scan(&exists)
	return exists, err
}

const deleteCustomer = `
DELETE FROM customers WHERE id = $1
`

func (q *Queries) DeleteCustomer(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteCustomer, id)
	return err
}
