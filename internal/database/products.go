package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const insertProduct = `
INSERT INTO products (name, description, price, currency, active, weight_grams)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, name, description, price, currency, active, weight_grams
`

type InsertProductParams struct {
	Name        string
	Description pgtype.Text
	Price       int64
	Currency    string
	Active      bool
	WeightGrams pgtype.Int8
}

func (q *Queries) InsertProduct(ctx context.Context, arg InsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, insertProduct,
		arg.Name, arg.Description, arg.Price, arg.Currency, arg.Active, arg.WeightGrams)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Active, &p.WeightGrams)
	return p, err
}

const upsertProduct = `
INSERT INTO products (id, name, description, price, currency, active, weight_grams)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (id) DO UPDATE SET
    name         = EXCLUDED.name,
    description  = EXCLUDED.description,
    price        = EXCLUDED.price,
    currency     = EXCLUDED.currency,
    active       = EXCLUDED.active,
    weight_grams = EXCLUDED.weight_grams
RETURNING id, name, description, price, currency, active, weight_grams
`

type UpsertProductParams struct {
	ID          int64
	Name        string
	Description pgtype.Text
	Price       int64
	Currency    string
	Active      bool
	WeightGrams pgtype.Int8
}

func (q *Queries) UpsertProduct(ctx context.Context, arg UpsertProductParams) (Product, error) {
	row := q.db.QueryRow(ctx, upsertProduct,
		arg.ID, arg.Name, arg.Description, arg.Price, arg.Currency, arg.Active, arg.WeightGrams)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Active, &p.WeightGrams)
	return p, err
}

const getProduct = `
SELECT id, name, description, price, currency, active, weight_grams
FROM products
WHERE id = $1
`

func (q *Queries) GetProduct(ctx context.Context, id int64) (Product, error) {
	row := q.db.QueryRow(ctx, getProduct, id)
	var p Product
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Currency, &p.Active, &p.WeightGrams)
	return p, err
}

const productExists = `
SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)
`

func (q *Queries) ProductExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, productExists, id).Scan(&exists)
	return exists, err
}

const deleteProduct = `
DELETE FROM products WHERE id = $1
`

func (q *Queries) DeleteProduct(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteProduct, id)
	return err
}
