package database

import "context"

const insertOrder = `
INSERT INTO orders (order_number, customer_id, status, currency, amount)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, order_number, customer_id, status, currency, amount
`

type InsertOrderParams struct {
	OrderNumber string
	CustomerID  int64
	Status      string
	Currency    string
	Amount      int64
}

func (q *Queries) InsertOrder(ctx context.Context, arg InsertOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, insertOrder,
		arg.OrderNumber, arg.CustomerID, arg.Status, arg.Currency, arg.Amount)
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.Currency, &o.Amount)
	return o, err
}

const upsertOrder = `
INSERT INTO orders (id, order_number, customer_id, status, currency, amount)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (id) DO UPDATE SET
    order_number = EXCLUDED.order_number,
    customer_id  = EXCLUDED.customer_id,
    status       = EXCLUDED.status,
    currency     = EXCLUDED.currency,
    amount       = EXCLUDED.amount
RETURNING id, order_number, customer_id, status, currency, amount
`

type UpsertOrderParams struct {
	ID          int64
	OrderNumber string
	CustomerID  int64
	Status      string
	Currency    string
	Amount      int64
}

func (q *Queries) UpsertOrder(ctx context.Context, arg UpsertOrderParams) (Order, error) {
	row := q.db.QueryRow(ctx, upsertOrder,
		arg.ID, arg.OrderNumber, arg.CustomerID, arg.Status, arg.Currency, arg.Amount)
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.Currency, &o.Amount)
	return o, err
}

const getOrder = `
SELECT id, order_number, customer_id, status, currency, amount
FROM orders
WHERE id = $1
`

func (q *Queries) GetOrder(ctx context.Context, id int64) (Order, error) {
	row := q.db.QueryRow(ctx, getOrder, id)
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.CustomerID, &o.Status, &o.Currency, &o.Amount)
	return o, err
}

const orderExists = `
SELECT EXISTS (SELECT 1 FROM orders WHERE id = $1)
`

func (q *Queries) OrderExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, orderExists, id).Scan(&exists)
	return exists, err
}

const deleteOrder = `
DELETE FROM orders WHERE id = $1
`

func (q *Queries) DeleteOrder(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteOrder, id)
	return err
}

const deleteOrderItems = `
DELETE FROM order_items WHERE order_id = $1
`

func (q *Queries) DeleteOrderItems(ctx context.Context, orderID int64) error {
	_, err := q.db.Exec(ctx, deleteOrderItems, orderID)
	return err
}

const insertOrderItem = `
INSERT INTO order_items (order_id, product_id, qty, unit_price)
VALUES ($1, $2, $3, $4)
RETURNING id, order_id, product_id, qty, unit_price
`

type InsertOrderItemParams struct {
	OrderID   int64
	ProductID int64
	Qty       int64
	UnitPrice int64
}

func (q *Queries) InsertOrderItem(ctx context.Context, arg InsertOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, insertOrderItem, arg.OrderID, arg.ProductID, arg.Qty, arg.UnitPrice)
	var it OrderItem
	err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Qty, &it.UnitPrice)
	return it, err
}

const upsertOrderItem = `
INSERT INTO order_items (id, order_id, product_id, qty, unit_price)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    order_id   = EXCLUDED.order_id,
    product_id = EXCLUDED.product_id,
    qty        = EXCLUDED.qty,
    unit_price = EXCLUDED.unit_price
RETURNING id, order_id, product_id, qty, unit_price
`

type UpsertOrderItemParams struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Qty       int64
	UnitPrice int64
}

func (q *Queries) UpsertOrderItem(ctx context.Context, arg UpsertOrderItemParams) (OrderItem, error) {
	row := q.db.QueryRow(ctx, upsertOrderItem, arg.ID, arg.OrderID, arg.ProductID, arg.Qty, arg.UnitPrice)
	var it OrderItem
	err := row.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Qty, &it.UnitPrice)
	return it, err
}

const listOrderItems = `
SELECT id, order_id, product_id, qty, unit_price
FROM order_items
WHERE order_id = $1
ORDER BY id
`

func (q *Queries) ListOrderItems(ctx context.Context, orderID int64) ([]OrderItem, error) {
	rows, err := q.db.Query(ctx, listOrderItems, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var it OrderItem
		if err := rows.Scan(&it.ID, &it.OrderID, &it.ProductID, &it.Qty, &it.UnitPrice); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}
