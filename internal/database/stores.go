package database

// stores.go adapts the Queries layer to the core package's storage
// interfaces. Save follows merge semantics: an entity without identity is
// inserted and assigned an id; an entity carrying identity is upserted under
// that id. Unknown-row lookups surface core.ErrNotFound.

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/syncbridge/syncbridge/internal/core"
)

// NewStores builds the per-model persistence handles over a connection pool.
func NewStores(pool *pgxpool.Pool) core.Stores {
	return core.Stores{
		Customers: &CustomerStore{pool: pool},
		Products:  &ProductStore{pool: pool},
		Orders:    &OrderStore{pool: pool},
		Employees: &EmployeeStore{pool: pool},
	}
}

// CustomerStore persists core.Customer entities.
type CustomerStore struct {
	pool *pgxpool.Pool
}

func (s *CustomerStore) Save(ctx context.Context, e core.Entity) (core.Entity, error) {
	c, ok := e.(*core.Customer)
	if !ok {
		return nil, fmt.Errorf("customer store: unexpected entity type %T", e)
	}

	q := New(s.pool)
	var row Customer
	var err error
	if c.ID == 0 {
		row, err = q.InsertCustomer(ctx, InsertCustomerParams{
			Email:           c.Email,
			FirstName:       c.FirstName,
			LastName:        c.LastName,
			DefaultCurrency: c.DefaultCurrency,
		})
	} else {
		row, err = q.UpsertCustomer(ctx, UpsertCustomerParams{
			ID:              c.ID,
			Email:           c.Email,
			FirstName:       c.FirstName,
			LastName:        c.LastName,
			DefaultCurrency: c.DefaultCurrency,
		})
	}
	if err != nil {
		return nil, err
	}
	return customerFromRow(row), nil
}

func (s *CustomerStore) Exists(ctx context.Context, id int64) (bool, error) {
	return New(s.pool).CustomerExists(ctx, id)
}

func (s *CustomerStore) FindByID(ctx context.Context, id int64) (core.Entity, error) {
	row, err := New(s.pool).GetCustomer(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return customerFromRow(row), nil
}

func (s *CustomerStore) Delete(ctx context.Context, id int64) error {
	return New(s.pool).DeleteCustomer(ctx, id)
}

func customerFromRow(row Customer) *core.Customer {
	return &core.Customer{
		ID:              row.ID,
		Email:           row.Email,
		FirstName:       row.FirstName,
		LastName:        row.LastName,
		DefaultCurrency: row.DefaultCurrency,
	}
}

// ProductStore persists core.Product entities.
type ProductStore struct {
	pool *pgxpool.Pool
}

func (s *ProductStore) Save(ctx context.Context, e core.Entity) (core.Entity, error) {
	p, ok := e.(*core.Product)
	if !ok {
		return nil, fmt.Errorf("product store: unexpected entity type %T", e)
	}

	params := InsertProductParams{
		Name:        p.Name,
		Description: toText(p.Description),
		Price:       p.Price,
		Currency:    p.Currency,
		Active:      p.Active,
		WeightGrams: toInt8(p.WeightGrams),
	}

	q := New(s.pool)
	var row Product
	var err error
	if p.ID == 0 {
		row, err = q.InsertProduct(ctx, params)
	} else {
		row, err = q.UpsertProduct(ctx, UpsertProductParams{
			ID:          p.ID,
			Name:        params.Name,
			Description: params.Description,
			Price:       params.Price,
			Currency:    params.Currency,
			Active:      params.Active,
			WeightGrams: params.WeightGrams,
		})
	}
	if err != nil {
		return nil, err
	}
	return productFromRow(row), nil
}

func (s *ProductStore) Exists(ctx context.Context, id int64) (bool, error) {
	return New(s.pool).ProductExists(ctx, id)
}

func (s *ProductStore) FindByID(ctx context.Context, id int64) (core.Entity, error) {
	row, err := New(s.pool).GetProduct(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return productFromRow(row), nil
}

func (s *ProductStore) Delete(ctx context.Context, id int64) error {
	return New(s.pool).DeleteProduct(ctx, id)
}

func productFromRow(row Product) *core.Product {
	p := &core.Product{
		ID:       row.ID,
		Name:     row.Name,
		Price:    row.Price,
		Currency: row.Currency,
		Active:   row.Active,
	}
	if row.Description.Valid {
		p.Description = row.Description.String
	}
	if row.WeightGrams.Valid {
		w := row.WeightGrams.Int64
		p.WeightGrams = &w
	}
	return p
}

// OrderStore persists core.Order entities together with their items.
type OrderStore struct {
	pool *pgxpool.Pool
}

// Save writes the order row and replaces its item rows in one transaction.
// This is row-level consistency for a single entity; cross-item batch
// atomicity stays out of scope.
func (s *OrderStore) Save(ctx context.Context, e core.Entity) (core.Entity, error) {
	o, ok := e.(*core.Order)
	if !ok {
		return nil, fmt.Errorf("order store: unexpected entity type %T", e)
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin order save: %w", err)
	}
	defer tx.Rollback(ctx)

	q := New(s.pool).WithTx(tx)
	var row Order
	if o.ID == 0 {
		row, err = q.InsertOrder(ctx, InsertOrderParams{
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID,
			Status:      o.Status,
			Currency:    o.Currency,
			Amount:      o.Amount,
		})
	} else {
		row, err = q.UpsertOrder(ctx, UpsertOrderParams{
			ID:          o.ID,
			OrderNumber: o.OrderNumber,
			CustomerID:  o.CustomerID,
			Status:      o.Status,
			Currency:    o.Currency,
			Amount:      o.Amount,
		})
	}
	if err != nil {
		return nil, err
	}

	// Replace semantics: the inbound item list is the full truth for the
	// order, so stale lines are dropped before the new ones go in.
	if err := q.DeleteOrderItems(ctx, row.ID); err != nil {
		return nil, err
	}

	saved := orderFromRow(row)
	for _, item := range o.Items {
		var itemRow OrderItem
		if item.ID == 0 {
			itemRow, err = q.InsertOrderItem(ctx, InsertOrderItemParams{
				OrderID:   row.ID,
				ProductID: item.ProductID,
				Qty:       item.Qty,
				UnitPrice: item.UnitPrice,
			})
		} else {
			itemRow, err = q.UpsertOrderItem(ctx, UpsertOrderItemParams{
				ID:        item.ID,
				OrderID:   row.ID,
				ProductID: item.ProductID,
				Qty:       item.Qty,
				UnitPrice: item.UnitPrice,
			})
		}
		if err != nil {
			return nil, err
		}
		saved.Items = append(saved.Items, core.OrderItem{
			ID:        itemRow.ID,
			OrderID:   itemRow.OrderID,
			ProductID: itemRow.ProductID,
			Qty:       itemRow.Qty,
			UnitPrice: itemRow.UnitPrice,
		})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit order save: %w", err)
	}
	return saved, nil
}

func (s *OrderStore) Exists(ctx context.Context, id int64) (bool, error) {
	return New(s.pool).OrderExists(ctx, id)
}

func (s *OrderStore) FindByID(ctx context.Context, id int64) (core.Entity, error) {
	q := New(s.pool)
	row, err := q.GetOrder(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	o := orderFromRow(row)

	items, err := q.ListOrderItems(ctx, id)
	if err != nil {
		return nil, err
	}
	for _, it := range items {
		o.Items = append(o.Items, core.OrderItem{
			ID:        it.ID,
			OrderID:   it.OrderID,
			ProductID: it.ProductID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
		})
	}
	return o, nil
}

func (s *OrderStore) Delete(ctx context.Context, id int64) error {
	return New(s.pool).DeleteOrder(ctx, id)
}

func orderFromRow(row Order) *core.Order {
	return &core.Order{
		ID:          row.ID,
		OrderNumber: row.OrderNumber,
		CustomerID:  row.CustomerID,
		Status:      row.Status,
		Currency:    row.Currency,
		Amount:      row.Amount,
	}
}

// EmployeeStore persists core.Employee entities.
type EmployeeStore struct {
	pool *pgxpool.Pool
}

func (s *EmployeeStore) Save(ctx context.Context, e core.Entity) (core.Entity, error) {
	emp, ok := e.(*core.Employee)
	if !ok {
		return nil, fmt.Errorf("employee store: unexpected entity type %T", e)
	}

	params := InsertEmployeeParams{
		EmployeeID:        emp.EmployeeID,
		FirstName:         emp.FirstName,
		MiddleName:        toText(emp.MiddleName),
		LastName:          emp.LastName,
		Gender:            toText(emp.Gender),
		Email:             toText(emp.Email),
		PhoneNumber:       toText(emp.PhoneNumber),
		DateOfBirth:       toTimestamptz(emp.DateOfBirth),
		Nationality:       toText(emp.Nationality),
		JobLevel:          toText(emp.JobLevel),
		Department:        toText(emp.Department),
		Location:          toText(emp.Location),
		BankAccountNumber: toText(emp.BankAccountNumber),
		Company:           toText(emp.Company),
		JobTitle:          toText(emp.JobTitle),
		CostCenter:        toText(emp.CostCenter),
		StartDate:         toTimestamptz(emp.StartDate),
		EmployeeStatus:    toText(emp.EmployeeStatus),
		ManagerID:         toText(emp.ManagerID),
		ManagerEmail:      toText(emp.ManagerEmail),
		LastModifiedOn:    toTimestamptz(emp.LastModifiedOn),
		LastModified:      toInt8(emp.LastModified),
	}

	q := New(s.pool)
	var row Employee
	var err error
	if emp.ID == 0 {
		row, err = q.InsertEmployee(ctx, params)
	} else {
		row, err = q.UpsertEmployee(ctx, UpsertEmployeeParams{ID: emp.ID, InsertEmployeeParams: params})
	}
	if err != nil {
		return nil, err
	}
	return employeeFromRow(row), nil
}

func (s *EmployeeStore) Exists(ctx context.Context, id int64) (bool, error) {
	return New(s.pool).EmployeeExists(ctx, id)
}

func (s *EmployeeStore) FindByID(ctx context.Context, id int64) (core.Entity, error) {
	row, err := New(s.pool).GetEmployee(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return employeeFromRow(row), nil
}

func (s *EmployeeStore) Delete(ctx context.Context, id int64) error {
	return New(s.pool).DeleteEmployee(ctx, id)
}

func employeeFromRow(row Employee) *core.Employee {
	e := &core.Employee{
		ID:         row.ID,
		EmployeeID: row.EmployeeID,
		FirstName:  row.FirstName,
		LastName:   row.LastName,
	}
	e.MiddleName = textValue(row.MiddleName)
	e.Gender = textValue(row.Gender)
	e.Email = textValue(row.Email)
	e.PhoneNumber = textValue(row.PhoneNumber)
	e.Nationality = textValue(row.Nationality)
	e.JobLevel = textValue(row.JobLevel)
	e.Department = textValue(row.Department)
	e.Location = textValue(row.Location)
	e.BankAccountNumber = textValue(row.BankAccountNumber)
	e.Company = textValue(row.Company)
	e.JobTitle = textValue(row.JobTitle)
	e.CostCenter = textValue(row.CostCenter)
	e.EmployeeStatus = textValue(row.EmployeeStatus)
	e.ManagerID = textValue(row.ManagerID)
	e.ManagerEmail = textValue(row.ManagerEmail)
	e.DateOfBirth = timeValue(row.DateOfBirth)
	e.StartDate = timeValue(row.StartDate)
	e.LastModifiedOn = timeValue(row.LastModifiedOn)
	if row.LastModified.Valid {
		v := row.LastModified.Int64
		e.LastModified = &v
	}
	return e
}

// HistoryStore persists the sync history ledger. Each method is one storage
// round trip; ledger writes are never grouped with entity writes.
type HistoryStore struct {
	pool *pgxpool.Pool
}

// NewHistoryStore creates the ledger store over a connection pool.
func NewHistoryStore(pool *pgxpool.Pool) *HistoryStore {
	return &HistoryStore{pool: pool}
}

func (s *HistoryStore) Create(ctx context.Context, payload string) (*core.SyncHistory, error) {
	row, err := New(s.pool).InsertSyncHistory(ctx, InsertSyncHistoryParams{
		Payload: payload,
		Status:  string(core.StatusPendingRetry),
	})
	if err != nil {
		return nil, err
	}
	return historyFromRow(row), nil
}

func (s *HistoryStore) SetStatus(ctx context.Context, id int64, status core.SyncStatus, failureReason string) error {
	affected, err := New(s.pool).SetSyncHistoryStatus(ctx, SetSyncHistoryStatusParams{
		ID:            id,
		Status:        string(status),
		FailureReason: failureReason,
	})
	if err != nil {
		return err
	}
	if affected == 0 {
		return core.ErrNotFound
	}
	return nil
}

func (s *HistoryStore) FindByID(ctx context.Context, id int64) (*core.SyncHistory, error) {
	row, err := New(s.pool).GetSyncHistory(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return historyFromRow(row), nil
}

func (s *HistoryStore) List(ctx context.Context, status *core.SyncStatus, limit, offset int32) ([]core.SyncHistory, int64, error) {
	q := New(s.pool)

	var (
		rows  []SyncHistory
		total int64
		err   error
	)
	if status != nil {
		rows, err = q.ListSyncHistoryByStatus(ctx, ListSyncHistoryByStatusParams{
			Status: string(*status),
			Limit:  limit,
			Offset: offset,
		})
		if err == nil {
			total, err = q.CountSyncHistoryWithStatus(ctx, string(*status))
		}
	} else {
		rows, err = q.ListSyncHistory(ctx, ListSyncHistoryParams{Limit: limit, Offset: offset})
		if err == nil {
			total, err = q.CountSyncHistory(ctx)
		}
	}
	if err != nil {
		return nil, 0, err
	}

	entries := make([]core.SyncHistory, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, *historyFromRow(row))
	}
	return entries, total, nil
}

func (s *HistoryStore) ResetForRetry(ctx context.Context, id int64) (*core.SyncHistory, error) {
	row, err := New(s.pool).ResetSyncHistoryForRetry(ctx, id)
	if err != nil {
		return nil, mapNoRows(err)
	}
	return historyFromRow(row), nil
}

func (s *HistoryStore) Delete(ctx context.Context, id int64) error {
	return New(s.pool).DeleteSyncHistory(ctx, id)
}

func (s *HistoryStore) CountByStatus(ctx context.Context) (map[core.SyncStatus]int64, error) {
	counts, err := New(s.pool).CountSyncHistoryByStatus(ctx)
	if err != nil {
		return nil, err
	}
	result := make(map[core.SyncStatus]int64, len(counts))
	for _, c := range counts {
		status, err := core.ParseStatus(c.Status)
		if err != nil {
			return nil, fmt.Errorf("sync history row: %w", err)
		}
		result[status] = c.Count
	}
	return result, nil
}

func historyFromRow(row SyncHistory) *core.SyncHistory {
	h := &core.SyncHistory{
		ID:      row.ID,
		Payload: row.Payload,
		Status:  core.SyncStatus(row.Status),
		Retries: row.Retries,
	}
	if row.FailureReason.Valid {
		h.FailureReason = row.FailureReason.String
	}
	if row.CreatedAt.Valid {
		h.CreatedAt = row.CreatedAt.Time
	}
	if row.UpdatedAt.Valid {
		h.UpdatedAt = row.UpdatedAt.Time
	}
	return h
}

// Conversion helpers between domain values and pgtype wrappers.

func toText(s string) pgtype.Text {
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func textValue(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}
	return t.String
}

func toInt8(v *int64) pgtype.Int8 {
	if v == nil {
		return pgtype.Int8{}
	}
	return pgtype.Int8{Int64: *v, Valid: true}
}

func toTimestamptz(t *time.Time) pgtype.Timestamptz {
	if t == nil {
		return pgtype.Timestamptz{}
	}
	return pgtype.Timestamptz{Time: *t, Valid: true}
}

func timeValue(t pgtype.Timestamptz) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}

// mapNoRows converts pgx's no-rows error to the core sentinel.
func mapNoRows(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return core.ErrNotFound
	}
	return err
}
