package database

import "github.com/jackc/pgx/v5/pgtype"

// Row models for the sync service tables. Nullable columns use pgtype
// wrappers; NOT NULL columns use native Go types.

type Customer struct {
	ID              int64
	Email           string
	FirstName       string
	LastName        string
	DefaultCurrency string
}

type Product struct {
	ID          int64
	Name        string
	Description pgtype.Text
	Price       int64
	Currency    string
	Active      bool
	WeightGrams pgtype.Int8
}

type Order struct {
	ID          int64
	OrderNumber string
	CustomerID  int64
	Status      string
	Currency    string
	Amount      int64
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Qty       int64
	UnitPrice int64
}

type Employee struct {
	ID                int64
	EmployeeID        string
	FirstName         string
	MiddleName        pgtype.Text
	LastName          string
	Gender            pgtype.Text
	Email             pgtype.Text
	PhoneNumber       pgtype.Text
	DateOfBirth       pgtype.Timestamptz
	Nationality       pgtype.Text
	JobLevel          pgtype.Text
	Department        pgtype.Text
	Location          pgtype.Text
	BankAccountNumber pgtype.Text
	Company           pgtype.Text
	JobTitle          pgtype.Text
	CostCenter        pgtype.Text
	StartDate         pgtype.Timestamptz
	EmployeeStatus    pgtype.Text
	ManagerID         pgtype.Text
	ManagerEmail      pgtype.Text
	LastModifiedOn    pgtype.Timestamptz
	LastModified      pgtype.Int8
}

type SyncHistory struct {
	ID            int64
	Payload       string
	Status        string
	FailureReason pgtype.Text
	Retries       int32
	CreatedAt     pgtype.Timestamptz
	UpdatedAt     pgtype.Timestamptz
}
