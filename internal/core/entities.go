package core

import "time"

// Domain entities persisted by the sync engine. Identity is assigned by
// storage on first insert and reused on update. Optional fields that must
// distinguish "absent" from a zero value use pointers.

// Customer is a synced customer account.
type Customer struct {
	ID              int64  `json:"id"`
	Email           string `json:"email"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	DefaultCurrency string `json:"defaultCurrency"`
}

func (c *Customer) EntityID() int64 { return c.ID }

// Product is a synced catalog product. Price is in minor currency units.
type Product struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int64  `json:"price"`
	Currency    string `json:"currency"`
	Active      bool   `json:"active"`
	WeightGrams *int64 `json:"weightGrams,omitempty"`
}

func (p *Product) EntityID() int64 { return p.ID }

// OrderStatus is the fixed order state set accepted from upstream.
type OrderStatus = string

// orderStatuses enumerates the accepted order status values.
var orderStatuses = []string{"pending", "paid", "shipped", "completed", "cancelled", "refunded"}

// Order is a synced order. Amount is the order total in minor currency units
// and, when items are present, always equals the sum of qty * unit price.
type Order struct {
	ID          int64       `json:"id"`
	OrderNumber string      `json:"orderNumber"`
	CustomerID  int64       `json:"customerId"`
	Status      OrderStatus `json:"status"`
	Currency    string      `json:"currency"`
	Amount      int64       `json:"amount"`
	Items       []OrderItem `json:"items,omitempty"`
}

func (o *Order) EntityID() int64 { return o.ID }

// OrderItem is one line of an order. It references its product by identifier
// only; the product itself is not validated during sync. OrderID is filled in
// by storage when the owning order is saved.
type OrderItem struct {
	ID        int64 `json:"id"`
	OrderID   int64 `json:"orderId"`
	ProductID int64 `json:"productId"`
	Qty       int64 `json:"qty"`
	UnitPrice int64 `json:"unitPrice"`
}

// Employee is a synced employee record. Beyond the identifying fields, the
// demographic and org attributes are free-form pass-through from upstream.
type Employee struct {
	ID                int64      `json:"id"`
	EmployeeID        string     `json:"employeeId"`
	FirstName         string     `json:"firstName"`
	MiddleName        string     `json:"middleName,omitempty"`
	LastName          string     `json:"lastName"`
	Gender            string     `json:"gender,omitempty"`
	Email             string     `json:"email,omitempty"`
	PhoneNumber       string     `json:"phoneNumber,omitempty"`
	DateOfBirth       *time.Time `json:"dateOfBirth,omitempty"`
	Nationality       string     `json:"nationality,omitempty"`
	JobLevel          string     `json:"jobLevel,omitempty"`
	Department        string     `json:"department,omitempty"`
	Location          string     `json:"location,omitempty"`
	BankAccountNumber string     `json:"bankAccountNumber,omitempty"`
	Company           string     `json:"company,omitempty"`
	JobTitle          string     `json:"jobTitle,omitempty"`
	CostCenter        string     `json:"costCenter,omitempty"`
	StartDate         *time.Time `json:"startDate,omitempty"`
	EmployeeStatus    string     `json:"employeeStatus,omitempty"`
	ManagerID         string     `json:"managerId,omitempty"`
	ManagerEmail      string     `json:"managerEmail,omitempty"`
	LastModifiedOn    *time.Time `json:"lastModifiedOn,omitempty"`
	LastModified      *int64     `json:"lastModified,omitempty"`
}

func (e *Employee) EntityID() int64 { return e.ID }
