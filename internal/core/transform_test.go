package core

import (
	"errors"
	"strings"
	"testing"
)

func validCustomer() Record {
	return Record{
		"email":      "jane@example.com",
		"first_name": "Jane",
		"last_name":  "Doe",
	}
}

func TestTransformCustomer_DefaultCurrency(t *testing.T) {
	e, err := transformCustomer(validCustomer())
	if err != nil {
		t.Fatalf("transformCustomer() error = %v", err)
	}
	c := e.(*Customer)
	if c.DefaultCurrency != "USD" {
		t.Errorf("DefaultCurrency = %q, want %q", c.DefaultCurrency, "USD")
	}
}

func TestTransformCustomer_ExplicitCurrencyKept(t *testing.T) {
	rec := validCustomer()
	rec["default_currency"] = "EUR"
	e, err := transformCustomer(rec)
	if err != nil {
		t.Fatalf("transformCustomer() error = %v", err)
	}
	if c := e.(*Customer); c.DefaultCurrency != "EUR" {
		t.Errorf("DefaultCurrency = %q, want %q", c.DefaultCurrency, "EUR")
	}
}

func TestTransformCustomer_MissingRequired(t *testing.T) {
	for _, field := range []string{"email", "first_name", "last_name"} {
		rec := validCustomer()
		delete(rec, field)
		_, err := transformCustomer(rec)
		var verr *ValidationError
		if !errors.As(err, &verr) {
			t.Fatalf("transformCustomer() without %s: error = %v, want ValidationError", field, err)
		}
		if verr.Field != field {
			t.Errorf("ValidationError.Field = %q, want %q", verr.Field, field)
		}
	}
}

func TestTransformProduct_Defaults(t *testing.T) {
	e, err := transformProduct(Record{"name": "Widget", "price": float64(250)})
	if err != nil {
		t.Fatalf("transformProduct() error = %v", err)
	}
	p := e.(*Product)
	if !p.Active {
		t.Error("Active = false, want default true")
	}
	if p.Currency != "USD" {
		t.Errorf("Currency = %q, want %q", p.Currency, "USD")
	}
	if p.WeightGrams != nil {
		t.Errorf("WeightGrams = %v, want nil", *p.WeightGrams)
	}
}

func TestTransformProduct_ExplicitFalseActiveKept(t *testing.T) {
	e, err := transformProduct(Record{"name": "Widget", "price": float64(250), "active": false})
	if err != nil {
		t.Fatalf("transformProduct() error = %v", err)
	}
	if p := e.(*Product); p.Active {
		t.Error("Active = true, want explicitly provided false")
	}
}

func TestTransformProduct_OptionalFields(t *testing.T) {
	e, err := transformProduct(Record{
		"name":         "Widget",
		"price":        float64(250),
		"description":  "a widget",
		"weight_grams": float64(120),
	})
	if err != nil {
		t.Fatalf("transformProduct() error = %v", err)
	}
	p := e.(*Product)
	if p.Description != "a widget" {
		t.Errorf("Description = %q, want %q", p.Description, "a widget")
	}
	if p.WeightGrams == nil || *p.WeightGrams != 120 {
		t.Errorf("WeightGrams = %v, want 120", p.WeightGrams)
	}
}

func validOrder() Record {
	return Record{
		"order_number": "ORD-1",
		"customer_id":  float64(1),
		"status":       "paid",
		"items": []any{
			map[string]any{"product_id": float64(10), "qty": float64(2), "unit_price": float64(500)},
			map[string]any{"product_id": float64(11), "qty": float64(1), "unit_price": float64(300)},
		},
	}
}

func TestTransformOrder_AmountDerivedFromItems(t *testing.T) {
	e, err := transformOrder(validOrder())
	if err != nil {
		t.Fatalf("transformOrder() error = %v", err)
	}
	o := e.(*Order)
	if o.Amount != 1300 {
		t.Errorf("Amount = %d, want 1300", o.Amount)
	}
	if len(o.Items) != 2 {
		t.Fatalf("len(Items) = %d, want 2", len(o.Items))
	}
	if o.Currency != "USD" {
		t.Errorf("Currency = %q, want default %q", o.Currency, "USD")
	}
}

func TestTransformOrder_ExplicitMatchingAmount(t *testing.T) {
	rec := validOrder()
	rec["amount"] = float64(1300)
	e, err := transformOrder(rec)
	if err != nil {
		t.Fatalf("transformOrder() error = %v", err)
	}
	if o := e.(*Order); o.Amount != 1300 {
		t.Errorf("Amount = %d, want 1300", o.Amount)
	}
}

func TestTransformOrder_AmountMismatch(t *testing.T) {
	rec := validOrder()
	rec["amount"] = float64(999)
	_, err := transformOrder(rec)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("transformOrder() error = %v, want ValidationError", err)
	}
	if !strings.Contains(verr.Message, "calculated=1300") || !strings.Contains(verr.Message, "provided=999") {
		t.Errorf("error %q should name both calculated and provided amounts", verr.Message)
	}
}

func TestTransformOrder_NoItemsNoAmount(t *testing.T) {
	rec := validOrder()
	delete(rec, "items")
	if _, err := transformOrder(rec); err == nil {
		t.Fatal("transformOrder() expected error for order without items or amount")
	}
}

func TestTransformOrder_NoItemsExplicitAmount(t *testing.T) {
	rec := validOrder()
	delete(rec, "items")
	rec["amount"] = float64(700)
	e, err := transformOrder(rec)
	if err != nil {
		t.Fatalf("transformOrder() error = %v", err)
	}
	if o := e.(*Order); o.Amount != 700 {
		t.Errorf("Amount = %d, want 700", o.Amount)
	}
}

func TestTransformOrder_ItemMissingQty(t *testing.T) {
	rec := validOrder()
	rec["items"] = []any{
		map[string]any{"product_id": float64(10), "unit_price": float64(500)},
	}
	_, err := transformOrder(rec)
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("transformOrder() error = %v, want ValidationError", err)
	}
	if !strings.Contains(verr.Message, "qty") {
		t.Errorf("error %q should mention qty", verr.Message)
	}
}

func TestTransformOrder_InvalidStatus(t *testing.T) {
	rec := validOrder()
	rec["status"] = "teleported"
	if _, err := transformOrder(rec); err == nil {
		t.Fatal("transformOrder() expected error for unknown status")
	}
}

func validEmployee() Record {
	return Record{
		"employeeId": "E-100",
		"firstName":  "Ada",
		"lastName":   "Lovelace",
	}
}

func TestTransformEmployee_Minimal(t *testing.T) {
	e, err := transformEmployee(validEmployee())
	if err != nil {
		t.Fatalf("transformEmployee() error = %v", err)
	}
	emp := e.(*Employee)
	if emp.EmployeeID != "E-100" || emp.FirstName != "Ada" || emp.LastName != "Lovelace" {
		t.Errorf("unexpected employee %+v", emp)
	}
}

func TestTransformEmployee_UnparsableIDTreatedAsNew(t *testing.T) {
	rec := validEmployee()
	rec["id"] = "EMP-042"
	e, err := transformEmployee(rec)
	if err != nil {
		t.Fatalf("transformEmployee() error = %v", err)
	}
	if e.EntityID() != 0 {
		t.Errorf("EntityID() = %d, want 0 for unparsable id", e.EntityID())
	}
}

func TestTransformEmployee_OptionalFields(t *testing.T) {
	rec := validEmployee()
	rec["department"] = "R&D"
	rec["dateOfBirth"] = "1990-03-15T00:00:00Z"
	rec["lastModified"] = float64(1717243200)

	e, err := transformEmployee(rec)
	if err != nil {
		t.Fatalf("transformEmployee() error = %v", err)
	}
	emp := e.(*Employee)
	if emp.Department != "R&D" {
		t.Errorf("Department = %q, want %q", emp.Department, "R&D")
	}
	if emp.DateOfBirth == nil {
		t.Error("DateOfBirth = nil, want parsed timestamp")
	}
	if emp.LastModified == nil || *emp.LastModified != 1717243200 {
		t.Errorf("LastModified = %v, want 1717243200", emp.LastModified)
	}
}
