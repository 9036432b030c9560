package core

// transform.go converts raw batch records into validated domain entities.
//
// One transform per model, all pure: no storage calls, no side effects. Field
// defaults (currency "USD", product active) apply only when the input field is
// absent or null, never when a value was explicitly provided. Wire keys are
// snake_case for customers/products/orders and camelCase for employees,
// matching the upstream feeds for each model.

import "time"

const defaultCurrency = "USD"

func transformCustomer(rec Record) (Entity, error) {
	id, err := optionalID(rec)
	if err != nil {
		return nil, err
	}

	email, err := requireString(rec, "email")
	if err != nil {
		return nil, err
	}
	firstName, err := requireString(rec, "first_name")
	if err != nil {
		return nil, err
	}
	lastName, err := requireString(rec, "last_name")
	if err != nil {
		return nil, err
	}

	currency, ok, err := stringField(rec, "default_currency")
	if err != nil {
		return nil, err
	}
	if !ok {
		currency = defaultCurrency
	}

	return &Customer{
		ID:              id,
		Email:           email,
		FirstName:       firstName,
		LastName:        lastName,
		DefaultCurrency: currency,
	}, nil
}

func transformProduct(rec Record) (Entity, error) {
	id, err := optionalID(rec)
	if err != nil {
		return nil, err
	}

	name, err := requireString(rec, "name")
	if err != nil {
		return nil, err
	}
	price, err := requireInt(rec, "price")
	if err != nil {
		return nil, err
	}

	description, _, err := stringField(rec, "description")
	if err != nil {
		return nil, err
	}

	currency, ok, err := stringField(rec, "currency")
	if err != nil {
		return nil, err
	}
	if !ok {
		currency = defaultCurrency
	}

	active, ok, err := boolField(rec, "active")
	if err != nil {
		return nil, err
	}
	if !ok {
		active = true
	}

	p := &Product{
		ID:          id,
		Name:        name,
		Description: description,
		Price:       price,
		Currency:    currency,
		Active:      active,
	}

	if weight, ok, err := intField(rec, "weight_grams"); err != nil {
		return nil, err
	} else if ok {
		p.WeightGrams = &weight
	}

	return p, nil
}

func transformOrder(rec Record) (Entity, error) {
	id, err := optionalID(rec)
	if err != nil {
		return nil, err
	}

	orderNumber, err := requireString(rec, "order_number")
	if err != nil {
		return nil, err
	}
	customerID, err := requireInt(rec, "customer_id")
	if err != nil {
		return nil, err
	}
	status, err := requireString(rec, "status")
	if err != nil {
		return nil, err
	}
	if status, err = enumValue("status", status, orderStatuses); err != nil {
		return nil, err
	}

	currency, ok, err := stringField(rec, "currency")
	if err != nil {
		return nil, err
	}
	if !ok {
		currency = defaultCurrency
	}

	o := &Order{
		ID:          id,
		OrderNumber: orderNumber,
		CustomerID:  customerID,
		Status:      status,
		Currency:    currency,
	}

	amount, hasAmount, err := intField(rec, "amount")
	if err != nil {
		return nil, err
	}

	itemRecs, hasItems, err := recordList(rec, "items")
	if err != nil {
		return nil, err
	}

	if hasItems && len(itemRecs) > 0 {
		items := make([]OrderItem, 0, len(itemRecs))
		var calculated int64
		for _, ir := range itemRecs {
			item, err := transformOrderItem(ir)
			if err != nil {
				return nil, err
			}
			calculated += item.Qty * item.UnitPrice
			items = append(items, item)
		}

		// An explicit amount must agree exactly with the item total;
		// otherwise the total is derived from the items.
		if hasAmount && amount != calculated {
			return nil, validationErrorf("amount",
				"order amount must equal the sum of item prices (qty * unit_price): calculated=%d provided=%d",
				calculated, amount)
		}
		o.Amount = calculated
		o.Items = items
	} else {
		if !hasAmount {
			return nil, validationErrorf("amount", "order must include items or an amount")
		}
		o.Amount = amount
	}

	return o, nil
}

func transformOrderItem(rec Record) (OrderItem, error) {
	var item OrderItem

	id, err := optionalID(rec)
	if err != nil {
		return item, err
	}
	item.ID = id

	productID, err := requireInt(rec, "product_id")
	if err != nil {
		return item, err
	}
	item.ProductID = productID

	// Totals are only computable when every line carries both values.
	qty, hasQty, err := intField(rec, "qty")
	if err != nil {
		return item, err
	}
	unitPrice, hasPrice, err := intField(rec, "unit_price")
	if err != nil {
		return item, err
	}
	if !hasQty || !hasPrice {
		return item, validationErrorf("items", "order items must include non-null qty and unit_price")
	}

	item.Qty = qty
	item.UnitPrice = unitPrice
	return item, nil
}

func transformEmployee(rec Record) (Entity, error) {
	e := &Employee{ID: lenientID(rec)}

	var err error
	if e.EmployeeID, err = requireString(rec, "employeeId"); err != nil {
		return nil, err
	}
	if e.FirstName, err = requireString(rec, "firstName"); err != nil {
		return nil, err
	}
	if e.LastName, err = requireString(rec, "lastName"); err != nil {
		return nil, err
	}

	// Optional demographic and org fields pass through unchanged.
	for key, dst := range map[string]*string{
		"middleName":        &e.MiddleName,
		"gender":            &e.Gender,
		"email":             &e.Email,
		"phoneNumber":       &e.PhoneNumber,
		"nationality":       &e.Nationality,
		"jobLevel":          &e.JobLevel,
		"department":        &e.Department,
		"location":          &e.Location,
		"bankAccountNumber": &e.BankAccountNumber,
		"company":           &e.Company,
		"jobTitle":          &e.JobTitle,
		"costCenter":        &e.CostCenter,
		"employeeStatus":    &e.EmployeeStatus,
		"managerId":         &e.ManagerID,
		"managerEmail":      &e.ManagerEmail,
	} {
		s, _, err := stringField(rec, key)
		if err != nil {
			return nil, err
		}
		*dst = s
	}

	for key, dst := range map[string]**time.Time{
		"dateOfBirth":    &e.DateOfBirth,
		"startDate":      &e.StartDate,
		"lastModifiedOn": &e.LastModifiedOn,
	} {
		ts, ok, err := timeField(rec, key)
		if err != nil {
			return nil, err
		}
		if ok {
			t := ts
			*dst = &t
		}
	}

	if lastModified, ok, err := intField(rec, "lastModified"); err != nil {
		return nil, err
	} else if ok {
		e.LastModified = &lastModified
	}

	return e, nil
}
