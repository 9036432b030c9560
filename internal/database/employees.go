package database

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
)

const employeeColumns = `id, employee_id, first_name, middle_name, last_name, gender, email,
 phone_number, date_of_birth, nationality, job_level, department, location,
 bank_account_number, company, job_title, cost_center, start_date,
 employee_status, manager_id, manager_email, last_modified_on, last_modified`

const insertEmployee = `
INSERT INTO employees (employee_id, first_name, middle_name, last_name, gender, email,
    phone_number, date_of_birth, nationality, job_level, department, location,
    bank_account_number, company, job_title, cost_center, start_date,
    employee_status, manager_id, manager_email, last_modified_on, last_modified)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
    $18, $19, $20, $21, $22)
RETURNING ` + employeeColumns

type InsertEmployeeParams struct {
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

func (q *Queries) InsertEmployee(ctx context.Context, arg InsertEmployeeParams) (Employee, error) {
	row := q.db.QueryRow(ctx, insertEmployee,
		arg.EmployeeID, arg.FirstName, arg.MiddleName, arg.LastName, arg.Gender, arg.Email,
		arg.PhoneNumber, arg.DateOfBirth, arg.Nationality, arg.JobLevel, arg.Department,
		arg.Location, arg.BankAccountNumber, arg.Company, arg.JobTitle, arg.CostCenter,
		arg.StartDate, arg.EmployeeStatus, arg.ManagerID, arg.ManagerEmail,
		arg.LastModifiedOn, arg.LastModified)
	return scanEmployee(row)
}

const upsertEmployee = `
INSERT INTO employees (id, employee_id, first_name, middle_name, last_name, gender, email,
    phone_number, date_of_birth, nationality, job_level, department, location,
    bank_account_number, company, job_title, cost_center, start_date,
    employee_status, manager_id, manager_email, last_modified_on, last_modified)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17,
    $18, $19, $20, $21, $22, $23)
ON CONFLICT (id) DO UPDATE SET
    employee_id         = EXCLUDED.employee_id,
    first_name          = EXCLUDED.first_name,
    middle_name         = EXCLUDED.middle_name,
    last_name           = EXCLUDED.last_name,
    gender              = EXCLUDED.gender,
    email               = EXCLUDED.email,
    phone_number        = EXCLUDED.phone_number,
    date_of_birth       = EXCLUDED.date_of_birth,
    nationality         = EXCLUDED.nationality,
    job_level           = EXCLUDED.job_level,
    department          = EXCLUDED.department,
    location            = EXCLUDED.location,
    bank_account_number = EXCLUDED.bank_account_number,
    company             = EXCLUDED.company,
    job_title           = EXCLUDED.job_title,
    cost_center         = EXCLUDED.cost_center,
    start_date          = EXCLUDED.start_date,
    employee_status     = EXCLUDED.employee_status,
    manager_id          = EXCLUDED.manager_id,
    manager_email       = EXCLUDED.manager_email,
    last_modified_on    = EXCLUDED.last_modified_on,
    last_modified       = EXCLUDED.last_modified
RETURNING ` + employeeColumns

type UpsertEmployeeParams struct {
	ID int64
	InsertEmployeeParams
}

func (q *Queries) UpsertEmployee(ctx context.Context, arg UpsertEmployeeParams) (Employee, error) {
	row := q.db.QueryRow(ctx, upsertEmployee,
		arg.ID, arg.EmployeeID, arg.FirstName, arg.MiddleName, arg.LastName, arg.Gender,
		arg.Email, arg.PhoneNumber, arg.DateOfBirth, arg.Nationality, arg.JobLevel,
		arg.Department, arg.Location, arg.BankAccountNumber, arg.Company, arg.JobTitle,
		arg.CostCenter, arg.StartDate, arg.EmployeeStatus, arg.ManagerID, arg.ManagerEmail,
		arg.LastModifiedOn, arg.LastModified)
	return scanEmployee(row)
}

const getEmployee = `
SELECT ` + employeeColumns + `
FROM employees
WHERE id = $1
`

func (q *Queries) GetEmployee(ctx context.Context, id int64) (Employee, error) {
	return scanEmployee(q.db.QueryRow(ctx, getEmployee, id))
}

const employeeExists = `
SELECT EXISTS (SELECT 1 FROM employees WHERE id = $1)
`

func (q *Queries) EmployeeExists(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := q.db.QueryRow(ctx, employeeExists, id).Scan(&exists)
	return exists, err
}

const deleteEmployee = `
DELETE FROM employees WHERE id = $1
`

func (q *Queries) DeleteEmployee(ctx context.Context, id int64) error {
	_, err := q.db.Exec(ctx, deleteEmployee, id)
	return err
}

// rowScanner matches pgx.Row's Scan method.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (Employee, error) {
	var e Employee
	err := row.Scan(
		&e.ID, &e.EmployeeID, &e.FirstName, &e.MiddleName, &e.LastName, &e.Gender,
		&e.Email, &e.PhoneNumber, &e.DateOfBirth, &e.Nationality, &e.JobLevel,
		&e.Department, &e.Location, &e.BankAccountNumber, &e.Company, &e.JobTitle,
		&e.CostCenter, &e.StartDate, &e.EmployeeStatus, &e.ManagerID, &e.ManagerEmail,
		&e.LastModifiedOn, &e.LastModified)
	return e, err
}
