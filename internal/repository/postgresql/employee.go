package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

// GetByID implements employee.EmployeeRepository.
func (r *employeeRepository) GetByID(ctx context.Context, id string, companyID string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, code, first_name, last_name, work_location, is_active,
			   created_at, updated_at
		FROM employees
		WHERE id = $1 AND company_id = $2
	`

	var e employee.Employee
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&e.ID, &e.CompanyID, &e.Code, &e.FirstName, &e.LastName, &e.WorkLocation, &e.IsActive,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return e, nil
}

// GetActiveByCompanyID implements employee.EmployeeRepository.
func (r *employeeRepository) GetActiveByCompanyID(ctx context.Context, companyID string) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, code, first_name, last_name, work_location, is_active,
			   created_at, updated_at
		FROM employees
		WHERE company_id = $1 AND is_active = TRUE
		ORDER BY code ASC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		var e employee.Employee
		if err := rows.Scan(
			&e.ID, &e.CompanyID, &e.Code, &e.FirstName, &e.LastName, &e.WorkLocation, &e.IsActive,
			&e.CreatedAt, &e.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate employees: %w", err)
	}

	return employees, nil
}

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) employee.CompensationRepository {
	return &compensationRepository{db: db}
}

// GetActiveProfile implements employee.CompensationRepository.
func (r *compensationRepository) GetActiveProfile(ctx context.Context, employeeID string, asOf time.Time) (employee.CompensationProfile, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, base_rate, rate_unit, pay_frequency,
			   hours_per_day, days_per_month, effective_from, effective_to,
			   created_at, updated_at
		FROM compensation_profiles
		WHERE employee_id = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var p employee.CompensationProfile
	err := q.QueryRow(ctx, query, employeeID, asOf).Scan(
		&p.ID, &p.EmployeeID, &p.BaseRate, &p.RateUnit, &p.PayFrequency,
		&p.HoursPerDay, &p.DaysPerMonth, &p.EffectiveFrom, &p.EffectiveTo,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.CompensationProfile{}, employee.ErrNoActiveCompensation
		}
		return employee.CompensationProfile{}, fmt.Errorf("failed to get compensation profile: %w", err)
	}

	return p, nil
}

type scheduleRepository struct {
	db *database.DB
}

func NewScheduleRepository(db *database.DB) employee.ScheduleRepository {
	return &scheduleRepository{db: db}
}

// GetSchedule implements employee.ScheduleRepository. The per-weekday
// plan is a JSONB column: the schedule is always consumed whole.
func (r *scheduleRepository) GetSchedule(ctx context.Context, employeeID string) (employee.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT employee_id, days
		FROM work_schedules
		WHERE employee_id = $1
	`

	var s employee.WorkSchedule
	var days []byte
	err := q.QueryRow(ctx, query, employeeID).Scan(&s.EmployeeID, &days)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.WorkSchedule{}, employee.ErrNoWorkSchedule
		}
		return employee.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}
	if err := json.Unmarshal(days, &s.Days); err != nil {
		return employee.WorkSchedule{}, fmt.Errorf("failed to decode work schedule: %w", err)
	}

	return s, nil
}

type loanRepository struct {
	db *database.DB
}

func NewLoanRepository(db *database.DB) employee.LoanRepository {
	return &loanRepository{db: db}
}

// GetActiveByEmployee implements employee.LoanRepository.
func (r *loanRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]employee.LoanLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, loan_type, principal,
			   outstanding_balance, installment_amount, status,
			   created_at, updated_at
		FROM loan_ledgers
		WHERE employee_id = $1 AND status = $2
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, employee.LoanStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list loans: %w", err)
	}
	defer rows.Close()

	var loans []employee.LoanLedger
	for rows.Next() {
		var l employee.LoanLedger
		if err := rows.Scan(
			&l.ID, &l.EmployeeID, &l.CompanyID, &l.LoanType, &l.Principal,
			&l.OutstandingBalance, &l.InstallmentAmount, &l.Status,
			&l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan loan: %w", err)
		}
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate loans: %w", err)
	}

	return loans, nil
}

// DecrementBalance implements employee.LoanRepository. The status flip
// to completed happens in the same statement so it cannot be missed
// under concurrent computations.
func (r *loanRepository) DecrementBalance(ctx context.Context, loanID string, amount decimal.Decimal) (employee.LoanLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loan_ledgers
		SET outstanding_balance = outstanding_balance - $2,
			status = CASE WHEN outstanding_balance - $2 <= 0 THEN 'completed' ELSE status END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, company_id, loan_type, principal,
				  outstanding_balance, installment_amount, status,
				  created_at, updated_at
	`

	var l employee.LoanLedger
	err := q.QueryRow(ctx, query, loanID, amount).Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.LoanType, &l.Principal,
		&l.OutstandingBalance, &l.InstallmentAmount, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.LoanLedger{}, employee.ErrLoanNotFound
		}
		return employee.LoanLedger{}, fmt.Errorf("failed to decrement loan balance: %w", err)
	}

	return l, nil
}

// RestoreBalance implements employee.LoanRepository.
func (r *loanRepository) RestoreBalance(ctx context.Context, loanID string, amount decimal.Decimal) (employee.LoanLedger, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE loan_ledgers
		SET outstanding_balance = outstanding_balance + $2,
			status = CASE WHEN status = 'completed' AND outstanding_balance + $2 > 0 THEN 'active' ELSE status END,
			updated_at = NOW()
		WHERE id = $1
		RETURNING id, employee_id, company_id, loan_type, principal,
				  outstanding_balance, installment_amount, status,
				  created_at, updated_at
	`

	var l employee.LoanLedger
	err := q.QueryRow(ctx, query, loanID, amount).Scan(
		&l.ID, &l.EmployeeID, &l.CompanyID, &l.LoanType, &l.Principal,
		&l.OutstandingBalance, &l.InstallmentAmount, &l.Status,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return employee.LoanLedger{}, employee.ErrLoanNotFound
		}
		return employee.LoanLedger{}, fmt.Errorf("failed to restore loan balance: %w", err)
	}

	return l, nil
}
