package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

type periodRepository struct {
	db *database.DB
}

func NewPeriodRepository(db *database.DB) payroll.PeriodRepository {
	return &periodRepository{db: db}
}

// Create implements payroll.PeriodRepository.
func (r *periodRepository) Create(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_periods (company_id, start_date, end_date, cutoff_date, pay_date, cycle, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		period.CompanyID, period.StartDate, period.EndDate, period.CutoffDate,
		period.PayDate, period.Cycle, period.Status,
	).Scan(&period.ID, &period.CreatedAt, &period.UpdatedAt)
	if err != nil {
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to create payroll period: %w", err)
	}

	return period, nil
}

// GetByID implements payroll.PeriodRepository.
func (r *periodRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, start_date, end_date, cutoff_date, pay_date, cycle, status,
			   created_at, updated_at
		FROM payroll_periods
		WHERE id = $1 AND company_id = $2
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&p.ID, &p.CompanyID, &p.StartDate, &p.EndDate, &p.CutoffDate, &p.PayDate, &p.Cycle, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrPeriodNotFound
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to get payroll period: %w", err)
	}

	return p, nil
}

// List implements payroll.PeriodRepository.
func (r *periodRepository) List(ctx context.Context, companyID string, filter payroll.PeriodFilter) ([]payroll.PayrollPeriod, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE company_id = $1"
	args := []any{companyID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Cycle != nil {
		args = append(args, *filter.Cycle)
		where += fmt.Sprintf(" AND cycle = $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_periods " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll periods: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`
		SELECT id, company_id, start_date, end_date, cutoff_date, pay_date, cycle, status,
			   created_at, updated_at
		FROM payroll_periods
		%s
		ORDER BY start_date DESC
		LIMIT $%d OFFSET $%d
	`, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll periods: %w", err)
	}
	defer rows.Close()

	var periods []payroll.PayrollPeriod
	for rows.Next() {
		var p payroll.PayrollPeriod
		if err := rows.Scan(
			&p.ID, &p.CompanyID, &p.StartDate, &p.EndDate, &p.CutoffDate, &p.PayDate, &p.Cycle, &p.Status,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll period: %w", err)
		}
		periods = append(periods, p)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll periods: %w", err)
	}

	return periods, total, nil
}

// UpdateStatus implements payroll.PeriodRepository.
func (r *periodRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to payroll.PeriodStatus) (payroll.PayrollPeriod, error) {
	q := GetQuerier(ctx, r.db)

	// Compare-and-swap on the current status: a concurrent transition
	// that already moved the row makes this update match zero rows.
	query := `
		UPDATE payroll_periods
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $4
		RETURNING id, company_id, start_date, end_date, cutoff_date, pay_date, cycle, status,
				  created_at, updated_at
	`

	var p payroll.PayrollPeriod
	err := q.QueryRow(ctx, query, id, companyID, to, from).Scan(
		&p.ID, &p.CompanyID, &p.StartDate, &p.EndDate, &p.CutoffDate, &p.PayDate, &p.Cycle, &p.Status,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollPeriod{}, payroll.ErrInvalidTransition
		}
		return payroll.PayrollPeriod{}, fmt.Errorf("failed to update period status: %w", err)
	}

	return p, nil
}

// Delete implements payroll.PeriodRepository.
func (r *periodRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_periods WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll period: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPeriodNotFound
	}

	return nil
}

// HasOverlap implements payroll.PeriodRepository.
func (r *periodRepository) HasOverlap(ctx context.Context, companyID string, cycle payroll.CycleType, start, end time.Time) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM payroll_periods
			WHERE company_id = $1 AND cycle = $2
			  AND start_date <= $4 AND end_date >= $3
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, companyID, cycle, start, end).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check period overlap: %w", err)
	}

	return exists, nil
}

type entryRepository struct {
	db *database.DB
}

func NewEntryRepository(db *database.DB) payroll.EntryRepository {
	return &entryRepository{db: db}
}

const entryColumns = `
	id, period_id, employee_id, company_id,
	earn_basic, earn_overtime, earn_night_diff, earn_holiday,
	earn_allowances, earn_bonuses, earn_adjustments, earn_gross, clamped_components,
	ded_sss_employee, ded_sss_employer, ded_philhealth_employee, ded_philhealth_employer,
	ded_pagibig_employee, ded_pagibig_employer, ded_withholding_tax, ded_loans, ded_other,
	ded_total_employee,
	gross_pay, net_pay, status, warnings, fatal_error, computed_at, created_at, updated_at
`

func scanEntry(row pgx.Row) (payroll.PayrollEntry, error) {
	var e payroll.PayrollEntry
	err := row.Scan(
		&e.ID, &e.PeriodID, &e.EmployeeID, &e.CompanyID,
		&e.Earnings.Basic, &e.Earnings.Overtime, &e.Earnings.NightDiff, &e.Earnings.Holiday,
		&e.Earnings.Allowances, &e.Earnings.Bonuses, &e.Earnings.Adjustments, &e.Earnings.Gross,
		&e.Earnings.ClampedComponents,
		&e.Deductions.SSSEmployee, &e.Deductions.SSSEmployer,
		&e.Deductions.PhilHealthEmployee, &e.Deductions.PhilHealthEmployer,
		&e.Deductions.PagIbigEmployee, &e.Deductions.PagIbigEmployer,
		&e.Deductions.WithholdingTax, &e.Deductions.Loans, &e.Deductions.Other,
		&e.Deductions.TotalEmployee,
		&e.GrossPay, &e.NetPay, &e.Status, &e.Warnings, &e.FatalError, &e.ComputedAt,
		&e.CreatedAt, &e.UpdatedAt,
	)
	return e, err
}

// Upsert implements payroll.EntryRepository. Replacing on conflict means
// a recomputation always overwrites the previous amounts and clears any
// fatal error from an earlier failed attempt.
func (r *entryRepository) Upsert(ctx context.Context, entry payroll.PayrollEntry) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (
			period_id, employee_id, company_id,
			earn_basic, earn_overtime, earn_night_diff, earn_holiday,
			earn_allowances, earn_bonuses, earn_adjustments, earn_gross, clamped_components,
			ded_sss_employee, ded_sss_employer, ded_philhealth_employee, ded_philhealth_employer,
			ded_pagibig_employee, ded_pagibig_employer, ded_withholding_tax, ded_loans, ded_other,
			ded_total_employee,
			gross_pay, net_pay, status, warnings, fatal_error, computed_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18,
				$19, $20, $21, $22, $23, $24, $25, $26, NULL, $27)
		ON CONFLICT (period_id, employee_id) DO UPDATE SET
			earn_basic = EXCLUDED.earn_basic,
			earn_overtime = EXCLUDED.earn_overtime,
			earn_night_diff = EXCLUDED.earn_night_diff,
			earn_holiday = EXCLUDED.earn_holiday,
			earn_allowances = EXCLUDED.earn_allowances,
			earn_bonuses = EXCLUDED.earn_bonuses,
			earn_adjustments = EXCLUDED.earn_adjustments,
			earn_gross = EXCLUDED.earn_gross,
			clamped_components = EXCLUDED.clamped_components,
			ded_sss_employee = EXCLUDED.ded_sss_employee,
			ded_sss_employer = EXCLUDED.ded_sss_employer,
			ded_philhealth_employee = EXCLUDED.ded_philhealth_employee,
			ded_philhealth_employer = EXCLUDED.ded_philhealth_employer,
			ded_pagibig_employee = EXCLUDED.ded_pagibig_employee,
			ded_pagibig_employer = EXCLUDED.ded_pagibig_employer,
			ded_withholding_tax = EXCLUDED.ded_withholding_tax,
			ded_loans = EXCLUDED.ded_loans,
			ded_other = EXCLUDED.ded_other,
			ded_total_employee = EXCLUDED.ded_total_employee,
			gross_pay = EXCLUDED.gross_pay,
			net_pay = EXCLUDED.net_pay,
			status = EXCLUDED.status,
			warnings = EXCLUDED.warnings,
			fatal_error = NULL,
			computed_at = EXCLUDED.computed_at,
			updated_at = NOW()
		RETURNING ` + entryColumns

	saved, err := scanEntry(q.QueryRow(ctx, query,
		entry.PeriodID, entry.EmployeeID, entry.CompanyID,
		entry.Earnings.Basic, entry.Earnings.Overtime, entry.Earnings.NightDiff, entry.Earnings.Holiday,
		entry.Earnings.Allowances, entry.Earnings.Bonuses, entry.Earnings.Adjustments, entry.Earnings.Gross,
		entry.Earnings.ClampedComponents,
		entry.Deductions.SSSEmployee, entry.Deductions.SSSEmployer,
		entry.Deductions.PhilHealthEmployee, entry.Deductions.PhilHealthEmployer,
		entry.Deductions.PagIbigEmployee, entry.Deductions.PagIbigEmployer,
		entry.Deductions.WithholdingTax, entry.Deductions.Loans, entry.Deductions.Other,
		entry.Deductions.TotalEmployee,
		entry.GrossPay, entry.NetPay, entry.Status, entry.Warnings, entry.ComputedAt,
	))
	if err != nil {
		return payroll.PayrollEntry{}, fmt.Errorf("failed to upsert payroll entry: %w", err)
	}

	return saved, nil
}

// SetFatalError implements payroll.EntryRepository.
func (r *entryRepository) SetFatalError(ctx context.Context, periodID, employeeID, companyID, reason string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_entries (period_id, employee_id, company_id, status, fatal_error)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (period_id, employee_id) DO UPDATE SET
			fatal_error = EXCLUDED.fatal_error,
			updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, periodID, employeeID, companyID, payroll.EntryStatusDraft, reason); err != nil {
		return fmt.Errorf("failed to record entry fatal error: %w", err)
	}

	return nil
}

// GetByID implements payroll.EntryRepository.
func (r *entryRepository) GetByID(ctx context.Context, id string, companyID string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM payroll_entries WHERE id = $1 AND company_id = $2`

	e, err := scanEntry(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return e, nil
}

// GetByPeriodAndEmployee implements payroll.EntryRepository.
func (r *entryRepository) GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + entryColumns + ` FROM payroll_entries WHERE period_id = $1 AND employee_id = $2`

	e, err := scanEntry(q.QueryRow(ctx, query, periodID, employeeID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrEntryNotFound
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to get payroll entry: %w", err)
	}

	return e, nil
}

// ListByPeriod implements payroll.EntryRepository.
func (r *entryRepository) ListByPeriod(ctx context.Context, periodID string, companyID string, filter payroll.EntryFilter) ([]payroll.PayrollEntry, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := "WHERE period_id = $1 AND company_id = $2"
	args := []any{periodID, companyID}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		where += fmt.Sprintf(" AND status = $%d", len(args))
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM payroll_entries " + where
	if err := q.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count payroll entries: %w", err)
	}

	offset := (filter.Page - 1) * filter.Limit
	args = append(args, filter.Limit, offset)
	query := fmt.Sprintf(`SELECT %s FROM payroll_entries %s ORDER BY employee_id ASC LIMIT $%d OFFSET $%d`,
		entryColumns, where, len(args)-1, len(args))

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list payroll entries: %w", err)
	}
	defer rows.Close()

	var entries []payroll.PayrollEntry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan payroll entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate payroll entries: %w", err)
	}

	return entries, total, nil
}

// UpdateStatus implements payroll.EntryRepository.
func (r *entryRepository) UpdateStatus(ctx context.Context, id string, companyID string, from, to payroll.EntryStatus) (payroll.PayrollEntry, error) {
	q := GetQuerier(ctx, r.db)

	// Compare-and-swap, same contract as the period repository.
	query := `
		UPDATE payroll_entries
		SET status = $3, updated_at = NOW()
		WHERE id = $1 AND company_id = $2 AND status = $4
		RETURNING ` + entryColumns

	e, err := scanEntry(q.QueryRow(ctx, query, id, companyID, to, from))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.PayrollEntry{}, payroll.ErrInvalidTransition
		}
		return payroll.PayrollEntry{}, fmt.Errorf("failed to update entry status: %w", err)
	}

	return e, nil
}

// Delete implements payroll.EntryRepository.
func (r *entryRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payroll_entries WHERE id = $1 AND company_id = $2`, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete payroll entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrEntryNotFound
	}

	return nil
}

// CountUnsettled implements payroll.EntryRepository.
func (r *entryRepository) CountUnsettled(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*) FROM payroll_entries
		WHERE period_id = $1 AND status NOT IN ($2, $3)
	`

	var count int64
	err := q.QueryRow(ctx, query, periodID, payroll.EntryStatusApproved, payroll.EntryStatusPaid).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count unsettled entries: %w", err)
	}

	return count, nil
}

// CountWithFatalErrors implements payroll.EntryRepository.
func (r *entryRepository) CountWithFatalErrors(ctx context.Context, periodID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT COUNT(*) FROM payroll_entries WHERE period_id = $1 AND fatal_error IS NOT NULL`

	var count int64
	if err := q.QueryRow(ctx, query, periodID).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count entries with fatal errors: %w", err)
	}

	return count, nil
}

// ListSettledPeriodSpans implements payroll.EntryRepository.
func (r *entryRepository) ListSettledPeriodSpans(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.PeriodSpan, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.start_date, p.end_date
		FROM payroll_entries e
		JOIN payroll_periods p ON p.id = e.period_id
		WHERE e.employee_id = $1
		  AND e.status IN ($2, $3)
		  AND p.start_date <= $5 AND p.end_date >= $4
		ORDER BY p.start_date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, payroll.EntryStatusApproved, payroll.EntryStatusPaid, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list settled period spans: %w", err)
	}
	defer rows.Close()

	var spans []payroll.PeriodSpan
	for rows.Next() {
		var s payroll.PeriodSpan
		if err := rows.Scan(&s.Start, &s.End); err != nil {
			return nil, fmt.Errorf("failed to scan period span: %w", err)
		}
		spans = append(spans, s)
	}
	return spans, rows.Err()
}

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) payroll.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

// GetActiveByEmployee implements payroll.AdjustmentRepository.
func (r *adjustmentRepository) GetActiveByEmployee(ctx context.Context, employeeID string) ([]payroll.Adjustment, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, employee_id, name, kind, amount, recurrence,
			   apply_on_supplemental, active, created_at, updated_at
		FROM adjustments
		WHERE employee_id = $1 AND active = TRUE
		ORDER BY created_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustments: %w", err)
	}
	defer rows.Close()

	var adjustments []payroll.Adjustment
	for rows.Next() {
		var a payroll.Adjustment
		if err := rows.Scan(
			&a.ID, &a.CompanyID, &a.EmployeeID, &a.Name, &a.Kind, &a.Amount, &a.Recurrence,
			&a.ApplyOnSupplemental, &a.Active, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment: %w", err)
		}
		adjustments = append(adjustments, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustments: %w", err)
	}

	return adjustments, nil
}

// GetLastApplication implements payroll.AdjustmentRepository. The date
// returned is the start of the period the adjustment was applied in,
// not the wall-clock time of the computation, so monthly and quarterly
// gating stays correct for late-processed periods.
func (r *adjustmentRepository) GetLastApplication(ctx context.Context, adjustmentID string) (*time.Time, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT p.start_date
		FROM adjustment_applications a
		JOIN payroll_periods p ON p.id = a.period_id
		WHERE a.ref_id = $1 AND a.kind = $2 AND a.reversed = FALSE
		ORDER BY p.start_date DESC
		LIMIT 1
	`

	var start time.Time
	err := q.QueryRow(ctx, query, adjustmentID, payroll.ApplicationAdjustment).Scan(&start)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get last application: %w", err)
	}

	return &start, nil
}

// CreateApplication implements payroll.AdjustmentRepository.
func (r *adjustmentRepository) CreateApplication(ctx context.Context, app payroll.AdjustmentApplication) (payroll.AdjustmentApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO adjustment_applications (period_id, entry_id, employee_id, kind, ref_id, amount, new_balance, reversed)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		app.PeriodID, app.EntryID, app.EmployeeID, app.Kind, app.RefID, app.Amount, app.NewBalance,
	).Scan(&app.ID, &app.CreatedAt)
	if err != nil {
		return payroll.AdjustmentApplication{}, fmt.Errorf("failed to create adjustment application: %w", err)
	}

	return app, nil
}

// ListApplicationsByEntry implements payroll.AdjustmentRepository.
func (r *adjustmentRepository) ListApplicationsByEntry(ctx context.Context, entryID string) ([]payroll.AdjustmentApplication, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, period_id, entry_id, employee_id, kind, ref_id, amount, new_balance, reversed, created_at
		FROM adjustment_applications
		WHERE entry_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to list adjustment applications: %w", err)
	}
	defer rows.Close()

	var apps []payroll.AdjustmentApplication
	for rows.Next() {
		var a payroll.AdjustmentApplication
		if err := rows.Scan(
			&a.ID, &a.PeriodID, &a.EntryID, &a.EmployeeID, &a.Kind, &a.RefID, &a.Amount,
			&a.NewBalance, &a.Reversed, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan adjustment application: %w", err)
		}
		apps = append(apps, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate adjustment applications: %w", err)
	}

	return apps, nil
}

// MarkReversed implements payroll.AdjustmentRepository.
func (r *adjustmentRepository) MarkReversed(ctx context.Context, entryID string) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE adjustment_applications SET reversed = TRUE WHERE entry_id = $1 AND reversed = FALSE`

	if _, err := q.Exec(ctx, query, entryID); err != nil {
		return fmt.Errorf("failed to mark applications reversed: %w", err)
	}

	return nil
}

type settingsRepository struct {
	db *database.DB
}

func NewSettingsRepository(db *database.DB) payroll.SettingsRepository {
	return &settingsRepository{db: db}
}

const settingsColumns = `
	id, company_id,
	overtime_regular_rate, overtime_rest_day_rate, overtime_holiday_rate,
	regular_holiday_rate, special_holiday_rate, special_working_rate,
	double_holiday_rate, rest_day_premium_rate, double_holiday_rest_rate,
	night_diff_rate, night_window_start, night_window_end,
	created_at, updated_at
`

func scanSettings(row pgx.Row) (payroll.Settings, error) {
	var s payroll.Settings
	err := row.Scan(
		&s.ID, &s.CompanyID,
		&s.OvertimeRegularRate, &s.OvertimeRestDayRate, &s.OvertimeHolidayRate,
		&s.RegularHolidayRate, &s.SpecialHolidayRate, &s.SpecialWorkingRate,
		&s.DoubleHolidayRate, &s.RestDayPremiumRate, &s.DoubleHolidayRestRate,
		&s.NightDiffRate, &s.NightWindowStart, &s.NightWindowEnd,
		&s.CreatedAt, &s.UpdatedAt,
	)
	return s, err
}

// Get implements payroll.SettingsRepository.
func (r *settingsRepository) Get(ctx context.Context, companyID string) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + settingsColumns + ` FROM payroll_settings WHERE company_id = $1`

	s, err := scanSettings(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Settings{}, payroll.ErrSettingsNotFound
		}
		return payroll.Settings{}, fmt.Errorf("failed to get payroll settings: %w", err)
	}

	return s, nil
}

// Upsert implements payroll.SettingsRepository.
func (r *settingsRepository) Upsert(ctx context.Context, settings payroll.Settings) (payroll.Settings, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO payroll_settings (
			company_id,
			overtime_regular_rate, overtime_rest_day_rate, overtime_holiday_rate,
			regular_holiday_rate, special_holiday_rate, special_working_rate,
			double_holiday_rate, rest_day_premium_rate, double_holiday_rest_rate,
			night_diff_rate, night_window_start, night_window_end
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (company_id) DO UPDATE SET
			overtime_regular_rate = EXCLUDED.overtime_regular_rate,
			overtime_rest_day_rate = EXCLUDED.overtime_rest_day_rate,
			overtime_holiday_rate = EXCLUDED.overtime_holiday_rate,
			regular_holiday_rate = EXCLUDED.regular_holiday_rate,
			special_holiday_rate = EXCLUDED.special_holiday_rate,
			special_working_rate = EXCLUDED.special_working_rate,
			double_holiday_rate = EXCLUDED.double_holiday_rate,
			rest_day_premium_rate = EXCLUDED.rest_day_premium_rate,
			double_holiday_rest_rate = EXCLUDED.double_holiday_rest_rate,
			night_diff_rate = EXCLUDED.night_diff_rate,
			night_window_start = EXCLUDED.night_window_start,
			night_window_end = EXCLUDED.night_window_end,
			updated_at = NOW()
		RETURNING ` + settingsColumns

	s, err := scanSettings(q.QueryRow(ctx, query,
		settings.CompanyID,
		settings.OvertimeRegularRate, settings.OvertimeRestDayRate, settings.OvertimeHolidayRate,
		settings.RegularHolidayRate, settings.SpecialHolidayRate, settings.SpecialWorkingRate,
		settings.DoubleHolidayRate, settings.RestDayPremiumRate, settings.DoubleHolidayRestRate,
		settings.NightDiffRate, settings.NightWindowStart, settings.NightWindowEnd,
	))
	if err != nil {
		return payroll.Settings{}, fmt.Errorf("failed to upsert payroll settings: %w", err)
	}

	return s, nil
}
