package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

type punchRepository struct {
	db *database.DB
}

func NewPunchRepository(db *database.DB) timesheet.PunchRepository {
	return &punchRepository{db: db}
}

// Create implements timesheet.PunchRepository.
func (r *punchRepository) Create(ctx context.Context, punch timesheet.Punch) (timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO punches (employee_id, company_id, punched_at, direction, source)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := q.QueryRow(ctx, query,
		punch.EmployeeID,
		punch.CompanyID,
		punch.Time,
		punch.Direction,
		punch.Source,
	).Scan(&punch.ID, &punch.CreatedAt)
	if err != nil {
		return timesheet.Punch{}, fmt.Errorf("failed to create punch: %w", err)
	}

	return punch, nil
}

// GetByEmployeeAndRange implements timesheet.PunchRepository.
func (r *punchRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.Punch, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, punched_at, direction, source, created_at
		FROM punches
		WHERE employee_id = $1
		  AND punched_at >= $2
		  AND punched_at < $3
		ORDER BY punched_at ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get punches: %w", err)
	}
	defer rows.Close()

	var punches []timesheet.Punch
	for rows.Next() {
		var p timesheet.Punch
		if err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.CompanyID, &p.Time, &p.Direction, &p.Source, &p.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan punch: %w", err)
		}
		punches = append(punches, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate punches: %w", err)
	}

	return punches, nil
}

type workDayRepository struct {
	db *database.DB
}

func NewWorkDayRepository(db *database.DB) timesheet.WorkDayRepository {
	return &workDayRepository{db: db}
}

// Upsert implements timesheet.WorkDayRepository.
func (r *workDayRepository) Upsert(ctx context.Context, day timesheet.WorkDay) (timesheet.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO work_days (
			employee_id, company_id, date, class, holiday_type, rest_day,
			scheduled_hours, worked_hours, regular_ot_hours, rest_day_ot_hours,
			holiday_ot_hours, night_hours, needs_review
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			class = EXCLUDED.class,
			holiday_type = EXCLUDED.holiday_type,
			rest_day = EXCLUDED.rest_day,
			scheduled_hours = EXCLUDED.scheduled_hours,
			worked_hours = EXCLUDED.worked_hours,
			regular_ot_hours = EXCLUDED.regular_ot_hours,
			rest_day_ot_hours = EXCLUDED.rest_day_ot_hours,
			holiday_ot_hours = EXCLUDED.holiday_ot_hours,
			night_hours = EXCLUDED.night_hours,
			needs_review = EXCLUDED.needs_review,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		day.EmployeeID,
		day.CompanyID,
		day.Date,
		day.Class,
		day.HolidayType,
		day.RestDay,
		day.ScheduledHours,
		day.WorkedHours,
		day.RegularOTHours,
		day.RestDayOTHours,
		day.HolidayOTHours,
		day.NightHours,
		day.NeedsReview,
	).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
	if err != nil {
		return timesheet.WorkDay{}, fmt.Errorf("failed to upsert work day: %w", err)
	}

	return day, nil
}

// GetByEmployeeAndRange implements timesheet.WorkDayRepository.
func (r *workDayRepository) GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]timesheet.WorkDay, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, date, class, holiday_type, rest_day,
			   scheduled_hours, worked_hours, regular_ot_hours, rest_day_ot_hours,
			   holiday_ot_hours, night_hours, needs_review, created_at, updated_at
		FROM work_days
		WHERE employee_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date ASC
	`

	rows, err := q.Query(ctx, query, employeeID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get work days: %w", err)
	}
	defer rows.Close()

	var days []timesheet.WorkDay
	for rows.Next() {
		var d timesheet.WorkDay
		if err := rows.Scan(
			&d.ID, &d.EmployeeID, &d.CompanyID, &d.Date, &d.Class, &d.HolidayType, &d.RestDay,
			&d.ScheduledHours, &d.WorkedHours, &d.RegularOTHours, &d.RestDayOTHours,
			&d.HolidayOTHours, &d.NightHours, &d.NeedsReview, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan work day: %w", err)
		}
		days = append(days, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work days: %w", err)
	}

	return days, nil
}
