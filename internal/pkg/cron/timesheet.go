package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

type TimesheetJobs struct {
	timesheetSvc timesheet.TimesheetService
	db           *database.DB
	loc          *time.Location
}

func NewTimesheetJobs(timesheetSvc timesheet.TimesheetService, db *database.DB, loc *time.Location) *TimesheetJobs {
	return &TimesheetJobs{
		timesheetSvc: timesheetSvc,
		db:           db,
		loc:          loc,
	}
}

func (j *TimesheetJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("materialize_work_days", 1*time.Hour, j.MaterializeWorkDays)
}

// MaterializeWorkDays persists yesterday's work-day records for every
// active employee so payroll aggregation reads precomputed rows instead
// of re-pairing raw punches.
func (j *TimesheetJobs) MaterializeWorkDays(ctx context.Context) error {
	// Only run at local midnight (00:00-00:59)
	if time.Now().In(j.loc).Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting work day materialization job")

	rows, err := j.db.Pool.Query(ctx, `
		SELECT DISTINCT company_id FROM employees WHERE is_active = TRUE
	`)
	if err != nil {
		return fmt.Errorf("failed to get companies: %w", err)
	}
	defer rows.Close()

	var companyIDs []string
	for rows.Next() {
		var companyID string
		if err := rows.Scan(&companyID); err != nil {
			continue
		}
		companyIDs = append(companyIDs, companyID)
	}

	yesterday := time.Now().In(j.loc).AddDate(0, 0, -1)

	materialized := 0
	for _, companyID := range companyIDs {
		if err := j.timesheetSvc.MaterializeDay(ctx, companyID, yesterday); err != nil {
			slog.Error("Cron: Failed to materialize work days",
				"company_id", companyID,
				"date", yesterday.Format("2006-01-02"),
				"error", err)
			continue
		}
		materialized++
	}

	slog.Info("Cron: Materialized work days", "companies", materialized, "date", yesterday.Format("2006-01-02"))
	return nil
}
