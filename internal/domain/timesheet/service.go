package timesheet

import (
	"context"
	"time"
)

// TimesheetService defines the time aggregation surface.
type TimesheetService interface {
	// RecordPunch ingests one clock event from the attendance subsystem.
	RecordPunch(ctx context.Context, req RecordPunchRequest) (Punch, error)

	// Aggregate turns raw punches into per-day records over the range and
	// rolls them up. Partial data is returned with per-day needs-review
	// markers, never as a range-wide failure.
	Aggregate(ctx context.Context, employeeID string, dateRange DateRange) (PeriodSummary, error)

	// MaterializeDay recomputes and persists the WorkDay rows for one
	// calendar date across all active employees of a company. Run
	// nightly by the scheduler.
	MaterializeDay(ctx context.Context, companyID string, date time.Time) error
}
