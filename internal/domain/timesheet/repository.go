package timesheet

import (
	"context"
	"time"
)

// PunchRepository stores raw clock events.
type PunchRepository interface {
	Create(ctx context.Context, punch Punch) (Punch, error)

	// GetByEmployeeAndRange returns punches ordered by time ascending.
	// The upper bound is extended past midnight by callers that need to
	// close out shifts crossing into the next day.
	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]Punch, error)
}

// WorkDayRepository stores aggregated daily records.
type WorkDayRepository interface {
	// Upsert replaces the record for (employee, date). Re-aggregation of
	// an unchanged punch set must produce an identical row.
	Upsert(ctx context.Context, day WorkDay) (WorkDay, error)

	GetByEmployeeAndRange(ctx context.Context, employeeID string, from, to time.Time) ([]WorkDay, error)
}
