package payroll

import (
	"context"
	"time"
)

// PeriodRepository stores payroll periods. All methods are
// company-scoped to prevent cross-tenant access.
type PeriodRepository interface {
	Create(ctx context.Context, period PayrollPeriod) (PayrollPeriod, error)
	GetByID(ctx context.Context, id string, companyID string) (PayrollPeriod, error)
	List(ctx context.Context, companyID string, filter PeriodFilter) ([]PayrollPeriod, int64, error)

	// UpdateStatus moves the period from one status to another. The
	// write is conditional on the row still holding from, so two racing
	// transitions cannot both succeed against the same stale read;
	// a lost race surfaces as ErrInvalidTransition.
	UpdateStatus(ctx context.Context, id string, companyID string, from, to PeriodStatus) (PayrollPeriod, error)

	Delete(ctx context.Context, id string, companyID string) error

	// HasOverlap reports whether any period of the company intersects
	// [start, end] for the same cycle type.
	HasOverlap(ctx context.Context, companyID string, cycle CycleType, start, end time.Time) (bool, error)
}

// EntryRepository stores payroll entries.
type EntryRepository interface {
	// Upsert inserts or replaces the entry for (period, employee). The
	// caller supplies the status; a successful recomputation always lands
	// on computed regardless of what the row held before.
	Upsert(ctx context.Context, entry PayrollEntry) (PayrollEntry, error)

	// SetFatalError records a computation failure on the entry for
	// (period, employee), inserting a draft row when none exists yet.
	// Previously committed amounts are left untouched.
	SetFatalError(ctx context.Context, periodID, employeeID, companyID, reason string) error

	GetByID(ctx context.Context, id string, companyID string) (PayrollEntry, error)
	GetByPeriodAndEmployee(ctx context.Context, periodID, employeeID string) (PayrollEntry, error)
	ListByPeriod(ctx context.Context, periodID string, companyID string, filter EntryFilter) ([]PayrollEntry, int64, error)

	// UpdateStatus is conditional on the row still holding from, same
	// contract as PeriodRepository.UpdateStatus.
	UpdateStatus(ctx context.Context, id string, companyID string, from, to EntryStatus) (PayrollEntry, error)

	Delete(ctx context.Context, id string, companyID string) error

	// CountUnsettled counts entries of a period not yet approved or paid.
	CountUnsettled(ctx context.Context, periodID string) (int64, error)

	// CountWithFatalErrors counts entries carrying an unresolved
	// computation failure.
	CountWithFatalErrors(ctx context.Context, periodID string) (int64, error)

	// ListSettledPeriodSpans returns the date ranges of periods holding
	// an approved or paid entry of the employee, intersected with
	// [from, to]. Work days inside these spans are immutable.
	ListSettledPeriodSpans(ctx context.Context, employeeID string, from, to time.Time) ([]PeriodSpan, error)
}

// AdjustmentRepository reads adjustment definitions and writes the
// insert-only application audit trail.
type AdjustmentRepository interface {
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]Adjustment, error)

	// GetLastApplication returns the start date of the period in which
	// the adjustment was last applied (non-reversed), or nil if never.
	GetLastApplication(ctx context.Context, adjustmentID string) (*time.Time, error)

	CreateApplication(ctx context.Context, app AdjustmentApplication) (AdjustmentApplication, error)

	// ListApplicationsByEntry returns the applications recorded for an
	// entry, newest first.
	ListApplicationsByEntry(ctx context.Context, entryID string) ([]AdjustmentApplication, error)

	// MarkReversed flags prior applications of an entry as superseded
	// when the entry is recomputed. Rows are never deleted.
	MarkReversed(ctx context.Context, entryID string) error
}

// SettingsRepository stores per-tenant payroll policy.
type SettingsRepository interface {
	Get(ctx context.Context, companyID string) (Settings, error)
	Upsert(ctx context.Context, settings Settings) (Settings, error)
}
