package timesheet

import "errors"

var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidDirection = errors.New("punch direction must be in or out")
	ErrPunchInFuture    = errors.New("punch timestamp is in the future")
	ErrWorkDayLocked    = errors.New("work day is referenced by a locked payroll entry")

	// ErrDataIncomplete marks a range containing days that need manual
	// review (unmatched punches). Recoverable: correct the source data
	// and recompute.
	ErrDataIncomplete = errors.New("time data incomplete: days need review")
)
