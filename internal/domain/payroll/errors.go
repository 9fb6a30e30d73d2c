package payroll

import "errors"

var (
	// ErrInvalidTransition - the requested status change is outside the
	// allowed transition set. Rejected immediately, no side effects.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrPeriodNotFound       = errors.New("payroll period not found")
	ErrPeriodOverlaps       = errors.New("payroll period overlaps an existing period")
	ErrPeriodNotOpen        = errors.New("payroll period must be open to process")
	ErrPeriodNotEditable    = errors.New("payroll period is no longer editable")
	ErrPeriodNotDeletable   = errors.New("payroll period can only be deleted while draft")
	ErrPeriodBeingProcessed = errors.New("payroll period is already being processed")

	// ErrEntriesNotSettled blocks closing while any entry is not yet
	// approved or paid.
	ErrEntriesNotSettled = errors.New("all entries must be approved or paid before closing the period")

	// ErrEntriesWithFatalErrors blocks closing while any entry carries an
	// unresolved computation failure.
	ErrEntriesWithFatalErrors = errors.New("period has entries with unresolved computation errors")

	ErrEntryNotFound        = errors.New("payroll entry not found")
	ErrEntryNotEditable     = errors.New("payroll entry fields are only mutable in draft or computed")
	ErrEntryNotRecomputable = errors.New("payroll entry can no longer be recomputed")
	ErrEntryNotDeletable    = errors.New("payroll entry can only be deleted while draft")

	ErrSettingsNotFound   = errors.New("payroll settings not found")
	ErrAdjustmentNotFound = errors.New("adjustment not found")
)
