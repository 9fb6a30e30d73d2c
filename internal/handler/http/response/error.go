package response

import (
	"errors"
	"net/http"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Payroll domain errors. Lifecycle violations are conflicts: the
	// request was well-formed but the resource is in the wrong state.
	case errors.Is(err, payroll.ErrInvalidTransition):
		Conflict(w, err.Error())
	case errors.Is(err, payroll.ErrPeriodOverlaps):
		Conflict(w, "Payroll period overlaps an existing period")
	case errors.Is(err, payroll.ErrPeriodBeingProcessed):
		Conflict(w, "Payroll period is already being processed")
	case errors.Is(err, payroll.ErrPeriodNotOpen):
		Conflict(w, "Payroll period must be open to process")
	case errors.Is(err, payroll.ErrPeriodNotEditable):
		Conflict(w, "Payroll period is no longer editable")
	case errors.Is(err, payroll.ErrPeriodNotDeletable):
		Conflict(w, "Payroll period can only be deleted while draft")
	case errors.Is(err, payroll.ErrEntriesNotSettled):
		Conflict(w, "All entries must be approved or paid before closing the period")
	case errors.Is(err, payroll.ErrEntriesWithFatalErrors):
		Conflict(w, "Period has entries with unresolved computation errors")
	case errors.Is(err, payroll.ErrEntryNotRecomputable):
		Conflict(w, "Payroll entry can no longer be recomputed")
	case errors.Is(err, payroll.ErrEntryNotEditable):
		Conflict(w, "Payroll entry is no longer editable")
	case errors.Is(err, payroll.ErrEntryNotDeletable):
		Conflict(w, "Payroll entry can only be deleted while draft")
	case errors.Is(err, payroll.ErrPeriodNotFound):
		NotFound(w, "Payroll period not found")
	case errors.Is(err, payroll.ErrEntryNotFound):
		NotFound(w, "Payroll entry not found")
	case errors.Is(err, payroll.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment not found")
	case errors.Is(err, payroll.ErrSettingsNotFound):
		NotFound(w, "Payroll settings not found")

	// Contribution domain errors
	case errors.Is(err, contribution.ErrNoApplicableTable):
		NotFound(w, "No applicable contribution or tax table for the given date")
	case errors.Is(err, contribution.ErrOverlappingTables):
		Conflict(w, "Table effective ranges overlap")
	case errors.Is(err, contribution.ErrEmptyTable),
		errors.Is(err, contribution.ErrBoundedLastBracket),
		errors.Is(err, contribution.ErrUnboundedInnerBracket),
		errors.Is(err, contribution.ErrInvertedBracket),
		errors.Is(err, contribution.ErrGapInBrackets),
		errors.Is(err, contribution.ErrInvalidKind),
		errors.Is(err, contribution.ErrInvalidFrequency):
		BadRequest(w, err.Error(), nil)

	// Timesheet domain errors
	case errors.Is(err, timesheet.ErrInvalidDateRange):
		BadRequest(w, "Invalid date range", nil)
	case errors.Is(err, timesheet.ErrInvalidDirection):
		BadRequest(w, "Punch direction must be in or out", nil)
	case errors.Is(err, timesheet.ErrPunchInFuture):
		BadRequest(w, "Punch timestamp is in the future", nil)
	case errors.Is(err, timesheet.ErrWorkDayLocked):
		Conflict(w, "Work day is referenced by a locked payroll entry")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrNoActiveCompensation):
		NotFound(w, "Employee has no active compensation profile")
	case errors.Is(err, employee.ErrNoWorkSchedule):
		NotFound(w, "Employee has no work schedule")
	case errors.Is(err, employee.ErrLoanNotFound):
		NotFound(w, "Loan ledger not found")
	case errors.Is(err, employee.ErrInvalidCompensation):
		Conflict(w, "Compensation profile is misconfigured")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
