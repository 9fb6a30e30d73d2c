package employee

import "errors"

var (
	ErrEmployeeNotFound     = errors.New("employee not found")
	ErrNoActiveCompensation = errors.New("employee has no active compensation profile")
	ErrNoWorkSchedule       = errors.New("employee has no work schedule")
	ErrLoanNotFound         = errors.New("loan ledger not found")
	ErrLoanNotActive        = errors.New("loan is not active")

	// ErrInvalidCompensation - the active profile carries non-positive
	// hours per day or days per month, so rates cannot be normalized.
	ErrInvalidCompensation = errors.New("compensation profile has non-positive hours per day or days per month")
)
