package employee

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// EmployeeRepository reads the employee directory. The directory is
// owned by an external subsystem; the engine only consumes it.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	GetActiveByCompanyID(ctx context.Context, companyID string) ([]Employee, error)
}

// CompensationRepository reads effective-dated compensation profiles.
type CompensationRepository interface {
	// GetActiveProfile returns the profile whose effective range contains
	// asOf, or ErrNoActiveCompensation.
	GetActiveProfile(ctx context.Context, employeeID string, asOf time.Time) (CompensationProfile, error)
}

// ScheduleRepository reads work schedules.
type ScheduleRepository interface {
	GetSchedule(ctx context.Context, employeeID string) (WorkSchedule, error)
}

// LoanRepository reads and updates loan ledgers. DecrementBalance runs
// inside the payroll entry transaction so a failed computation never
// leaves a half-applied installment.
type LoanRepository interface {
	GetActiveByEmployee(ctx context.Context, employeeID string) ([]LoanLedger, error)

	// DecrementBalance subtracts amount from the outstanding balance and,
	// when the balance reaches exactly zero, transitions the loan to
	// completed. Returns the updated ledger.
	DecrementBalance(ctx context.Context, loanID string, amount decimal.Decimal) (LoanLedger, error)

	// RestoreBalance adds amount back, reactivating a completed loan if
	// needed. Used when a computed entry is recomputed before approval.
	RestoreBalance(ctx context.Context, loanID string, amount decimal.Decimal) (LoanLedger, error)
}
