package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// CycleType enum - what kind of pay run a period represents
type CycleType string

const (
	CycleRegular         CycleType = "regular"
	CycleSupplemental    CycleType = "supplemental"
	CycleThirteenthMonth CycleType = "thirteenth_month"
	CycleFinalPay        CycleType = "final_pay"
)

func (c CycleType) Valid() bool {
	switch c {
	case CycleRegular, CycleSupplemental, CycleThirteenthMonth, CycleFinalPay:
		return true
	}
	return false
}

// PayrollPeriod is a date range owning zero or more entries, moved
// through its lifecycle by the orchestrator.
type PayrollPeriod struct {
	ID         string
	CompanyID  string
	StartDate  time.Time
	EndDate    time.Time
	CutoffDate time.Time
	PayDate    time.Time
	Cycle      CycleType
	Status     PeriodStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// PeriodSpan is the date range of a period, used when only the bounds
// matter.
type PeriodSpan struct {
	Start time.Time
	End   time.Time
}

// Covers reports whether the date falls inside the span, inclusive.
func (s PeriodSpan) Covers(date time.Time) bool {
	return !date.Before(s.Start) && !date.After(s.End)
}

// Warning codes attached to entries. Warnings are audit flags, not
// errors - computation proceeds.
const (
	WarningNegativeClamped = "negative_component_clamped"
	WarningNegativeNet     = "negative_net"
	WarningIncompleteTime  = "incomplete_time_data"
)

// EarningsBreakdown is the gross side of one entry.
type EarningsBreakdown struct {
	Basic       decimal.Decimal
	Overtime    decimal.Decimal
	NightDiff   decimal.Decimal
	Holiday     decimal.Decimal
	Allowances  decimal.Decimal
	Bonuses     decimal.Decimal
	Adjustments decimal.Decimal
	Gross       decimal.Decimal

	// ClampedComponents names components that computed negative and were
	// clamped to zero.
	ClampedComponents []string
}

// DeductionBreakdown is the deduction side of one entry. Employer shares
// are tracked for statutory reporting but never reduce net pay.
type DeductionBreakdown struct {
	SSSEmployee        decimal.Decimal
	SSSEmployer        decimal.Decimal
	PhilHealthEmployee decimal.Decimal
	PhilHealthEmployer decimal.Decimal
	PagIbigEmployee    decimal.Decimal
	PagIbigEmployer    decimal.Decimal
	WithholdingTax     decimal.Decimal
	Loans              decimal.Decimal
	Other              decimal.Decimal
	TotalEmployee      decimal.Decimal
}

// PreTaxContributions is the sum of employee statutory shares, the
// figure subtracted from gross before withholding tax.
func (d DeductionBreakdown) PreTaxContributions() decimal.Decimal {
	return d.SSSEmployee.Add(d.PhilHealthEmployee).Add(d.PagIbigEmployee)
}

// PayrollEntry is one employee within one period. Net pay is always
// gross minus total employee deductions, recomputed atomically, never
// hand-edited.
type PayrollEntry struct {
	ID         string
	PeriodID   string
	EmployeeID string
	CompanyID  string
	Earnings   EarningsBreakdown
	Deductions DeductionBreakdown
	GrossPay   decimal.Decimal
	NetPay     decimal.Decimal
	Status     EntryStatus
	Warnings   []string

	// FatalError records why the last computation attempt failed
	// (missing table, incomplete time data). A period cannot close
	// while any entry carries one.
	FatalError *string

	ComputedAt *time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AdjustmentClass enum - which side of the computation an adjustment
// lands on
type AdjustmentClass string

const (
	AdjustmentEarning   AdjustmentClass = "earning"
	AdjustmentDeduction AdjustmentClass = "deduction"
)

// Recurrence enum
type Recurrence string

const (
	RecurrenceOneTime     Recurrence = "one_time"
	RecurrenceEveryPeriod Recurrence = "every_period"
	RecurrenceMonthly     Recurrence = "monthly"
	RecurrenceQuarterly   Recurrence = "quarterly"
)

func (r Recurrence) Valid() bool {
	switch r {
	case RecurrenceOneTime, RecurrenceEveryPeriod, RecurrenceMonthly, RecurrenceQuarterly:
		return true
	}
	return false
}

// AdjustmentKind enum - finer-grained bucket used to place the amount in
// the breakdown
type AdjustmentKind string

const (
	KindAllowance      AdjustmentKind = "allowance"
	KindBonus          AdjustmentKind = "bonus"
	KindOtherEarning   AdjustmentKind = "other_earning"
	KindTardiness      AdjustmentKind = "tardiness"
	KindAbsence        AdjustmentKind = "absence"
	KindUnpaidLeave    AdjustmentKind = "unpaid_leave"
	KindOtherDeduction AdjustmentKind = "other_deduction"
)

// Class maps an adjustment kind onto the earning/deduction split.
func (k AdjustmentKind) Class() AdjustmentClass {
	switch k {
	case KindAllowance, KindBonus, KindOtherEarning:
		return AdjustmentEarning
	}
	return AdjustmentDeduction
}

// Adjustment is a recurring or one-time pay adjustment definition owned
// by HR; the engine reads approved, active definitions only.
type Adjustment struct {
	ID                  string
	CompanyID           string
	EmployeeID          string
	Name                string
	Kind                AdjustmentKind
	Amount              decimal.Decimal
	Recurrence          Recurrence
	ApplyOnSupplemental bool
	Active              bool
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// ApplicationKind enum - what an application row points at
type ApplicationKind string

const (
	ApplicationAdjustment ApplicationKind = "adjustment"
	ApplicationLoan       ApplicationKind = "loan"
)

// AdjustmentApplication links an adjustment or loan to the period it was
// applied in. Rows are insert-only: corrections are new applications, so
// the audit trail is never rewritten.
type AdjustmentApplication struct {
	ID         string
	PeriodID   string
	EntryID    string
	EmployeeID string
	Kind       ApplicationKind
	RefID      string
	Amount     decimal.Decimal
	NewBalance *decimal.Decimal
	Reversed   bool
	CreatedAt  time.Time
}

// PeriodProcessingResult is the partial-success summary of one batch
// run: per-employee failures are isolated and collected, never allowed
// to abort the rest of the batch.
type PeriodProcessingResult struct {
	PeriodID string
	Computed int
	Failed   int
	Skipped  int
	Failures []EmployeeFailure
}

type EmployeeFailure struct {
	EmployeeID string
	Reason     string
}
