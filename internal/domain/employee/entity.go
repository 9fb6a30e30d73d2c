package employee

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
)

type Employee struct {
	ID           string
	CompanyID    string
	Code         string
	FirstName    string
	LastName     string
	WorkLocation *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// RateUnit enum - the unit the base rate is quoted in
type RateUnit string

const (
	RateUnitHourly  RateUnit = "hourly"
	RateUnitDaily   RateUnit = "daily"
	RateUnitMonthly RateUnit = "monthly"
)

// CompensationProfile is the effective-dated pay configuration of one
// employee. The engine reads it, never writes it.
type CompensationProfile struct {
	ID            string
	EmployeeID    string
	BaseRate      decimal.Decimal
	RateUnit      RateUnit
	PayFrequency  contribution.PayFrequency
	HoursPerDay   decimal.Decimal
	DaysPerMonth  decimal.Decimal
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Valid reports whether the divisors the rate normalizations depend on
// are usable. The profile row is owned externally, so a zero or negative
// value must surface as a per-employee failure, never a panic.
func (p CompensationProfile) Valid() bool {
	return p.HoursPerDay.GreaterThan(decimal.Zero) && p.DaysPerMonth.GreaterThan(decimal.Zero)
}

// HourlyRate normalizes the base rate to an hourly figure. Returns zero
// when the profile divisors are misconfigured.
func (p CompensationProfile) HourlyRate() decimal.Decimal {
	if !p.Valid() {
		return decimal.Zero
	}
	switch p.RateUnit {
	case RateUnitHourly:
		return p.BaseRate
	case RateUnitDaily:
		return p.BaseRate.Div(p.HoursPerDay)
	case RateUnitMonthly:
		return p.BaseRate.Div(p.DaysPerMonth).Div(p.HoursPerDay)
	}
	return decimal.Zero
}

// DailyRate normalizes the base rate to a daily figure. Returns zero
// when the profile divisors are misconfigured.
func (p CompensationProfile) DailyRate() decimal.Decimal {
	if !p.Valid() {
		return decimal.Zero
	}
	switch p.RateUnit {
	case RateUnitHourly:
		return p.BaseRate.Mul(p.HoursPerDay)
	case RateUnitDaily:
		return p.BaseRate
	case RateUnitMonthly:
		return p.BaseRate.Div(p.DaysPerMonth)
	}
	return decimal.Zero
}

// LoanStatus enum
type LoanStatus string

const (
	LoanStatusActive    LoanStatus = "active"
	LoanStatusCompleted LoanStatus = "completed"
	LoanStatusSuspended LoanStatus = "suspended"
)

// LoanLedger is a balance-tracked deduction: an outstanding principal
// decremented by one installment per payroll period until zero.
type LoanLedger struct {
	ID                 string
	EmployeeID         string
	CompanyID          string
	LoanType           string
	Principal          decimal.Decimal
	OutstandingBalance decimal.Decimal
	InstallmentAmount  decimal.Decimal
	Status             LoanStatus
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// DaySchedule is the planned shift for one weekday. Start and End are
// wall-clock "HH:MM"; End earlier than Start means the shift crosses
// midnight.
type DaySchedule struct {
	Start        string
	End          string
	BreakMinutes int
	RestDay      bool
}

// ScheduledHours is the shift length net of break.
func (d DaySchedule) ScheduledHours() decimal.Decimal {
	if d.RestDay || d.Start == "" || d.End == "" {
		return decimal.Zero
	}
	start, end := parseClockMinutes(d.Start), parseClockMinutes(d.End)
	if end <= start {
		end += 24 * 60
	}
	mins := end - start - d.BreakMinutes
	if mins < 0 {
		mins = 0
	}
	return decimal.NewFromInt(int64(mins)).Div(decimal.NewFromInt(60))
}

func parseClockMinutes(clock string) int {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0
	}
	return t.Hour()*60 + t.Minute()
}

// WorkSchedule maps each weekday to its planned shift. A weekday missing
// from the map is an unscheduled day.
type WorkSchedule struct {
	EmployeeID string
	Days       map[time.Weekday]DaySchedule
}

func (s WorkSchedule) For(date time.Time) (DaySchedule, bool) {
	d, ok := s.Days[date.Weekday()]
	return d, ok
}
