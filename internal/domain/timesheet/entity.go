package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
)

// PunchDirection enum
type PunchDirection string

const (
	PunchIn  PunchDirection = "in"
	PunchOut PunchDirection = "out"
)

func (d PunchDirection) Valid() bool {
	return d == PunchIn || d == PunchOut
}

// Punch is one raw clock event from the attendance subsystem.
type Punch struct {
	ID         string
	EmployeeID string
	CompanyID  string
	Time       time.Time
	Direction  PunchDirection
	Source     *string
	CreatedAt  time.Time
}

// DayClass enum - how a calendar day counted for one employee
type DayClass string

const (
	DayPresent    DayClass = "present"
	DayAbsent     DayClass = "absent"
	DayHoliday    DayClass = "holiday"
	DayRestDay    DayClass = "rest_day"
	DayNoSchedule DayClass = "no_schedule"
)

// OvertimeType enum - overtime hours are split by type because each
// carries a different pay multiplier.
type OvertimeType string

const (
	OvertimeRegular OvertimeType = "regular"
	OvertimeRestDay OvertimeType = "rest_day"
	OvertimeHoliday OvertimeType = "holiday"
)

// WorkDay is the aggregated daily time record (DTR) for one employee on
// one calendar date. Derived from punches; immutable once the payroll
// entry referencing it has moved past its editable states.
type WorkDay struct {
	ID             string
	EmployeeID     string
	CompanyID      string
	Date           time.Time
	Class          DayClass
	HolidayType    *holiday.Type
	RestDay        bool
	ScheduledHours decimal.Decimal
	WorkedHours    decimal.Decimal
	RegularOTHours decimal.Decimal
	RestDayOTHours decimal.Decimal
	HolidayOTHours decimal.Decimal
	NightHours     decimal.Decimal
	NeedsReview    bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// OvertimeHours returns the hours credited for one overtime type.
func (d WorkDay) OvertimeHours(t OvertimeType) decimal.Decimal {
	switch t {
	case OvertimeRegular:
		return d.RegularOTHours
	case OvertimeRestDay:
		return d.RestDayOTHours
	case OvertimeHoliday:
		return d.HolidayOTHours
	}
	return decimal.Zero
}

// PeriodSummary is the roll-up of an employee's work days over a date
// range, the aggregator's output and the earnings calculator's input.
type PeriodSummary struct {
	EmployeeID      string
	From            time.Time
	To              time.Time
	Days            []WorkDay
	WorkedHours     decimal.Decimal
	RegularOTHours  decimal.Decimal
	RestDayOTHours  decimal.Decimal
	HolidayOTHours  decimal.Decimal
	NightHours      decimal.Decimal
	DaysPresent     int
	DaysAbsent      int
	DaysNeedsReview int
}

// Complete reports whether every day aggregated cleanly. Incomplete
// summaries are returned as-is; the caller decides whether partial data
// blocks payroll computation.
func (s PeriodSummary) Complete() bool {
	return s.DaysNeedsReview == 0
}

// Summarize rolls per-day records up into a PeriodSummary.
func Summarize(employeeID string, from, to time.Time, days []WorkDay) PeriodSummary {
	s := PeriodSummary{EmployeeID: employeeID, From: from, To: to, Days: days}
	for _, d := range days {
		s.WorkedHours = s.WorkedHours.Add(d.WorkedHours)
		s.RegularOTHours = s.RegularOTHours.Add(d.RegularOTHours)
		s.RestDayOTHours = s.RestDayOTHours.Add(d.RestDayOTHours)
		s.HolidayOTHours = s.HolidayOTHours.Add(d.HolidayOTHours)
		s.NightHours = s.NightHours.Add(d.NightHours)
		switch d.Class {
		case DayPresent:
			s.DaysPresent++
		case DayAbsent:
			s.DaysAbsent++
		}
		if d.NeedsReview {
			s.DaysNeedsReview++
		}
	}
	return s
}
