package timesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/validator"
)

type RecordPunchRequest struct {
	EmployeeID string  `json:"employee_id"`
	Time       string  `json:"time"`
	Direction  string  `json:"direction"`
	Source     *string `json:"source"`
}

func (r RecordPunchRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{Field: "employee_id", Message: "is required"})
	}
	if _, ok := validator.IsValidDateTime(r.Time); !ok {
		errs = append(errs, validator.ValidationError{Field: "time", Message: "must be a valid ISO8601 timestamp"})
	}
	if !PunchDirection(r.Direction).Valid() {
		errs = append(errs, validator.ValidationError{Field: "direction", Message: "must be in or out"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type PunchResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Time       string  `json:"time"`
	Direction  string  `json:"direction"`
	Source     *string `json:"source,omitempty"`
}

func ToPunchResponse(p Punch) PunchResponse {
	return PunchResponse{
		ID:         p.ID,
		EmployeeID: p.EmployeeID,
		Time:       p.Time.Format(time.RFC3339),
		Direction:  string(p.Direction),
		Source:     p.Source,
	}
}

type WorkDayResponse struct {
	Date           string          `json:"date"`
	Class          string          `json:"class"`
	HolidayType    *string         `json:"holiday_type,omitempty"`
	RestDay        bool            `json:"rest_day"`
	ScheduledHours decimal.Decimal `json:"scheduled_hours"`
	WorkedHours    decimal.Decimal `json:"worked_hours"`
	RegularOTHours decimal.Decimal `json:"regular_ot_hours"`
	RestDayOTHours decimal.Decimal `json:"rest_day_ot_hours"`
	HolidayOTHours decimal.Decimal `json:"holiday_ot_hours"`
	NightHours     decimal.Decimal `json:"night_hours"`
	NeedsReview    bool            `json:"needs_review"`
}

type PeriodSummaryResponse struct {
	EmployeeID      string            `json:"employee_id"`
	From            string            `json:"from"`
	To              string            `json:"to"`
	WorkedHours     decimal.Decimal   `json:"worked_hours"`
	RegularOTHours  decimal.Decimal   `json:"regular_ot_hours"`
	RestDayOTHours  decimal.Decimal   `json:"rest_day_ot_hours"`
	HolidayOTHours  decimal.Decimal   `json:"holiday_ot_hours"`
	NightHours      decimal.Decimal   `json:"night_hours"`
	DaysPresent     int               `json:"days_present"`
	DaysAbsent      int               `json:"days_absent"`
	DaysNeedsReview int               `json:"days_needs_review"`
	Days            []WorkDayResponse `json:"days"`
}

func ToPeriodSummaryResponse(s PeriodSummary) PeriodSummaryResponse {
	days := make([]WorkDayResponse, 0, len(s.Days))
	for _, d := range s.Days {
		var holidayType *string
		if d.HolidayType != nil {
			str := string(*d.HolidayType)
			holidayType = &str
		}
		days = append(days, WorkDayResponse{
			Date:           d.Date.Format("2006-01-02"),
			Class:          string(d.Class),
			HolidayType:    holidayType,
			RestDay:        d.RestDay,
			ScheduledHours: d.ScheduledHours,
			WorkedHours:    d.WorkedHours,
			RegularOTHours: d.RegularOTHours,
			RestDayOTHours: d.RestDayOTHours,
			HolidayOTHours: d.HolidayOTHours,
			NightHours:     d.NightHours,
			NeedsReview:    d.NeedsReview,
		})
	}
	return PeriodSummaryResponse{
		EmployeeID:      s.EmployeeID,
		From:            s.From.Format("2006-01-02"),
		To:              s.To.Format("2006-01-02"),
		WorkedHours:     s.WorkedHours,
		RegularOTHours:  s.RegularOTHours,
		RestDayOTHours:  s.RestDayOTHours,
		HolidayOTHours:  s.HolidayOTHours,
		NightHours:      s.NightHours,
		DaysPresent:     s.DaysPresent,
		DaysAbsent:      s.DaysAbsent,
		DaysNeedsReview: s.DaysNeedsReview,
		Days:            days,
	}
}

// DateRange is a validated inclusive date range.
type DateRange struct {
	From time.Time
	To   time.Time
}

func NewDateRange(from, to string) (DateRange, error) {
	var errs validator.ValidationErrors
	fromDate, okFrom := validator.IsValidDate(from)
	if !okFrom {
		errs = append(errs, validator.ValidationError{Field: "from", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	toDate, okTo := validator.IsValidDate(to)
	if !okTo {
		errs = append(errs, validator.ValidationError{Field: "to", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if len(errs) > 0 {
		return DateRange{}, errs
	}
	if toDate.Before(fromDate) {
		return DateRange{}, ErrInvalidDateRange
	}
	return DateRange{From: fromDate, To: toDate}, nil
}
