package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/validator"
)

type CreatePeriodRequest struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	CutoffDate string `json:"cutoff_date"`
	PayDate    string `json:"pay_date"`
	Cycle      string `json:"cycle"`
}

func (r CreatePeriodRequest) Validate() error {
	var errs validator.ValidationErrors
	start, okStart := validator.IsValidDate(r.StartDate)
	if !okStart {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	end, okEnd := validator.IsValidDate(r.EndDate)
	if !okEnd {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if okStart && okEnd && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}
	if _, ok := validator.IsValidDate(r.CutoffDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "cutoff_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if r.Cycle != "" && !CycleType(r.Cycle).Valid() {
		errs = append(errs, validator.ValidationError{Field: "cycle", Message: "must be one of regular, supplemental, thirteenth_month, final_pay"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type TransitionRequest struct {
	Target string `json:"target"`
}

type PeriodFilter struct {
	Status *PeriodStatus
	Cycle  *CycleType
	Page   int
	Limit  int
}

type EntryFilter struct {
	Status *EntryStatus
	Page   int
	Limit  int
}

type PeriodResponse struct {
	ID         string `json:"id"`
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	CutoffDate string `json:"cutoff_date"`
	PayDate    string `json:"pay_date"`
	Cycle      string `json:"cycle"`
	Status     string `json:"status"`
	CreatedAt  string `json:"created_at"`
}

func ToPeriodResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:         p.ID,
		StartDate:  p.StartDate.Format("2006-01-02"),
		EndDate:    p.EndDate.Format("2006-01-02"),
		CutoffDate: p.CutoffDate.Format("2006-01-02"),
		PayDate:    p.PayDate.Format("2006-01-02"),
		Cycle:      string(p.Cycle),
		Status:     string(p.Status),
		CreatedAt:  p.CreatedAt.Format(time.RFC3339),
	}
}

type EarningsResponse struct {
	Basic             decimal.Decimal `json:"basic"`
	Overtime          decimal.Decimal `json:"overtime"`
	NightDiff         decimal.Decimal `json:"night_diff"`
	Holiday           decimal.Decimal `json:"holiday"`
	Allowances        decimal.Decimal `json:"allowances"`
	Bonuses           decimal.Decimal `json:"bonuses"`
	Adjustments       decimal.Decimal `json:"adjustments"`
	Gross             decimal.Decimal `json:"gross"`
	ClampedComponents []string        `json:"clamped_components,omitempty"`
}

type DeductionsResponse struct {
	SSSEmployee        decimal.Decimal `json:"sss_employee"`
	SSSEmployer        decimal.Decimal `json:"sss_employer"`
	PhilHealthEmployee decimal.Decimal `json:"philhealth_employee"`
	PhilHealthEmployer decimal.Decimal `json:"philhealth_employer"`
	PagIbigEmployee    decimal.Decimal `json:"pagibig_employee"`
	PagIbigEmployer    decimal.Decimal `json:"pagibig_employer"`
	WithholdingTax     decimal.Decimal `json:"withholding_tax"`
	Loans              decimal.Decimal `json:"loans"`
	Other              decimal.Decimal `json:"other"`
	TotalEmployee      decimal.Decimal `json:"total_employee"`
}

type EntryResponse struct {
	ID         string             `json:"id"`
	PeriodID   string             `json:"period_id"`
	EmployeeID string             `json:"employee_id"`
	Earnings   EarningsResponse   `json:"earnings"`
	Deductions DeductionsResponse `json:"deductions"`
	GrossPay   decimal.Decimal    `json:"gross_pay"`
	NetPay     decimal.Decimal    `json:"net_pay"`
	Status     string             `json:"status"`
	Warnings   []string           `json:"warnings,omitempty"`
	FatalError *string            `json:"fatal_error,omitempty"`
	ComputedAt *string            `json:"computed_at,omitempty"`
}

func ToEntryResponse(e PayrollEntry) EntryResponse {
	var computedAt *string
	if e.ComputedAt != nil {
		str := e.ComputedAt.Format(time.RFC3339)
		computedAt = &str
	}
	return EntryResponse{
		ID:         e.ID,
		PeriodID:   e.PeriodID,
		EmployeeID: e.EmployeeID,
		Earnings: EarningsResponse{
			Basic:             e.Earnings.Basic,
			Overtime:          e.Earnings.Overtime,
			NightDiff:         e.Earnings.NightDiff,
			Holiday:           e.Earnings.Holiday,
			Allowances:        e.Earnings.Allowances,
			Bonuses:           e.Earnings.Bonuses,
			Adjustments:       e.Earnings.Adjustments,
			Gross:             e.Earnings.Gross,
			ClampedComponents: e.Earnings.ClampedComponents,
		},
		Deductions: DeductionsResponse{
			SSSEmployee:        e.Deductions.SSSEmployee,
			SSSEmployer:        e.Deductions.SSSEmployer,
			PhilHealthEmployee: e.Deductions.PhilHealthEmployee,
			PhilHealthEmployer: e.Deductions.PhilHealthEmployer,
			PagIbigEmployee:    e.Deductions.PagIbigEmployee,
			PagIbigEmployer:    e.Deductions.PagIbigEmployer,
			WithholdingTax:     e.Deductions.WithholdingTax,
			Loans:              e.Deductions.Loans,
			Other:              e.Deductions.Other,
			TotalEmployee:      e.Deductions.TotalEmployee,
		},
		GrossPay:   e.GrossPay,
		NetPay:     e.NetPay,
		Status:     string(e.Status),
		Warnings:   e.Warnings,
		FatalError: e.FatalError,
		ComputedAt: computedAt,
	}
}

type ListPeriodsResponse struct {
	Data       []PeriodResponse `json:"data"`
	TotalCount int64            `json:"total_count"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
}

type ListEntriesResponse struct {
	Data       []EntryResponse `json:"data"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
}

type ProcessingResultResponse struct {
	PeriodID string            `json:"period_id"`
	Computed int               `json:"computed"`
	Failed   int               `json:"failed"`
	Skipped  int               `json:"skipped"`
	Failures []FailureResponse `json:"failures,omitempty"`
}

type FailureResponse struct {
	EmployeeID string `json:"employee_id"`
	Reason     string `json:"reason"`
}

func ToProcessingResultResponse(r PeriodProcessingResult) ProcessingResultResponse {
	failures := make([]FailureResponse, 0, len(r.Failures))
	for _, f := range r.Failures {
		failures = append(failures, FailureResponse{EmployeeID: f.EmployeeID, Reason: f.Reason})
	}
	return ProcessingResultResponse{
		PeriodID: r.PeriodID,
		Computed: r.Computed,
		Failed:   r.Failed,
		Skipped:  r.Skipped,
		Failures: failures,
	}
}

type UpdateSettingsRequest struct {
	OvertimeRegularRate   *decimal.Decimal `json:"overtime_regular_rate"`
	OvertimeRestDayRate   *decimal.Decimal `json:"overtime_rest_day_rate"`
	OvertimeHolidayRate   *decimal.Decimal `json:"overtime_holiday_rate"`
	RegularHolidayRate    *decimal.Decimal `json:"regular_holiday_rate"`
	SpecialHolidayRate    *decimal.Decimal `json:"special_holiday_rate"`
	SpecialWorkingRate    *decimal.Decimal `json:"special_working_rate"`
	DoubleHolidayRate     *decimal.Decimal `json:"double_holiday_rate"`
	RestDayPremiumRate    *decimal.Decimal `json:"rest_day_premium_rate"`
	DoubleHolidayRestRate *decimal.Decimal `json:"double_holiday_rest_rate"`
	NightDiffRate         *decimal.Decimal `json:"night_diff_rate"`
	NightWindowStart      *string          `json:"night_window_start"`
	NightWindowEnd        *string          `json:"night_window_end"`
}

func (r UpdateSettingsRequest) Validate() error {
	var errs validator.ValidationErrors
	for field, rate := range map[string]*decimal.Decimal{
		"overtime_regular_rate":    r.OvertimeRegularRate,
		"overtime_rest_day_rate":   r.OvertimeRestDayRate,
		"overtime_holiday_rate":    r.OvertimeHolidayRate,
		"regular_holiday_rate":     r.RegularHolidayRate,
		"special_holiday_rate":     r.SpecialHolidayRate,
		"special_working_rate":     r.SpecialWorkingRate,
		"double_holiday_rate":      r.DoubleHolidayRate,
		"rest_day_premium_rate":    r.RestDayPremiumRate,
		"double_holiday_rest_rate": r.DoubleHolidayRestRate,
		"night_diff_rate":          r.NightDiffRate,
	} {
		if rate != nil && rate.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: field, Message: "must not be negative"})
		}
	}
	if r.NightWindowStart != nil && !validator.IsValidClock(*r.NightWindowStart) {
		errs = append(errs, validator.ValidationError{Field: "night_window_start", Message: "must be HH:MM"})
	}
	if r.NightWindowEnd != nil && !validator.IsValidClock(*r.NightWindowEnd) {
		errs = append(errs, validator.ValidationError{Field: "night_window_end", Message: "must be HH:MM"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

type SettingsResponse struct {
	CompanyID             string          `json:"company_id"`
	OvertimeRegularRate   decimal.Decimal `json:"overtime_regular_rate"`
	OvertimeRestDayRate   decimal.Decimal `json:"overtime_rest_day_rate"`
	OvertimeHolidayRate   decimal.Decimal `json:"overtime_holiday_rate"`
	RegularHolidayRate    decimal.Decimal `json:"regular_holiday_rate"`
	SpecialHolidayRate    decimal.Decimal `json:"special_holiday_rate"`
	SpecialWorkingRate    decimal.Decimal `json:"special_working_rate"`
	DoubleHolidayRate     decimal.Decimal `json:"double_holiday_rate"`
	RestDayPremiumRate    decimal.Decimal `json:"rest_day_premium_rate"`
	DoubleHolidayRestRate decimal.Decimal `json:"double_holiday_rest_rate"`
	NightDiffRate         decimal.Decimal `json:"night_diff_rate"`
	NightWindowStart      string          `json:"night_window_start"`
	NightWindowEnd        string          `json:"night_window_end"`
}

func ToSettingsResponse(s Settings) SettingsResponse {
	return SettingsResponse{
		CompanyID:             s.CompanyID,
		OvertimeRegularRate:   s.OvertimeRegularRate,
		OvertimeRestDayRate:   s.OvertimeRestDayRate,
		OvertimeHolidayRate:   s.OvertimeHolidayRate,
		RegularHolidayRate:    s.RegularHolidayRate,
		SpecialHolidayRate:    s.SpecialHolidayRate,
		SpecialWorkingRate:    s.SpecialWorkingRate,
		DoubleHolidayRate:     s.DoubleHolidayRate,
		RestDayPremiumRate:    s.RestDayPremiumRate,
		DoubleHolidayRestRate: s.DoubleHolidayRestRate,
		NightDiffRate:         s.NightDiffRate,
		NightWindowStart:      s.NightWindowStart,
		NightWindowEnd:        s.NightWindowEnd,
	}
}
