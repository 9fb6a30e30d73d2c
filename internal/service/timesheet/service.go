package timesheet

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
)

// EntryLocks is the slice of the payroll entry store the aggregator
// consults before rewriting work days: once an entry over a range is
// settled, its days are frozen.
type EntryLocks interface {
	ListSettledPeriodSpans(ctx context.Context, employeeID string, from, to time.Time) ([]payroll.PeriodSpan, error)
}

type TimesheetServiceImpl struct {
	punchRepo    timesheet.PunchRepository
	workDayRepo  timesheet.WorkDayRepository
	employeeRepo employee.EmployeeRepository
	scheduleRepo employee.ScheduleRepository
	holidayRepo  holiday.HolidayRepository
	settingsRepo payroll.SettingsRepository
	entryLocks   EntryLocks
	location     *time.Location
}

func NewTimesheetService(
	punchRepo timesheet.PunchRepository,
	workDayRepo timesheet.WorkDayRepository,
	employeeRepo employee.EmployeeRepository,
	scheduleRepo employee.ScheduleRepository,
	holidayRepo holiday.HolidayRepository,
	settingsRepo payroll.SettingsRepository,
	entryLocks EntryLocks,
	location *time.Location,
) timesheet.TimesheetService {
	return &TimesheetServiceImpl{
		punchRepo:    punchRepo,
		workDayRepo:  workDayRepo,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		holidayRepo:  holidayRepo,
		settingsRepo: settingsRepo,
		entryLocks:   entryLocks,
		location:     location,
	}
}

func companyIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	companyID, ok := claims["company_id"].(string)
	if !ok || companyID == "" {
		return "", fmt.Errorf("company_id claim is missing or invalid")
	}
	return companyID, nil
}

func (s *TimesheetServiceImpl) RecordPunch(ctx context.Context, req timesheet.RecordPunchRequest) (timesheet.Punch, error) {
	if err := req.Validate(); err != nil {
		return timesheet.Punch{}, err
	}

	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.Punch{}, err
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID, companyID); err != nil {
		return timesheet.Punch{}, err
	}

	when, _ := time.Parse(time.RFC3339, req.Time)
	if when.After(time.Now().Add(time.Minute)) {
		return timesheet.Punch{}, timesheet.ErrPunchInFuture
	}

	return s.punchRepo.Create(ctx, timesheet.Punch{
		EmployeeID: req.EmployeeID,
		CompanyID:  companyID,
		Time:       when,
		Direction:  timesheet.PunchDirection(req.Direction),
		Source:     req.Source,
	})
}

func (s *TimesheetServiceImpl) Aggregate(ctx context.Context, employeeID string, dateRange timesheet.DateRange) (timesheet.PeriodSummary, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	emp, err := s.employeeRepo.GetByID(ctx, employeeID, companyID)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	return s.aggregate(ctx, emp, dateRange)
}

// aggregate is the tenant-resolved core shared by the HTTP path and the
// payroll engine, which has already loaded the employee.
func (s *TimesheetServiceImpl) aggregate(ctx context.Context, emp employee.Employee, dateRange timesheet.DateRange) (timesheet.PeriodSummary, error) {
	schedule, err := s.scheduleRepo.GetSchedule(ctx, emp.ID)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}

	holidays, err := s.holidayRepo.GetRange(ctx, dateRange.From, dateRange.To, emp.WorkLocation)
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}
	cal := holiday.NewCalendar(holidays)

	window := s.nightWindow(ctx, emp.CompanyID)

	// Days under an approved or paid entry are immutable; rewriting them
	// would desync the stored record from the amounts already settled.
	locked, err := s.entryLocks.ListSettledPeriodSpans(ctx, emp.ID, dateRange.From, dateRange.To)
	if err != nil {
		return timesheet.PeriodSummary{}, fmt.Errorf("list settled period spans: %w", err)
	}

	// Fetch one extra day each side so shifts crossing midnight keep
	// their punches on the date they belong to.
	punches, err := s.punchRepo.GetByEmployeeAndRange(ctx, emp.ID,
		dateRange.From.AddDate(0, 0, -1), dateRange.To.AddDate(0, 0, 2))
	if err != nil {
		return timesheet.PeriodSummary{}, err
	}
	byDate := punchesByDate(punches, s.location)

	var days []timesheet.WorkDay
	for date := dateRange.From; !date.After(dateRange.To); date = date.AddDate(0, 0, 1) {
		key := date.Format("2006-01-02")
		if spanCovering(locked, date) {
			return timesheet.PeriodSummary{}, fmt.Errorf("work day %s: %w", key, timesheet.ErrWorkDayLocked)
		}
		day := BuildWorkDay(emp.ID, emp.CompanyID, date, byDate[key], schedule, cal, window)
		saved, err := s.workDayRepo.Upsert(ctx, day)
		if err != nil {
			return timesheet.PeriodSummary{}, fmt.Errorf("persist work day %s: %w", key, err)
		}
		days = append(days, saved)
	}

	return timesheet.Summarize(emp.ID, dateRange.From, dateRange.To, days), nil
}

// AggregateForEngine lets the payroll engine aggregate without a request
// context carrying JWT claims.
func (s *TimesheetServiceImpl) AggregateForEngine(ctx context.Context, emp employee.Employee, dateRange timesheet.DateRange) (timesheet.PeriodSummary, error) {
	return s.aggregate(ctx, emp, dateRange)
}

func (s *TimesheetServiceImpl) MaterializeDay(ctx context.Context, companyID string, date time.Time) error {
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, companyID)
	if err != nil {
		return fmt.Errorf("list active employees: %w", err)
	}

	dateRange := timesheet.DateRange{From: date, To: date}
	var failed int
	for _, emp := range employees {
		if _, err := s.aggregate(ctx, emp, dateRange); err != nil {
			failed++
			slog.Error("work day materialization failed",
				"employee_id", emp.ID, "date", date.Format("2006-01-02"), "error", err)
		}
	}
	slog.Info("work day materialization finished",
		"company_id", companyID, "date", date.Format("2006-01-02"),
		"employees", len(employees), "failed", failed)
	return nil
}

func spanCovering(spans []payroll.PeriodSpan, date time.Time) bool {
	for _, s := range spans {
		if s.Covers(date) {
			return true
		}
	}
	return false
}

func (s *TimesheetServiceImpl) nightWindow(ctx context.Context, companyID string) NightWindow {
	settings, err := s.settingsRepo.Get(ctx, companyID)
	if err != nil {
		defaults := payroll.DefaultSettings(companyID)
		return NightWindow{Start: defaults.NightWindowStart, End: defaults.NightWindowEnd}
	}
	return NightWindow{Start: settings.NightWindowStart, End: settings.NightWindowEnd}
}
