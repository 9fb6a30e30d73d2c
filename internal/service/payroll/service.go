package payroll

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"golang.org/x/sync/errgroup"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

// TimeAggregator is the slice of the timesheet service the engine
// consumes: aggregation for an already-resolved employee, with no claims
// in the context.
type TimeAggregator interface {
	AggregateForEngine(ctx context.Context, emp employee.Employee, dateRange timesheet.DateRange) (timesheet.PeriodSummary, error)
}

const defaultWorkerLimit = 4

type PayrollServiceImpl struct {
	tx               database.TxRunner
	periodRepo       payroll.PeriodRepository
	entryRepo        payroll.EntryRepository
	adjustmentRepo   payroll.AdjustmentRepository
	settingsRepo     payroll.SettingsRepository
	employeeRepo     employee.EmployeeRepository
	compensationRepo employee.CompensationRepository
	loanRepo         employee.LoanRepository
	resolver         contribution.Resolver
	aggregator       TimeAggregator
	workerLimit      int

	// locks serializes status transitions and processing per period, so
	// two concurrent runs can never double-apply recurring adjustments or
	// double-decrement loan balances.
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewPayrollService(
	tx database.TxRunner,
	periodRepo payroll.PeriodRepository,
	entryRepo payroll.EntryRepository,
	adjustmentRepo payroll.AdjustmentRepository,
	settingsRepo payroll.SettingsRepository,
	employeeRepo employee.EmployeeRepository,
	compensationRepo employee.CompensationRepository,
	loanRepo employee.LoanRepository,
	resolver contribution.Resolver,
	aggregator TimeAggregator,
	workerLimit int,
) payroll.PayrollService {
	if workerLimit <= 0 {
		workerLimit = defaultWorkerLimit
	}
	return &PayrollServiceImpl{
		tx:               tx,
		periodRepo:       periodRepo,
		entryRepo:        entryRepo,
		adjustmentRepo:   adjustmentRepo,
		settingsRepo:     settingsRepo,
		employeeRepo:     employeeRepo,
		compensationRepo: compensationRepo,
		loanRepo:         loanRepo,
		resolver:         resolver,
		aggregator:       aggregator,
		workerLimit:      workerLimit,
		locks:            make(map[string]*sync.Mutex),
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

func (s *PayrollServiceImpl) periodLock(periodID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[periodID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[periodID] = lock
	}
	return lock
}

// settings loads the tenant policy, falling back to the statutory
// defaults when the tenant has never customized anything.
func (s *PayrollServiceImpl) settings(ctx context.Context, companyID string) payroll.Settings {
	settings, err := s.settingsRepo.Get(ctx, companyID)
	if err != nil {
		return payroll.DefaultSettings(companyID)
	}
	return settings
}

// ===== Periods =====

func (s *PayrollServiceImpl) CreatePeriod(ctx context.Context, req payroll.CreatePeriodRequest) (payroll.PeriodResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.PeriodResponse{}, err
	}
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	cutoff, _ := time.Parse("2006-01-02", req.CutoffDate)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)
	cycle := payroll.CycleType(req.Cycle)
	if cycle == "" {
		cycle = payroll.CycleRegular
	}

	overlaps, err := s.periodRepo.HasOverlap(ctx, companyID, cycle, start, end)
	if err != nil {
		return payroll.PeriodResponse{}, fmt.Errorf("check period overlap: %w", err)
	}
	if overlaps {
		return payroll.PeriodResponse{}, payroll.ErrPeriodOverlaps
	}

	period, err := s.periodRepo.Create(ctx, payroll.PayrollPeriod{
		CompanyID:  companyID,
		StartDate:  start,
		EndDate:    end,
		CutoffDate: cutoff,
		PayDate:    payDate,
		Cycle:      cycle,
		Status:     payroll.PeriodStatusDraft,
	})
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) GetPeriod(ctx context.Context, id string) (payroll.PeriodResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	period, err := s.periodRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(period), nil
}

func (s *PayrollServiceImpl) ListPeriods(ctx context.Context, filter payroll.PeriodFilter) (payroll.ListPeriodsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.ListPeriodsResponse{}, err
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	periods, total, err := s.periodRepo.List(ctx, companyID, filter)
	if err != nil {
		return payroll.ListPeriodsResponse{}, err
	}
	data := make([]payroll.PeriodResponse, 0, len(periods))
	for _, p := range periods {
		data = append(data, payroll.ToPeriodResponse(p))
	}
	return payroll.ListPeriodsResponse{Data: data, TotalCount: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *PayrollServiceImpl) DeletePeriod(ctx context.Context, id string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}

	lock := s.periodLock(id)
	lock.Lock()
	defer lock.Unlock()

	period, err := s.periodRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return err
	}
	if !period.Status.Deletable() {
		return payroll.ErrPeriodNotDeletable
	}
	return s.periodRepo.Delete(ctx, id, companyID)
}

func (s *PayrollServiceImpl) TransitionPeriod(ctx context.Context, periodID string, target payroll.PeriodStatus) (payroll.PeriodResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}

	lock := s.periodLock(periodID)
	lock.Lock()
	defer lock.Unlock()

	period, err := s.periodRepo.GetByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	if !period.Status.CanTransition(target) {
		return payroll.PeriodResponse{}, fmt.Errorf("period %s to %s: %w", period.Status, target, payroll.ErrInvalidTransition)
	}

	switch target {
	case payroll.PeriodStatusProcessing:
		// Entering processing always runs the batch; the two are one
		// operation so a period can never sit in processing with stale
		// entries.
		updated, _, err := s.process(ctx, period)
		if err != nil {
			return payroll.PeriodResponse{}, err
		}
		return payroll.ToPeriodResponse(updated), nil
	case payroll.PeriodStatusClosed:
		if err := s.checkClosable(ctx, period); err != nil {
			return payroll.PeriodResponse{}, err
		}
	}

	updated, err := s.periodRepo.UpdateStatus(ctx, periodID, companyID, period.Status, target)
	if err != nil {
		return payroll.PeriodResponse{}, err
	}
	return payroll.ToPeriodResponse(updated), nil
}

func (s *PayrollServiceImpl) checkClosable(ctx context.Context, period payroll.PayrollPeriod) error {
	unsettled, err := s.entryRepo.CountUnsettled(ctx, period.ID)
	if err != nil {
		return fmt.Errorf("count unsettled entries: %w", err)
	}
	if unsettled > 0 {
		return payroll.ErrEntriesNotSettled
	}
	fatal, err := s.entryRepo.CountWithFatalErrors(ctx, period.ID)
	if err != nil {
		return fmt.Errorf("count entries with fatal errors: %w", err)
	}
	if fatal > 0 {
		return payroll.ErrEntriesWithFatalErrors
	}
	return nil
}

// ===== Processing =====

func (s *PayrollServiceImpl) ProcessPeriod(ctx context.Context, periodID string) (payroll.ProcessingResultResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.ProcessingResultResponse{}, err
	}

	lock := s.periodLock(periodID)
	lock.Lock()
	defer lock.Unlock()

	period, err := s.periodRepo.GetByID(ctx, periodID, companyID)
	if err != nil {
		return payroll.ProcessingResultResponse{}, err
	}
	switch period.Status {
	case payroll.PeriodStatusOpen:
	case payroll.PeriodStatusProcessing:
		return payroll.ProcessingResultResponse{}, payroll.ErrPeriodBeingProcessed
	default:
		return payroll.ProcessingResultResponse{}, payroll.ErrPeriodNotOpen
	}

	_, result, err := s.process(ctx, period)
	if err != nil {
		return payroll.ProcessingResultResponse{}, err
	}
	return payroll.ToProcessingResultResponse(result), nil
}

// process moves the period into processing and fans the batch out, one
// independent unit of work per active employee. Callers must hold the
// period lock.
func (s *PayrollServiceImpl) process(ctx context.Context, period payroll.PayrollPeriod) (payroll.PayrollPeriod, payroll.PeriodProcessingResult, error) {
	updated, err := s.periodRepo.UpdateStatus(ctx, period.ID, period.CompanyID, period.Status, payroll.PeriodStatusProcessing)
	if err != nil {
		return period, payroll.PeriodProcessingResult{}, err
	}

	settings := s.settings(ctx, period.CompanyID)
	employees, err := s.employeeRepo.GetActiveByCompanyID(ctx, period.CompanyID)
	if err != nil {
		return updated, payroll.PeriodProcessingResult{}, fmt.Errorf("list active employees: %w", err)
	}

	result := payroll.PeriodProcessingResult{PeriodID: period.ID}
	var resultMu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workerLimit)
	for _, emp := range employees {
		g.Go(func() error {
			outcome := s.computeEmployee(gctx, period, emp, settings)

			resultMu.Lock()
			defer resultMu.Unlock()
			switch {
			case outcome.skipped:
				result.Skipped++
			case outcome.err != nil:
				result.Failed++
				result.Failures = append(result.Failures, payroll.EmployeeFailure{
					EmployeeID: emp.ID,
					Reason:     outcome.err.Error(),
				})
			default:
				result.Computed++
			}
			// Per-employee failures are isolated; the batch always runs
			// to completion.
			return nil
		})
	}
	g.Wait()

	slog.Info("payroll period processed",
		"period_id", period.ID, "company_id", period.CompanyID,
		"computed", result.Computed, "failed", result.Failed, "skipped", result.Skipped)
	return updated, result, nil
}

type employeeOutcome struct {
	skipped bool
	err     error
}

// computeEmployee computes or skips one employee's entry. Settled
// entries survive reprocessing untouched; failures are recorded on the
// entry so the period cannot close over them.
func (s *PayrollServiceImpl) computeEmployee(ctx context.Context, period payroll.PayrollPeriod, emp employee.Employee, settings payroll.Settings) employeeOutcome {
	existing, err := s.entryRepo.GetByPeriodAndEmployee(ctx, period.ID, emp.ID)
	switch {
	case err == nil:
		if !existing.Status.Recomputable() {
			return employeeOutcome{skipped: true}
		}
	case errors.Is(err, payroll.ErrEntryNotFound):
	default:
		return employeeOutcome{err: fmt.Errorf("load existing entry: %w", err)}
	}

	if _, err := s.computeEntry(ctx, period, emp, settings, existing.ID); err != nil {
		if setErr := s.entryRepo.SetFatalError(ctx, period.ID, emp.ID, period.CompanyID, err.Error()); setErr != nil {
			slog.Error("failed to record entry computation error",
				"period_id", period.ID, "employee_id", emp.ID, "error", setErr)
		}
		return employeeOutcome{err: err}
	}
	return employeeOutcome{}
}

// computeEntry runs one employee's full computation inside a single
// transaction: reversal of prior applications, earnings, deductions and
// loan decrements commit together or not at all.
func (s *PayrollServiceImpl) computeEntry(ctx context.Context, period payroll.PayrollPeriod, emp employee.Employee, settings payroll.Settings, existingEntryID string) (payroll.PayrollEntry, error) {
	var saved payroll.PayrollEntry
	err := s.tx.WithinTransaction(ctx, func(txCtx context.Context) error {
		// Reverse the previous run first so loan balances and recurrence
		// tracking reflect the pre-computation state.
		if existingEntryID != "" {
			if err := s.reverseApplications(txCtx, existingEntryID); err != nil {
				return err
			}
		}

		built, err := s.buildEntry(txCtx, period, emp, settings)
		if err != nil {
			return err
		}

		saved, err = s.entryRepo.Upsert(txCtx, built.entry)
		if err != nil {
			return fmt.Errorf("persist entry: %w", err)
		}

		for _, charge := range built.charges {
			updated, err := s.loanRepo.DecrementBalance(txCtx, charge.Loan.ID, charge.Amount)
			if err != nil {
				return fmt.Errorf("decrement loan %s: %w", charge.Loan.ID, err)
			}
			balance := updated.OutstandingBalance
			if _, err := s.adjustmentRepo.CreateApplication(txCtx, payroll.AdjustmentApplication{
				PeriodID:   period.ID,
				EntryID:    saved.ID,
				EmployeeID: emp.ID,
				Kind:       payroll.ApplicationLoan,
				RefID:      charge.Loan.ID,
				Amount:     charge.Amount,
				NewBalance: &balance,
			}); err != nil {
				return fmt.Errorf("record loan application: %w", err)
			}
		}
		for _, applied := range built.applied {
			if _, err := s.adjustmentRepo.CreateApplication(txCtx, payroll.AdjustmentApplication{
				PeriodID:   period.ID,
				EntryID:    saved.ID,
				EmployeeID: emp.ID,
				Kind:       payroll.ApplicationAdjustment,
				RefID:      applied.Adjustment.ID,
				Amount:     applied.Amount,
			}); err != nil {
				return fmt.Errorf("record adjustment application: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return payroll.PayrollEntry{}, err
	}
	return saved, nil
}

// reverseApplications undoes the previous computation's side effects:
// loan balances are restored and the application rows flagged as
// superseded. The rows themselves stay, preserving the audit trail.
func (s *PayrollServiceImpl) reverseApplications(ctx context.Context, entryID string) error {
	apps, err := s.adjustmentRepo.ListApplicationsByEntry(ctx, entryID)
	if err != nil {
		return fmt.Errorf("list prior applications: %w", err)
	}
	for _, app := range apps {
		if app.Reversed || app.Kind != payroll.ApplicationLoan {
			continue
		}
		if _, err := s.loanRepo.RestoreBalance(ctx, app.RefID, app.Amount); err != nil {
			return fmt.Errorf("restore loan %s: %w", app.RefID, err)
		}
	}
	if err := s.adjustmentRepo.MarkReversed(ctx, entryID); err != nil {
		return fmt.Errorf("mark applications reversed: %w", err)
	}
	return nil
}

type builtEntry struct {
	entry   payroll.PayrollEntry
	charges []LoanCharge
	applied []AppliedAdjustment
}

func (s *PayrollServiceImpl) buildEntry(ctx context.Context, period payroll.PayrollPeriod, emp employee.Employee, settings payroll.Settings) (builtEntry, error) {
	profile, err := s.compensationRepo.GetActiveProfile(ctx, emp.ID, period.EndDate)
	if err != nil {
		return builtEntry{}, fmt.Errorf("load compensation profile: %w", err)
	}
	if !profile.Valid() {
		return builtEntry{}, fmt.Errorf("profile %s: %w", profile.ID, employee.ErrInvalidCompensation)
	}

	summary, err := s.aggregator.AggregateForEngine(ctx, emp, timesheet.DateRange{From: period.StartDate, To: period.EndDate})
	if err != nil {
		return builtEntry{}, fmt.Errorf("aggregate time: %w", err)
	}
	if !summary.Complete() {
		return builtEntry{}, fmt.Errorf("%d day(s) need review: %w", summary.DaysNeedsReview, timesheet.ErrDataIncomplete)
	}

	adjustments, err := s.adjustmentRepo.GetActiveByEmployee(ctx, emp.ID)
	if err != nil {
		return builtEntry{}, fmt.Errorf("load adjustments: %w", err)
	}
	lastApplied := make(map[string]time.Time, len(adjustments))
	for _, adj := range adjustments {
		last, err := s.adjustmentRepo.GetLastApplication(ctx, adj.ID)
		if err != nil {
			return builtEntry{}, fmt.Errorf("load last application of %s: %w", adj.ID, err)
		}
		if last != nil {
			lastApplied[adj.ID] = *last
		}
	}

	earnings, appliedEarnings := ComputeEarnings(profile, summary, settings,
		dueAdjustments(adjustments, period, lastApplied, payroll.AdjustmentEarning))

	loans, err := s.loanRepo.GetActiveByEmployee(ctx, emp.ID)
	if err != nil {
		return builtEntry{}, fmt.Errorf("load loans: %w", err)
	}
	deductions, charges, appliedDeductions, err := ComputeDeductions(
		ctx, s.resolver, earnings.Gross, profile.PayFrequency, period.EndDate,
		loans, dueAdjustments(adjustments, period, lastApplied, payroll.AdjustmentDeduction))
	if err != nil {
		return builtEntry{}, err
	}

	net := earnings.Gross.Sub(deductions.TotalEmployee)
	var warnings []string
	if len(earnings.ClampedComponents) > 0 {
		warnings = append(warnings, payroll.WarningNegativeClamped)
	}
	if net.IsNegative() {
		warnings = append(warnings, payroll.WarningNegativeNet)
	}

	now := time.Now()
	return builtEntry{
		entry: payroll.PayrollEntry{
			PeriodID:   period.ID,
			EmployeeID: emp.ID,
			CompanyID:  period.CompanyID,
			Earnings:   earnings,
			Deductions: deductions,
			GrossPay:   earnings.Gross,
			NetPay:     net,
			Status:     payroll.EntryStatusComputed,
			Warnings:   warnings,
			ComputedAt: &now,
		},
		charges: charges,
		applied: append(appliedEarnings, appliedDeductions...),
	}, nil
}

// ===== Entries =====

func (s *PayrollServiceImpl) GetEntry(ctx context.Context, id string) (payroll.EntryResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	entry, err := s.entryRepo.GetByID(ctx, id, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	return payroll.ToEntryResponse(entry), nil
}

func (s *PayrollServiceImpl) ListEntries(ctx context.Context, periodID string, filter payroll.EntryFilter) (payroll.ListEntriesResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.ListEntriesResponse{}, err
	}
	if _, err := s.periodRepo.GetByID(ctx, periodID, companyID); err != nil {
		return payroll.ListEntriesResponse{}, err
	}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > 100 {
		filter.Limit = 20
	}

	entries, total, err := s.entryRepo.ListByPeriod(ctx, periodID, companyID, filter)
	if err != nil {
		return payroll.ListEntriesResponse{}, err
	}
	data := make([]payroll.EntryResponse, 0, len(entries))
	for _, e := range entries {
		data = append(data, payroll.ToEntryResponse(e))
	}
	return payroll.ListEntriesResponse{Data: data, TotalCount: total, Page: filter.Page, Limit: filter.Limit}, nil
}

func (s *PayrollServiceImpl) RecomputeEntry(ctx context.Context, entryID string) (payroll.EntryResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	entry, err := s.entryRepo.GetByID(ctx, entryID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	// Serialize against period processing so a batch run and a manual
	// recompute never interleave on the same entry.
	lock := s.periodLock(entry.PeriodID)
	lock.Lock()
	defer lock.Unlock()

	// Re-read under the lock: the entry may have been settled between
	// the first read and lock acquisition.
	entry, err = s.entryRepo.GetByID(ctx, entryID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if !entry.Status.Recomputable() {
		return payroll.EntryResponse{}, payroll.ErrEntryNotRecomputable
	}

	period, err := s.periodRepo.GetByID(ctx, entry.PeriodID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, entry.EmployeeID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}

	recomputed, err := s.computeEntry(ctx, period, emp, s.settings(ctx, companyID), entry.ID)
	if err != nil {
		if setErr := s.entryRepo.SetFatalError(ctx, period.ID, emp.ID, companyID, err.Error()); setErr != nil {
			slog.Error("failed to record entry computation error",
				"entry_id", entry.ID, "error", setErr)
		}
		return payroll.EntryResponse{}, err
	}
	return payroll.ToEntryResponse(recomputed), nil
}

func (s *PayrollServiceImpl) TransitionEntry(ctx context.Context, entryID string, target payroll.EntryStatus) (payroll.EntryResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	entry, err := s.entryRepo.GetByID(ctx, entryID, companyID)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	if !entry.Status.CanTransition(target) {
		return payroll.EntryResponse{}, fmt.Errorf("entry %s to %s: %w", entry.Status, target, payroll.ErrInvalidTransition)
	}

	updated, err := s.entryRepo.UpdateStatus(ctx, entryID, companyID, entry.Status, target)
	if err != nil {
		return payroll.EntryResponse{}, err
	}
	return payroll.ToEntryResponse(updated), nil
}

func (s *PayrollServiceImpl) DeleteEntry(ctx context.Context, entryID string) error {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return err
	}
	entry, err := s.entryRepo.GetByID(ctx, entryID, companyID)
	if err != nil {
		return err
	}
	if !entry.Status.Deletable() {
		return payroll.ErrEntryNotDeletable
	}
	return s.entryRepo.Delete(ctx, entryID, companyID)
}

// ===== Settings =====

func (s *PayrollServiceImpl) GetSettings(ctx context.Context) (payroll.SettingsResponse, error) {
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}
	return payroll.ToSettingsResponse(s.settings(ctx, companyID)), nil
}

func (s *PayrollServiceImpl) UpdateSettings(ctx context.Context, req payroll.UpdateSettingsRequest) (payroll.SettingsResponse, error) {
	if err := req.Validate(); err != nil {
		return payroll.SettingsResponse{}, err
	}
	companyID, err := companyIDFromContext(ctx)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}

	settings := s.settings(ctx, companyID)
	if req.OvertimeRegularRate != nil {
		settings.OvertimeRegularRate = *req.OvertimeRegularRate
	}
	if req.OvertimeRestDayRate != nil {
		settings.OvertimeRestDayRate = *req.OvertimeRestDayRate
	}
	if req.OvertimeHolidayRate != nil {
		settings.OvertimeHolidayRate = *req.OvertimeHolidayRate
	}
	if req.RegularHolidayRate != nil {
		settings.RegularHolidayRate = *req.RegularHolidayRate
	}
	if req.SpecialHolidayRate != nil {
		settings.SpecialHolidayRate = *req.SpecialHolidayRate
	}
	if req.SpecialWorkingRate != nil {
		settings.SpecialWorkingRate = *req.SpecialWorkingRate
	}
	if req.DoubleHolidayRate != nil {
		settings.DoubleHolidayRate = *req.DoubleHolidayRate
	}
	if req.RestDayPremiumRate != nil {
		settings.RestDayPremiumRate = *req.RestDayPremiumRate
	}
	if req.DoubleHolidayRestRate != nil {
		settings.DoubleHolidayRestRate = *req.DoubleHolidayRestRate
	}
	if req.NightDiffRate != nil {
		settings.NightDiffRate = *req.NightDiffRate
	}
	if req.NightWindowStart != nil {
		settings.NightWindowStart = *req.NightWindowStart
	}
	if req.NightWindowEnd != nil {
		settings.NightWindowEnd = *req.NightWindowEnd
	}

	saved, err := s.settingsRepo.Upsert(ctx, settings)
	if err != nil {
		return payroll.SettingsResponse{}, err
	}
	return payroll.ToSettingsResponse(saved), nil
}
