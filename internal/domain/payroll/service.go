package payroll

import "context"

// PayrollService is the engine's orchestration surface.
type PayrollService interface {
	// Periods
	CreatePeriod(ctx context.Context, req CreatePeriodRequest) (PeriodResponse, error)
	GetPeriod(ctx context.Context, id string) (PeriodResponse, error)
	ListPeriods(ctx context.Context, filter PeriodFilter) (ListPeriodsResponse, error)
	DeletePeriod(ctx context.Context, id string) error

	// ProcessPeriod computes one entry per active employee, in parallel
	// under a bounded worker limit. Per-employee failures are isolated
	// into the result instead of aborting the batch.
	ProcessPeriod(ctx context.Context, periodID string) (ProcessingResultResponse, error)

	// TransitionPeriod moves a period through its lifecycle, enforcing
	// the closing preconditions.
	TransitionPeriod(ctx context.Context, periodID string, target PeriodStatus) (PeriodResponse, error)

	// Entries
	GetEntry(ctx context.Context, id string) (EntryResponse, error)
	ListEntries(ctx context.Context, periodID string, filter EntryFilter) (ListEntriesResponse, error)

	// RecomputeEntry re-runs earnings and deductions for one entry,
	// reversing prior loan applications first. Allowed through reviewed.
	RecomputeEntry(ctx context.Context, entryID string) (EntryResponse, error)

	TransitionEntry(ctx context.Context, entryID string, target EntryStatus) (EntryResponse, error)
	DeleteEntry(ctx context.Context, entryID string) error

	// Settings
	GetSettings(ctx context.Context) (SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (SettingsResponse, error)
}
