package contribution

import (
	"context"
	"time"
)

// TableRepository provides access to the versioned statutory tables.
// Tables are national schedules, not tenant data, so there is no company
// scoping here.
type TableRepository interface {
	// GetBracketTable returns the table version whose effective range
	// contains asOf, or ErrNoApplicableTable.
	GetBracketTable(ctx context.Context, kind Kind, asOf time.Time) (BracketTable, error)

	// GetTaxTable returns the withholding table for the frequency whose
	// effective range contains asOf, or ErrNoApplicableTable.
	GetTaxTable(ctx context.Context, frequency PayFrequency, asOf time.Time) (TaxTable, error)

	CreateBracketTable(ctx context.Context, table BracketTable) (BracketTable, error)
	CreateTaxTable(ctx context.Context, table TaxTable) (TaxTable, error)

	ListBracketTables(ctx context.Context, kind Kind) ([]BracketTable, error)
	ListTaxTables(ctx context.Context, frequency PayFrequency) ([]TaxTable, error)
}
