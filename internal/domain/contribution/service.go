package contribution

import (
	"context"
	"time"
)

// Resolver selects the table version applicable on a date. Resolution is
// read-only and safe to cache for the duration of a payroll processing run.
type Resolver interface {
	Resolve(ctx context.Context, kind Kind, asOf time.Time) (BracketTable, error)
	ResolveTax(ctx context.Context, frequency PayFrequency, asOf time.Time) (TaxTable, error)
}

// AdminService is the table administration surface: publishing new table
// versions and listing history.
type AdminService interface {
	PublishBracketTable(ctx context.Context, req CreateBracketTableRequest) (BracketTableResponse, error)
	PublishTaxTable(ctx context.Context, req CreateTaxTableRequest) (TaxTableResponse, error)
	ListBracketTables(ctx context.Context, kind Kind) ([]BracketTableResponse, error)
	ListTaxTables(ctx context.Context, frequency PayFrequency) ([]TaxTableResponse, error)
}
