package payroll

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
)

// LoanCharge is one loan installment taken from an entry, carrying the
// balance it leaves behind. Completed charges flip the loan status in
// the same transaction that commits the entry.
type LoanCharge struct {
	Loan       employee.LoanLedger
	Amount     decimal.Decimal
	NewBalance decimal.Decimal
	Completed  bool
}

// ComputeDeductions builds the deduction side of one entry. Statutory
// contributions are looked up on gross, withholding tax on gross minus
// the employee's pre-tax contribution shares. A missing current table is
// fatal for the entry; a loan with nothing left simply deducts nothing.
func ComputeDeductions(
	ctx context.Context,
	resolver contribution.Resolver,
	gross decimal.Decimal,
	frequency contribution.PayFrequency,
	asOf time.Time,
	loans []employee.LoanLedger,
	deductionAdjustments []payroll.Adjustment,
) (payroll.DeductionBreakdown, []LoanCharge, []AppliedAdjustment, error) {
	var d payroll.DeductionBreakdown

	for _, kind := range []contribution.Kind{
		contribution.KindSSS,
		contribution.KindPhilHealth,
		contribution.KindPagIbig,
	} {
		table, err := resolver.Resolve(ctx, kind, asOf)
		if err != nil {
			return d, nil, nil, fmt.Errorf("resolve %s table: %w", kind, err)
		}
		bracket, ok := table.BracketFor(gross)
		if !ok {
			return d, nil, nil, fmt.Errorf("%s income %s: %w", kind, gross, contribution.ErrNoBracketMatched)
		}
		ee := bracket.Employee.For(gross)
		er := bracket.Employer.For(gross)
		switch kind {
		case contribution.KindSSS:
			d.SSSEmployee, d.SSSEmployer = ee, er
		case contribution.KindPhilHealth:
			d.PhilHealthEmployee, d.PhilHealthEmployer = ee, er
		case contribution.KindPagIbig:
			d.PagIbigEmployee, d.PagIbigEmployer = ee, er
		}
	}

	taxTable, err := resolver.ResolveTax(ctx, frequency, asOf)
	if err != nil {
		return d, nil, nil, fmt.Errorf("resolve %s tax table: %w", frequency, err)
	}
	taxable := gross.Sub(d.PreTaxContributions())
	tax, ok := taxTable.TaxFor(taxable)
	if !ok {
		return d, nil, nil, fmt.Errorf("taxable income %s: %w", taxable, contribution.ErrNoBracketMatched)
	}
	d.WithholdingTax = tax

	var charges []LoanCharge
	for _, loan := range loans {
		if loan.Status != employee.LoanStatusActive {
			continue
		}
		if !loan.OutstandingBalance.GreaterThan(decimal.Zero) {
			// Nothing left to collect.
			continue
		}
		amount := loan.InstallmentAmount
		if loan.OutstandingBalance.LessThan(amount) {
			amount = loan.OutstandingBalance
		}
		newBalance := loan.OutstandingBalance.Sub(amount)
		charges = append(charges, LoanCharge{
			Loan:       loan,
			Amount:     amount,
			NewBalance: newBalance,
			Completed:  newBalance.IsZero(),
		})
		d.Loans = d.Loans.Add(amount)
	}

	var applied []AppliedAdjustment
	for _, adj := range deductionAdjustments {
		applied = append(applied, AppliedAdjustment{Adjustment: adj, Amount: adj.Amount})
		d.Other = d.Other.Add(adj.Amount)
	}

	d.Loans = d.Loans.Round(2)
	d.Other = d.Other.Round(2)
	d.TotalEmployee = d.SSSEmployee.
		Add(d.PhilHealthEmployee).
		Add(d.PagIbigEmployee).
		Add(d.WithholdingTax).
		Add(d.Loans).
		Add(d.Other)
	return d, charges, applied, nil
}
