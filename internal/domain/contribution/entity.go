package contribution

import (
	"time"

	"github.com/shopspring/decimal"
)

// Kind enum - statutory contribution schemes
type Kind string

const (
	KindSSS        Kind = "sss"
	KindPhilHealth Kind = "philhealth"
	KindPagIbig    Kind = "pagibig"
)

func (k Kind) Valid() bool {
	switch k {
	case KindSSS, KindPhilHealth, KindPagIbig:
		return true
	}
	return false
}

// PayFrequency enum - how often an employee is paid. Withholding tax
// tables are published per frequency.
type PayFrequency string

const (
	FrequencyDaily       PayFrequency = "daily"
	FrequencyWeekly      PayFrequency = "weekly"
	FrequencySemiMonthly PayFrequency = "semi_monthly"
	FrequencyMonthly     PayFrequency = "monthly"
)

func (f PayFrequency) Valid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencySemiMonthly, FrequencyMonthly:
		return true
	}
	return false
}

// Share is one side (employee or employer) of a contribution bracket.
// The contribution for an income figure is Amount + income*Rate, which
// covers both fixed-amount schedules (SSS) and percentage schedules
// (PhilHealth, Pag-IBIG).
type Share struct {
	Amount decimal.Decimal
	Rate   decimal.Decimal
}

func (s Share) For(income decimal.Decimal) decimal.Decimal {
	return s.Amount.Add(income.Mul(s.Rate)).Round(2)
}

// Bracket is one salary range of a contribution table. Ceiling is nil for
// the last bracket, which is unbounded above.
type Bracket struct {
	Floor    decimal.Decimal
	Ceiling  *decimal.Decimal
	Employee Share
	Employer Share
}

func (b Bracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Floor) {
		return false
	}
	return b.Ceiling == nil || income.LessThan(*b.Ceiling)
}

// BracketTable is one versioned contribution schedule. EffectiveTo is nil
// while the table is the latest published version.
type BracketTable struct {
	ID            string
	Kind          Kind
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Brackets      []Bracket
	CreatedAt     time.Time
}

// BracketFor returns the bracket containing income. Brackets are ordered
// so a single forward scan suffices; the last bracket has no ceiling, so
// every non-negative income matches exactly one bracket of a valid table.
func (t BracketTable) BracketFor(income decimal.Decimal) (Bracket, bool) {
	for _, b := range t.Brackets {
		if b.Contains(income) {
			return b, true
		}
	}
	return Bracket{}, false
}

// TaxBracket is one progressive withholding bracket: tax on taxable
// income within the bracket is BaseTax + (income-Floor)*Rate.
type TaxBracket struct {
	Floor   decimal.Decimal
	Ceiling *decimal.Decimal
	BaseTax decimal.Decimal
	Rate    decimal.Decimal
}

func (b TaxBracket) Contains(income decimal.Decimal) bool {
	if income.LessThan(b.Floor) {
		return false
	}
	return b.Ceiling == nil || income.LessThan(*b.Ceiling)
}

// TaxTable is one versioned withholding schedule for a pay frequency.
type TaxTable struct {
	ID            string
	Frequency     PayFrequency
	EffectiveFrom time.Time
	EffectiveTo   *time.Time
	Brackets      []TaxBracket
	CreatedAt     time.Time
}

// TaxFor computes the progressive withholding tax on taxableIncome.
// Negative taxable income owes nothing.
func (t TaxTable) TaxFor(taxableIncome decimal.Decimal) (decimal.Decimal, bool) {
	if taxableIncome.IsNegative() {
		return decimal.Zero, true
	}
	for _, b := range t.Brackets {
		if b.Contains(taxableIncome) {
			tax := b.BaseTax.Add(taxableIncome.Sub(b.Floor).Mul(b.Rate))
			return tax.Round(2), true
		}
	}
	return decimal.Zero, false
}

// Validate checks the bracket range invariants: brackets ordered,
// contiguous, non-overlapping, first floor at zero and the last bracket
// unbounded above.
func (t BracketTable) Validate() error {
	return validateRanges(len(t.Brackets), func(i int) (decimal.Decimal, *decimal.Decimal) {
		return t.Brackets[i].Floor, t.Brackets[i].Ceiling
	})
}

func (t TaxTable) Validate() error {
	return validateRanges(len(t.Brackets), func(i int) (decimal.Decimal, *decimal.Decimal) {
		return t.Brackets[i].Floor, t.Brackets[i].Ceiling
	})
}

func validateRanges(n int, rangeAt func(int) (decimal.Decimal, *decimal.Decimal)) error {
	if n == 0 {
		return ErrEmptyTable
	}
	firstFloor, _ := rangeAt(0)
	if !firstFloor.IsZero() {
		return ErrGapInBrackets
	}
	for i := 0; i < n; i++ {
		floor, ceiling := rangeAt(i)
		if i == n-1 {
			if ceiling != nil {
				return ErrBoundedLastBracket
			}
			return nil
		}
		if ceiling == nil {
			return ErrUnboundedInnerBracket
		}
		if ceiling.LessThanOrEqual(floor) {
			return ErrInvertedBracket
		}
		nextFloor, _ := rangeAt(i + 1)
		if !nextFloor.Equal(*ceiling) {
			return ErrGapInBrackets
		}
	}
	return nil
}
