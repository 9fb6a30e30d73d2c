package contribution

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func dp(f float64) *decimal.Decimal {
	v := decimal.NewFromFloat(f)
	return &v
}

func sampleBracketTable() BracketTable {
	return BracketTable{
		Kind: KindSSS,
		Brackets: []Bracket{
			{Floor: d(0), Ceiling: dp(10000), Employee: Share{Amount: d(450)}, Employer: Share{Amount: d(950)}},
			{Floor: d(10000), Ceiling: dp(20000), Employee: Share{Amount: d(900)}, Employer: Share{Amount: d(1900)}},
			{Floor: d(20000), Employee: Share{Amount: d(1350)}, Employer: Share{Amount: d(2850)}},
		},
	}
}

func sampleTaxTable() TaxTable {
	// Shape of the monthly BIR revised withholding table.
	return TaxTable{
		Frequency: FrequencyMonthly,
		Brackets: []TaxBracket{
			{Floor: d(0), Ceiling: dp(20833), BaseTax: d(0), Rate: d(0)},
			{Floor: d(20833), Ceiling: dp(33332), BaseTax: d(0), Rate: d(0.15)},
			{Floor: d(33332), Ceiling: dp(66666), BaseTax: d(1875), Rate: d(0.20)},
			{Floor: d(66666), Ceiling: dp(166666), BaseTax: d(8541.80), Rate: d(0.25)},
			{Floor: d(166666), Ceiling: dp(666666), BaseTax: d(33541.80), Rate: d(0.30)},
			{Floor: d(666666), BaseTax: d(183541.80), Rate: d(0.35)},
		},
	}
}

func TestBracketForContainsIncome(t *testing.T) {
	t.Parallel()
	table := sampleBracketTable()

	for _, income := range []float64{0, 0.01, 9999.99, 10000, 15000, 19999.99, 20000, 1000000} {
		b, ok := table.BracketFor(d(income))
		require.True(t, ok, "income %v must resolve to a bracket", income)
		assert.True(t, b.Contains(d(income)))
	}
}

func TestBracketBoundariesAreHalfOpen(t *testing.T) {
	t.Parallel()
	table := sampleBracketTable()

	b, ok := table.BracketFor(d(10000))
	require.True(t, ok)
	assert.True(t, b.Employee.Amount.Equal(d(900)), "boundary income belongs to the upper bracket")
}

func TestShareForMixesAmountAndRate(t *testing.T) {
	t.Parallel()

	// PhilHealth-style percentage share.
	s := Share{Rate: d(0.025)}
	assert.True(t, s.For(d(20000)).Equal(d(500)))

	// SSS-style fixed amount.
	s = Share{Amount: d(450)}
	assert.True(t, s.For(d(8000)).Equal(d(450)))
}

func TestTaxForProgressiveFormula(t *testing.T) {
	t.Parallel()
	table := sampleTaxTable()

	// Below the floor of the taxed brackets: zero.
	tax, ok := table.TaxFor(d(15000))
	require.True(t, ok)
	assert.True(t, tax.IsZero())

	// 23,875 taxable: (23875 - 20833) * 0.15 = 456.30
	tax, ok = table.TaxFor(d(23875))
	require.True(t, ok)
	assert.True(t, tax.Equal(d(456.30)), "got %s", tax)

	// Recomputing with the same input reproduces the same tax exactly.
	again, _ := table.TaxFor(d(23875))
	assert.True(t, tax.Equal(again))
}

func TestTaxForNegativeIncome(t *testing.T) {
	t.Parallel()
	tax, ok := sampleTaxTable().TaxFor(d(-100))
	require.True(t, ok)
	assert.True(t, tax.IsZero())
}

func TestTaxMonotonicAcrossBrackets(t *testing.T) {
	t.Parallel()
	table := sampleTaxTable()

	prev := decimal.Zero
	for income := 0.0; income <= 700000; income += 1357.77 {
		tax, ok := table.TaxFor(d(income))
		require.True(t, ok)
		assert.True(t, tax.GreaterThanOrEqual(prev),
			"tax must be non-decreasing: income=%v tax=%s prev=%s", income, tax, prev)
		prev = tax
	}
}

func TestValidateAcceptsWellFormedTables(t *testing.T) {
	t.Parallel()
	assert.NoError(t, sampleBracketTable().Validate())
	assert.NoError(t, sampleTaxTable().Validate())
}

func TestValidateRejectsMalformedTables(t *testing.T) {
	t.Parallel()

	empty := BracketTable{}
	assert.ErrorIs(t, empty.Validate(), ErrEmptyTable)

	boundedLast := BracketTable{Brackets: []Bracket{
		{Floor: d(0), Ceiling: dp(10000)},
	}}
	assert.ErrorIs(t, boundedLast.Validate(), ErrBoundedLastBracket)

	gap := BracketTable{Brackets: []Bracket{
		{Floor: d(0), Ceiling: dp(10000)},
		{Floor: d(12000)},
	}}
	assert.ErrorIs(t, gap.Validate(), ErrGapInBrackets)

	inverted := BracketTable{Brackets: []Bracket{
		{Floor: d(0), Ceiling: dp(0)},
		{Floor: d(0)},
	}}
	assert.ErrorIs(t, inverted.Validate(), ErrInvertedBracket)

	nonZeroFirst := BracketTable{Brackets: []Bracket{
		{Floor: d(100)},
	}}
	assert.ErrorIs(t, nonZeroFirst.Validate(), ErrGapInBrackets)

	unboundedInner := BracketTable{Brackets: []Bracket{
		{Floor: d(0)},
		{Floor: d(10000)},
	}}
	assert.ErrorIs(t, unboundedInner.Validate(), ErrUnboundedInnerBracket)
}
