package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
)

func hourlyProfile(rate int64) employee.CompensationProfile {
	return employee.CompensationProfile{
		BaseRate:     decimal.NewFromInt(rate),
		RateUnit:     employee.RateUnitHourly,
		HoursPerDay:  decimal.NewFromInt(8),
		DaysPerMonth: decimal.NewFromInt(22),
	}
}

func d(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func holidayDay(t holiday.Type, restDay bool, worked float64) timesheet.WorkDay {
	ht := t
	day := timesheet.WorkDay{
		Class:          timesheet.DayHoliday,
		HolidayType:    &ht,
		RestDay:        restDay,
		WorkedHours:    d(worked),
		ScheduledHours: decimal.NewFromInt(8),
	}
	if restDay {
		day.ScheduledHours = decimal.Zero
	}
	return day
}

func TestComputeEarningsRegularDayWithOvertime(t *testing.T) {
	t.Parallel()
	// 8 scheduled hours, 2 hours regular overtime at 100/hr.
	summary := timesheet.PeriodSummary{
		Days: []timesheet.WorkDay{{
			Class:          timesheet.DayPresent,
			ScheduledHours: decimal.NewFromInt(8),
			WorkedHours:    decimal.NewFromInt(10),
			RegularOTHours: decimal.NewFromInt(2),
		}},
		RegularOTHours: decimal.NewFromInt(2),
	}

	b, _ := ComputeEarnings(hourlyProfile(100), summary, payroll.DefaultSettings("co-1"), nil)

	assert.True(t, b.Basic.Equal(decimal.NewFromInt(800)), "basic %s", b.Basic)
	assert.True(t, b.Overtime.Equal(decimal.NewFromInt(250)), "overtime %s", b.Overtime)
	assert.True(t, b.Gross.Equal(decimal.NewFromInt(1050)), "gross %s", b.Gross)
	assert.Empty(t, b.ClampedComponents)
}

func TestComputeEarningsUnworkedRegularHoliday(t *testing.T) {
	t.Parallel()
	// Daily rate 800, regular holiday not worked: full 200% credit.
	profile := employee.CompensationProfile{
		BaseRate:     decimal.NewFromInt(800),
		RateUnit:     employee.RateUnitDaily,
		HoursPerDay:  decimal.NewFromInt(8),
		DaysPerMonth: decimal.NewFromInt(22),
	}
	summary := timesheet.PeriodSummary{Days: []timesheet.WorkDay{holidayDay(holiday.TypeRegular, false, 0)}}

	b, _ := ComputeEarnings(profile, summary, payroll.DefaultSettings("co-1"), nil)

	assert.True(t, b.Holiday.Equal(decimal.NewFromInt(1600)), "holiday %s", b.Holiday)
	assert.True(t, b.Basic.IsZero())
}

func TestComputeEarningsHolidayPremiums(t *testing.T) {
	t.Parallel()
	profile := employee.CompensationProfile{
		BaseRate:    decimal.NewFromInt(100),
		RateUnit:    employee.RateUnitHourly,
		HoursPerDay: decimal.NewFromInt(8),
	}
	// Daily rate 800.
	settings := payroll.DefaultSettings("co-1")

	cases := []struct {
		name string
		day  timesheet.WorkDay
		want decimal.Decimal
	}{
		// Expected premiums off the 800 daily rate: special non-working
		// 1.30, double 3.00, regular on rest day 2.00 * 1.30, double on
		// rest day 3.90.
		{"special non-working worked", holidayDay(holiday.TypeSpecialNonWorking, false, 8), d(1040)},
		{"double holiday", holidayDay(holiday.TypeDouble, false, 8), d(2400)},
		{"regular holiday on rest day worked", holidayDay(holiday.TypeRegular, true, 8), d(2080)},
		{"double holiday on rest day worked", holidayDay(holiday.TypeDouble, true, 8), d(3120)},
		{"unworked holiday on rest day", holidayDay(holiday.TypeRegular, true, 0), decimal.Zero},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b, _ := ComputeEarnings(profile, timesheet.PeriodSummary{Days: []timesheet.WorkDay{tc.day}}, settings, nil)
			assert.True(t, b.Holiday.Equal(tc.want), "holiday %s want %s", b.Holiday, tc.want)
		})
	}
}

func TestComputeEarningsSpecialWorkingHolidayPaysBasic(t *testing.T) {
	t.Parallel()
	day := holidayDay(holiday.TypeSpecialWorking, false, 8)
	b, _ := ComputeEarnings(hourlyProfile(100), timesheet.PeriodSummary{Days: []timesheet.WorkDay{day}}, payroll.DefaultSettings("co-1"), nil)

	assert.True(t, b.Holiday.IsZero(), "no premium for special working, got %s", b.Holiday)
	assert.True(t, b.Basic.Equal(decimal.NewFromInt(800)), "basic %s", b.Basic)
}

func TestComputeEarningsNightDifferential(t *testing.T) {
	t.Parallel()
	summary := timesheet.PeriodSummary{
		Days: []timesheet.WorkDay{{
			Class:          timesheet.DayPresent,
			ScheduledHours: decimal.NewFromInt(8),
			WorkedHours:    decimal.NewFromInt(8),
			NightHours:     decimal.NewFromInt(8),
		}},
		NightHours: decimal.NewFromInt(8),
	}

	b, _ := ComputeEarnings(hourlyProfile(100), summary, payroll.DefaultSettings("co-1"), nil)

	// 8 night hours * 100 * 10%.
	assert.True(t, b.NightDiff.Equal(decimal.NewFromInt(80)), "night diff %s", b.NightDiff)
}

func TestComputeEarningsClampsNegativeComponents(t *testing.T) {
	t.Parallel()
	adjustments := []payroll.Adjustment{
		{ID: "a1", Kind: payroll.KindAllowance, Amount: decimal.NewFromInt(-500), Active: true},
	}

	b, applied := ComputeEarnings(hourlyProfile(100), timesheet.PeriodSummary{}, payroll.DefaultSettings("co-1"), adjustments)

	assert.True(t, b.Allowances.IsZero())
	assert.Contains(t, b.ClampedComponents, "allowances")
	assert.True(t, b.Gross.IsZero())
	// The application still records what was configured.
	require.Len(t, applied, 1)
	assert.True(t, applied[0].Amount.Equal(decimal.NewFromInt(-500)))
}

func TestComputeEarningsBucketsAdjustments(t *testing.T) {
	t.Parallel()
	adjustments := []payroll.Adjustment{
		{ID: "a1", Kind: payroll.KindAllowance, Amount: decimal.NewFromInt(1000), Active: true},
		{ID: "a2", Kind: payroll.KindBonus, Amount: decimal.NewFromInt(2000), Active: true},
		{ID: "a3", Kind: payroll.KindOtherEarning, Amount: decimal.NewFromInt(300), Active: true},
	}

	b, applied := ComputeEarnings(hourlyProfile(100), timesheet.PeriodSummary{}, payroll.DefaultSettings("co-1"), adjustments)

	assert.True(t, b.Allowances.Equal(decimal.NewFromInt(1000)))
	assert.True(t, b.Bonuses.Equal(decimal.NewFromInt(2000)))
	assert.True(t, b.Adjustments.Equal(decimal.NewFromInt(300)))
	assert.True(t, b.Gross.Equal(decimal.NewFromInt(3300)))
	assert.Len(t, applied, 3)
}

func regularPeriod(start string) payroll.PayrollPeriod {
	s, _ := time.Parse("2006-01-02", start)
	return payroll.PayrollPeriod{StartDate: s, EndDate: s.AddDate(0, 0, 14), Cycle: payroll.CycleRegular}
}

func TestAdjustmentDueRecurrence(t *testing.T) {
	t.Parallel()
	jan1, _ := time.Parse("2006-01-02", "2025-01-01")
	jan16, _ := time.Parse("2006-01-02", "2025-01-16")
	feb1, _ := time.Parse("2006-01-02", "2025-02-01")
	apr1, _ := time.Parse("2006-01-02", "2025-04-01")

	oneTime := payroll.Adjustment{Recurrence: payroll.RecurrenceOneTime, Active: true}
	assert.True(t, adjustmentDue(oneTime, regularPeriod("2025-01-01"), nil))
	assert.False(t, adjustmentDue(oneTime, regularPeriod("2025-02-01"), &jan1))

	every := payroll.Adjustment{Recurrence: payroll.RecurrenceEveryPeriod, Active: true}
	assert.True(t, adjustmentDue(every, regularPeriod("2025-01-16"), &jan1))

	monthly := payroll.Adjustment{Recurrence: payroll.RecurrenceMonthly, Active: true}
	assert.False(t, adjustmentDue(monthly, regularPeriod("2025-01-16"), &jan1), "second cutoff of the same month")
	assert.True(t, adjustmentDue(monthly, regularPeriod("2025-02-01"), &jan16))

	quarterly := payroll.Adjustment{Recurrence: payroll.RecurrenceQuarterly, Active: true}
	assert.False(t, adjustmentDue(quarterly, regularPeriod("2025-03-01"), &feb1), "same quarter")
	assert.True(t, adjustmentDue(quarterly, regularPeriod("2025-04-01"), &feb1))
	assert.False(t, adjustmentDue(quarterly, regularPeriod("2025-06-01"), &apr1))
}

func TestAdjustmentDueSupplementalGate(t *testing.T) {
	t.Parallel()
	period := payroll.PayrollPeriod{Cycle: payroll.CycleSupplemental}

	adj := payroll.Adjustment{Recurrence: payroll.RecurrenceEveryPeriod, Active: true}
	assert.False(t, adjustmentDue(adj, period, nil))

	adj.ApplyOnSupplemental = true
	assert.True(t, adjustmentDue(adj, period, nil))
}

func TestDueAdjustmentsFiltersByClass(t *testing.T) {
	t.Parallel()
	all := []payroll.Adjustment{
		{ID: "e1", Kind: payroll.KindAllowance, Recurrence: payroll.RecurrenceEveryPeriod, Active: true},
		{ID: "d1", Kind: payroll.KindTardiness, Recurrence: payroll.RecurrenceEveryPeriod, Active: true},
		{ID: "e2", Kind: payroll.KindBonus, Recurrence: payroll.RecurrenceEveryPeriod, Active: false},
	}
	period := regularPeriod("2025-01-01")

	earnings := dueAdjustments(all, period, nil, payroll.AdjustmentEarning)
	require.Len(t, earnings, 1)
	assert.Equal(t, "e1", earnings[0].ID)

	deductions := dueAdjustments(all, period, nil, payroll.AdjustmentDeduction)
	require.Len(t, deductions, 1)
	assert.Equal(t, "d1", deductions[0].ID)
}
