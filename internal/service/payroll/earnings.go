package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/payroll"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
)

// AppliedAdjustment pairs an adjustment definition with the amount it
// contributed to an entry, so the orchestrator can write the matching
// application row in the same transaction.
type AppliedAdjustment struct {
	Adjustment payroll.Adjustment
	Amount     decimal.Decimal
}

// adjustmentDue decides whether an adjustment applies to a period.
// Recurring adjustments are gated by the period their last application
// belongs to, so reprocessing a period never applies them twice.
func adjustmentDue(adj payroll.Adjustment, period payroll.PayrollPeriod, lastApplied *time.Time) bool {
	if !adj.Active {
		return false
	}
	if period.Cycle != payroll.CycleRegular && !adj.ApplyOnSupplemental {
		return false
	}

	switch adj.Recurrence {
	case payroll.RecurrenceOneTime:
		return lastApplied == nil
	case payroll.RecurrenceEveryPeriod:
		return true
	case payroll.RecurrenceMonthly:
		return lastApplied == nil ||
			lastApplied.Year() != period.StartDate.Year() ||
			lastApplied.Month() != period.StartDate.Month()
	case payroll.RecurrenceQuarterly:
		return lastApplied == nil ||
			lastApplied.Year() != period.StartDate.Year() ||
			quarterOf(*lastApplied) != quarterOf(period.StartDate)
	}
	return false
}

func quarterOf(t time.Time) int {
	return (int(t.Month()) + 2) / 3
}

// dueAdjustments filters the adjustments that apply to this period for
// one class (earning or deduction). lastApplied maps adjustment ID to
// the start date of the period it was last applied in.
func dueAdjustments(
	adjustments []payroll.Adjustment,
	period payroll.PayrollPeriod,
	lastApplied map[string]time.Time,
	class payroll.AdjustmentClass,
) []payroll.Adjustment {
	var due []payroll.Adjustment
	for _, adj := range adjustments {
		if adj.Kind.Class() != class {
			continue
		}
		var last *time.Time
		if t, ok := lastApplied[adj.ID]; ok {
			last = &t
		}
		if adjustmentDue(adj, period, last) {
			due = append(due, adj)
		}
	}
	return due
}

// holidayPremiumRate picks the daily-rate multiplier for one holiday
// day. A holiday falling on the employee's rest day stacks the rest-day
// premium multiplicatively; a double holiday on a rest day uses its own
// policy rate because the statutory stacking for that case is set per
// tenant.
func holidayPremiumRate(t holiday.Type, restDay bool, s payroll.Settings) decimal.Decimal {
	if restDay {
		if t == holiday.TypeDouble {
			return s.DoubleHolidayRestRate
		}
		base := s.RegularHolidayRate
		if t == holiday.TypeSpecialNonWorking {
			base = s.SpecialHolidayRate
		}
		return base.Mul(s.RestDayPremiumRate)
	}
	switch t {
	case holiday.TypeRegular:
		return s.RegularHolidayRate
	case holiday.TypeSpecialNonWorking:
		return s.SpecialHolidayRate
	case holiday.TypeDouble:
		return s.DoubleHolidayRate
	}
	return decimal.NewFromInt(1)
}

// regularHours is the portion of a day's worked hours paid at the plain
// rate: worked minus every overtime bucket, capped at the schedule so a
// day awaiting review never inflates basic pay.
func regularHours(day timesheet.WorkDay) decimal.Decimal {
	h := day.WorkedHours.
		Sub(day.RegularOTHours).
		Sub(day.RestDayOTHours).
		Sub(day.HolidayOTHours)
	if day.ScheduledHours.GreaterThan(decimal.Zero) && h.GreaterThan(day.ScheduledHours) {
		h = day.ScheduledHours
	}
	if h.IsNegative() {
		return decimal.Zero
	}
	return h
}

// ComputeEarnings builds the gross side of one entry from aggregated
// time, the compensation profile and the tenant's premium policy.
// Adjustments passed in must already be filtered to due, earning-class
// definitions; they are echoed back as applications for the audit trail.
func ComputeEarnings(
	profile employee.CompensationProfile,
	summary timesheet.PeriodSummary,
	settings payroll.Settings,
	earningAdjustments []payroll.Adjustment,
) (payroll.EarningsBreakdown, []AppliedAdjustment) {
	hourly := profile.HourlyRate()
	daily := profile.DailyRate()

	var b payroll.EarningsBreakdown
	var basic, holidayPay decimal.Decimal

	for _, day := range summary.Days {
		if day.HolidayType != nil {
			t := *day.HolidayType
			if t == holiday.TypeSpecialWorking {
				// Tracking only: the day pays like an ordinary one.
				basic = basic.Add(hourly.Mul(regularHours(day)))
				continue
			}
			if day.RestDay && day.WorkedHours.IsZero() {
				// Unworked holiday on a rest day earns nothing.
				continue
			}
			if day.ScheduledHours.IsZero() && day.WorkedHours.IsZero() && !day.RestDay {
				continue
			}
			holidayPay = holidayPay.Add(daily.Mul(holidayPremiumRate(t, day.RestDay, settings)))
			continue
		}
		if day.Class == timesheet.DayPresent {
			basic = basic.Add(hourly.Mul(regularHours(day)))
		}
	}

	overtime := hourly.Mul(
		summary.RegularOTHours.Mul(settings.OvertimeRegularRate).
			Add(summary.RestDayOTHours.Mul(settings.OvertimeRestDayRate)).
			Add(summary.HolidayOTHours.Mul(settings.OvertimeHolidayRate)))
	nightDiff := hourly.Mul(summary.NightHours).Mul(settings.NightDiffRate)

	var applied []AppliedAdjustment
	var allowances, bonuses, adjustments decimal.Decimal
	for _, adj := range earningAdjustments {
		applied = append(applied, AppliedAdjustment{Adjustment: adj, Amount: adj.Amount})
		switch adj.Kind {
		case payroll.KindAllowance:
			allowances = allowances.Add(adj.Amount)
		case payroll.KindBonus:
			bonuses = bonuses.Add(adj.Amount)
		default:
			adjustments = adjustments.Add(adj.Amount)
		}
	}

	b.Basic = clampComponent(&b, "basic", basic)
	b.Overtime = clampComponent(&b, "overtime", overtime)
	b.NightDiff = clampComponent(&b, "night_diff", nightDiff)
	b.Holiday = clampComponent(&b, "holiday", holidayPay)
	b.Allowances = clampComponent(&b, "allowances", allowances)
	b.Bonuses = clampComponent(&b, "bonuses", bonuses)
	b.Adjustments = clampComponent(&b, "adjustments", adjustments)

	b.Gross = b.Basic.
		Add(b.Overtime).
		Add(b.NightDiff).
		Add(b.Holiday).
		Add(b.Allowances).
		Add(b.Bonuses).
		Add(b.Adjustments)
	return b, applied
}

// clampComponent rounds a component, clamping negatives to zero.
// A negative component comes from misconfiguration and must never reduce
// gross pay; the clamp is recorded for audit instead.
func clampComponent(b *payroll.EarningsBreakdown, name string, v decimal.Decimal) decimal.Decimal {
	if v.IsNegative() {
		b.ClampedComponents = append(b.ClampedComponents, name)
		return decimal.Zero
	}
	return v.Round(2)
}
