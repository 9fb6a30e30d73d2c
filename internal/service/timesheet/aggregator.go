package timesheet

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
)

// NightWindow is the statutory night-differential window as wall-clock
// bounds. A window whose end is earlier than its start crosses midnight.
type NightWindow struct {
	Start string
	End   string
}

// interval is a concrete [from, to) time span.
type interval struct {
	from time.Time
	to   time.Time
}

func (iv interval) duration() time.Duration {
	if iv.to.Before(iv.from) {
		return 0
	}
	return iv.to.Sub(iv.from)
}

func intersect(a, b interval) interval {
	from, to := a.from, a.to
	if b.from.After(from) {
		from = b.from
	}
	if b.to.Before(to) {
		to = b.to
	}
	return interval{from: from, to: to}
}

// pairPunches walks punches in time order and matches each in with the
// next out. It returns the worked intervals from complete pairs and
// whether anything was unmatched (double in, orphan out, trailing in).
func pairPunches(punches []timesheet.Punch) (pairs []interval, needsReview bool) {
	sorted := make([]timesheet.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	var pendingIn *time.Time
	for _, p := range sorted {
		switch p.Direction {
		case timesheet.PunchIn:
			if pendingIn != nil {
				// Double in: keep the first, flag the day.
				needsReview = true
				continue
			}
			t := p.Time
			pendingIn = &t
		case timesheet.PunchOut:
			if pendingIn == nil {
				needsReview = true
				continue
			}
			if p.Time.After(*pendingIn) {
				pairs = append(pairs, interval{from: *pendingIn, to: p.Time})
			} else {
				needsReview = true
			}
			pendingIn = nil
		}
	}
	if pendingIn != nil {
		needsReview = true
	}
	return pairs, needsReview
}

// nightIntervals materializes the night window as concrete intervals
// around a work date. A shift may touch the window of the previous
// night, the same evening, or the morning after, so three candidate
// spans are generated.
func nightIntervals(date time.Time, w NightWindow) []interval {
	start, okStart := parseClock(w.Start)
	end, okEnd := parseClock(w.End)
	if !okStart || !okEnd {
		return nil
	}

	midnight := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	var spans []interval
	for dayOffset := -1; dayOffset <= 1; dayOffset++ {
		base := midnight.AddDate(0, 0, dayOffset)
		from := base.Add(start)
		to := base.Add(end)
		if end <= start {
			to = to.AddDate(0, 0, 1)
		}
		spans = append(spans, interval{from: from, to: to})
	}
	return spans
}

func parseClock(clock string) (time.Duration, bool) {
	t, err := time.Parse("15:04", clock)
	if err != nil {
		return 0, false
	}
	return time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute, true
}

// nightOverlap sums the intersection of worked intervals with the night
// window. Interval intersection, not whole-shift flags: only the hours
// actually inside the window earn the differential.
func nightOverlap(pairs []interval, date time.Time, w NightWindow) decimal.Decimal {
	spans := nightIntervals(date, w)
	var total time.Duration
	for _, p := range pairs {
		for _, span := range spans {
			total += intersect(p, span).duration()
		}
	}
	return hoursFromDuration(total)
}

func hoursFromDuration(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(int64(d / time.Minute)).Div(decimal.NewFromInt(60)).Round(2)
}

// BuildWorkDay derives the daily time record for one employee and date
// from its punch set. Deterministic: the same punches, schedule, holiday
// and window always produce an identical WorkDay.
func BuildWorkDay(
	employeeID, companyID string,
	date time.Time,
	punches []timesheet.Punch,
	schedule employee.WorkSchedule,
	cal holiday.Calendar,
	window NightWindow,
) timesheet.WorkDay {
	day := timesheet.WorkDay{
		EmployeeID: employeeID,
		CompanyID:  companyID,
		Date:       date,
	}

	daySchedule, scheduled := schedule.For(date)
	if scheduled {
		day.RestDay = daySchedule.RestDay
		day.ScheduledHours = daySchedule.ScheduledHours()
	}

	hol, isHoliday := cal.On(date)
	if isHoliday {
		t := hol.Type
		day.HolidayType = &t
	}

	pairs, needsReview := pairPunches(punches)
	day.NeedsReview = needsReview

	var workedDur time.Duration
	for _, p := range pairs {
		workedDur += p.duration()
	}
	worked := hoursFromDuration(workedDur)
	if scheduled && !daySchedule.RestDay && len(pairs) > 0 {
		// Break time is unpaid and subtracted once per day.
		breakHours := decimal.NewFromInt(int64(daySchedule.BreakMinutes)).Div(decimal.NewFromInt(60))
		worked = worked.Sub(breakHours)
		if worked.IsNegative() {
			worked = decimal.Zero
		}
	}
	day.WorkedHours = worked.Round(2)
	day.NightHours = nightOverlap(pairs, date, window)

	switch {
	case isHoliday:
		day.Class = timesheet.DayHoliday
	case scheduled && daySchedule.RestDay:
		day.Class = timesheet.DayRestDay
	case day.WorkedHours.GreaterThan(decimal.Zero):
		day.Class = timesheet.DayPresent
	case scheduled:
		day.Class = timesheet.DayAbsent
	default:
		day.Class = timesheet.DayNoSchedule
	}

	// Overtime credit is withheld from days that need review until the
	// punch data is corrected.
	if !needsReview {
		assignOvertime(&day)
	}
	return day
}

// assignOvertime splits hours beyond the schedule into the overtime type
// matching the day, because each type carries a different multiplier.
// On rest days and unscheduled days every worked hour is overtime.
func assignOvertime(day *timesheet.WorkDay) {
	switch {
	case day.HolidayType != nil:
		excess := day.WorkedHours.Sub(day.ScheduledHours)
		if excess.GreaterThan(decimal.Zero) {
			day.HolidayOTHours = excess
		}
	case day.Class == timesheet.DayRestDay:
		day.RestDayOTHours = day.WorkedHours
	case day.Class == timesheet.DayNoSchedule:
		day.RestDayOTHours = day.WorkedHours
	default:
		excess := day.WorkedHours.Sub(day.ScheduledHours)
		if excess.GreaterThan(decimal.Zero) {
			day.RegularOTHours = excess
		}
	}
}

// punchesByDate buckets punches onto the calendar date of their
// timestamp in the given location. An out-punch closing an in from the
// previous day follows that in, so a shift crossing midnight stays one
// day's record instead of splitting into a trailing in and an orphan
// out. An out more than one day after its in is left on its own date
// and both days surface for review.
func punchesByDate(punches []timesheet.Punch, loc *time.Location) map[string][]timesheet.Punch {
	sorted := make([]timesheet.Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Time.Before(sorted[j].Time) })

	byDate := make(map[string][]timesheet.Punch)
	var pendingIn *time.Time
	for _, p := range sorted {
		when := p.Time.In(loc)
		key := when.Format("2006-01-02")
		switch p.Direction {
		case timesheet.PunchIn:
			t := when
			pendingIn = &t
		case timesheet.PunchOut:
			if pendingIn != nil {
				inDay := pendingIn.Format("2006-01-02")
				nextDay := pendingIn.AddDate(0, 0, 1).Format("2006-01-02")
				if key == inDay || key == nextDay {
					key = inDay
				}
			}
			pendingIn = nil
		}
		byDate[key] = append(byDate[key], p)
	}
	return byDate
}
