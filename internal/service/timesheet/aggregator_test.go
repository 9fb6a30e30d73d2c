package timesheet

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/employee"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/timesheet"
)

var manila = time.FixedZone("PST", 8*60*60)

func workDate(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, manila)
}

func at(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, manila)
}

func punch(date time.Time, hour, minute int, dir timesheet.PunchDirection) timesheet.Punch {
	return timesheet.Punch{EmployeeID: "emp-1", Time: at(date, hour, minute), Direction: dir}
}

func weekdaySchedule() employee.WorkSchedule {
	days := make(map[time.Weekday]employee.DaySchedule)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		days[wd] = employee.DaySchedule{Start: "08:00", End: "17:00", BreakMinutes: 60}
	}
	days[time.Saturday] = employee.DaySchedule{RestDay: true}
	days[time.Sunday] = employee.DaySchedule{RestDay: true}
	return employee.WorkSchedule{EmployeeID: "emp-1", Days: days}
}

var defaultWindow = NightWindow{Start: "22:00", End: "06:00"}

func TestBuildWorkDayRegularDay(t *testing.T) {
	t.Parallel()
	// Monday June 16 2025, 08:00-17:00 with a one hour break.
	date := workDate(2025, time.June, 16)
	punches := []timesheet.Punch{
		punch(date, 8, 0, timesheet.PunchIn),
		punch(date, 17, 0, timesheet.PunchOut),
	}

	day := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.Equal(t, timesheet.DayPresent, day.Class)
	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(8)), "got %s", day.WorkedHours)
	assert.True(t, day.ScheduledHours.Equal(decimal.NewFromInt(8)))
	assert.True(t, day.RegularOTHours.IsZero())
	assert.False(t, day.NeedsReview)
}

func TestBuildWorkDayRegularOvertime(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)
	punches := []timesheet.Punch{
		punch(date, 8, 0, timesheet.PunchIn),
		punch(date, 19, 0, timesheet.PunchOut),
	}

	day := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(10)))
	assert.True(t, day.RegularOTHours.Equal(decimal.NewFromInt(2)), "got %s", day.RegularOTHours)
	assert.True(t, day.RestDayOTHours.IsZero())
	assert.True(t, day.HolidayOTHours.IsZero())
}

func TestBuildWorkDayIsIdempotent(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)
	punches := []timesheet.Punch{
		punch(date, 8, 3, timesheet.PunchIn),
		punch(date, 12, 0, timesheet.PunchOut),
		punch(date, 13, 0, timesheet.PunchIn),
		punch(date, 17, 30, timesheet.PunchOut),
	}

	first := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)
	second := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.Equal(t, first, second)
}

func TestBuildWorkDayUnmatchedPunchNeedsReview(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	// Trailing in without an out.
	day := BuildWorkDay("emp-1", "co-1", date, []timesheet.Punch{
		punch(date, 8, 0, timesheet.PunchIn),
		punch(date, 12, 0, timesheet.PunchOut),
		punch(date, 13, 0, timesheet.PunchIn),
	}, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.True(t, day.NeedsReview)
	// Complete pairs still count, but no automatic overtime credit.
	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(3)), "got %s", day.WorkedHours)
	assert.True(t, day.RegularOTHours.IsZero())
	assert.True(t, day.RestDayOTHours.IsZero())
	assert.True(t, day.HolidayOTHours.IsZero())

	// Orphan out.
	day = BuildWorkDay("emp-1", "co-1", date, []timesheet.Punch{
		punch(date, 12, 0, timesheet.PunchOut),
	}, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)
	assert.True(t, day.NeedsReview)
	assert.True(t, day.WorkedHours.IsZero())
}

func TestBuildWorkDayRestDay(t *testing.T) {
	t.Parallel()
	// Saturday June 21 2025.
	date := workDate(2025, time.June, 21)
	punches := []timesheet.Punch{
		punch(date, 9, 0, timesheet.PunchIn),
		punch(date, 14, 0, timesheet.PunchOut),
	}

	day := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.Equal(t, timesheet.DayRestDay, day.Class)
	assert.True(t, day.RestDay)
	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(5)))
	// All rest day hours are rest day overtime.
	assert.True(t, day.RestDayOTHours.Equal(decimal.NewFromInt(5)))
	assert.True(t, day.RegularOTHours.IsZero())
}

func TestBuildWorkDayHoliday(t *testing.T) {
	t.Parallel()
	// Thursday June 12 2025, Independence Day.
	date := workDate(2025, time.June, 12)
	cal := holiday.NewCalendar([]holiday.Holiday{
		{Date: date, Name: "Independence Day", Type: holiday.TypeRegular},
	})

	// Not worked: still classified holiday, nothing needs review.
	day := BuildWorkDay("emp-1", "co-1", date, nil, weekdaySchedule(), cal, defaultWindow)
	assert.Equal(t, timesheet.DayHoliday, day.Class)
	require.NotNil(t, day.HolidayType)
	assert.Equal(t, holiday.TypeRegular, *day.HolidayType)
	assert.True(t, day.WorkedHours.IsZero())
	assert.False(t, day.NeedsReview)

	// Worked beyond schedule: the excess is holiday overtime.
	day = BuildWorkDay("emp-1", "co-1", date, []timesheet.Punch{
		punch(date, 8, 0, timesheet.PunchIn),
		punch(date, 19, 0, timesheet.PunchOut),
	}, weekdaySchedule(), cal, defaultWindow)
	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(10)))
	assert.True(t, day.HolidayOTHours.Equal(decimal.NewFromInt(2)))
	assert.True(t, day.RegularOTHours.IsZero())
}

func TestBuildWorkDayAbsentAndNoSchedule(t *testing.T) {
	t.Parallel()

	// Scheduled weekday with no punches: absent.
	day := BuildWorkDay("emp-1", "co-1", workDate(2025, time.June, 16), nil, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)
	assert.Equal(t, timesheet.DayAbsent, day.Class)

	// No schedule at all.
	day = BuildWorkDay("emp-1", "co-1", workDate(2025, time.June, 16), nil, employee.WorkSchedule{}, holiday.NewCalendar(nil), defaultWindow)
	assert.Equal(t, timesheet.DayNoSchedule, day.Class)
}

func TestNightOverlapEveningShift(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	// 20:00 to 23:00 overlaps the window for one hour.
	pairs := []interval{{from: at(date, 20, 0), to: at(date, 23, 0)}}
	got := nightOverlap(pairs, date, defaultWindow)
	assert.True(t, got.Equal(decimal.NewFromInt(1)), "got %s", got)
}

func TestNightOverlapShiftCrossingMidnight(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	// Full graveyard shift 22:00 to 06:00 next day: 8 night hours.
	pairs := []interval{{from: at(date, 22, 0), to: at(date, 6, 0).AddDate(0, 0, 1)}}
	got := nightOverlap(pairs, date, defaultWindow)
	assert.True(t, got.Equal(decimal.NewFromInt(8)), "got %s", got)
}

func TestNightOverlapEarlyMorning(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	// 04:00 to 09:00 overlaps the tail of the previous night's window.
	pairs := []interval{{from: at(date, 4, 0), to: at(date, 9, 0)}}
	got := nightOverlap(pairs, date, defaultWindow)
	assert.True(t, got.Equal(decimal.NewFromInt(2)), "got %s", got)
}

func TestNightOverlapDayShiftIsZero(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)
	pairs := []interval{{from: at(date, 8, 0), to: at(date, 17, 0)}}
	assert.True(t, nightOverlap(pairs, date, defaultWindow).IsZero())
}

func TestWorkedPlusBreakWithinElapsed(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)
	punches := []timesheet.Punch{
		punch(date, 8, 17, timesheet.PunchIn),
		punch(date, 12, 2, timesheet.PunchOut),
		punch(date, 13, 5, timesheet.PunchIn),
		punch(date, 18, 44, timesheet.PunchOut),
	}

	day := BuildWorkDay("emp-1", "co-1", date, punches, weekdaySchedule(), holiday.NewCalendar(nil), defaultWindow)

	elapsed := at(date, 18, 44).Sub(at(date, 8, 17))
	breakHours := decimal.NewFromInt(1)
	assert.True(t, day.WorkedHours.Add(breakHours).LessThanOrEqual(hoursFromDuration(elapsed)),
		"worked %s + break must fit in elapsed %s", day.WorkedHours, hoursFromDuration(elapsed))
}

func TestPairPunchesOrdersInput(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	// Punches arrive out of order from the device.
	pairs, needsReview := pairPunches([]timesheet.Punch{
		punch(date, 17, 0, timesheet.PunchOut),
		punch(date, 8, 0, timesheet.PunchIn),
	})
	assert.False(t, needsReview)
	require.Len(t, pairs, 1)
	assert.Equal(t, at(date, 8, 0), pairs[0].from)
	assert.Equal(t, at(date, 17, 0), pairs[0].to)
}

func nightSchedule() employee.WorkSchedule {
	days := make(map[time.Weekday]employee.DaySchedule)
	for wd := time.Monday; wd <= time.Friday; wd++ {
		days[wd] = employee.DaySchedule{Start: "22:00", End: "06:00"}
	}
	days[time.Saturday] = employee.DaySchedule{RestDay: true}
	days[time.Sunday] = employee.DaySchedule{RestDay: true}
	return employee.WorkSchedule{EmployeeID: "emp-1", Days: days}
}

func TestPunchesByDateKeepsMidnightShiftTogether(t *testing.T) {
	t.Parallel()
	mon := workDate(2025, time.June, 16)
	tue := workDate(2025, time.June, 17)
	wed := workDate(2025, time.June, 18)

	// Two back to back graveyard shifts. Each out lands on the morning
	// after its in and must follow it.
	byDate := punchesByDate([]timesheet.Punch{
		punch(mon, 22, 0, timesheet.PunchIn),
		punch(tue, 6, 0, timesheet.PunchOut),
		punch(tue, 22, 0, timesheet.PunchIn),
		punch(wed, 6, 0, timesheet.PunchOut),
	}, manila)

	require.Len(t, byDate, 2)
	require.Len(t, byDate["2025-06-16"], 2)
	require.Len(t, byDate["2025-06-17"], 2)
	assert.Equal(t, at(tue, 6, 0), byDate["2025-06-16"][1].Time)
	assert.Equal(t, at(wed, 6, 0), byDate["2025-06-17"][1].Time)
}

func TestPunchesByDateFarOutStaysOnItsOwnDate(t *testing.T) {
	t.Parallel()
	mon := workDate(2025, time.June, 16)
	wed := workDate(2025, time.June, 18)

	// An out two days after the in is not a plausible shift close; both
	// days keep their punch and surface for review.
	byDate := punchesByDate([]timesheet.Punch{
		punch(mon, 22, 0, timesheet.PunchIn),
		punch(wed, 6, 0, timesheet.PunchOut),
	}, manila)

	require.Len(t, byDate["2025-06-16"], 1)
	require.Len(t, byDate["2025-06-18"], 1)
}

func TestBuildWorkDayGraveyardShift(t *testing.T) {
	t.Parallel()
	mon := workDate(2025, time.June, 16)
	tue := workDate(2025, time.June, 17)

	byDate := punchesByDate([]timesheet.Punch{
		punch(mon, 22, 0, timesheet.PunchIn),
		punch(tue, 6, 0, timesheet.PunchOut),
	}, manila)

	day := BuildWorkDay("emp-1", "co-1", mon, byDate["2025-06-16"], nightSchedule(), holiday.NewCalendar(nil), defaultWindow)

	assert.Equal(t, timesheet.DayPresent, day.Class)
	assert.False(t, day.NeedsReview)
	assert.True(t, day.WorkedHours.Equal(decimal.NewFromInt(8)), "got %s", day.WorkedHours)
	assert.True(t, day.NightHours.Equal(decimal.NewFromInt(8)), "got %s", day.NightHours)
	assert.True(t, day.RegularOTHours.IsZero())

	// The morning out no longer bleeds into the next day's record.
	next := BuildWorkDay("emp-1", "co-1", tue, byDate["2025-06-17"], nightSchedule(), holiday.NewCalendar(nil), defaultWindow)
	assert.False(t, next.NeedsReview)
	assert.True(t, next.WorkedHours.IsZero())
}

func TestPairPunchesDoubleIn(t *testing.T) {
	t.Parallel()
	date := workDate(2025, time.June, 16)

	pairs, needsReview := pairPunches([]timesheet.Punch{
		punch(date, 8, 0, timesheet.PunchIn),
		punch(date, 9, 0, timesheet.PunchIn),
		punch(date, 17, 0, timesheet.PunchOut),
	})
	assert.True(t, needsReview)
	// The first in wins.
	require.Len(t, pairs, 1)
	assert.Equal(t, at(date, 8, 0), pairs[0].from)
}
