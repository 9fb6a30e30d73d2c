package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Settings is the per-tenant payroll policy: overtime and holiday
// premium multipliers plus the night-differential window. Passed
// explicitly into every computation so the calculators stay pure.
type Settings struct {
	ID        string
	CompanyID string

	OvertimeRegularRate decimal.Decimal
	OvertimeRestDayRate decimal.Decimal
	OvertimeHolidayRate decimal.Decimal

	// Holiday premium percentages of the daily rate. 1.0 means plain pay
	// (tracking only), 2.0 doubles it.
	RegularHolidayRate    decimal.Decimal
	SpecialHolidayRate    decimal.Decimal
	SpecialWorkingRate    decimal.Decimal
	DoubleHolidayRate     decimal.Decimal
	RestDayPremiumRate    decimal.Decimal
	DoubleHolidayRestRate decimal.Decimal

	NightDiffRate    decimal.Decimal
	NightWindowStart string
	NightWindowEnd   string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultSettings are the statutory Philippine defaults, applied when a
// tenant has not overridden anything.
func DefaultSettings(companyID string) Settings {
	return Settings{
		CompanyID:             companyID,
		OvertimeRegularRate:   decimal.NewFromFloat(1.25),
		OvertimeRestDayRate:   decimal.NewFromFloat(1.30),
		OvertimeHolidayRate:   decimal.NewFromFloat(2.00),
		RegularHolidayRate:    decimal.NewFromFloat(2.00),
		SpecialHolidayRate:    decimal.NewFromFloat(1.30),
		SpecialWorkingRate:    decimal.NewFromFloat(1.00),
		DoubleHolidayRate:     decimal.NewFromFloat(3.00),
		RestDayPremiumRate:    decimal.NewFromFloat(1.30),
		DoubleHolidayRestRate: decimal.NewFromFloat(3.90),
		NightDiffRate:         decimal.NewFromFloat(0.10),
		NightWindowStart:      "22:00",
		NightWindowEnd:        "06:00",
	}
}
