package holiday

import (
	"context"
	"time"
)

// HolidayRepository reads the holiday calendar. Holidays with a nil
// WorkLocation apply everywhere; location-scoped entries shadow them.
type HolidayRepository interface {
	GetRange(ctx context.Context, from, to time.Time, workLocation *string) ([]Holiday, error)
}
