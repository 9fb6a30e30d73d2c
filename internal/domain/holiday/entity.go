package holiday

import "time"

// Type enum - Philippine holiday classifications, each with its own pay
// premium treatment.
type Type string

const (
	TypeRegular           Type = "regular"
	TypeSpecialNonWorking Type = "special_non_working"
	TypeSpecialWorking    Type = "special_working"
	TypeDouble            Type = "double"
)

func (t Type) Valid() bool {
	switch t {
	case TypeRegular, TypeSpecialNonWorking, TypeSpecialWorking, TypeDouble:
		return true
	}
	return false
}

type Holiday struct {
	ID           string
	Date         time.Time
	Name         string
	Type         Type
	WorkLocation *string
	CreatedAt    time.Time
}

// Calendar is a date-indexed holiday lookup for one work location.
type Calendar struct {
	byDate map[string]Holiday
}

func NewCalendar(holidays []Holiday) Calendar {
	byDate := make(map[string]Holiday, len(holidays))
	for _, h := range holidays {
		byDate[h.Date.Format("2006-01-02")] = h
	}
	return Calendar{byDate: byDate}
}

func (c Calendar) On(date time.Time) (Holiday, bool) {
	h, ok := c.byDate[date.Format("2006-01-02")]
	return h, ok
}
