package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/holiday"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

type holidayRepository struct {
	db *database.DB
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepository{db: db}
}

// GetRange implements holiday.HolidayRepository. Nationwide rows
// (work_location IS NULL) always match; location-scoped rows match only
// the given location. Location-scoped rows sort last so NewCalendar
// lets them shadow the nationwide entry for the same date.
func (r *holidayRepository) GetRange(ctx context.Context, from, to time.Time, workLocation *string) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, date, name, type, work_location, created_at
		FROM holidays
		WHERE date BETWEEN $1 AND $2
		  AND (work_location IS NULL OR work_location = $3)
		ORDER BY date ASC, work_location ASC NULLS FIRST
	`

	rows, err := q.Query(ctx, query, from, to, workLocation)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var h holiday.Holiday
		if err := rows.Scan(&h.ID, &h.Date, &h.Name, &h.Type, &h.WorkLocation, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate holidays: %w", err)
	}

	return holidays, nil
}
