package postgresql

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/suweldo-hr/suweldo-backend-go/internal/domain/contribution"
	"github.com/suweldo-hr/suweldo-backend-go/internal/pkg/database"
)

// tableRepository stores the versioned statutory tables. Brackets are
// kept as a JSONB column: they are always read and written as a whole
// ordered set, never queried row by row.
type tableRepository struct {
	db *database.DB
}

func NewTableRepository(db *database.DB) contribution.TableRepository {
	return &tableRepository{db: db}
}

// GetBracketTable implements contribution.TableRepository.
func (r *tableRepository) GetBracketTable(ctx context.Context, kind contribution.Kind, asOf time.Time) (contribution.BracketTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, kind, effective_from, effective_to, brackets, created_at
		FROM contribution_tables
		WHERE kind = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var t contribution.BracketTable
	var brackets []byte
	err := q.QueryRow(ctx, query, kind, asOf).Scan(
		&t.ID, &t.Kind, &t.EffectiveFrom, &t.EffectiveTo, &brackets, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contribution.BracketTable{}, contribution.ErrNoApplicableTable
		}
		return contribution.BracketTable{}, fmt.Errorf("failed to get %s table: %w", kind, err)
	}
	if err := json.Unmarshal(brackets, &t.Brackets); err != nil {
		return contribution.BracketTable{}, fmt.Errorf("failed to decode %s brackets: %w", kind, err)
	}

	return t, nil
}

// GetTaxTable implements contribution.TableRepository.
func (r *tableRepository) GetTaxTable(ctx context.Context, frequency contribution.PayFrequency, asOf time.Time) (contribution.TaxTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, frequency, effective_from, effective_to, brackets, created_at
		FROM tax_tables
		WHERE frequency = $1
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to > $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	var t contribution.TaxTable
	var brackets []byte
	err := q.QueryRow(ctx, query, frequency, asOf).Scan(
		&t.ID, &t.Frequency, &t.EffectiveFrom, &t.EffectiveTo, &brackets, &t.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return contribution.TaxTable{}, contribution.ErrNoApplicableTable
		}
		return contribution.TaxTable{}, fmt.Errorf("failed to get %s tax table: %w", frequency, err)
	}
	if err := json.Unmarshal(brackets, &t.Brackets); err != nil {
		return contribution.TaxTable{}, fmt.Errorf("failed to decode tax brackets: %w", err)
	}

	return t, nil
}

// CreateBracketTable implements contribution.TableRepository. Publishing
// a new version caps the previous latest version at the new effective
// date so exactly one table is current for any date.
func (r *tableRepository) CreateBracketTable(ctx context.Context, table contribution.BracketTable) (contribution.BracketTable, error) {
	q := GetQuerier(ctx, r.db)

	brackets, err := json.Marshal(table.Brackets)
	if err != nil {
		return contribution.BracketTable{}, fmt.Errorf("failed to encode brackets: %w", err)
	}

	capQuery := `
		UPDATE contribution_tables
		SET effective_to = $2
		WHERE kind = $1
		  AND effective_to IS NULL
		  AND effective_from < $2
	`
	if _, err := q.Exec(ctx, capQuery, table.Kind, table.EffectiveFrom); err != nil {
		return contribution.BracketTable{}, fmt.Errorf("failed to cap previous table: %w", err)
	}

	query := `
		INSERT INTO contribution_tables (kind, effective_from, effective_to, brackets)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err = q.QueryRow(ctx, query,
		table.Kind, table.EffectiveFrom, table.EffectiveTo, brackets,
	).Scan(&table.ID, &table.CreatedAt)
	if err != nil {
		return contribution.BracketTable{}, fmt.Errorf("failed to create %s table: %w", table.Kind, err)
	}

	return table, nil
}

// CreateTaxTable implements contribution.TableRepository.
func (r *tableRepository) CreateTaxTable(ctx context.Context, table contribution.TaxTable) (contribution.TaxTable, error) {
	q := GetQuerier(ctx, r.db)

	brackets, err := json.Marshal(table.Brackets)
	if err != nil {
		return contribution.TaxTable{}, fmt.Errorf("failed to encode tax brackets: %w", err)
	}

	capQuery := `
		UPDATE tax_tables
		SET effective_to = $2
		WHERE frequency = $1
		  AND effective_to IS NULL
		  AND effective_from < $2
	`
	if _, err := q.Exec(ctx, capQuery, table.Frequency, table.EffectiveFrom); err != nil {
		return contribution.TaxTable{}, fmt.Errorf("failed to cap previous tax table: %w", err)
	}

	query := `
		INSERT INTO tax_tables (frequency, effective_from, effective_to, brackets)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	err = q.QueryRow(ctx, query,
		table.Frequency, table.EffectiveFrom, table.EffectiveTo, brackets,
	).Scan(&table.ID, &table.CreatedAt)
	if err != nil {
		return contribution.TaxTable{}, fmt.Errorf("failed to create tax table: %w", err)
	}

	return table, nil
}

// ListBracketTables implements contribution.TableRepository.
func (r *tableRepository) ListBracketTables(ctx context.Context, kind contribution.Kind) ([]contribution.BracketTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, kind, effective_from, effective_to, brackets, created_at
		FROM contribution_tables
		WHERE kind = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, kind)
	if err != nil {
		return nil, fmt.Errorf("failed to list %s tables: %w", kind, err)
	}
	defer rows.Close()

	var tables []contribution.BracketTable
	for rows.Next() {
		var t contribution.BracketTable
		var brackets []byte
		if err := rows.Scan(&t.ID, &t.Kind, &t.EffectiveFrom, &t.EffectiveTo, &brackets, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		if err := json.Unmarshal(brackets, &t.Brackets); err != nil {
			return nil, fmt.Errorf("failed to decode brackets: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tables: %w", err)
	}

	return tables, nil
}

// ListTaxTables implements contribution.TableRepository.
func (r *tableRepository) ListTaxTables(ctx context.Context, frequency contribution.PayFrequency) ([]contribution.TaxTable, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, frequency, effective_from, effective_to, brackets, created_at
		FROM tax_tables
		WHERE frequency = $1
		ORDER BY effective_from DESC
	`

	rows, err := q.Query(ctx, query, frequency)
	if err != nil {
		return nil, fmt.Errorf("failed to list tax tables: %w", err)
	}
	defer rows.Close()

	var tables []contribution.TaxTable
	for rows.Next() {
		var t contribution.TaxTable
		var brackets []byte
		if err := rows.Scan(&t.ID, &t.Frequency, &t.EffectiveFrom, &t.EffectiveTo, &brackets, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan tax table: %w", err)
		}
		if err := json.Unmarshal(brackets, &t.Brackets); err != nil {
			return nil, fmt.Errorf("failed to decode tax brackets: %w", err)
		}
		tables = append(tables, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tax tables: %w", err)
	}

	return tables, nil
}
