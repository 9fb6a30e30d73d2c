package contribution

import "errors"

var (
	// ErrNoApplicableTable means no table version covers the requested
	// date. Payroll cannot be computed without a current table, so
	// callers must treat this as a hard blocker.
	ErrNoApplicableTable = errors.New("no applicable contribution or tax table for the given date")

	ErrNoBracketMatched      = errors.New("no bracket matched the income figure")
	ErrInvalidKind           = errors.New("invalid contribution kind")
	ErrInvalidFrequency      = errors.New("invalid pay frequency")
	ErrEmptyTable            = errors.New("table has no brackets")
	ErrBoundedLastBracket    = errors.New("last bracket must be unbounded above")
	ErrUnboundedInnerBracket = errors.New("only the last bracket may be unbounded")
	ErrInvertedBracket       = errors.New("bracket ceiling must be greater than its floor")
	ErrGapInBrackets         = errors.New("bracket ranges must be contiguous")
	ErrOverlappingTables     = errors.New("table effective ranges overlap")
)
