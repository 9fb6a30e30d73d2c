package payroll

// EntryStatus enum - lifecycle of one employee's payroll entry
type EntryStatus string

const (
	EntryStatusDraft    EntryStatus = "draft"
	EntryStatusComputed EntryStatus = "computed"
	EntryStatusReviewed EntryStatus = "reviewed"
	EntryStatusApproved EntryStatus = "approved"
	EntryStatusPaid     EntryStatus = "paid"
)

func (s EntryStatus) Valid() bool {
	switch s {
	case EntryStatusDraft, EntryStatusComputed, EntryStatusReviewed, EntryStatusApproved, EntryStatusPaid:
		return true
	}
	return false
}

// entryTransitions is the complete allowed-transition table. Forward
// steps advance the review chain; the only backward steps re-open the
// immediately preceding stage. Paid is terminal.
var entryTransitions = map[EntryStatus][]EntryStatus{
	EntryStatusDraft:    {EntryStatusComputed},
	EntryStatusComputed: {EntryStatusReviewed, EntryStatusDraft},
	EntryStatusReviewed: {EntryStatusApproved, EntryStatusComputed},
	EntryStatusApproved: {EntryStatusPaid, EntryStatusReviewed},
	EntryStatusPaid:     {},
}

// CanTransition is the pure transition predicate for entries.
func (s EntryStatus) CanTransition(target EntryStatus) bool {
	for _, allowed := range entryTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Editable reports whether earnings/deductions fields may be mutated.
func (s EntryStatus) Editable() bool {
	return s == EntryStatusDraft || s == EntryStatusComputed
}

// Recomputable reports whether the entry may be recomputed. Recomputation
// is permitted through reviewed but not once approved or paid.
func (s EntryStatus) Recomputable() bool {
	return s == EntryStatusDraft || s == EntryStatusComputed || s == EntryStatusReviewed
}

// Deletable reports whether the entry may be deleted.
func (s EntryStatus) Deletable() bool {
	return s == EntryStatusDraft
}

// Terminal reports whether the entry can never change again.
func (s EntryStatus) Terminal() bool {
	return s == EntryStatusPaid
}

// Settled reports whether the entry no longer blocks closing its period.
func (s EntryStatus) Settled() bool {
	return s == EntryStatusApproved || s == EntryStatusPaid
}

// PeriodStatus enum - lifecycle of a payroll period
type PeriodStatus string

const (
	PeriodStatusDraft      PeriodStatus = "draft"
	PeriodStatusOpen       PeriodStatus = "open"
	PeriodStatusProcessing PeriodStatus = "processing"
	PeriodStatusClosed     PeriodStatus = "closed"
)

func (s PeriodStatus) Valid() bool {
	switch s {
	case PeriodStatusDraft, PeriodStatusOpen, PeriodStatusProcessing, PeriodStatusClosed:
		return true
	}
	return false
}

var periodTransitions = map[PeriodStatus][]PeriodStatus{
	PeriodStatusDraft:      {PeriodStatusOpen},
	PeriodStatusOpen:       {PeriodStatusProcessing, PeriodStatusDraft},
	PeriodStatusProcessing: {PeriodStatusClosed, PeriodStatusOpen},
	PeriodStatusClosed:     {},
}

// CanTransition is the pure transition predicate for periods. Closing
// carries an extra precondition (all entries settled) enforced by the
// orchestrator, not here.
func (s PeriodStatus) CanTransition(target PeriodStatus) bool {
	for _, allowed := range periodTransitions[s] {
		if allowed == target {
			return true
		}
	}
	return false
}

// Editable reports whether the period's dates and membership may change.
func (s PeriodStatus) Editable() bool {
	return s == PeriodStatusDraft || s == PeriodStatusOpen
}

// Deletable reports whether the period may be destroyed.
func (s PeriodStatus) Deletable() bool {
	return s == PeriodStatusDraft
}

// Terminal reports whether the period is locked for good.
func (s PeriodStatus) Terminal() bool {
	return s == PeriodStatusClosed
}
