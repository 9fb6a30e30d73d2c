package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEntryStatusTransitions(t *testing.T) {
	t.Parallel()

	allowed := map[EntryStatus][]EntryStatus{
		EntryStatusDraft:    {EntryStatusComputed},
		EntryStatusComputed: {EntryStatusReviewed, EntryStatusDraft},
		EntryStatusReviewed: {EntryStatusApproved, EntryStatusComputed},
		EntryStatusApproved: {EntryStatusPaid, EntryStatusReviewed},
		EntryStatusPaid:     {},
	}
	all := []EntryStatus{EntryStatusDraft, EntryStatusComputed, EntryStatusReviewed, EntryStatusApproved, EntryStatusPaid}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestEntryStatusPaidIsTerminal(t *testing.T) {
	t.Parallel()

	assert.True(t, EntryStatusPaid.Terminal())
	for _, to := range []EntryStatus{EntryStatusDraft, EntryStatusComputed, EntryStatusReviewed, EntryStatusApproved} {
		assert.False(t, EntryStatusPaid.CanTransition(to))
	}
}

func TestEntryStatusEditability(t *testing.T) {
	t.Parallel()

	assert.True(t, EntryStatusDraft.Editable())
	assert.True(t, EntryStatusComputed.Editable())
	assert.False(t, EntryStatusReviewed.Editable())
	assert.False(t, EntryStatusApproved.Editable())
	assert.False(t, EntryStatusPaid.Editable())

	// Recomputation is permitted through reviewed but not beyond.
	assert.True(t, EntryStatusReviewed.Recomputable())
	assert.False(t, EntryStatusApproved.Recomputable())
	assert.False(t, EntryStatusPaid.Recomputable())

	assert.True(t, EntryStatusDraft.Deletable())
	assert.False(t, EntryStatusComputed.Deletable())
}

func TestPeriodStatusTransitions(t *testing.T) {
	t.Parallel()

	allowed := map[PeriodStatus][]PeriodStatus{
		PeriodStatusDraft:      {PeriodStatusOpen},
		PeriodStatusOpen:       {PeriodStatusProcessing, PeriodStatusDraft},
		PeriodStatusProcessing: {PeriodStatusClosed, PeriodStatusOpen},
		PeriodStatusClosed:     {},
	}
	all := []PeriodStatus{PeriodStatusDraft, PeriodStatusOpen, PeriodStatusProcessing, PeriodStatusClosed}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransition(to), "%s -> %s", from, to)
		}
	}
}

func TestPeriodStatusLifecycleFlags(t *testing.T) {
	t.Parallel()

	assert.True(t, PeriodStatusDraft.Editable())
	assert.True(t, PeriodStatusOpen.Editable())
	assert.False(t, PeriodStatusProcessing.Editable())
	assert.False(t, PeriodStatusClosed.Editable())

	assert.True(t, PeriodStatusDraft.Deletable())
	assert.False(t, PeriodStatusOpen.Deletable())

	assert.True(t, PeriodStatusClosed.Terminal())
	assert.False(t, PeriodStatusProcessing.Terminal())
}

func TestStatusValid(t *testing.T) {
	t.Parallel()

	assert.True(t, EntryStatus("computed").Valid())
	assert.False(t, EntryStatus("finalized").Valid())
	assert.True(t, PeriodStatus("processing").Valid())
	assert.False(t, PeriodStatus("archived").Valid())
}
