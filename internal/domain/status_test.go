package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func itemsWith(statuses ...ExecStatus) []OrderSplitItem {
	items := make([]OrderSplitItem, 0, len(statuses))
	for _, s := range statuses {
		items = append(items, OrderSplitItem{ExecutionStatus: s})
	}
	return items
}

func TestDeriveGroupStatus(t *testing.T) {
	tests := []struct {
		name     string
		statuses []ExecStatus
		expected GroupStatus
	}{
		{
			name:     "No items keeps processing",
			statuses: nil,
			expected: GroupProcessing,
		},
		{
			name:     "All cancelled",
			statuses: []ExecStatus{ExecCancelled, ExecCancelled},
			expected: GroupCancelled,
		},
		{
			name:     "All ordered or done",
			statuses: []ExecStatus{ExecOrdered, ExecDone},
			expected: GroupCompleted,
		},
		{
			name:     "Failure with nothing left in flight",
			statuses: []ExecStatus{ExecFailed, ExecOrdered},
			expected: GroupFailed,
		},
		{
			name:     "Failure next to a cancelled item",
			statuses: []ExecStatus{ExecFailed, ExecCancelled},
			expected: GroupFailed,
		},
		{
			name:     "Failure with a sibling still in flight",
			statuses: []ExecStatus{ExecFailed, ExecQueued},
			expected: GroupProcessing,
		},
		{
			name:     "Drafted item keeps the group open",
			statuses: []ExecStatus{ExecPlanPending, ExecOrdered},
			expected: GroupProcessing,
		},
		{
			name:     "Submission in flight keeps the group open",
			statuses: []ExecStatus{ExecSubmitting},
			expected: GroupProcessing,
		},
		{
			name:     "Waiting for confirmation keeps the group open",
			statuses: []ExecStatus{ExecWaitConfirm, ExecOrdered},
			expected: GroupProcessing,
		},
		{
			name:     "Cancelled sibling does not complete the group",
			statuses: []ExecStatus{ExecCancelled, ExecOrdered},
			expected: GroupProcessing,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, DeriveGroupStatus(itemsWith(tt.statuses...)))
		})
	}
}

// Whatever the mix, the derived status must always be one of the four
// reachable group states and terminal only when no item can still move.
func TestDeriveGroupStatus_TerminalImpliesNothingPending(t *testing.T) {
	all := []ExecStatus{
		ExecPlanPending, ExecQueued, ExecSubmitting, ExecWaitConfirm,
		ExecOrdered, ExecDone, ExecFailed, ExecCancelled,
	}

	for _, a := range all {
		for _, b := range all {
			status := DeriveGroupStatus(itemsWith(a, b))

			if pendingExec(a) || pendingExec(b) {
				assert.Equal(t, GroupProcessing, status, "pending pair %s/%s must stay processing", a, b)
			} else {
				assert.NotEqual(t, GroupConfirmed, status, "derivation never yields CONFIRMED for %s/%s", a, b)
			}
		}
	}
}
