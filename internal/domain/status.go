package domain

// pendingExec reports whether the item may still move forward on its own
// (driver pickup or provider confirmation still outstanding).
func pendingExec(s ExecStatus) bool {
	switch s {
	case ExecPlanPending, ExecQueued, ExecSubmitting, ExecWaitConfirm:
		return true
	}
	return false
}

// DeriveGroupStatus is the group-level status as a pure function of the
// items: CANCELLED when every item is cancelled, COMPLETED when every item
// is ordered or done, FAILED when at least one item failed and none can
// still move, PROCESSING otherwise.
func DeriveGroupStatus(items []OrderSplitItem) GroupStatus {
	if len(items) == 0 {
		return GroupProcessing
	}

	allCancelled := true
	allSettled := true
	anyFailed := false
	anyPending := false

	for _, item := range items {
		if item.ExecutionStatus != ExecCancelled {
			allCancelled = false
		}
		if item.ExecutionStatus != ExecOrdered && item.ExecutionStatus != ExecDone {
			allSettled = false
		}
		if item.ExecutionStatus == ExecFailed {
			anyFailed = true
		}
		if pendingExec(item.ExecutionStatus) {
			anyPending = true
		}
	}

	switch {
	case allCancelled:
		return GroupCancelled
	case allSettled:
		return GroupCompleted
	case anyFailed && !anyPending:
		return GroupFailed
	default:
		return GroupProcessing
	}
}
