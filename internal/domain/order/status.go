package order

// ===============================
// Order Status
// ===============================

type Status string

const (
	StatusPending    Status = "Pending"
	StatusInProgress Status = "In-progress"
	StatusFinished   Status = "Finished"
)

// cycle is the only status progression: there is no terminal state,
// Finished wraps back to Pending.
var cycle = []Status{StatusPending, StatusInProgress, StatusFinished}

func InitialStatus() Status {
	return StatusPending
}

// All returns the statuses in cycle order, for filter dropdowns.
func All() []Status {
	out := make([]Status, len(cycle))
	copy(out, cycle)
	return out
}

func IsValid(s Status) bool {
	for _, v := range cycle {
		if v == s {
			return true
		}
	}
	return false
}

// Next returns the status that follows s in the cycle. An unknown status
// (only possible for rows written outside the application) restarts at Pending.
func Next(s Status) Status {
	for i, v := range cycle {
		if v == s {
			return cycle[(i+1)%len(cycle)]
		}
	}
	return StatusPending
}
