package schedcore

// ppriPolicy is PRI's preemptive sibling: same priority-then-arrival
// ordering for the OPQ, but an arrival may evict the lowest-urgency
// running job. The victim search lives in Dispatcher.NewJob alongside
// PSJF's, since both need the live core slots.
type ppriPolicy struct{}

func (ppriPolicy) Comparator() Comparator[*Job] {
	return priorityComparator
}

func (ppriPolicy) Preempts() bool { return true }
func (ppriPolicy) Name() string   { return "PPRI" }
