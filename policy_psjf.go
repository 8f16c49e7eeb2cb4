package schedcore

// psjfPolicy is SJF's preemptive sibling: same remaining-time ordering
// for the OPQ, but an arrival may evict a running job whose remaining
// time now exceeds the new job's. The preemption search itself lives in
// Dispatcher.NewJob, since it needs the live core slots, not just the
// OPQ ordering.
type psjfPolicy struct{}

func (psjfPolicy) Comparator() Comparator[*Job] {
	return sjfPolicy{}.Comparator()
}

func (psjfPolicy) Preempts() bool { return true }
func (psjfPolicy) Name() string   { return "PSJF" }
