package schedcore

// sjfPolicy orders the OPQ by remaining time ascending, FIFO among ties.
// Non-preemptive: a shorter job that arrives mid-execution waits in the
// OPQ for the running job to finish.
type sjfPolicy struct{}

func (sjfPolicy) Comparator() Comparator[*Job] {
	return func(a, b *Job) int {
		switch {
		case a.Remaining < b.Remaining:
			return -1
		case a.Remaining > b.Remaining:
			return 1
		default:
			return 1 // tie: FIFO append
		}
	}
}

func (sjfPolicy) Preempts() bool { return false }
func (sjfPolicy) Name() string   { return "SJF" }
