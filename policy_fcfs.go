package schedcore

// fcfsPolicy runs jobs in pure arrival order and never preempts.
type fcfsPolicy struct{}

func (fcfsPolicy) Comparator() Comparator[*Job] { return fifoComparator }
func (fcfsPolicy) Preempts() bool               { return false }
func (fcfsPolicy) Name() string                 { return "FCFS" }
