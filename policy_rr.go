package schedcore

// rrPolicy shares FCFS's FIFO ordering: quantum expiry, not the
// comparator, is what gives round robin its rotation. RR never preempts
// on arrival; QuantumExpired handles rotation separately.
type rrPolicy struct{}

func (rrPolicy) Comparator() Comparator[*Job] { return fifoComparator }
func (rrPolicy) Preempts() bool               { return false }
func (rrPolicy) Name() string                 { return "RR" }
