package schedcore

// NeverDispatched is the sentinel value for Job.FirstDispatch before a job
// has ever been placed on a core.
const NeverDispatched = -1

// State is a diagnostic-only label for a job's lifecycle stage. It never
// drives a scheduling decision — membership in a core slot or the OPQ is
// the only thing the dispatcher actually consults — but it makes
// Snapshot output self-describing (String does not print it).
type State int

const (
	// Pending means the job sits in the OPQ, not running.
	Pending State = iota
	// Running means the job currently occupies a core slot.
	Running
	// Completed means the job has finished and is no longer tracked.
	Completed
)

func (s State) String() string {
	switch s {
	case Pending:
		return "pending"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return "unknown"
	}
}

// Job is a single unit of scheduled work. Exactly one of a core slot or
// the OPQ owns a Job at any instant while it is alive.
type Job struct {
	ID       int
	Arrival  int
	Length   int
	Priority int

	// Remaining is the job's outstanding service time. It only changes
	// under PSJF, where a running job's remaining time is re-derived from
	// LastObserved on every arrival event that finds no idle core.
	Remaining int

	// FirstDispatch is NeverDispatched until the job is first installed
	// on a core, at which point it is fixed for the job's lifetime —
	// except that a PPRI/PSJF preemption occurring in the very tick a job
	// was placed rolls this back to NeverDispatched, per the same-tick
	// immunity rule in the dispatcher.
	FirstDispatch int

	// LastObserved is the simulator time as of which Remaining is known
	// to be accurate. Updated whenever the job is running and another
	// arrival event forces a PSJF remaining-time recomputation.
	LastObserved int

	state State
}

func newJob(id, arrival, length, priority, now int) *Job {
	return &Job{
		ID:            id,
		Arrival:       arrival,
		Length:        length,
		Priority:      priority,
		Remaining:     length,
		FirstDispatch: NeverDispatched,
		LastObserved:  now,
		state:         Pending,
	}
}

// State reports the job's current lifecycle stage. Diagnostic only.
func (j *Job) State() State {
	return j.state
}

// JobView is a read-only, copyable snapshot of a Job, returned by
// Dispatcher.Snapshot so callers can inspect scheduler state without
// retaining a pointer into the dispatcher's live data.
type JobView struct {
	ID            int
	Arrival       int
	Length        int
	Priority      int
	Remaining     int
	FirstDispatch int
	State         State
	CoreID        int // -1 when the job is pending, not running
}

func (j *Job) view(coreID int) JobView {
	return JobView{
		ID:            j.ID,
		Arrival:       j.Arrival,
		Length:        j.Length,
		Priority:      j.Priority,
		Remaining:     j.Remaining,
		FirstDispatch: j.FirstDispatch,
		State:         j.state,
		CoreID:        coreID,
	}
}
