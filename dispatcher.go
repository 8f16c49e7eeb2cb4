package schedcore

import (
	"fmt"
	"sync"
)

// Option configures a Dispatcher at construction time, following the
// corpus's functional-options-over-a-config-struct convention.
type Option func(*config)

type config struct {
	// quantumHint is informational only: the core never times a
	// quantum itself (the simulator does), but callers that want it
	// echoed back from String can set it.
	quantumHint int
}

// WithQuantumHint records the RR quantum length for diagnostic display,
// surfaced by String(). It has no effect on scheduling: the simulator,
// not the core, decides when a quantum expires and calls QuantumExpired.
func WithQuantumHint(ticks int) Option {
	return func(c *config) {
		c.quantumHint = ticks
	}
}

// Dispatcher is the scheduling core: the fixed vector of core slots, the
// OPQ of pending jobs, the active policy, and the running statistics. It
// is driven exclusively by the simulator through NewJob, JobFinished,
// and QuantumExpired, one event at a time, in non-decreasing time.
//
// Dispatcher is safe for concurrent read access (Stats, Snapshot,
// String) racing with a single goroutine driving the event methods, the
// way the corpus guards an otherwise single-writer component's metrics
// with a mutex. It is not safe for concurrent *event* calls: the
// single-threaded-cooperative contract in the design means the simulator
// must serialize NewJob/JobFinished/QuantumExpired itself.
type Dispatcher struct {
	mu sync.RWMutex

	policy   Policy
	behavior schedulingPolicy
	slots    []*Job
	queue    *OrderedQueue[*Job]
	stats    statAccumulators
	cfg      config
	closed   bool // set by Close; every event method rejects calls once true
}

// New allocates cores empty slots and installs the OPQ comparator and
// preemption predicate for policy. cores must be positive and policy
// must be one of the six registered values; both are checked here
// because they are cheap and a bad value would otherwise yield a
// permanently-unusable dispatcher. Every other precondition in the
// design's error-handling section remains caller-trusted undefined
// behavior, detected best-effort in the event methods rather than here.
func New(cores int, policy Policy, opts ...Option) (*Dispatcher, error) {
	if cores <= 0 {
		return nil, newError("New", -1, -1, ErrInvalidCores)
	}
	behavior, ok := lookupPolicy(policy)
	if !ok {
		return nil, newError("New", -1, -1, ErrUnknownPolicy)
	}

	d := &Dispatcher{
		policy:   policy,
		behavior: behavior,
		slots:    make([]*Job, cores),
		queue:    NewOrderedQueue[*Job](behavior.Comparator()),
	}
	for _, opt := range opts {
		opt(&d.cfg)
	}
	return d, nil
}

// Cores reports the fixed number of core slots.
func (d *Dispatcher) Cores() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.slots)
}

// Policy reports the active scheduling policy.
func (d *Dispatcher) Policy() Policy {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.policy
}

// NewJob handles a job-arrival event. It returns the id of the core the
// job lands on, or -1 if the job was enqueued in the OPQ instead (see
// §4.2.2's placement rules), and a non-nil error wrapping ErrClosed if
// called after Close.
func (d *Dispatcher) NewJob(id, now, length, priority int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return -1, newError("NewJob", -1, id, ErrClosed)
	}

	j := newJob(id, now, length, priority, now)

	// 1. Idle-core placement, lowest index first.
	for i, slot := range d.slots {
		if slot == nil {
			d.install(i, j, now)
			return i, nil
		}
	}

	// 2/3. Preemption, policy-gated.
	if d.behavior.Preempts() {
		if victim := d.pickVictim(j, now); victim >= 0 {
			d.preempt(victim, j, now)
			return victim, nil
		}
	}

	// 4. Default: join the OPQ.
	d.queue.Offer(j)
	return -1, nil
}

// pickVictim returns the slot index of the preemption victim for the
// arriving job j, or -1 if no slot is a valid or losing victim. Same-tick
// immunity excludes any slot whose occupant arrived at now.
func (d *Dispatcher) pickVictim(j *Job, now int) int {
	switch d.policy {
	case PPRI:
		return d.pickPriorityVictim(j, now)
	case PSJF:
		return d.pickRemainingVictim(j, now)
	default:
		return -1
	}
}

// pickPriorityVictim implements §4.2.2 rule 2: the victim is the
// slot whose job has the numerically largest (least urgent) priority,
// tie-broken by the later (younger) arrival. The new job must strictly
// beat the victim's priority to preempt.
func (d *Dispatcher) pickPriorityVictim(j *Job, now int) int {
	victim := -1
	for i, slot := range d.slots {
		if slot == nil || slot.Arrival == now {
			continue
		}
		if victim == -1 {
			victim = i
			continue
		}
		cur := d.slots[victim]
		if slot.Priority > cur.Priority ||
			(slot.Priority == cur.Priority && slot.Arrival > cur.Arrival) {
			victim = i
		}
	}
	if victim == -1 || d.slots[victim].Priority <= j.Priority {
		return -1
	}
	return victim
}

// pickRemainingVictim implements §4.2.2 rule 3: remaining time for every
// eligible running job is first refreshed against now, then the victim
// is the slot with the strictly largest remaining time (first-found wins
// ties, so the lowest slot index is retained).
func (d *Dispatcher) pickRemainingVictim(j *Job, now int) int {
	for _, slot := range d.slots {
		if slot == nil || slot.Arrival == now {
			continue
		}
		slot.Remaining -= now - slot.LastObserved
		slot.LastObserved = now
	}

	victim := -1
	for i, slot := range d.slots {
		if slot == nil || slot.Arrival == now {
			continue
		}
		if victim == -1 || slot.Remaining > d.slots[victim].Remaining {
			victim = i
		}
	}
	if victim == -1 || d.slots[victim].Remaining <= j.Remaining {
		return -1
	}
	return victim
}

// preempt evicts the job on slot victim back to the OPQ and installs j
// in its place. If the victim had been first-dispatched this very tick
// (placed but never truly run), its first-dispatch sentinel is restored
// so a later re-dispatch recomputes its response time.
func (d *Dispatcher) preempt(victim int, j *Job, now int) {
	old := d.slots[victim]
	old.state = Pending
	if old.FirstDispatch == now {
		old.FirstDispatch = NeverDispatched
	}
	d.queue.Offer(old)
	d.install(victim, j, now)
}

// install places j on slot, marking its first dispatch if this is the
// first time it has ever run.
func (d *Dispatcher) install(slot int, j *Job, now int) {
	if j.FirstDispatch == NeverDispatched {
		j.FirstDispatch = now
	}
	j.state = Running
	d.slots[slot] = j
}

// JobFinished handles a job-completion event: accumulates statistics for
// the finishing job, frees its slot, and if the OPQ is non-empty installs
// its head into the freed slot. It returns the installed job's id (-1 if
// the core goes idle), plus a non-nil error if the dispatcher is closed,
// coreID is out of range, or coreID does not currently hold id — a
// best-effort precondition check per §7's expansion; state is left
// untouched when an error is returned.
func (d *Dispatcher) JobFinished(coreID, id, now int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return -1, newError("JobFinished", coreID, id, ErrClosed)
	}
	if coreID < 0 || coreID >= len(d.slots) {
		return -1, newError("JobFinished", coreID, id, ErrInvalidCore)
	}
	j := d.slots[coreID]
	if j == nil || j.ID != id {
		return -1, newError("JobFinished", coreID, id, ErrUnknownJob)
	}

	d.stats.recordCompletion(j, now)
	j.state = Completed
	d.slots[coreID] = nil

	next, ok := d.queue.Poll()
	if !ok {
		return -1, nil
	}
	next.LastObserved = now
	if next.FirstDispatch == NeverDispatched {
		next.FirstDispatch = now
	}
	next.state = Running
	d.slots[coreID] = next
	return next.ID, nil
}

// QuantumExpired handles a quantum-expiry event, valid only under RR. If
// the slot holds a job, it is enqueued at the OPQ tail (FIFO, guaranteed
// by the FCFS-style comparator RR installs); the OPQ head is then
// installed into the slot. Returns -1 if both the slot and OPQ are empty,
// and a non-nil error if the dispatcher is closed, coreID is out of
// range, or the active policy isn't RR.
func (d *Dispatcher) QuantumExpired(coreID, now int) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return -1, newError("QuantumExpired", coreID, -1, ErrClosed)
	}
	if d.policy != RR {
		return -1, newError("QuantumExpired", coreID, -1, ErrWrongPolicy)
	}
	if coreID < 0 || coreID >= len(d.slots) {
		return -1, newError("QuantumExpired", coreID, -1, ErrInvalidCore)
	}

	current := d.slots[coreID]
	if current == nil && d.queue.Size() == 0 {
		return -1, nil
	}

	if current != nil {
		current.state = Pending
		d.queue.Offer(current)
		d.slots[coreID] = nil
	}

	next, ok := d.queue.Poll()
	if !ok {
		return -1, nil
	}
	if next.FirstDispatch == NeverDispatched {
		next.FirstDispatch = now
	}
	next.state = Running
	d.slots[coreID] = next
	return next.ID, nil
}

// AvgWaiting returns the mean waiting time over all completed jobs, or
// 0.0 if none have completed.
func (d *Dispatcher) AvgWaiting() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats.avgWaiting()
}

// AvgTurnaround returns the mean turnaround time over all completed jobs,
// or 0.0 if none have completed.
func (d *Dispatcher) AvgTurnaround() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats.avgTurnaround()
}

// AvgResponse returns the mean response time over all completed jobs, or
// 0.0 if none have completed.
func (d *Dispatcher) AvgResponse() float64 {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats.avgResponse()
}

// Stats returns all running statistics together, so a caller doesn't
// need three locked calls to get a consistent view.
func (d *Dispatcher) Stats() Stats {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.stats.snapshot()
}

// Snapshot returns a read-only view of every live job: those running on
// a core and those pending in the OPQ, in OPQ order. It has no semantic
// effect on the dispatcher.
func (d *Dispatcher) Snapshot() []JobView {
	d.mu.RLock()
	defer d.mu.RUnlock()

	views := make([]JobView, 0, len(d.slots)+d.queue.Size())
	for i, slot := range d.slots {
		if slot != nil {
			views = append(views, slot.view(i))
		}
	}
	for i := 0; i < d.queue.Size(); i++ {
		j, ok := d.queue.At(i)
		if !ok {
			break
		}
		views = append(views, j.view(-1))
	}
	return views
}

// String renders a short diagnostic summary. It has no semantic effect.
func (d *Dispatcher) String() string {
	views := d.Snapshot()
	d.mu.RLock()
	policy := d.policy
	quantumHint := d.cfg.quantumHint
	d.mu.RUnlock()

	out := fmt.Sprintf("%s dispatcher:", policy)
	if quantumHint > 0 {
		out += fmt.Sprintf(" (quantum=%d)", quantumHint)
	}
	for _, v := range views {
		if v.CoreID >= 0 {
			out += fmt.Sprintf(" [core %d: job %d]", v.CoreID, v.ID)
		} else {
			out += fmt.Sprintf(" (pending: job %d)", v.ID)
		}
	}
	return out
}

// Close releases the OPQ and every occupied slot. After Close no other
// method is valid; it satisfies io.Closer the way the corpus closes its
// long-lived resources.
func (d *Dispatcher) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.queue.Destroy()
	for i := range d.slots {
		d.slots[i] = nil
	}
	d.closed = true
	return nil
}
