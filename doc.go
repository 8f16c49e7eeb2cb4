// Package schedcore implements the placement and preemption core of a
// multi-core CPU job scheduler for use inside a discrete-event simulator.
//
// The simulator owns time and drives the core strictly through the
// callbacks on Dispatcher: NewJob, JobFinished, and QuantumExpired. The
// core never reads a wall clock, never blocks, and never spawns a
// goroutine on the scheduling path — every decision is a pure function
// of the dispatcher's current state and the simulator-supplied time.
//
// Six classical policies are supported: FCFS, SJF, PSJF, PRI, PPRI, and
// RR. Each parameterises an OrderedQueue comparator and, for PSJF and
// PPRI, a preemption predicate; see Policy and the policy_*.go files.
package schedcore
