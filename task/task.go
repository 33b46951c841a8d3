// Package task gives every network call site the same observable lifecycle:
// idle, pending, success, failure. A task that is discarded drops any
// completion that is still in flight instead of applying it, which is how a
// form that has been torn down avoids updating state nobody is looking at.
package task

import "sync"

// State is the observable state of a call.
type State int

const (
	StateIdle State = iota
	StatePending
	StateSuccess
	StateFailure
)

// Task tracks one logical call site. The zero value is an idle task.
type Task struct {
	mu    sync.Mutex
	state State
	gen   uint64
	err   error
}

// Begin claims the task for a new call. It returns the claim token to pass
// to Finish, and false when a call is already pending so the caller can
// block repeat submission.
func (t *Task) Begin() (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StatePending {
		return 0, false
	}
	t.gen++
	t.state = StatePending
	t.err = nil
	return t.gen, true
}

// Finish records the outcome of the call claimed with token. It reports
// whether the outcome was applied; a stale token (the task was discarded or
// re-begun) is dropped.
func (t *Task) Finish(token uint64, err error) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if token != t.gen || t.state != StatePending {
		return false
	}
	if err != nil {
		t.state = StateFailure
		t.err = err
	} else {
		t.state = StateSuccess
	}
	return true
}

// Discard invalidates any in-flight call and resets the task to idle. Used
// when the owning component goes away before the call resolves.
func (t *Task) Discard() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.gen++
	t.state = StateIdle
	t.err = nil
}

// State returns the current state.
func (t *Task) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Pending reports whether a call is in flight.
func (t *Task) Pending() bool {
	return t.State() == StatePending
}

// Err returns the error of the last failed call, or nil.
func (t *Task) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}
