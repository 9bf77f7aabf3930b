package eval

import "sync"

type thunkState int

const (
	// stateSuspended holds a closure that has not been forced yet.
	stateSuspended thunkState = iota
	// stateInProgress marks a thunk whose closure is being evaluated.
	// Observing it during lookup means the binding is recursive.
	stateInProgress
	// stateDone holds the evaluated result.
	stateDone
)

// Thunk is a shared, memoizable holder for a not-yet-evaluated closure.
// It is allocated once, referenced from every site that shares the
// binding, and updated from suspended to evaluated at most once.
type Thunk struct {
	mu      sync.Mutex
	state   thunkState
	closure Closure
	value   Closure
}

// NewThunk allocates a suspended thunk for c.
func NewThunk(c Closure) *Thunk {
	return &Thunk{closure: c}
}

// Closure returns the suspended closure, or false if the thunk has
// already left the suspended state.
func (t *Thunk) Closure() (Closure, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != stateSuspended {
		return Closure{}, false
	}
	return t.closure, true
}

// Begin transitions the thunk from suspended to in-progress and hands
// the closure to the caller for evaluation. Returns false if the thunk
// is not suspended, i.e. it is already being or has been evaluated.
func (t *Thunk) Begin() (Closure, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != stateSuspended {
		return Closure{}, false
	}
	t.state = stateInProgress
	c := t.closure
	t.closure = Closure{}
	return c, true
}

// Update stores the evaluated result. Returns false if the thunk was
// already updated; the first update wins and the result is immutable
// afterwards.
func (t *Thunk) Update(v Closure) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state == stateDone {
		return false
	}
	t.state = stateDone
	t.closure = Closure{}
	t.value = v
	return true
}

// Value returns the evaluated result, or false if the thunk has not
// been updated yet.
func (t *Thunk) Value() (Closure, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != stateDone {
		return Closure{}, false
	}
	return t.value, true
}
