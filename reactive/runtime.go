package reactive

import "sync"

// flusher is implemented by anything that buffers changes during a
// transaction and delivers them when the outermost scope ends.
type flusher interface {
	flush()
}

// Runtime tracks transaction depth and the set of arrays with pending
// notifications.
//
// The zero value is not usable; create one with [NewRuntime] or share
// [Default].
type Runtime struct {
	mu       sync.Mutex
	depth    int
	flushing bool
	pending  []flusher
	queued   map[flusher]bool
}

var defaultRuntime = NewRuntime()

// NewRuntime creates an independent runtime. Arrays bound to different
// runtimes never share a batch.
func NewRuntime() *Runtime {
	return &Runtime{queued: make(map[flusher]bool)}
}

// Default returns the process-wide runtime used when nil is passed where
// a *Runtime is expected.
//
// Every array on the default runtime shares one transaction depth and one
// flush loop, so all of them must be used from a single goroutine. Give
// state confined to other goroutines its own [NewRuntime].
func Default() *Runtime { return defaultRuntime }

func orDefault(rt *Runtime) *Runtime {
	if rt == nil {
		return defaultRuntime
	}
	return rt
}

// Transaction runs fn as one notification unit on the default runtime.
func Transaction(fn func()) { defaultRuntime.Transaction(fn) }

// Transaction runs fn with notifications deferred until the outermost
// transaction ends. Observers see the combined result of fn, never an
// intermediate state. A panic in fn still closes the scope.
func (r *Runtime) Transaction(fn func()) {
	r.Begin()
	defer r.End()
	fn()
}

// TransactionValue runs fn inside a transaction on rt and returns its
// result.
func TransactionValue[R any](rt *Runtime, fn func() R) R {
	var out R
	orDefault(rt).Transaction(func() { out = fn() })
	return out
}

// Begin opens a notification batch. Every Begin must be paired with an
// [Runtime.End]; prefer [Runtime.Transaction] which does the pairing.
func (r *Runtime) Begin() {
	r.mu.Lock()
	r.depth++
	r.mu.Unlock()
}

// End closes a notification batch. Closing the outermost batch delivers
// every pending notification. Unbalanced calls are ignored.
func (r *Runtime) End() {
	r.mu.Lock()
	if r.depth == 0 {
		r.mu.Unlock()
		return
	}
	r.depth--
	if r.depth > 0 || r.flushing {
		r.mu.Unlock()
		return
	}
	r.flushing = true
	r.mu.Unlock()

	defer func() {
		r.mu.Lock()
		r.flushing = false
		r.mu.Unlock()
	}()
	r.drain()
}

// drain delivers pending batches until the queue stays empty. Listeners
// that write while being notified enqueue again and are picked up by the
// next round.
func (r *Runtime) drain() {
	for {
		r.mu.Lock()
		if len(r.pending) == 0 {
			r.mu.Unlock()
			return
		}
		batch := r.pending
		r.pending = nil
		clear(r.queued)
		r.mu.Unlock()

		for _, f := range batch {
			f.flush()
		}
	}
}

// InTransaction reports whether a batch is currently open.
func (r *Runtime) InTransaction() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.depth > 0
}

// schedule queues f for the next flush. Queuing twice in one batch is a
// no-op.
func (r *Runtime) schedule(f flusher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.queued[f] {
		return
	}
	r.queued[f] = true
	r.pending = append(r.pending, f)
}
