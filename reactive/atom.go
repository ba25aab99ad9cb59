package reactive

// Atom counts the observers of a piece of state and fires a hook when it
// becomes observed (first observer) and when it becomes unobserved (last
// observer gone).
type Atom struct {
	name         string
	observers    int
	onObserved   func()
	onUnobserved func()
}

// NewAtom creates an atom. Either hook may be nil.
func NewAtom(name string, onObserved, onUnobserved func()) *Atom {
	return &Atom{name: name, onObserved: onObserved, onUnobserved: onUnobserved}
}

// Name returns the diagnostic name given to [NewAtom].
func (a *Atom) Name() string { return a.name }

// Observed reports whether at least one observer is attached.
func (a *Atom) Observed() bool { return a.observers > 0 }

// Observers returns the number of attached observers.
func (a *Atom) Observers() int { return a.observers }

// Retain registers one observer and returns the matching release
// function. Release is idempotent.
func (a *Atom) Retain() (release func()) {
	a.observers++
	if a.observers == 1 && a.onObserved != nil {
		a.onObserved()
	}
	released := false
	return func() {
		if released {
			return
		}
		released = true
		a.observers--
		if a.observers == 0 && a.onUnobserved != nil {
			a.onUnobserved()
		}
	}
}
