package reactive

// Action wraps fn so that every call runs inside one transaction on rt
// (nil selects [Default]). Use it for methods that perform several
// writes and should notify once.
func Action(rt *Runtime, fn func()) func() {
	rt = orDefault(rt)
	return func() { rt.Transaction(fn) }
}

// Action1 is [Action] for functions taking one argument.
func Action1[A any](rt *Runtime, fn func(A)) func(A) {
	rt = orDefault(rt)
	return func(arg A) {
		rt.Transaction(func() { fn(arg) })
	}
}
