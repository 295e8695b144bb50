package overlay

// scope applies st to the host and returns the function restoring the
// state found on entry. Callers defer the returned function.
func scope(h Host, st DrawState) (restore func()) {
	prev := h.DrawState()
	h.SetDrawState(st)
	return func() {
		h.SetDrawState(prev)
	}
}
