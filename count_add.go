//go:build !splitrc_cas

package splitrc

// This engine spends exactly one atomic add per operation, making clone and
// drop wait-free. Overflow is detected from the value the add returns: in
// the panic zone the add is undone and the caller panics with the count
// intact. Landing in the abort zone means the word can no longer be
// restored, so the process aborts.

// inc adds one to the side selected by shift.
func (c *splitCount) inc(shift uint) {
	old := c.v.Add(1<<shift) - 1<<shift
	if half(old, shift) < overflowPanic {
		return
	}
	c.incOverflow(old, shift)
}

func (c *splitCount) incOverflow(old uint64, shift uint) {
	if half(old, shift) >= overflowAbort {
		fatal("splitrc: reference count overflow")
	}
	c.v.Add(^uint64(1<<shift) + 1)
	panic("splitrc: reference count overflow")
}

// dec subtracts one from the side selected by shift and reports what the
// caller must do. The decision comes from the packed word the subtraction
// observed: the atomic total order on the word guarantees that whichever of
// the two final decrements lands second sees the other side already at
// zero, so exactly one caller is told to release.
func (c *splitCount) dec(shift uint) action {
	old := c.v.Add(^uint64(1<<shift)+1) + 1<<shift
	if half(old, shift) == 0 {
		// The count was already zero: a handle was dropped twice and
		// the subtraction has corrupted the word.
		fatal("splitrc: handle dropped twice")
	}
	switch {
	case half(old, shift) != 1:
		return actionKeep
	case half(old, 32-shift) != 0:
		return actionNotify
	default:
		return actionRelease
	}
}
