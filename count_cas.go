//go:build splitrc_cas

package splitrc

// This engine is for targets whose widest native atomic is narrower than
// the packed word, where a 64-bit add compiles to a retry loop anyway. Each
// operation loads the word, adjusts one half, and retries the swap on
// contention: lock-free rather than wait-free. In exchange, overflow and
// underflow are rejected before the word is written, so a protocol
// violation can never corrupt the other side's count.

// inc adds one to the side selected by shift.
func (c *splitCount) inc(shift uint) {
	for {
		old := c.v.Load()
		if n := half(old, shift); n >= overflowPanic {
			if n >= overflowAbort {
				fatal("splitrc: reference count overflow")
			}
			panic("splitrc: reference count overflow")
		}
		if c.v.CompareAndSwap(old, old+1<<shift) {
			return
		}
	}
}

// dec subtracts one from the side selected by shift and reports what the
// caller must do. The swapped-out word plays the same role as the fetched
// value on the add engine: exactly one of the two final decrements sees the
// other side already at zero.
func (c *splitCount) dec(shift uint) action {
	for {
		old := c.v.Load()
		if half(old, shift) == 0 {
			fatal("splitrc: handle dropped twice")
			return actionKeep
		}
		if !c.v.CompareAndSwap(old, old-1<<shift) {
			continue
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
}
