package splitrc

import (
	"fmt"
	"os"
	"sync/atomic"
)

// Two 32-bit reference counts are packed into a single atomic 64-bit word.
// 32 bits per side is plenty: four billion live handles on one object is an
// accident, not a workload.
const (
	txShift = 32
	rxShift = 0

	rcInit = 1<<txShift + 1<<rxShift
)

// An increment that lands at or above overflowPanic is rejected with a
// panic while the count is still sane. overflowAbort can only be reached by
// swallowing roughly 2^31 of those panics; past it the word can no longer
// be trusted and the process aborts.
const (
	overflowPanic = uint32(1) << 31
	overflowAbort = ^uint32(0) - 1<<16
)

// half extracts the side selected by shift from a packed word.
func half(c uint64, shift uint) uint32 {
	return uint32(c >> shift)
}

// action is what a decrement obligates the dropping handle to do.
type action int

const (
	actionKeep    action = iota // handles of this side remain
	actionNotify                // this side exhausted, other side live
	actionRelease               // both sides exhausted
)

// splitCount is the packed pair of counts. It is the only field of the
// shared block that is ever mutated, and only through inc and dec. Go's
// sync/atomic is sequentially consistent, which is stronger than the
// acquire/release pairing the release protocol needs.
type splitCount struct {
	v atomic.Uint64
}

func (c *splitCount) init() {
	c.v.Store(rcInit)
}

// counts reads both sides as last observed.
func (c *splitCount) counts() (tx, rx uint32) {
	v := c.v.Load()
	return half(v, txShift), half(v, rxShift)
}

// fatal reports an unrecoverable protocol violation and does not return.
// Tests replace it.
var fatal = func(msg string) {
	fmt.Fprintln(os.Stderr, msg)
	os.Exit(2)
}
