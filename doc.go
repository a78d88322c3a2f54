// package splitrc provides a reference count that is split into two halves.
//
// Consider a queue shared between producers and consumers. A plain reference
// count can tell you when the last handle goes away, but it cannot tell the
// queue that all of the producers are gone (time to drain and report EOF) or
// that all of the consumers are gone (time to stop accepting writes):
//
//	type Queue struct {
//		refs int64 // producers and consumers, indistinguishable
//		...
//	}
//
//	func (q *Queue) Release() {
//		if atomic.AddInt64(&q.refs, -1) == 0 {
//			// too late to react to "no more consumers": the
//			// producers are already gone too.
//		}
//	}
//
// This package tracks the two populations separately, packed into a single
// word so that both counts are adjusted and observed atomically without a
// lock:
//
//	type Queue struct{ ... }
//
//	func (q *Queue) LastTxDropped() { q.noMoreWrites() }
//	func (q *Queue) LastRxDropped() { q.noMoreReads() }
//
//	q := &Queue{...}
//	tx, rx := splitrc.New(q, q)
//
// Cloning tx or rx bumps that side's count. Dropping the last handle of a
// side fires that side's hook exactly once, and dropping the last handle
// overall additionally destroys the value (running its Destructor, if it
// has one) exactly once, no matter how the drops race across goroutines.
//
// Every operation is a single atomic instruction in the common case: there
// are no locks, nothing ever blocks, and the primitive is safe to use from
// any number of goroutines. The contained value itself is not synchronized
// by this package in any way; splitrc manages only its lifetime, and the
// value must supply its own discipline for interior access.
package splitrc
