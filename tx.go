package splitrc

// Tx is a handle on the tx side of a split reference count. Handles are
// created only by New and Clone, so the tx count is exactly the number of
// live Tx handles.
type Tx[T any] struct {
	in *inner[T]
}

// Clone registers a new tx handle for the same value and returns it. No
// hook fires on the way up, only on the way down.
func (h *Tx[T]) Clone() *Tx[T] {
	h.in.count.inc(txShift)
	return &Tx[T]{in: h.in}
}

// Drop invalidates the handle and must be called exactly once. Dropping
// the last tx handle fires LastTxDropped, and if no rx handles remain
// either, destroys the value.
func (h *Tx[T]) Drop() {
	in := h.in
	h.in = nil
	switch in.count.dec(txShift) {
	case actionNotify:
		in.notify.LastTxDropped()
	case actionRelease:
		in.notify.LastTxDropped()
		in.release()
	}
}

// Value returns the contained value. It is valid only on a handle that has
// not been dropped; the rx side reaching zero does not invalidate it.
// Access to the value itself is not synchronized by this package.
func (h *Tx[T]) Value() *T {
	return &h.in.data
}
