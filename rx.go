package splitrc

// Rx is a handle on the rx side of a split reference count. Handles are
// created only by New and Clone, so the rx count is exactly the number of
// live Rx handles.
type Rx[T any] struct {
	in *inner[T]
}

// Clone registers a new rx handle for the same value and returns it. No
// hook fires on the way up, only on the way down.
func (h *Rx[T]) Clone() *Rx[T] {
	h.in.count.inc(rxShift)
	return &Rx[T]{in: h.in}
}

// Drop invalidates the handle and must be called exactly once. Dropping
// the last rx handle fires LastRxDropped, and if no tx handles remain
// either, destroys the value.
func (h *Rx[T]) Drop() {
	in := h.in
	h.in = nil
	switch in.count.dec(rxShift) {
	case actionNotify:
		in.notify.LastRxDropped()
	case actionRelease:
		in.notify.LastRxDropped()
		in.release()
	}
}

// Value returns the contained value. It is valid only on a handle that has
// not been dropped; the tx side reaching zero does not invalidate it.
// Access to the value itself is not synchronized by this package.
func (h *Rx[T]) Value() *T {
	return &h.in.data
}
