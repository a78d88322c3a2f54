package splitrc

// Notify is the capability passed to New so the contained value can learn
// when either side's population reaches zero. Each hook is called exactly
// once per lifetime, on whichever goroutine dropped that side's last
// handle, and its triggering decrement is ordered strictly before the
// decrement that destroys the value.
//
// The opposite side may still be fully live while a hook runs: its handles
// may be cloning, dropping, and touching the value concurrently, so a hook
// must not assume exclusive access. A hook must also not drop the last
// handle of the opposite side; that re-enters the release path mid-hook,
// and no runtime detection is attempted.
type Notify interface {
	// LastTxDropped is called when the tx count reaches zero.
	LastTxDropped()

	// LastRxDropped is called when the rx count reaches zero.
	LastRxDropped()
}

// NopNotify implements Notify and does nothing. Embed it to implement only
// the hooks you care about.
type NopNotify struct{}

func (NopNotify) LastTxDropped() {}
func (NopNotify) LastRxDropped() {}

// Destructor is implemented by values that must run cleanup once both
// sides have dropped their last handle. Destroy is called exactly once,
// after both Notify hooks have been triggered. If the two sides' final
// drops race, the earlier side's hook may still be running on its own
// goroutine when Destroy starts; hooks and destructor coordinate through
// the value itself if that matters.
//
// The check is made against the value as stored, so a value whose Destroy
// has a pointer receiver should be handed to New as a pointer.
type Destructor interface {
	Destroy()
}
