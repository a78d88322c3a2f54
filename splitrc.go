package splitrc

// New allocates a shared block holding data with both counts at one and
// returns the first handle of each side.
//
// notify receives the exhaustion hooks. It is commonly the value itself;
// nil means no hooks. data is destroyed exactly once, when both handles
// and every handle cloned from them have been dropped.
func New[T any](data T, notify Notify) (*Tx[T], *Rx[T]) {
	if notify == nil {
		notify = NopNotify{}
	}
	in := &inner[T]{data: data, notify: notify}
	in.count.init()
	return &Tx[T]{in: in}, &Rx[T]{in: in}
}
