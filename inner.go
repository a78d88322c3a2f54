package splitrc

// inner is the shared block that every handle of both sides points at.
// data and notify are written once at construction; the packed count is
// the only field mutated afterwards, and only through its own methods.
type inner[T any] struct {
	count  splitCount
	data   T
	notify Notify
}

// release destroys the contained value. It runs exactly once, on whichever
// goroutine's drop observed both sides at zero. The block itself is
// reclaimed by the garbage collector once the dropped handles let go of
// it, so nothing here is zeroed; a hook racing the release on the other
// side always reads an intact block.
func (in *inner[T]) release() {
	if d, ok := any(in.data).(Destructor); ok {
		d.Destroy()
	}
}
