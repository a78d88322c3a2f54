package splitrc

import (
	"testing"

	"github.com/zeebo/assert"
)

// interceptFatal turns the abort path into a panic for the duration of the
// test so the violation paths can be exercised in-process.
func interceptFatal(t *testing.T) {
	prev := fatal
	fatal = func(msg string) { panic(msg) }
	t.Cleanup(func() { fatal = prev })
}

func panics(fn func()) (panicked bool) {
	defer func() { panicked = recover() != nil }()
	fn()
	return false
}

func TestCountInit(t *testing.T) {
	var c splitCount
	c.init()

	tx, rx := c.counts()
	assert.Equal(t, tx, uint32(1))
	assert.Equal(t, rx, uint32(1))
}

func TestCountHalves(t *testing.T) {
	const v = 7<<txShift | 9<<rxShift
	assert.Equal(t, half(v, txShift), uint32(7))
	assert.Equal(t, half(v, rxShift), uint32(9))

	var c splitCount
	c.init()
	c.inc(txShift)
	c.inc(txShift)
	c.inc(rxShift)

	tx, rx := c.counts()
	assert.Equal(t, tx, uint32(3))
	assert.Equal(t, rx, uint32(2))
}

func TestCountDecisions(t *testing.T) {
	var c splitCount

	// the side that empties first notifies, the second releases.
	c.init()
	assert.Equal(t, c.dec(txShift), actionNotify)
	assert.Equal(t, c.dec(rxShift), actionRelease)

	c.init()
	assert.Equal(t, c.dec(rxShift), actionNotify)
	assert.Equal(t, c.dec(txShift), actionRelease)

	// extra handles on a side keep it alive.
	c.init()
	c.inc(rxShift)
	assert.Equal(t, c.dec(rxShift), actionKeep)
	assert.Equal(t, c.dec(rxShift), actionNotify)
	assert.Equal(t, c.dec(txShift), actionRelease)
}

func TestCountOverflowPanics(t *testing.T) {
	var c splitCount
	c.v.Store(uint64(overflowPanic)<<txShift | 1<<rxShift)

	assert.That(t, panics(func() { c.inc(txShift) }))

	// the rejected increment must not stick.
	tx, rx := c.counts()
	assert.Equal(t, tx, overflowPanic)
	assert.Equal(t, rx, uint32(1))

	// the other side is unaffected and still usable.
	c.inc(rxShift)
	_, rx = c.counts()
	assert.Equal(t, rx, uint32(2))
}

func TestCountOverflowAborts(t *testing.T) {
	interceptFatal(t)

	var c splitCount
	c.v.Store(uint64(overflowAbort)<<txShift | 1<<rxShift)
	assert.That(t, panics(func() { c.inc(txShift) }))
}

func TestCountUnderflowAborts(t *testing.T) {
	interceptFatal(t)

	var c splitCount
	c.v.Store(1 << txShift) // tx=1, rx=0
	assert.That(t, panics(func() { c.dec(rxShift) }))
}
