package alder

import "sync/atomic"

// Direction is one of the four camera movement directions.
type Direction uint8

const (
	North Direction = iota // +Y in world space
	South                  // -Y
	East                   // +X
	West                   // -X
)

// MotionInput holds the pressed state of the four movement directions as
// independent atomic flags. Each flag has a single writer (the input/consumer
// context) and a single reader (the producer loop), so relaxed load/store
// semantics are sufficient; staleness by one frame is acceptable for an
// interactive control loop.
type MotionInput struct {
	north atomic.Bool
	south atomic.Bool
	east  atomic.Bool
	west  atomic.Bool
}

// Set stores the pressed state for a direction.
func (m *MotionInput) Set(d Direction, pressed bool) {
	switch d {
	case North:
		m.north.Store(pressed)
	case South:
		m.south.Store(pressed)
	case East:
		m.east.Store(pressed)
	case West:
		m.west.Store(pressed)
	}
}

// Pressed reports the stored state for a direction.
func (m *MotionInput) Pressed(d Direction) bool {
	switch d {
	case North:
		return m.north.Load()
	case South:
		return m.south.Load()
	case East:
		return m.east.Load()
	case West:
		return m.west.Load()
	}
	return false
}

// Displacement reads all four flags once and derives the per-tick camera
// displacement (east - west, north - south). This yields the eight
// unit/diagonal directions plus zero, and opposite simultaneous presses
// cancel exactly.
func (m *MotionInput) Displacement() (dx, dy int) {
	if m.east.Load() {
		dx++
	}
	if m.west.Load() {
		dx--
	}
	if m.north.Load() {
		dy++
	}
	if m.south.Load() {
		dy--
	}
	return dx, dy
}
