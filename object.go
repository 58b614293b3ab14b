package alder

import "fmt"

// GameObject is a positioned aggregate of components. It has no identity of
// its own; identity belongs to whichever container holds it (a Registry slot
// or the Scene's main-object field).
type GameObject struct {
	components []Component

	// Position is the object's world-space location. Mutated freely by the
	// owning context; the compositor reads it once per render pass.
	Position Position
}

// NewGameObject creates an object with the given component list and position.
func NewGameObject(components []Component, pos Position) *GameObject {
	return &GameObject{components: components, Position: pos}
}

// AddComponent appends a component to the object's ordered component list.
func (o *GameObject) AddComponent(c Component) {
	o.components = append(o.components, c)
}

// RemoveComponent removes the component at index i. Returns a descriptive
// error if i is out of range; the object is left unchanged in that case.
func (o *GameObject) RemoveComponent(i int) error {
	if i < 0 || i >= len(o.components) {
		return fmt.Errorf("component index %d out of bounds (length %d)", i, len(o.components))
	}
	o.components = append(o.components[:i], o.components[i+1:]...)
	return nil
}

// Components returns the object's component list. The returned slice MUST
// NOT be mutated.
func (o *GameObject) Components() []Component {
	return o.components
}

// Translate shifts the object by (dx, dy) in world space.
func (o *GameObject) Translate(dx, dy int) {
	o.Position.Translate(dx, dy)
}
