package alder

import "fmt"

// ID identifies an object slot in a Registry. Ids are recycled: after Remove,
// the same id will be handed out again by a later Create, possibly for an
// unrelated object. Callers must not treat an id as a stable identity across
// an object's lifetime.
type ID int

// Registry is a bounded pool of game objects: dense slot-indexed storage plus
// a free list of recycled slot indices. External ids are slot indices, giving
// O(1) lookup without hashing.
type Registry struct {
	slots []*GameObject
	free  []ID
	max   int
}

// NewRegistry creates an empty registry with the given capacity. Creating
// beyond the capacity is a fatal precondition violation, so size it for the
// scene's worst case.
func NewRegistry(maxObjects int) *Registry {
	return &Registry{
		slots: make([]*GameObject, 0, maxObjects),
		max:   maxObjects,
	}
}

// Create stores a new object and returns its id. Recycled ids are preferred
// over extending the slot array.
//
// Panics when the registry is full and no recycled id is available. This is
// deliberately not a recoverable error: hitting it means the scene's object
// budget is misconfigured.
func (r *Registry) Create(components []Component, pos Position) ID {
	obj := NewGameObject(components, pos)
	if n := len(r.free); n > 0 {
		id := r.free[n-1]
		r.free = r.free[:n-1]
		r.slots[id] = obj
		return id
	}
	if len(r.slots) >= r.max {
		panic(fmt.Sprintf("alder: registry full, cannot create object beyond capacity %d", r.max))
	}
	r.slots = append(r.slots, obj)
	return ID(len(r.slots) - 1)
}

// Remove deletes the object with the given id and returns the id to the
// recycle pool. Removing an unknown id is reported, not fatal.
func (r *Registry) Remove(id ID) error {
	if id < 0 || int(id) >= len(r.slots) || r.slots[id] == nil {
		return fmt.Errorf("no object with id %d", id)
	}
	r.slots[id] = nil
	r.free = append(r.free, id)
	return nil
}

// Get returns the object with the given id, or false if the id is not live.
func (r *Registry) Get(id ID) (*GameObject, bool) {
	if id < 0 || int(id) >= len(r.slots) || r.slots[id] == nil {
		return nil, false
	}
	return r.slots[id], true
}

// Each calls fn for every live object. Iteration order is unspecified; the
// compositor re-sorts by depth, so order here carries no meaning.
func (r *Registry) Each(fn func(ID, *GameObject)) {
	for i, obj := range r.slots {
		if obj != nil {
			fn(ID(i), obj)
		}
	}
}

// Len returns the number of live objects.
func (r *Registry) Len() int {
	return len(r.slots) - len(r.free)
}

// Cap returns the registry's fixed capacity.
func (r *Registry) Cap() int {
	return r.max
}
