package alder

import "sort"

// Scene owns one object registry (background/world objects) and one main
// object: the camera-bearing entity, typically the player. The main object is
// never stored in the registry; every frame needs it unconditionally, so it
// is addressed directly.
type Scene struct {
	registry *Registry

	// Main is the camera anchor. Its position translates world coordinates
	// into screen coordinates each render pass, and its sprites always paint
	// topmost.
	Main *GameObject
}

// NewScene builds a scene from background objects plus the main object's
// components and position. Background objects are re-registered: any identity
// they carried before is discarded and the registry assigns fresh ids.
func NewScene(objects []*GameObject, mainComponents []Component, mainPos Position) *Scene {
	return NewSceneWithCapacity(objects, mainComponents, mainPos, DefaultMaxObjects)
}

// NewSceneWithCapacity is NewScene with an explicit registry capacity.
func NewSceneWithCapacity(objects []*GameObject, mainComponents []Component, mainPos Position, maxObjects int) *Scene {
	reg := NewRegistry(maxObjects)
	for _, obj := range objects {
		reg.Create(obj.components, obj.Position)
	}
	return &Scene{
		registry: reg,
		Main:     NewGameObject(mainComponents, mainPos),
	}
}

// Registry returns the scene's object registry.
func (s *Scene) Registry() *Registry {
	return s.registry
}

// renderable is one depth-ordered draw list entry: a sprite image bound to
// its owning object, with the draw offset and shadow flag resolved.
type renderable struct {
	owner  *GameObject
	image  *Bitmap
	offset Point
	shadow bool
}

// collectRenderables walks every registry object and emits one entry per
// sprite component with a non-nil image. Entries are sorted by the owner's
// Z ascending (stable, so same-depth objects keep a deterministic order),
// then the main object's sprites are appended unconditionally: the main
// object paints on top regardless of its own Z, which is never compared.
func (s *Scene) collectRenderables() []renderable {
	var list []renderable
	s.registry.Each(func(_ ID, obj *GameObject) {
		list = appendSprites(list, obj)
	})

	sort.SliceStable(list, func(i, j int) bool {
		return list[i].owner.Position.Z < list[j].owner.Position.Z
	})

	return appendSprites(list, s.Main)
}

// appendSprites adds one renderable per non-nil sprite image on obj.
// Sprites with no image are excluded from compositing entirely.
func appendSprites(list []renderable, obj *GameObject) []renderable {
	for _, c := range obj.components {
		sp, ok := c.(*Sprite)
		if !ok || sp.Image == nil {
			continue
		}
		list = append(list, renderable{
			owner:  obj,
			image:  sp.Image,
			offset: sp.Offset,
			shadow: sp.CastsShadow,
		})
	}
	return list
}
