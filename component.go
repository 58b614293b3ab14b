package alder

// Component is a capability attached to a GameObject. The variant set is
// closed: Sprite, Velocity, and Script. The compositor type-switches over it
// during renderable collection; only Sprite entries participate in
// compositing.
type Component interface {
	component()
}

// Sprite is the visual component: an immutable image, a draw offset applied
// before projection, and optional drop-shadow data.
//
// Shadow and ShadowOffset carry a pre-rendered shadow silhouette for sprites
// that ship one; the compositor's shadow pass only uses CastsShadow and the
// sprite's own silhouette, so the shadow bitmap is retained but not sampled.
type Sprite struct {
	Image        *Bitmap
	Shadow       *Bitmap
	ShadowOffset Point
	Offset       Point
	CastsShadow  bool
}

// NewSprite creates a sprite component with the given image, shadow flag,
// and draw offset.
func NewSprite(img *Bitmap, castsShadow bool, offset Point) *Sprite {
	return &Sprite{Image: img, CastsShadow: castsShadow, Offset: offset}
}

// WithShadowImage attaches a pre-rendered shadow bitmap and its anchor
// offset, and marks the sprite as shadow-casting.
func (s *Sprite) WithShadowImage(shadow *Bitmap, offset Point) *Sprite {
	s.Shadow = shadow
	s.ShadowOffset = offset
	s.CastsShadow = true
	return s
}

// Velocity is a reserved per-tick motion component. The runtime stores it
// but does not yet apply it.
type Velocity struct {
	DX, DY int
}

// Script is a behavior hook. The core loop never invokes it; hosts that want
// scripted behavior call Fn themselves between ticks.
type Script struct {
	Fn func(*GameObject)
}

func (*Sprite) component()   {}
func (*Velocity) component() {}
func (*Script) component()   {}
