package alder

// Resolution is the fixed pixel size of the output frame.
type Resolution struct {
	Width, Height int
}

// Point is an integer 2D offset. Used for sprite draw offsets and shadow
// anchor offsets.
type Point struct {
	X, Y int
}

// Pixel is a single RGBA color value. Not premultiplied.
type Pixel struct {
	R, G, B, A uint8
}

// Position locates a game object in world space. World coordinates are
// unbounded integers with Y increasing upward; Z is the painter's-algorithm
// depth key (lower = farther, painted first).
//
// Relative is reserved for a future parent-relative positioning mode and is
// ignored by the compositor.
type Position struct {
	X, Y, Z  int
	Relative bool
}

// Translate shifts the position by (dx, dy) in world space.
func (p *Position) Translate(dx, dy int) {
	p.X += dx
	p.Y += dy
}

// DefaultBackground is the flat fill color used when no background bitmap is
// set, or when the background bitmap is smaller than the target resolution.
var DefaultBackground = Pixel{R: 30, G: 30, B: 40, A: 255}

// Drop-shadow constants. The shadow pass projects each opaque sprite pixel
// shadowOffsetX to the right and shadowOffsetY up in world space, and darkens
// whatever is already painted there by shadowOpacity/255.
const (
	shadowOffsetX = 10
	shadowOffsetY = 10
	shadowOpacity = 80
)

// DefaultMaxObjects caps the number of live objects per scene registry.
const DefaultMaxObjects = 256
