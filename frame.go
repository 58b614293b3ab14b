package alder

import (
	"fmt"
	"image"
	"image/png"
	"os"
)

// Frame is a completed composite: a dense row-major RGBA pixel buffer of
// exactly Width*Height pixels, origin top-left, Y increasing downward.
// Its length never changes after construction; renders replace the contents
// wholesale.
type Frame struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewFrame allocates a frame filled with p.
func NewFrame(res Resolution, p Pixel) *Frame {
	f := &Frame{
		width:  res.Width,
		height: res.Height,
		pix:    make([]uint8, res.Width*res.Height*4),
	}
	f.fill(p)
	return f
}

// Width returns the frame width in pixels.
func (f *Frame) Width() int { return f.width }

// Height returns the frame height in pixels.
func (f *Frame) Height() int { return f.height }

// Pix returns the raw RGBA pixel data. The returned slice aliases the frame's
// buffer and MUST NOT be mutated.
func (f *Frame) Pix() []uint8 {
	return f.pix
}

// At returns the pixel at (x, y). Out-of-bounds coordinates return a
// transparent pixel.
func (f *Frame) At(x, y int) Pixel {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return Pixel{}
	}
	i := (y*f.width + x) * 4
	return Pixel{f.pix[i], f.pix[i+1], f.pix[i+2], f.pix[i+3]}
}

// Clone returns an independent copy of the frame.
func (f *Frame) Clone() *Frame {
	c := &Frame{width: f.width, height: f.height, pix: make([]uint8, len(f.pix))}
	copy(c.pix, f.pix)
	return c
}

// set writes the pixel at (x, y). The compositor only calls this with
// in-bounds coordinates; the guard keeps stray callers from corrupting
// adjacent rows.
func (f *Frame) set(x, y int, p Pixel) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pix[i+0] = p.R
	f.pix[i+1] = p.G
	f.pix[i+2] = p.B
	f.pix[i+3] = p.A
}

// fill sets every pixel to p.
func (f *Frame) fill(p Pixel) {
	for i := 0; i < len(f.pix); i += 4 {
		f.pix[i+0] = p.R
		f.pix[i+1] = p.G
		f.pix[i+2] = p.B
		f.pix[i+3] = p.A
	}
}

// copyFrom replaces the frame contents with src's. Both frames must share
// a resolution.
func (f *Frame) copyFrom(src *Frame) {
	copy(f.pix, src.pix)
}

// WritePNG writes the frame to a PNG file at the given path. Useful for
// debugging composites and capturing goldens.
func (f *Frame) WritePNG(path string) error {
	img := image.NewNRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.pix)

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return file.Close()
}
