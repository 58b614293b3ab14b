package alder

import (
	"image"
	"image/draw"
)

// Bitmap is an immutable decoded image: a dense row-major RGBA pixel buffer.
// The compositor reads bitmaps but never writes them; construct one with
// NewBitmap and Set before attaching it to a sprite, or decode one with
// BitmapFromImage.
type Bitmap struct {
	width  int
	height int
	pix    []uint8 // RGBA, 4 bytes per pixel
}

// NewBitmap creates a fully transparent bitmap with the given dimensions.
func NewBitmap(width, height int) *Bitmap {
	return &Bitmap{
		width:  width,
		height: height,
		pix:    make([]uint8, width*height*4),
	}
}

// BitmapFromImage copies an image.Image into a Bitmap. Pixel values are
// stored with straight (non-premultiplied) alpha: the compositor's write
// rules treat alpha as an encoding, not a blend factor.
func BitmapFromImage(img image.Image) *Bitmap {
	bounds := img.Bounds()
	b := NewBitmap(bounds.Dx(), bounds.Dy())

	nrgba, ok := img.(*image.NRGBA)
	if !ok || bounds.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
		draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)
	}
	for y := 0; y < b.height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+b.width*4]
		copy(b.pix[y*b.width*4:], src)
	}
	return b
}

// Width returns the bitmap width in pixels.
func (b *Bitmap) Width() int { return b.width }

// Height returns the bitmap height in pixels.
func (b *Bitmap) Height() int { return b.height }

// At returns the pixel at (x, y). Out-of-bounds coordinates return a
// transparent pixel.
func (b *Bitmap) At(x, y int) Pixel {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Pixel{}
	}
	i := (y*b.width + x) * 4
	return Pixel{b.pix[i], b.pix[i+1], b.pix[i+2], b.pix[i+3]}
}

// Set writes the pixel at (x, y). Out-of-bounds coordinates are ignored.
// Intended for construction-time fills; bitmaps attached to live sprites
// should be treated as immutable.
func (b *Bitmap) Set(x, y int, p Pixel) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (y*b.width + x) * 4
	b.pix[i+0] = p.R
	b.pix[i+1] = p.G
	b.pix[i+2] = p.B
	b.pix[i+3] = p.A
}

// Fill sets every pixel to p.
func (b *Bitmap) Fill(p Pixel) {
	for i := 0; i < len(b.pix); i += 4 {
		b.pix[i+0] = p.R
		b.pix[i+1] = p.G
		b.pix[i+2] = p.B
		b.pix[i+3] = p.A
	}
}
