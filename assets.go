package alder

import (
	"fmt"
	"image"
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
	"os"

	"go.uber.org/zap"
	xdraw "golang.org/x/image/draw"
)

// LoadBitmap decodes an image file (PNG or JPEG) into a Bitmap.
func LoadBitmap(path string) (*Bitmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return BitmapFromImage(img), nil
}

// LoadBackground decodes a background image for the given resolution. When
// scaleToFit is set and the image's size differs from the resolution, it is
// rescaled with nearest-neighbor sampling (pixel-art safe). Otherwise the
// image is returned as decoded and the renderer samples its top-left window,
// falling back to the flat default fill if it is too small.
func LoadBackground(path string, res Resolution, scaleToFit bool, log *zap.Logger) (*Bitmap, error) {
	if log == nil {
		log = zap.NewNop()
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	bounds := img.Bounds()
	if scaleToFit && (bounds.Dx() != res.Width || bounds.Dy() != res.Height) {
		log.Info("scaling background to resolution",
			zap.String("path", path),
			zap.String("format", format),
			zap.Int("from_width", bounds.Dx()),
			zap.Int("from_height", bounds.Dy()),
			zap.Int("width", res.Width),
			zap.Int("height", res.Height),
		)
		scaled := image.NewNRGBA(image.Rect(0, 0, res.Width, res.Height))
		xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, bounds, xdraw.Src, nil)
		return BitmapFromImage(scaled), nil
	}
	return BitmapFromImage(img), nil
}
