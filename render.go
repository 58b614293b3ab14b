package alder

import (
	"time"

	"go.uber.org/zap"
)

// Renderer is the camera-relative sprite compositor. It owns the frame
// buffers and the active scene, and is driven from exactly one goroutine
// (the producer loop); none of its methods are safe for concurrent use.
type Renderer struct {
	res        Resolution
	background *Bitmap
	scene      *Scene

	base *Frame // initial fill, sampled from the background once
	work *Frame // in-progress composite for the current pass
	last *Frame // most recently completed composite

	log   *zap.Logger
	debug bool
}

// NewRenderer creates a renderer for the given resolution, optional
// background bitmap, and initial scene. The frame buffers are allocated once
// here and reused for every pass.
func NewRenderer(res Resolution, background *Bitmap, scene *Scene) *Renderer {
	r := &Renderer{
		res:        res,
		background: background,
		scene:      scene,
		log:        zap.NewNop(),
	}
	r.base = r.initialFrame()
	r.work = r.base.Clone()
	r.last = r.base.Clone()
	return r
}

// SetLogger routes the renderer's warnings and debug stats through log.
// The default is a no-op logger.
func (r *Renderer) SetLogger(log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	r.log = log
}

// SetDebug enables per-pass timing stats, logged at Debug level.
func (r *Renderer) SetDebug(enabled bool) {
	r.debug = enabled
}

// SetScene swaps the active scene wholesale. Must be called from the
// producer context, between passes.
func (r *Renderer) SetScene(s *Scene) {
	r.scene = s
}

// Scene returns the active scene.
func (r *Renderer) Scene() *Scene {
	return r.scene
}

// Resolution returns the renderer's fixed output resolution.
func (r *Renderer) Resolution() Resolution {
	return r.res
}

// initialFrame builds the pass-start frame: the top-left Width x Height
// window of the background bitmap when it covers the resolution, otherwise a
// flat DefaultBackground fill. A too-small background is reported and falls
// back to the flat fill.
func (r *Renderer) initialFrame() *Frame {
	if r.background == nil {
		return NewFrame(r.res, DefaultBackground)
	}
	if r.background.Width() < r.res.Width || r.background.Height() < r.res.Height {
		r.log.Warn("background bitmap smaller than resolution, using default fill",
			zap.Int("background_width", r.background.Width()),
			zap.Int("background_height", r.background.Height()),
			zap.Int("width", r.res.Width),
			zap.Int("height", r.res.Height),
		)
		return NewFrame(r.res, DefaultBackground)
	}
	f := NewFrame(r.res, Pixel{})
	for y := 0; y < r.res.Height; y++ {
		for x := 0; x < r.res.Width; x++ {
			f.set(x, y, r.background.At(x, y))
		}
	}
	return f
}

// Render composites the scene into a fresh frame: reset the working buffer
// to the background, paint the depth-ordered draw list back to front relative
// to the main object's position, then publish the finished pass as the last
// completed frame. Synchronous, no suspension points.
func (r *Renderer) Render() {
	var start time.Time
	if r.debug {
		start = time.Now()
	}

	r.work.copyFrom(r.base)

	entries := r.scene.collectRenderables()
	camera := r.scene.Main.Position
	for _, e := range entries {
		r.blit(e, camera)
	}

	// Only the completed pass is observable through Emit; mid-pass state
	// never leaves the working buffer.
	r.last.copyFrom(r.work)

	if r.debug {
		r.log.Debug("render pass",
			zap.Int("entries", len(entries)),
			zap.Duration("elapsed", time.Since(start)),
		)
	}
}

// Emit returns a copy of the most recently completed frame. Before the first
// Render it returns the initial background fill. Never blocks, never fails.
func (r *Renderer) Emit() *Frame {
	return r.last.Clone()
}

// blit paints one sprite entry into the working buffer.
//
// For each sprite pixel (px, py) the world coordinate is
// (pos.X + px, pos.Y - py): the world is Y-up while image rows grow
// downward. Screen projection relative to the camera anchor is
// (wx - camera.X, camera.Y - wy), hard-clipped to the frame.
func (r *Renderer) blit(e renderable, camera Position) {
	pos := e.owner.Position
	originX := pos.X + e.offset.X
	originY := pos.Y + e.offset.Y

	w := e.image.Width()
	h := e.image.Height()
	for py := 0; py < h; py++ {
		wy := originY - py
		for px := 0; px < w; px++ {
			wx := originX + px

			src := e.image.At(px, py)
			if src.A == 0 {
				continue // fully transparent: no paint, no shadow
			}

			if e.shadow {
				r.castShadow(wx+shadowOffsetX, wy+shadowOffsetY, camera)
			}

			sx := wx - camera.X
			sy := camera.Y - wy
			if sx < 0 || sx >= r.res.Width || sy < 0 || sy >= r.res.Height {
				continue
			}
			r.writePixel(sx, sy, src)
		}
	}
}

// castShadow darkens the frame pixel under the shadow-offset world
// coordinate toward black by shadowOpacity/255, leaving it fully opaque.
// The shadow samples whatever is already painted; it does not draw a color
// of its own.
func (r *Renderer) castShadow(wx, wy int, camera Position) {
	sx := wx - camera.X
	sy := camera.Y - wy
	if sx < 0 || sx >= r.res.Width || sy < 0 || sy >= r.res.Height {
		return
	}
	dst := r.work.At(sx, sy)
	r.work.set(sx, sy, Pixel{
		R: darken(dst.R),
		G: darken(dst.G),
		B: darken(dst.B),
		A: 255,
	})
}

// darken applies the linear shadow blend toward black: c * (1 - opacity),
// in integer arithmetic as c - c*opacity/255.
func darken(c uint8) uint8 {
	return c - uint8(int(c)*shadowOpacity/255)
}

// writePixel applies the color write rule at an in-bounds screen coordinate.
//
// Pure black with partial alpha is an ad hoc shadow-silhouette encoding
// baked into certain source art: it subtracts its alpha from each existing
// color channel, saturating at zero, instead of overwriting. Every other
// source pixel overwrites the destination RGBA wholesale; there is no
// general alpha compositing.
func (r *Renderer) writePixel(sx, sy int, src Pixel) {
	if src.R == 0 && src.G == 0 && src.B == 0 && src.A < 255 {
		dst := r.work.At(sx, sy)
		dst.R = subSat(dst.R, src.A)
		dst.G = subSat(dst.G, src.A)
		dst.B = subSat(dst.B, src.A)
		r.work.set(sx, sy, dst)
		return
	}
	r.work.set(sx, sy, src)
}

// subSat subtracts b from a, saturating at zero.
func subSat(a, b uint8) uint8 {
	if a < b {
		return 0
	}
	return a - b
}
