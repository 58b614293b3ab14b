package alder

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollRequest is a queued camera pan, handed from any goroutine to the
// producer through an atomic pointer.
type scrollRequest struct {
	x, y     int
	duration float32
	easeFn   ease.TweenFunc
}

// cameraScroll holds the active pan tweens for the main object's X and Y.
type cameraScroll struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
	x, y   float32
}

// newCameraScroll starts a pan from the main object's current position to
// the requested one.
func newCameraScroll(from Position, req *scrollRequest) *cameraScroll {
	easeFn := req.easeFn
	if easeFn == nil {
		easeFn = ease.Linear
	}
	return &cameraScroll{
		tweenX: gween.New(float32(from.X), float32(req.x), req.duration, easeFn),
		tweenY: gween.New(float32(from.Y), float32(req.y), req.duration, easeFn),
		x:      float32(from.X),
		y:      float32(from.Y),
	}
}

// advance steps both tweens by dt seconds and returns the integer camera
// position, plus whether the pan has finished.
func (c *cameraScroll) advance(dt float32) (x, y int, done bool) {
	if !c.doneX {
		c.x, c.doneX = c.tweenX.Update(dt)
	}
	if !c.doneY {
		c.y, c.doneY = c.tweenY.Update(dt)
	}
	return int(c.x), int(c.y), c.doneX && c.doneY
}

// ScrollTo queues a scripted camera pan to world position (x, y) over
// duration seconds. While a pan is active it overrides input-derived
// displacement for the main object; input takes over again when the pan
// completes. Pass a nil easeFn for linear easing.
//
// This is an explicit, host-initiated motion (cutscenes, respawns); the
// input path itself is never smoothed.
func (l *Loop) ScrollTo(x, y int, duration float32, easeFn ease.TweenFunc) {
	l.pendingScroll.Store(&scrollRequest{x: x, y: y, duration: duration, easeFn: easeFn})
}
