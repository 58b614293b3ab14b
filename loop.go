package alder

import (
	"context"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// LoopConfig configures a Loop.
type LoopConfig struct {
	// TicksPerSecond paces the producer with a fixed-rate ticker. Zero keeps
	// the original free-running behavior: throughput bounded only by
	// compositing cost.
	TicksPerSecond int

	// Logger receives producer and presentation diagnostics. Nil means no
	// logging.
	Logger *zap.Logger

	// Debug enables per-pass renderer stats.
	Debug bool
}

// Loop is the render producer and its presentation consumer: two long-lived
// goroutines bridged by a FrameChannel and a SurfaceCell.
//
// The producer iterates: derive displacement from MotionInput, move the main
// object, render, emit, publish. The consumer waits for the ready signal,
// reads the latest frame, and presents it to the attached surface. The Scene
// and Renderer are owned exclusively by the producer; the consumer only ever
// touches the two lock-guarded cells.
type Loop struct {
	renderer *Renderer
	input    MotionInput
	frames   *FrameChannel
	surface  SurfaceCell

	log  *zap.Logger
	tick time.Duration

	pendingScene  atomic.Pointer[Scene]
	pendingScroll atomic.Pointer[scrollRequest]
	scroll        *cameraScroll // producer-owned, nil when idle
}

// NewLoop creates a loop around the given renderer.
func NewLoop(r *Renderer, cfg LoopConfig) *Loop {
	log := cfg.Logger
	if log == nil {
		log = zap.NewNop()
	}
	r.SetLogger(log)
	r.SetDebug(cfg.Debug)

	l := &Loop{
		renderer: r,
		frames:   NewFrameChannel(r.Resolution()),
		log:      log,
	}
	if cfg.TicksPerSecond > 0 {
		l.tick = time.Second / time.Duration(cfg.TicksPerSecond)
	}
	return l
}

// Input returns the shared motion flags. Input sources store direction
// states here; the producer reads them once per iteration.
func (l *Loop) Input() *MotionInput {
	return &l.input
}

// Frames returns the loop's frame channel.
func (l *Loop) Frames() *FrameChannel {
	return l.frames
}

// AttachSurface installs the presentation target. May be called at any time,
// including while the loop is running; until then frames are still rendered
// and published, just not presented.
func (l *Loop) AttachSurface(s Surface) {
	l.surface.Attach(s)
}

// DetachSurface removes the presentation target.
func (l *Loop) DetachSurface() {
	l.surface.Detach()
}

// ReplaceScene queues a wholesale scene swap. The producer applies it at the
// start of its next iteration.
func (l *Loop) ReplaceScene(s *Scene) {
	l.pendingScene.Store(s)
}

// Run starts the producer and consumer and blocks until ctx is canceled.
// Always returns nil after both goroutines have stopped; presentation
// failures are logged, not returned, because the producer keeps rendering
// without a display target.
func (l *Loop) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return l.produce(ctx) })
	g.Go(func() error { return l.consume(ctx) })
	return g.Wait()
}

// produce is the render loop: cancellation check, scene swap, camera motion,
// render, emit, publish. With no tick rate configured it busy-loops exactly
// like the baseline design.
func (l *Loop) produce(ctx context.Context) error {
	var ticker *time.Ticker
	if l.tick > 0 {
		ticker = time.NewTicker(l.tick)
		defer ticker.Stop()
	}

	l.log.Info("producer started",
		zap.Int("width", l.frames.Width()),
		zap.Int("height", l.frames.Height()),
	)

	prev := time.Now()
	for {
		select {
		case <-ctx.Done():
			l.log.Info("producer stopped")
			return nil
		default:
		}
		if ticker != nil {
			select {
			case <-ctx.Done():
				l.log.Info("producer stopped")
				return nil
			case <-ticker.C:
			}
		}

		now := time.Now()
		dt := float32(now.Sub(prev).Seconds())
		prev = now

		l.step(dt)
	}
}

// step runs one producer iteration.
func (l *Loop) step(dt float32) {
	if s := l.pendingScene.Swap(nil); s != nil {
		l.renderer.SetScene(s)
	}

	main := l.renderer.Scene().Main
	if req := l.pendingScroll.Swap(nil); req != nil {
		l.scroll = newCameraScroll(main.Position, req)
	}
	if l.scroll != nil {
		x, y, done := l.scroll.advance(dt)
		main.Position.X = x
		main.Position.Y = y
		if done {
			l.scroll = nil
		}
	} else {
		dx, dy := l.input.Displacement()
		main.Translate(dx, dy)
	}

	l.renderer.Render()
	l.frames.Publish(l.renderer.Emit())
}

// consume waits for published frames and pushes them to the surface.
// Frame-buffer and surface locks are never held together.
func (l *Loop) consume(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-l.frames.Ready():
		}

		pix := l.frames.Snapshot()
		if _, err := l.surface.Present(pix, l.frames.Width(), l.frames.Height()); err != nil {
			l.log.Error("surface present failed", zap.Error(err))
		}
	}
}
