package alder

import (
	"context"
	"testing"
	"time"
)

func newTestLoop(t *testing.T, objects []*GameObject) *Loop {
	t.Helper()
	scene := NewScene(objects, nil, Position{})
	r := NewRenderer(Resolution{Width: 8, Height: 8}, nil, scene)
	return NewLoop(r, LoopConfig{})
}

func TestLoopStepAppliesDisplacement(t *testing.T) {
	l := newTestLoop(t, nil)
	l.Input().Set(East, true)
	l.Input().Set(North, true)

	l.step(0.016)
	l.step(0.016)

	got := l.renderer.Scene().Main.Position
	if got.X != 2 || got.Y != 2 {
		t.Errorf("main position = (%d, %d), want (2, 2)", got.X, got.Y)
	}

	l.Input().Set(East, false)
	l.Input().Set(North, false)
	l.step(0.016)
	if got := l.renderer.Scene().Main.Position; got.X != 2 || got.Y != 2 {
		t.Errorf("main position moved with no input: (%d, %d)", got.X, got.Y)
	}
}

func TestLoopStepPublishesFrames(t *testing.T) {
	img := NewBitmap(1, 1)
	img.Fill(Pixel{R: 255, A: 255})
	l := newTestLoop(t, []*GameObject{spriteObject(img, 0, 0, 1, false)})

	l.step(0.016)

	select {
	case <-l.Frames().Ready():
	default:
		t.Fatal("step must publish a frame")
	}
	pix := l.Frames().Snapshot()
	if pix[0] != 255 {
		t.Errorf("published pixel (0,0) R = %d, want 255", pix[0])
	}
}

func TestLoopReplaceSceneAppliedNextStep(t *testing.T) {
	l := newTestLoop(t, nil)
	old := l.renderer.Scene()

	next := NewScene(nil, nil, Position{X: 42})
	l.ReplaceScene(next)
	if l.renderer.Scene() != old {
		t.Fatal("scene swapped before a producer step")
	}

	l.step(0.016)
	if l.renderer.Scene() != next {
		t.Error("pending scene not applied on step")
	}
	if got := l.renderer.Scene().Main.Position.X; got != 42 {
		t.Errorf("main position X = %d, want 42", got)
	}
}

func TestLoopScrollToOverridesInput(t *testing.T) {
	l := newTestLoop(t, nil)
	l.Input().Set(West, true) // would pull X negative if input applied

	l.ScrollTo(10, -6, 1.0, nil)

	// Halfway through a linear pan from (0,0) to (10,-6).
	l.step(0.5)
	got := l.renderer.Scene().Main.Position
	if got.X != 5 || got.Y != -3 {
		t.Fatalf("mid-pan position = (%d, %d), want (5, -3)", got.X, got.Y)
	}

	// Finishing the pan lands exactly on the target.
	l.step(0.5)
	got = l.renderer.Scene().Main.Position
	if got.X != 10 || got.Y != -6 {
		t.Fatalf("end-pan position = (%d, %d), want (10, -6)", got.X, got.Y)
	}

	// The pan is done; held input takes over on the next step.
	l.step(0.016)
	got = l.renderer.Scene().Main.Position
	if got.X != 9 || got.Y != -6 {
		t.Errorf("post-pan position = (%d, %d), want input-driven (9, -6)", got.X, got.Y)
	}
}

func TestLoopScrollRequestReplacesPending(t *testing.T) {
	l := newTestLoop(t, nil)
	l.ScrollTo(100, 100, 1.0, nil)
	l.ScrollTo(4, 4, 1.0, nil) // supersedes before the producer picks it up

	l.step(1.0)
	got := l.renderer.Scene().Main.Position
	if got.X != 4 || got.Y != 4 {
		t.Errorf("position = (%d, %d), want latest request target (4, 4)", got.X, got.Y)
	}
}

func TestLoopRunStopsOnCancel(t *testing.T) {
	l := newTestLoop(t, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	// Let both goroutines spin up and exchange at least one frame.
	select {
	case <-l.Frames().Ready():
	case <-time.After(2 * time.Second):
		t.Fatal("no frame published within 2s")
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Errorf("Run returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestLoopPresentsToAttachedSurface(t *testing.T) {
	l := newTestLoop(t, nil)
	s := &recordingSurface{}
	l.AttachSurface(s)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()

	deadline := time.After(2 * time.Second)
	for s.callCount() == 0 {
		select {
		case <-deadline:
			t.Fatal("surface never presented within 2s")
		case <-time.After(time.Millisecond):
		}
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Run returned %v, want nil", err)
	}
}

func TestLoopTickRate(t *testing.T) {
	scene := NewScene(nil, nil, Position{})
	r := NewRenderer(Resolution{Width: 4, Height: 4}, nil, scene)
	l := NewLoop(r, LoopConfig{TicksPerSecond: 1000})

	if l.tick != time.Millisecond {
		t.Errorf("tick = %v, want 1ms", l.tick)
	}
}
