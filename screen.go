package alder

import (
	"context"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/sync/errgroup"
)

// game is the ebiten-side consumer: it maps keyboard state onto the loop's
// motion flags and pushes the latest published frame to the window every
// draw. It never touches the Scene or Renderer.
type game struct {
	loop    *Loop
	width   int
	height  int
	pix     []uint8
	showFPS bool
}

// keyBindings maps movement directions to their keyboard keys. WASD plus
// arrows; either key drives the flag.
var keyBindings = [4]struct {
	dir  Direction
	keys [2]ebiten.Key
}{
	{North, [2]ebiten.Key{ebiten.KeyW, ebiten.KeyArrowUp}},
	{South, [2]ebiten.Key{ebiten.KeyS, ebiten.KeyArrowDown}},
	{East, [2]ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}},
	{West, [2]ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}},
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	input := g.loop.Input()
	for _, b := range keyBindings {
		input.Set(b.dir, ebiten.IsKeyPressed(b.keys[0]) || ebiten.IsKeyPressed(b.keys[1]))
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.loop.Frames().Latest(g.pix)
	screen.WritePixels(g.pix)
	if g.showFPS {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %.1f", ebiten.ActualFPS()))
	}
}

func (g *game) Layout(int, int) (int, int) {
	return g.width, g.height
}

// Run opens a window sized for the loop's resolution and drives both
// contexts: the loop's producer/consumer pair in the background and the
// ebiten event loop on the calling goroutine. It returns when the window is
// closed (or Escape is pressed), after the producer has stopped.
func Run(loop *Loop, cfg Config) error {
	scale := cfg.WindowScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	ebiten.SetWindowTitle(cfg.Title)

	ctx, cancel := context.WithCancel(context.Background())
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return loop.Run(ctx) })

	runErr := ebiten.RunGame(&game{
		loop:    loop,
		width:   cfg.Width,
		height:  cfg.Height,
		pix:     make([]uint8, cfg.Width*cfg.Height*4),
		showFPS: cfg.ShowFPS,
	})

	cancel()
	if err := g.Wait(); err != nil && runErr == nil {
		runErr = err
	}
	return runErr
}
