// Package alder is a minimal 2D game runtime: a scene of positioned,
// component-bearing objects is composited into a pixel frame relative to a
// moving camera object, and completed frames are handed to a presentation
// surface while an input source steers the camera.
//
// The heart of the package is the camera-relative sprite compositor
// ([Renderer]) and the producer/consumer pair around it ([Loop]): the
// producer derives a camera displacement from [MotionInput], renders the
// [Scene] back to front by depth, and publishes each completed [Frame]
// through a [FrameChannel]; the consumer presents published frames to
// whatever [Surface] is attached.
//
// # Quick start
//
//	scene := alder.NewScene(objects, mainComponents, alder.Position{})
//	renderer := alder.NewRenderer(alder.Resolution{Width: 300, Height: 300}, nil, scene)
//	loop := alder.NewLoop(renderer, alder.LoopConfig{TicksPerSecond: 60})
//
//	if err := alder.Run(loop, alder.DefaultConfig()); err != nil {
//		log.Fatal(err)
//	}
//
// [Run] opens an Ebitengine window, maps WASD/arrow keys onto the camera
// flags, and displays frames until the window closes. Headless hosts can
// instead call [Loop.Run] with their own context and read frames from
// [Loop.Frames], or attach any [Surface] implementation.
//
// # Coordinate conventions
//
// World space is unbounded, integer, Y-up. Screen space is the fixed frame
// grid, origin top-left, Y-down. The main object's position is the camera
// anchor: a world point (wx, wy) lands on screen at
// (wx - camera.X, camera.Y - wy). Depth is the painter's algorithm over
// [Position].Z, except the main object, which always paints topmost.
package alder
