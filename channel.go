package alder

import "sync"

// FrameChannel bridges the render producer and the presentation consumer:
// a reader-writer-locked pixel buffer replaced wholesale on every publish,
// plus a lossy ready signal fired only after the locked write completes.
//
// There is no backpressure: the producer overwrites unconditionally and
// undisplayed frames are dropped, never queued. Readers always observe a
// whole frame, never a torn one, because the entire buffer is replaced under
// a single write-lock acquisition.
type FrameChannel struct {
	mu  sync.RWMutex
	pix []uint8

	width  int
	height int

	ready chan struct{}
}

// NewFrameChannel creates a channel sized for the given resolution, holding
// a zeroed frame until the first publish.
func NewFrameChannel(res Resolution) *FrameChannel {
	return &FrameChannel{
		pix:    make([]uint8, res.Width*res.Height*4),
		width:  res.Width,
		height: res.Height,
		ready:  make(chan struct{}, 1),
	}
}

// Publish copies the frame into the shared buffer, then signals readiness.
// The signal is issued strictly after the locked write completes, so a
// consumer woken by it always reads this frame or a later one. Frames of the
// wrong resolution are ignored.
func (c *FrameChannel) Publish(f *Frame) {
	if f.Width() != c.width || f.Height() != c.height {
		return
	}
	c.mu.Lock()
	copy(c.pix, f.Pix())
	c.mu.Unlock()

	select {
	case c.ready <- struct{}{}:
	default: // consumer hasn't drained the previous signal; drop
	}
}

// Latest copies the most recently published frame into dst, which must be
// Width*Height*4 bytes long.
func (c *FrameChannel) Latest(dst []uint8) {
	c.mu.RLock()
	copy(dst, c.pix)
	c.mu.RUnlock()
}

// Snapshot returns a freshly allocated copy of the most recent frame.
func (c *FrameChannel) Snapshot() []uint8 {
	dst := make([]uint8, len(c.pix))
	c.Latest(dst)
	return dst
}

// Ready returns the channel signaled after each publish. The signal is
// lossy: consecutive publishes between consumer reads collapse into one.
func (c *FrameChannel) Ready() <-chan struct{} {
	return c.ready
}

// Width returns the channel's frame width in pixels.
func (c *FrameChannel) Width() int { return c.width }

// Height returns the channel's frame height in pixels.
func (c *FrameChannel) Height() int { return c.height }

// Surface is a presentation target for completed frames. Present receives
// the raw RGBA bytes of one whole frame.
type Surface interface {
	Present(pix []uint8, width, height int) error
}

// SurfaceCell is a lock-guarded, optional surface handle. It is guarded
// independently of the frame buffer; the producer never holds both locks,
// so the two contexts cannot deadlock against each other.
type SurfaceCell struct {
	mu sync.RWMutex
	s  Surface
}

// Attach installs a surface, replacing any previous one.
func (c *SurfaceCell) Attach(s Surface) {
	c.mu.Lock()
	c.s = s
	c.mu.Unlock()
}

// Detach removes the current surface. Presentation becomes a no-op until a
// new surface is attached; the producer keeps rendering regardless.
func (c *SurfaceCell) Detach() {
	c.mu.Lock()
	c.s = nil
	c.mu.Unlock()
}

// Present forwards a frame to the attached surface. Returns presented=false
// when no surface is attached.
func (c *SurfaceCell) Present(pix []uint8, width, height int) (presented bool, err error) {
	c.mu.RLock()
	s := c.s
	c.mu.RUnlock()
	if s == nil {
		return false, nil
	}
	return true, s.Present(pix, width, height)
}
