// Package animation steps through the frames of vertically stacked texture
// atlases and keeps groups of them in sync.
package animation

import (
	"fmt"
	"time"
)

// DefaultFrameTime is how long each atlas tile stays visible.
const DefaultFrameTime = 500 * time.Millisecond

// DimensionError reports an image that cannot be used as an atlas: the width
// must be a power of two and the height a multiple of the width.
type DimensionError struct {
	Width, Height int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("invalid image dimensions: %dx%d", e.Width, e.Height)
}

// Texture is the animation state of one atlas: N square tiles stacked
// vertically, of which one is visible at a time. The zero value is a static
// single-frame texture. It is not safe for concurrent use.
type Texture struct {
	frames    int
	index     int
	offset    float32
	elapsed   time.Duration
	frameTime time.Duration
}

// NewTexture validates the atlas dimensions and returns its state at frame 0.
func NewTexture(width, height int) (*Texture, error) {
	if width <= 0 || width&(width-1) != 0 || height <= 0 || height%width != 0 {
		return nil, &DimensionError{Width: width, Height: height}
	}
	return &Texture{frames: height / width, frameTime: DefaultFrameTime}, nil
}

// Static returns the state of a plain, single-frame texture.
func Static() *Texture {
	return &Texture{frames: 1, frameTime: DefaultFrameTime}
}

// SetFrameTime changes how long each frame is shown. Non-positive values
// are ignored.
func (t *Texture) SetFrameTime(d time.Duration) {
	if d > 0 {
		t.frameTime = d
	}
}

// SetFrame shows tile index mod N.
func (t *Texture) SetFrame(index int) {
	n := t.NumFrames()
	t.index = ((index % n) + n) % n
	t.offset = float32(t.index) / float32(n)
}

// Advance adds dt to the time the current tile has been shown and steps one
// tile for every full frame time that has passed.
func (t *Texture) Advance(dt time.Duration) {
	if t.NumFrames() <= 1 || t.frameTime <= 0 {
		return
	}
	t.elapsed += dt
	for t.elapsed > t.frameTime {
		t.elapsed -= t.frameTime
		t.SetFrame(t.index + 1)
	}
}

// Reset returns to the first tile.
func (t *Texture) Reset() {
	t.elapsed = 0
	t.SetFrame(0)
}

func (t *Texture) Frame() int { return t.index }

// Offset is the vertical texture offset selecting the current tile.
func (t *Texture) Offset() float32 { return t.offset }

// Repeat is the vertical texture repeat showing exactly one tile.
func (t *Texture) Repeat() float32 { return 1 / float32(t.NumFrames()) }

func (t *Texture) NumFrames() int { return max(t.frames, 1) }

func (t *Texture) IsAnimated() bool { return t.frames > 1 }
