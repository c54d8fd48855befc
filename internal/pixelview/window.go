// Package pixelview adapts the chip8 core's Display and Keyboard
// interfaces onto faiface/pixel: a pixelgl.Window for drawing, and the
// COSMAC-VIP key map for input. It is the concrete host the core stays
// ignorant of; everything here is plumbing, none of it CHIP-8 semantics.
package pixelview

import (
	"fmt"

	"github.com/bradford-hamilton/chippy/internal/chip8"
	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"
)

const (
	windowWidth  float64 = 1024
	windowHeight float64 = 768
)

// Window embeds a *chip8.FrameBuffer for the pixel grid and a *pixelgl.Window
// for presentation: the CHIP-8-facing state is cheap and side-effect-free,
// drawing is a separate concern layered on top.
type Window struct {
	*chip8.FrameBuffer
	win *pixelgl.Window

	frameReady chan struct{}
	onPoll     func()
}

// NewWindow opens a pixelgl window sized for a 64x32 CHIP-8 screen scaled
// up to windowWidth x windowHeight.
func NewWindow() (*Window, error) {
	cfg := pixelgl.WindowConfig{
		Title:  "chippy",
		Bounds: pixel.R(0, 0, windowWidth, windowHeight),
		VSync:  true,
	}
	win, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("pixelview: creating window: %w", err)
	}

	w := &Window{
		FrameBuffer: chip8.NewDefaultFrameBuffer(),
		win:         win,
		frameReady:  make(chan struct{}, 1),
	}
	w.frameReady <- struct{}{}
	return w, nil
}

// Closed reports whether the user has asked the window to close.
func (w *Window) Closed() bool { return w.win.Closed() }

// Window returns the underlying pixelgl window, for callers (the input
// backend, mainly) that need to poll its button state directly.
func (w *Window) Window() *pixelgl.Window { return w.win }

// SetInputPoll registers a callback invoked on every NextFrame, once the
// window's own input queue has been pumped. pixelgl requires all window
// calls to happen on the OS main thread, the same thread the run loop
// drives cycles from, so this is how a Keyboard backend gets its once-
// per-iteration poll without spawning a second goroutine that would touch
// the window unsafely.
func (w *Window) SetInputPoll(f func()) { w.onPoll = f }

// Close releases the underlying OS window. Unlike the core Machine, this
// backend does hold an OS resource and must be torn down explicitly.
func (w *Window) Close() { w.win.Destroy() }

// Repaint draws the framebuffer's current bits with an imdraw.IMDraw,
// then presents the frame and signals NextFrame's waiter.
func (w *Window) Repaint() {
	w.win.Clear(colornames.Black)

	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	width, height := w.Width(), w.Height()
	cellW, cellH := windowWidth/float64(width), windowHeight/float64(height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if !w.Pixel(x, y) {
				continue
			}
			// CHIP-8 row 0 is the top of the screen; pixel's origin is
			// bottom-left, so flip y.
			flippedY := height - 1 - y
			draw.Push(pixel.V(cellW*float64(x), cellH*float64(flippedY)))
			draw.Push(pixel.V(cellW*float64(x)+cellW, cellH*float64(flippedY)+cellH))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w.win)
	w.win.Update()

	select {
	case w.frameReady <- struct{}{}:
	default:
	}
}

// NextFrame pumps the window's input queue, runs the registered input poll
// callback (if any), and signals its own readiness: it does not rely on
// Repaint to have refilled frameReady, since a cycle with no CLS/DRW never
// calls Repaint at all and the run loop would otherwise wait on this channel
// forever. Running the poll here, rather than on a separate goroutine, keeps
// every pixelgl call on the main thread pixelgl requires.
func (w *Window) NextFrame() <-chan struct{} {
	w.win.UpdateInput()
	if w.onPoll != nil {
		w.onPoll()
	}
	select {
	case w.frameReady <- struct{}{}:
	default:
	}
	return w.frameReady
}
