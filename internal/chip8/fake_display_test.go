package chip8

// fakeDisplay is a minimal Display that records repaint/clear counts
// without allocating a full FrameBuffer, for tests that only care about
// collision/pixel behavior up to a small grid.
type fakeDisplay struct {
	width, height int
	pixels        map[[2]int]bool
	clears        int
	repaints      int
	ready         chan struct{}
}

func newFakeDisplay(width, height int) *fakeDisplay {
	ready := make(chan struct{})
	close(ready)
	return &fakeDisplay{
		width:  width,
		height: height,
		pixels: make(map[[2]int]bool),
		ready:  ready,
	}
}

func (f *fakeDisplay) TogglePixel(x, y int) bool {
	was := f.pixels[[2]int{x, y}]
	f.pixels[[2]int{x, y}] = !was
	return was
}

func (f *fakeDisplay) Clear() {
	f.clears++
	f.pixels = make(map[[2]int]bool)
}

func (f *fakeDisplay) Repaint() { f.repaints++ }

func (f *fakeDisplay) Width() int  { return f.width }
func (f *fakeDisplay) Height() int { return f.height }

func (f *fakeDisplay) NextFrame() <-chan struct{} { return f.ready }
