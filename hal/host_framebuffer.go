//go:build !tinygo

package hal

import "sync"

// hostFramebuffer mimics the SSD1306: drawing goes to a RAM buffer and Flush
// copies it to the "panel" the window reads from.
type hostFramebuffer struct {
	mu      sync.Mutex
	draw    monoBuffer
	panel   monoBuffer
	flushes uint64
}

func newHostFramebuffer(width, height int16) *hostFramebuffer {
	return &hostFramebuffer{
		draw:  newMonoBuffer(width, height),
		panel: newMonoBuffer(width, height),
	}
}

func (f *hostFramebuffer) Width() int16  { return f.draw.width }
func (f *hostFramebuffer) Height() int16 { return f.draw.height }

func (f *hostFramebuffer) Fill(on bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draw.fill(on)
}

func (f *hostFramebuffer) DrawRect(x, y, w, h int16, on, filled bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	drawRect(f.draw.set, x, y, w, h, on, filled)
}

func (f *hostFramebuffer) Flush() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copy(f.panel.buf, f.draw.buf)
	f.flushes++
	return nil
}

// pixel reports the flushed panel state at (x, y).
func (f *hostFramebuffer) pixel(x, y int16) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.panel.get(x, y)
}

// snapshotRGBA renders the flushed panel into dst (4 bytes per pixel).
func (f *hostFramebuffer) snapshotRGBA(dst []byte, lit, dark [4]byte) {
	f.mu.Lock()
	defer f.mu.Unlock()
	w, h := f.panel.width, f.panel.height
	for y := int16(0); y < h; y++ {
		for x := int16(0); x < w; x++ {
			j := (int(y)*int(w) + int(x)) * 4
			if j+3 >= len(dst) {
				return
			}
			c := dark
			if f.panel.get(x, y) {
				c = lit
			}
			copy(dst[j:j+4], c[:])
		}
	}
}
