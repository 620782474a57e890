package hal

// drawRect paints an axis-aligned rectangle through set, outline only unless
// filled. Pixels outside the bounds are left to set to clip.
func drawRect(set func(x, y int16, on bool), x, y, w, h int16, on, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	x1 := x + w - 1
	y1 := y + h - 1
	if filled {
		for py := y; py <= y1; py++ {
			for px := x; px <= x1; px++ {
				set(px, py, on)
			}
		}
		return
	}
	for px := x; px <= x1; px++ {
		set(px, y, on)
		set(px, y1, on)
	}
	for py := y; py <= y1; py++ {
		set(x, py, on)
		set(x1, py, on)
	}
}

// monoBuffer is a 1bpp buffer in SSD1306 page order: byte (y/8)*width+x
// holds rows y&^7 .. y|7 of column x, LSB on top.
type monoBuffer struct {
	width  int16
	height int16
	buf    []byte
}

func newMonoBuffer(width, height int16) monoBuffer {
	pages := (int(height) + 7) / 8
	return monoBuffer{
		width:  width,
		height: height,
		buf:    make([]byte, int(width)*pages),
	}
}

func (m *monoBuffer) set(x, y int16, on bool) {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return
	}
	i := int(y/8)*int(m.width) + int(x)
	bit := byte(1) << uint(y%8)
	if on {
		m.buf[i] |= bit
	} else {
		m.buf[i] &^= bit
	}
}

func (m *monoBuffer) get(x, y int16) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	i := int(y/8)*int(m.width) + int(x)
	return m.buf[i]&(byte(1)<<uint(y%8)) != 0
}

func (m *monoBuffer) fill(on bool) {
	var v byte
	if on {
		v = 0xFF
	}
	for i := range m.buf {
		m.buf[i] = v
	}
}
