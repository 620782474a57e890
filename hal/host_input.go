//go:build !tinygo

package hal

import "sync/atomic"

// hostInput turns pointer and key state into joystick samples and button
// presses. The stick springs back to center unless the pointer is held.
type hostInput struct {
	btn    *hostButtons
	width  int
	height int
	sx     atomic.Uint32
	sy     atomic.Uint32
}

func newHostInput(btn *hostButtons, width, height int) *hostInput {
	in := &hostInput{btn: btn, width: width, height: height}
	in.release()
	return in
}

func (in *hostInput) x() uint16 { return uint16(in.sx.Load()) }
func (in *hostInput) y() uint16 { return uint16(in.sy.Load()) }

// hold deflects the stick toward screen position (px, py).
func (in *hostInput) hold(px, py int) {
	in.sx.Store(uint32(axisFromPixel(px, in.width, false)))
	in.sy.Store(uint32(axisFromPixel(py, in.height, true)))
}

func (in *hostInput) release() {
	in.sx.Store(adcCenter)
	in.sy.Store(adcCenter)
}

// axisFromPixel maps a coordinate in [0, span) onto [0, adcMax], the last
// pixel reaching full deflection. Rows grow downward while the stick reads
// high when pushed up, hence invert.
func axisFromPixel(p, span int, invert bool) uint16 {
	if span <= 1 {
		return adcCenter
	}
	if p < 0 {
		p = 0
	}
	if p >= span {
		p = span - 1
	}
	v := p * adcMax / (span - 1)
	if invert {
		v = adcMax - v
	}
	return uint16(v)
}
