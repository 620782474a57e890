// Package screen holds the fixed display layout and the sample-to-pixel
// calibration. Recalibrating for another panel means changing Indicator and
// calling Fit; nothing else refers to raw coordinates.
package screen

import "fmt"

// SampleSpan is the number of codes of the 12-bit ADC.
const SampleSpan = 4096

// MaxSample is the largest AxisSample.
const MaxSample = SampleSpan - 1

// MarkerSize is the edge of the square that follows the stick.
const MarkerSize int16 = 8

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y, W, H int16
}

// Inset shrinks r by n pixels on every side.
func (r Rect) Inset(n int16) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: r.W - 2*n, H: r.H - 2*n}
}

// Contains reports whether the square of edge size at (x, y) lies in r.
func (r Rect) Contains(x, y, size int16) bool {
	return x >= r.X && y >= r.Y && x+size <= r.X+r.W && y+size <= r.Y+r.H
}

var (
	// Border is always lit.
	Border = Rect{X: 3, Y: 3, W: 122, H: 60}
	// Indicator outlines the interior, lit while the green LED is on.
	Indicator = Rect{X: 6, Y: 6, W: 116, H: 54}
)

// Calibration is the affine map from an AxisSample pair to the top-left
// corner of the marker:
//
//	px = x / ScaleX + OffsetX
//	py = (SampleSpan - y) / ScaleY + OffsetY
//
// y is inverted because rows grow downward while the stick reads high when
// pushed up.
type Calibration struct {
	ScaleX, ScaleY   uint16
	OffsetX, OffsetY int16
}

// DefaultCalibration is the board's shipped mapping. ScaleX matches
// Fit(Indicator, MarkerSize); ScaleY is one below it, so at y = 0 the
// marker's bottom row lands on the Indicator line.
var DefaultCalibration = Calibration{ScaleX: 39, ScaleY: 91, OffsetX: 8, OffsetY: 7}

// Map returns the marker position for a sample pair. No clamping is done;
// a calibration that fits its interior never needs any.
func (c Calibration) Map(x, y uint16) (px, py int16) {
	px = int16(x/c.ScaleX) + c.OffsetX
	py = int16((SampleSpan-uint32(y))/uint32(c.ScaleY)) + c.OffsetY
	return px, py
}

// Reach returns the marker positions at the extremes of the sample range.
func (c Calibration) Reach() (minX, minY, maxX, maxY int16) {
	minX, maxY = c.Map(0, 0)
	maxX, minY = c.Map(MaxSample, MaxSample)
	return minX, minY, maxX, maxY
}

// Fits reports whether every sample keeps a marker of edge size inside r.
func (c Calibration) Fits(r Rect, size int16) bool {
	minX, minY, maxX, maxY := c.Reach()
	return r.Contains(minX, minY, size) && r.Contains(maxX, maxY, size)
}

// Fit derives the smallest scales that keep a marker of edge size strictly
// inside the outline of interior.
func Fit(interior Rect, size int16) (Calibration, error) {
	inner := interior.Inset(1)
	travelX := inner.W - size
	travelY := inner.H - size
	if travelX < 0 || travelY < 0 {
		return Calibration{}, fmt.Errorf("screen: marker %d does not fit in %dx%d", size, inner.W, inner.H)
	}
	// floor(SampleSpan/s) <= travel  <=>  s > SampleSpan/(travel+1)
	return Calibration{
		ScaleX:  uint16(SampleSpan/(int(travelX)+1) + 1),
		ScaleY:  uint16(SampleSpan/(int(travelY)+1) + 1),
		OffsetX: inner.X,
		OffsetY: inner.Y,
	}, nil
}
