//go:build !tinygo

// Command mkcalib prints the marker calibration for a display interior and
// checks the built-in calibration against it.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"joyled/services/screen"
)

func main() {
	r := screen.Indicator
	size := int(screen.MarkerSize)
	var x, y, w, h int
	flag.IntVar(&x, "x", int(r.X), "Interior left edge.")
	flag.IntVar(&y, "y", int(r.Y), "Interior top edge.")
	flag.IntVar(&w, "w", int(r.W), "Interior width.")
	flag.IntVar(&h, "h", int(r.H), "Interior height.")
	flag.IntVar(&size, "size", size, "Marker edge in pixels.")
	flag.Parse()

	interior := screen.Rect{X: int16(x), Y: int16(y), W: int16(w), H: int16(h)}
	if err := run(os.Stdout, interior, int16(size)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(out io.Writer, interior screen.Rect, size int16) error {
	if size <= 0 {
		return fmt.Errorf("mkcalib: invalid marker size %d", size)
	}
	cal, err := screen.Fit(interior, size)
	if err != nil {
		return fmt.Errorf("mkcalib: %w", err)
	}

	minX, minY, maxX, maxY := cal.Reach()
	fmt.Fprintf(out, "interior  x=%d y=%d w=%d h=%d marker=%d\n", interior.X, interior.Y, interior.W, interior.H, size)
	fmt.Fprintf(out, "fit       ScaleX=%d ScaleY=%d OffsetX=%d OffsetY=%d\n", cal.ScaleX, cal.ScaleY, cal.OffsetX, cal.OffsetY)
	fmt.Fprintf(out, "reach     x=[%d,%d] y=[%d,%d]\n", minX, maxX, minY, maxY)

	def := screen.DefaultCalibration
	verdict := "fits"
	if !def.Fits(interior, size) {
		verdict = "overflows"
	}
	fmt.Fprintf(out, "default   ScaleX=%d ScaleY=%d OffsetX=%d OffsetY=%d %s\n", def.ScaleX, def.ScaleY, def.OffsetX, def.OffsetY, verdict)
	return nil
}
