package app

import (
	"fmt"
	"image/color"
	"strings"
	"unicode/utf8"

	"joyled/hal"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

var (
	textFont   = &proggy.TinySZ8pt7b
	textHeight = int16(10)
	textLit    = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

var _ drivers.Displayer = fbDisplay{}

// fbDisplay lets tinyfont draw onto a monochrome hal.Framebuffer. Any
// non-black color lights the pixel.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d fbDisplay) Size() (x, y int16) {
	return d.fb.Width(), d.fb.Height()
}

func (d fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.fb.DrawRect(x, y, 1, 1, c.R|c.G|c.B != 0, true)
}

func (d fbDisplay) Display() error { return d.fb.Flush() }

// drawSplash clears the panel and writes one centered line per string.
func drawSplash(fb hal.Framebuffer, lines ...string) error {
	d := fbDisplay{fb: fb}
	fb.Fill(false)

	w, h := d.Size()
	y := (h - int16(len(lines))*textHeight) / 2
	for _, line := range lines {
		lw, _ := tinyfont.LineWidth(textFont, line)
		x := (w - int16(lw)) / 2
		if x < 0 {
			x = 0
		}
		y += textHeight
		tinyfont.WriteLine(d, textFont, x, y, line, textLit)
	}
	return d.Display()
}

// showFault logs a recovered panic and paints it on the panel, wrapped to
// the panel width.
func showFault(h hal.HAL, v any) {
	msg := fmt.Sprintf("%v", v)
	if l := h.Logger(); l != nil {
		l.WriteLineString("joyled panic: " + msg)
	}

	fb := h.Display()
	if fb == nil {
		return
	}
	d := fbDisplay{fb: fb}
	fb.Fill(false)

	_, outbox := tinyfont.LineWidth(textFont, "0")
	cols := int16(1)
	if outbox > 0 {
		if c := fb.Width() / int16(outbox); c > 0 {
			cols = c
		}
	}

	y := int16(0)
	for _, line := range []string{"panic:", msg} {
		for len(line) > 0 && y+textHeight <= fb.Height() {
			chunk, rest := takeRunes(line, cols)
			y += textHeight
			tinyfont.WriteLine(d, textFont, 0, y, chunk, textLit)
			line = strings.TrimLeft(rest, " ")
		}
	}
	_ = d.Display()
}

func takeRunes(s string, n int16) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	var i int
	var count int16
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
