//go:build !tinygo && cgo

package hal

import (
	"image"

	"joyled/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
)

var (
	oledLit  = [4]byte{0x9c, 0xe8, 0xff, 0xff}
	oledDark = [4]byte{0x00, 0x00, 0x00, 0xff}
)

// RunWindow starts a desktop window that shows the OLED and maps the mouse to
// the joystick. It blocks until the window closes.
func RunWindow(newApp func(HAL) func() error, scale int) error {
	if scale <= 0 {
		scale = 4
	}
	h := newHostHAL()
	in := newHostInput(h.btn, DisplayWidth, DisplayHeight)
	h.adc.attach(ChannelX, in.x)
	h.adc.attach(ChannelY, in.y)
	step := newApp(h)

	g := &hostGame{h: h, in: in, step: step}
	ebiten.SetWindowTitle("joyled (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(DisplayWidth*scale, DisplayHeight*scale)
	// One game tick per control loop iteration.
	ebiten.SetTPS(100)
	return ebiten.RunGame(g)
}

type hostGame struct {
	h     *hostHAL
	in    *hostInput
	img   *image.RGBA
	fbImg *ebiten.Image
	step  func() error
}

func (g *hostGame) Update() error {
	g.in.poll()
	if g.step != nil {
		if err := g.step(); err != nil {
			return err
		}
	}
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	fb := g.h.fb
	w, h := int(fb.Width()), int(fb.Height())
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.fbImg = ebiten.NewImage(w, h)
	}
	fb.snapshotRGBA(g.img.Pix, oledLit, oledDark)
	g.fbImg.WritePixels(g.img.Pix)
	screen.DrawImage(g.fbImg, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(g.h.fb.Width()), int(g.h.fb.Height())
}
