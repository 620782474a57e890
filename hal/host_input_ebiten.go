//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

func (in *hostInput) poll() {
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		in.hold(ebiten.CursorPosition())
	} else {
		in.release()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		in.btn.press(ButtonA)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyJ) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		in.btn.press(ButtonJoystick)
	}
}
