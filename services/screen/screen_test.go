package screen

import "testing"

func TestDefaultCalibrationMapsCenter(t *testing.T) {
	px, py := DefaultCalibration.Map(2048, 2048)
	if px != 60 || py != 29 {
		t.Fatalf("Map(2048, 2048) = (%d, %d), want (60, 29)", px, py)
	}

	// the marker is centered on the Indicator interior
	cx2 := 2*px + MarkerSize
	cy2 := 2*py + MarkerSize
	if want := 2*Indicator.X + Indicator.W; cx2 != want {
		t.Fatalf("marker center*2 x = %d, want %d", cx2, want)
	}
	if want := 2*Indicator.Y + Indicator.H; cy2 != want {
		t.Fatalf("marker center*2 y = %d, want %d", cy2, want)
	}
}

func TestDefaultCalibrationReach(t *testing.T) {
	minX, minY, maxX, maxY := DefaultCalibration.Reach()
	if minX != 8 || maxX != 113 || minY != 7 || maxY != 52 {
		t.Fatalf("Reach() = (%d, %d, %d, %d), want (8, 7, 113, 52)", minX, minY, maxX, maxY)
	}
	if !DefaultCalibration.Fits(Indicator, MarkerSize) {
		t.Fatal("default calibration leaves the indicator rect")
	}
	if !DefaultCalibration.Fits(Border.Inset(1), MarkerSize) {
		t.Fatal("default calibration touches the border")
	}
}

func TestFitReproducesScaleX(t *testing.T) {
	c, err := Fit(Indicator, MarkerSize)
	if err != nil {
		t.Fatalf("Fit: %v", err)
	}
	if c.ScaleX != 39 {
		t.Fatalf("ScaleX = %d, want 39", c.ScaleX)
	}
	if c.ScaleY != 92 {
		t.Fatalf("ScaleY = %d, want 92", c.ScaleY)
	}
	if !c.Fits(Indicator.Inset(1), MarkerSize) {
		t.Fatal("fitted calibration overlaps the indicator outline")
	}
}

func TestFitOtherPanels(t *testing.T) {
	for _, r := range []Rect{
		{X: 0, Y: 0, W: 320, H: 240},
		{X: 2, Y: 2, W: 60, H: 28},
		{X: 0, Y: 0, W: 10, H: 10},
	} {
		c, err := Fit(r, MarkerSize)
		if err != nil {
			t.Fatalf("Fit(%+v): %v", r, err)
		}
		if !c.Fits(r.Inset(1), MarkerSize) {
			t.Errorf("Fit(%+v) = %+v does not fit", r, c)
		}
	}
}

func TestFitTooSmall(t *testing.T) {
	if _, err := Fit(Rect{W: 8, H: 40}, MarkerSize); err == nil {
		t.Fatal("Fit accepted a marker wider than the interior")
	}
}
