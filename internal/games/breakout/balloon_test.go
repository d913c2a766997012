package breakout

import (
	"math"
	"testing"

	"github.com/vovakirdan/breaking-the-block/internal/config"
	"github.com/vovakirdan/breaking-the-block/internal/core"
)

func TestBalloonUpdate(t *testing.T) {
	b := Balloon{X: 100, Y: 650, RiseSpeed: 2, SwayAmplitude: 10, SwayFrequency: 0.02}
	b.Update(0.5)

	if b.Age != 0.5 {
		t.Errorf("Age = %v, expected 0.5", b.Age)
	}
	if b.Y != 648 {
		t.Errorf("Y = %v, expected 648 (rise ignores dt)", b.Y)
	}
	// Age is advanced before the sway is computed.
	wantX := 100 + math.Sin(0.5*0.02*100)*10*0.5
	if !near(b.X, wantX) {
		t.Errorf("X = %v, expected %v", b.X, wantX)
	}
}

func TestBalloonOffScreen(t *testing.T) {
	b := Balloon{Size: 20, Y: -40}
	if b.OffScreen() {
		t.Error("OffScreen() at -2*size = true, expected false")
	}
	b.Y = -40.1
	if !b.OffScreen() {
		t.Error("OffScreen() past -2*size = false, expected true")
	}
}

func TestBalloonDrawables(t *testing.T) {
	b := Balloon{X: 100, Y: 200, Size: 21, Color: core.RGB(255, 100, 100)}

	body := b.Body()
	if body.X != 90 || body.Y != 179 || body.W != 21 || !near(body.H, 25.2) {
		t.Errorf("Body() = %+v, expected {90 179 21 25.2}", body)
	}
	if body.Color != b.Color {
		t.Errorf("Body().Color = %v, expected %v", body.Color, b.Color)
	}

	tether := b.Tether()
	if tether.X1 != 100 || tether.Y1 != 200 || tether.X2 != 100 || tether.Y2 != 221 {
		t.Errorf("Tether() = %+v, expected (100,200)-(100,221)", tether)
	}
	if tether.Color != core.Gray(100) || tether.Width != 2 {
		t.Errorf("Tether() style = (%v, %v), expected (%v, 2)", tether.Color, tether.Width, core.Gray(100))
	}

	hl := b.Highlight()
	if hl.X != 95 || hl.Y != 190 || hl.R != 5 {
		t.Errorf("Highlight() = %+v, expected {95 190 5}", hl)
	}
	if hl.Color != core.ColorWhite {
		t.Errorf("Highlight().Color = %v, expected white", hl.Color)
	}
}

func TestBalloonHighlightMinimumRadius(t *testing.T) {
	b := Balloon{Size: 8}
	if got := b.Highlight().R; got != 3 {
		t.Errorf("Highlight().R = %v, expected 3", got)
	}
}

func TestNewBalloonDrawsFromRanges(t *testing.T) {
	cfg := config.DefaultBreakoutConfig().Celebration
	b := NewBalloon(100, 650, core.ColorRed, 20, cfg, fixedRand{f: 0})

	if b.RiseSpeed != 1 || b.SwayAmplitude != 10 || b.SwayFrequency != 0.02 {
		t.Errorf("motion = (%v, %v, %v), expected range minimums (1, 10, 0.02)",
			b.RiseSpeed, b.SwayAmplitude, b.SwayFrequency)
	}
	if b.Age != 0 {
		t.Errorf("Age = %v, expected 0", b.Age)
	}
}
