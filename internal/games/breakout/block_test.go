package breakout

import "testing"

func TestBlockHitTest(t *testing.T) {
	tests := []struct {
		name   string
		px, py float64
		want   bool
	}{
		{"inside", 20, 20, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right corner", 85, 35, true},
		{"left of block", 9.9, 20, false},
		{"below block", 20, 35.1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Block{X: 10, Y: 10, W: 75, H: 25}
			if got := b.HitTest(tt.px, tt.py); got != tt.want {
				t.Errorf("HitTest(%v, %v) = %v, expected %v", tt.px, tt.py, got, tt.want)
			}
			if b.Hit != tt.want {
				t.Errorf("Hit = %v, expected %v", b.Hit, tt.want)
			}
		})
	}
}

func TestBlockHitTestSingleUse(t *testing.T) {
	b := Block{X: 0, Y: 0, W: 10, H: 10}
	if !b.HitTest(5, 5) {
		t.Fatal("first HitTest() = false, expected true")
	}
	if b.HitTest(5, 5) {
		t.Error("second HitTest() = true, expected false")
	}
}

func TestBlockFollow(t *testing.T) {
	tests := []struct {
		pointer float64
		want    float64
	}{
		{400, 340},
		{0, 0},
		{59, 0},
		{-100, 0},
		{740, 680},
		{1000, 680},
	}

	for _, tt := range tests {
		p := Block{W: 120, H: 15, Kind: KindPaddle}
		p.Follow(tt.pointer, 800)
		if p.X != tt.want {
			t.Errorf("Follow(%v) X = %v, expected %v", tt.pointer, p.X, tt.want)
		}
		if p.X < 0 || p.X > 800-p.W {
			t.Errorf("Follow(%v) X = %v, out of [0, %v]", tt.pointer, p.X, 800-p.W)
		}
	}
}

func TestBlockFollowOddWidth(t *testing.T) {
	p := Block{W: 121}
	p.Follow(400, 800)
	if p.X != 340 {
		t.Errorf("Follow(400) X = %v, expected 340 (half width rounded down)", p.X)
	}
}

func TestBlockKindString(t *testing.T) {
	if got := KindBrick.String(); got != "brick" {
		t.Errorf("KindBrick.String() = %q, expected %q", got, "brick")
	}
	if got := KindPaddle.String(); got != "paddle" {
		t.Errorf("KindPaddle.String() = %q, expected %q", got, "paddle")
	}
}
