package core

import "testing"

func TestColorHex(t *testing.T) {
	tests := []struct {
		name     string
		c        Color
		expected string
	}{
		{"default", ColorDefault, ""},
		{"black is not default", ColorBlack, "#000000"},
		{"orange", ColorOrange, "#ffa500"},
		{"gray", Gray(200), "#c8c8c8"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Hex(); got != tc.expected {
				t.Errorf("Hex() = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestColorUnmarshalText(t *testing.T) {
	var c Color
	if err := c.UnmarshalText([]byte("#64ff64")); err != nil {
		t.Fatalf("UnmarshalText() failed: %v", err)
	}
	if c != RGB(100, 255, 100) {
		t.Errorf("UnmarshalText() = %s, expected #64ff64", c)
	}

	if err := c.UnmarshalText([]byte("00ff00")); err != nil {
		t.Fatalf("UnmarshalText() without # failed: %v", err)
	}
	if c != ColorGreen {
		t.Errorf("UnmarshalText() = %s, expected #00ff00", c)
	}

	if err := c.UnmarshalText([]byte("#12345")); err == nil {
		t.Error("UnmarshalText() should reject short colors")
	}
	if err := c.UnmarshalText([]byte("#zzzzzz")); err == nil {
		t.Error("UnmarshalText() should reject non-hex colors")
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorOrange.RGBA()
	if r != 0xffff || g != 165*0x101 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d), unexpected", r, g, b, a)
	}
}
