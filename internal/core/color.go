package core

import (
	"fmt"
	"strings"
)

// Color is a 24-bit RGB color. The zero value is ColorDefault, which
// frontends render with the terminal's (or window's) default foreground.
type Color uint32

const colorSet Color = 1 << 24

// ColorDefault means "no explicit color".
const ColorDefault Color = 0

// Palette used by the playfield.
var (
	ColorBlack  = RGB(0, 0, 0)
	ColorWhite  = RGB(255, 255, 255)
	ColorRed    = RGB(255, 0, 0)
	ColorOrange = RGB(255, 165, 0)
	ColorYellow = RGB(255, 255, 0)
	ColorGreen  = RGB(0, 255, 0)
	ColorBlue   = RGB(0, 0, 255)
	ColorGray   = RGB(150, 150, 150)
)

// RGB builds a color from its channels.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Gray builds a neutral color with all channels set to v.
func Gray(v uint8) Color {
	return RGB(v, v, v)
}

// IsDefault reports whether the color is ColorDefault.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// Channels returns the red, green and blue components.
func (c Color) Channels() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// RGBA implements image/color.Color so colors can be handed straight to
// image and window APIs. ColorDefault renders as opaque white.
func (c Color) RGBA() (r, g, b, a uint32) {
	if c.IsDefault() {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	cr, cg, cb := c.Channels()
	r = uint32(cr) * 0x101
	g = uint32(cg) * 0x101
	b = uint32(cb) * 0x101
	return r, g, b, 0xffff
}

// Hex returns the "#rrggbb" form, or "" for ColorDefault.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.Channels()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	if c.IsDefault() {
		return "default"
	}
	return c.Hex()
}

// MarshalText encodes the color as "#rrggbb".
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText parses "#rrggbb" (or "rrggbb"). Empty text or "default"
// yields ColorDefault.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if s == "" || s == "default" {
		*c = ColorDefault
		return nil
	}
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return fmt.Errorf("core: invalid color %q: want #rrggbb", string(text))
	}
	var r, g, b uint8
	if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
		return fmt.Errorf("core: invalid color %q: %w", string(text), err)
	}
	*c = RGB(r, g, b)
	return nil
}
