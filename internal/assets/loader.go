// Package assets resolves optional image resources. A missing asset is
// never fatal: callers get nil and draw a procedural fallback.
package assets

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/breaking-the-block/internal/core"
)

// LoadImage decodes a PNG, JPEG or GIF file.
func LoadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", path, err)
	}
	return img, nil
}

// LoadFirst tries each path in order and returns the first image that
// decodes, or nil when none does. Failures are logged, not returned.
func LoadFirst(logger *log.Logger, paths ...string) image.Image {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	for i, path := range paths {
		img, err := LoadImage(path)
		if err != nil {
			logger.Debug("image unavailable", "path", path, "err", err)
			continue
		}
		if i > 0 {
			logger.Warn("using fallback image", "path", path)
		}
		return img
	}
	if len(paths) > 0 {
		logger.Warn("no image found, drawing fallback shape", "tried", paths)
	}
	return nil
}

// AverageColor returns the alpha-weighted mean color of img. Fully
// transparent pixels are ignored; an empty or transparent image yields
// core.ColorDefault.
func AverageColor(img image.Image) core.Color {
	if img == nil {
		return core.ColorDefault
	}
	b := img.Bounds()
	var sr, sg, sb, sa uint64
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			// Premultiplied 16-bit channels.
			r, g, bl, a := img.At(x, y).RGBA()
			if a == 0 {
				continue
			}
			sr += uint64(r)
			sg += uint64(g)
			sb += uint64(bl)
			sa += uint64(a)
		}
	}
	if sa == 0 {
		return core.ColorDefault
	}
	scale := func(v uint64) uint8 {
		return uint8(v * 0xff / sa)
	}
	return core.RGB(scale(sr), scale(sg), scale(sb))
}
